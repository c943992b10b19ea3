package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Options configure repository construction. SessionTTLDays governs how
// long issued admin sessions live; the seed credentials, when both are
// present, create or rotate the admin row during migration.
type Options struct {
	SessionTTLDays    int
	SeedAdminEmail    string
	SeedAdminPassword string
}

// Repository implements repository.Repository using SQLite.
type Repository struct {
	db             *sql.DB
	sessionTTLDays int
}

// New opens the database at dbPath, runs schema migration and seeding, and
// returns a ready repository. Any migration or seeding failure aborts
// construction; callers must treat that as fatal rather than serving
// traffic against a half-migrated schema.
func New(dbPath string, opts Options) (*Repository, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ttl := opts.SessionTTLDays
	if ttl < 1 {
		ttl = 1
	}

	repo := &Repository{db: db, sessionTTLDays: ttl}

	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := repo.seedContent(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}
	if err := repo.upsertSeedAdmin(opts.SeedAdminEmail, opts.SeedAdminPassword); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed admin credential: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS site_profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		name TEXT NOT NULL,
		gamertag TEXT NOT NULL,
		title TEXT NOT NULL,
		bio TEXT NOT NULL,
		location TEXT NOT NULL,
		email TEXT NOT NULL,
		niche_offer TEXT NOT NULL,
		response_sla TEXT NOT NULL,
		availability TEXT NOT NULL,
		booking_url TEXT NOT NULL,
		hourly_rate_from TEXT NOT NULL,
		monthly_hosting_from TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS social_links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		platform TEXT NOT NULL,
		url TEXT NOT NULL,
		icon TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		url TEXT NOT NULL,
		frontend TEXT NOT NULL,
		backend TEXT NOT NULL,
		featured INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS offers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		price_from TEXT NOT NULL,
		timeline TEXT NOT NULL,
		revisions TEXT NOT NULL,
		hosting TEXT NOT NULL,
		includes TEXT NOT NULL,
		featured INTEGER NOT NULL DEFAULT 0,
		sort_order INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS retainer_plans (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		hours_per_month INTEGER NOT NULL,
		price TEXT NOT NULL,
		hosting_included INTEGER NOT NULL DEFAULT 1,
		support_sla TEXT NOT NULL,
		includes TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS case_studies (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		client_name TEXT NOT NULL,
		industry TEXT NOT NULL,
		challenge TEXT NOT NULL,
		solution TEXT NOT NULL,
		outcome TEXT NOT NULL,
		testimonial_quote TEXT NOT NULL,
		testimonial_author TEXT NOT NULL,
		project_url TEXT NOT NULL,
		featured INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS service_pages (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		audience TEXT NOT NULL,
		city TEXT NOT NULL,
		summary TEXT NOT NULL,
		offer TEXT NOT NULL,
		seo_description TEXT NOT NULL,
		cta_label TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS blog_posts (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		excerpt TEXT NOT NULL,
		body TEXT NOT NULL,
		category TEXT NOT NULL,
		read_time TEXT NOT NULL,
		published_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contact_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		budget_range TEXT NOT NULL DEFAULT '',
		timeline TEXT NOT NULL DEFAULT '',
		project_type TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'new',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS lead_captures (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		use_case TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS analytics_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_name TEXT NOT NULL,
		path TEXT NOT NULL,
		metadata TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS admin_sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		admin_id INTEGER NOT NULL,
		token TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		expires_at TEXT NOT NULL,
		FOREIGN KEY (admin_id) REFERENCES admins(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_admin_sessions_token ON admin_sessions(token);
	CREATE INDEX IF NOT EXISTS idx_admin_sessions_expires_at ON admin_sessions(expires_at);
	CREATE INDEX IF NOT EXISTS idx_contact_requests_created_at ON contact_requests(created_at);
	CREATE INDEX IF NOT EXISTS idx_lead_captures_created_at ON lead_captures(created_at);
	CREATE INDEX IF NOT EXISTS idx_analytics_events_created_at ON analytics_events(created_at);
	CREATE INDEX IF NOT EXISTS idx_analytics_events_name ON analytics_events(event_name);
	`

	if _, err := r.db.Exec(schema); err != nil {
		return err
	}

	// Databases created before the qualification fields existed need the
	// columns backfilled. Add-only; existing rows keep their values.
	err := r.ensureColumns("contact_requests", []string{
		"budget_range TEXT NOT NULL DEFAULT ''",
		"timeline TEXT NOT NULL DEFAULT ''",
		"project_type TEXT NOT NULL DEFAULT ''",
		"source TEXT NOT NULL DEFAULT ''",
		"status TEXT NOT NULL DEFAULT 'new'",
	})
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`CREATE INDEX IF NOT EXISTS idx_contact_requests_status ON contact_requests(status)`)
	return err
}

// ensureColumns appends any of the given column definitions missing from
// table. The first token of each definition is the column name. Never
// drops or renames.
func (r *Repository) ensureColumns(table string, definitions []string) error {
	rows, err := r.db.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return fmt.Errorf("failed to inspect %s columns: %w", table, err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("failed to scan column info: %w", err)
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating column info: %w", err)
	}

	for _, definition := range definitions {
		column, _, _ := strings.Cut(definition, " ")
		if existing[column] {
			continue
		}
		stmt := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s`, table, definition)
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to add column %s to %s: %w", column, table, err)
		}
	}

	return nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}
