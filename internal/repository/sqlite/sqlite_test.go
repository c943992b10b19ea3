package sqlite

import (
	"context"
	"reflect"
	"testing"
	"time"

	"portfolio/internal/domain"
)

// ============================================================================
// Test Helpers
// ============================================================================

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct-horse-battery"
)

// newTestRepo creates an in-memory repository with a seeded admin
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:", Options{
		SessionTTLDays:    30,
		SeedAdminEmail:    testAdminEmail,
		SeedAdminPassword: testAdminPassword,
	})
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

// assertNoError fails the test if err is not nil
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// assertEqual fails the test if expected != actual
func assertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
}

// assertNotNil fails the test if value is nil
func assertNotNil(t *testing.T, value interface{}) {
	t.Helper()
	if value == nil || reflect.ValueOf(value).IsNil() {
		t.Fatalf("expected non-nil value")
	}
}

// assertNil fails the test if value is not nil
func assertNil(t *testing.T, value interface{}) {
	t.Helper()
	if value != nil && !reflect.ValueOf(value).IsNil() {
		t.Fatalf("expected nil value, got %v", value)
	}
}

// ============================================================================
// Helper Function Tests
// ============================================================================

func TestMarshalStringArray(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{name: "nil slice", input: nil, expected: "[]"},
		{name: "empty slice", input: []string{}, expected: "[]"},
		{name: "values", input: []string{"Go", "SQLite"}, expected: `["Go","SQLite"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqual(t, tt.expected, marshalStringArray(tt.input))
		})
	}
}

func TestParseStringArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty input", input: "", expected: []string{}},
		{name: "empty array", input: "[]", expected: []string{}},
		{name: "values", input: `["Go","SQLite"]`, expected: []string{"Go", "SQLite"}},
		{name: "malformed json", input: "{not json", expected: []string{}},
		{name: "non-string items skipped", input: `["Go", 42, null, "Docker"]`, expected: []string{"Go", "Docker"}},
		{name: "items trimmed and empties dropped", input: `[" Go ", "", "  "]`, expected: []string{"Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqual(t, tt.expected, parseStringArray(tt.input))
		})
	}
}

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{name: "empty input", input: "", expected: map[string]any{}},
		{name: "empty object", input: "{}", expected: map[string]any{}},
		{name: "values", input: `{"ref":"newsletter"}`, expected: map[string]any{"ref": "newsletter"}},
		{name: "malformed json", input: "[broken", expected: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqual(t, tt.expected, parseMetadata(tt.input))
		})
	}
}

// ============================================================================
// Migration and Seeding Tests
// ============================================================================

func TestForeignKeysEnforced(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.db.Exec(`
		INSERT INTO admin_sessions (admin_id, token, created_at, expires_at)
		VALUES (9999, 'orphan-token', '2026-01-01T00:00:00Z', '2027-01-01T00:00:00Z')
	`)
	if err == nil {
		t.Fatal("expected foreign key violation for unknown admin_id")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	// Re-running the full migration and seeding pass must not duplicate
	// anything.
	assertNoError(t, repo.migrate())
	assertNoError(t, repo.seedContent())

	projects, err := repo.ListProjects(context.Background())
	assertNoError(t, err)
	assertEqual(t, len(seedProjects), len(projects))

	socials, err := repo.ListSocials(context.Background())
	assertNoError(t, err)
	assertEqual(t, len(seedSocials), len(socials))
}

func TestEnsureColumnsBackfillsMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.db.Exec(`CREATE TABLE legacy_requests (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	assertNoError(t, err)
	_, err = repo.db.Exec(`INSERT INTO legacy_requests (name) VALUES ('existing')`)
	assertNoError(t, err)

	err = repo.ensureColumns("legacy_requests", []string{
		"status TEXT NOT NULL DEFAULT 'new'",
		"source TEXT NOT NULL DEFAULT ''",
	})
	assertNoError(t, err)

	// Existing row picks up the defaults; re-running is a no-op.
	var name, status, source string
	err = repo.db.QueryRow(`SELECT name, status, source FROM legacy_requests`).Scan(&name, &status, &source)
	assertNoError(t, err)
	assertEqual(t, "existing", name)
	assertEqual(t, "new", status)
	assertEqual(t, "", source)

	assertNoError(t, repo.ensureColumns("legacy_requests", []string{
		"status TEXT NOT NULL DEFAULT 'new'",
	}))
}

func TestSeedPopulatesContent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	profile, err := repo.Profile(ctx)
	assertNoError(t, err)
	assertNotNil(t, profile)
	assertEqual(t, seedProfile.Name, profile.Name)
	if profile.UpdatedAt == "" {
		t.Fatal("expected seeded profile to carry a timestamp")
	}

	bundle, err := repo.SiteBundle(ctx)
	assertNoError(t, err)
	assertEqual(t, len(seedSocials), len(bundle.Socials))
	assertEqual(t, len(seedProjects), len(bundle.Projects))
	assertEqual(t, len(seedOffers), len(bundle.Offers))
	assertEqual(t, len(seedRetainers), len(bundle.Retainers))
	assertEqual(t, len(seedCaseStudies), len(bundle.CaseStudies))
	assertEqual(t, len(seedServicePages), len(bundle.ServicePages))
	assertEqual(t, len(seedBlogPosts), len(bundle.BlogPosts))
}

func TestSeedDoesNotOverwriteEdits(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	profile, err := repo.Profile(ctx)
	assertNoError(t, err)
	profile.Name = "Edited Name"
	_, err = repo.UpdateProfile(ctx, profile)
	assertNoError(t, err)

	assertNoError(t, repo.seedContent())

	reread, err := repo.Profile(ctx)
	assertNoError(t, err)
	assertEqual(t, "Edited Name", reread.Name)
}

// ============================================================================
// Content CRUD Tests
// ============================================================================

func TestProjectRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateProject(ctx, &domain.Project{
		ID:          "test-project",
		Name:        "Test Project",
		Description: "A test",
		URL:         "https://example.com",
		Frontend:    []string{"React", "Vite"},
		Backend:     []string{"Go"},
		Featured:    true,
		CreatedAt:   "caller-supplied-garbage",
	})
	assertNoError(t, err)
	assertNotNil(t, created)
	assertEqual(t, []string{"React", "Vite"}, created.Frontend)
	assertEqual(t, []string{"Go"}, created.Backend)
	assertEqual(t, true, created.Featured)

	// Timestamps are stamped server-side, never taken from the caller.
	if created.CreatedAt == "caller-supplied-garbage" || created.CreatedAt == "" {
		t.Fatalf("expected server-side created_at, got %q", created.CreatedAt)
	}
	if _, err := time.Parse(time.RFC3339, created.CreatedAt); err != nil {
		t.Fatalf("created_at is not RFC3339: %v", err)
	}

	fetched, err := repo.ProjectByID(ctx, "test-project")
	assertNoError(t, err)
	assertNotNil(t, fetched)
	assertEqual(t, created, fetched)
}

func TestProjectByIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	p, err := repo.ProjectByID(context.Background(), "no-such-project")
	assertNoError(t, err)
	assertNil(t, p)
}

func TestUpdateProjectMissing(t *testing.T) {
	repo := newTestRepo(t)

	p, err := repo.UpdateProject(context.Background(), "no-such-project", &domain.Project{Name: "x"})
	assertNoError(t, err)
	assertNil(t, p)
}

func TestUpdateProjectPreservesCreatedAt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateProject(ctx, &domain.Project{ID: "p1", Name: "One"})
	assertNoError(t, err)

	updated, err := repo.UpdateProject(ctx, "p1", &domain.Project{Name: "One Renamed"})
	assertNoError(t, err)
	assertNotNil(t, updated)
	assertEqual(t, "One Renamed", updated.Name)
	assertEqual(t, created.CreatedAt, updated.CreatedAt)
}

func TestDeleteProject(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateProject(ctx, &domain.Project{ID: "doomed", Name: "Doomed"})
	assertNoError(t, err)

	deleted, err := repo.DeleteProject(ctx, "doomed")
	assertNoError(t, err)
	assertEqual(t, true, deleted)

	deleted, err = repo.DeleteProject(ctx, "doomed")
	assertNoError(t, err)
	assertEqual(t, false, deleted)
}

func TestCreateProjectDuplicateID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateProject(ctx, &domain.Project{ID: "dup", Name: "First"})
	assertNoError(t, err)

	_, err = repo.CreateProject(ctx, &domain.Project{ID: "dup", Name: "Second"})
	if err == nil {
		t.Fatal("expected duplicate id insert to fail")
	}
}

func TestListOffersOrdering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	offers, err := repo.ListOffers(ctx)
	assertNoError(t, err)
	for i := 1; i < len(offers); i++ {
		if offers[i-1].SortOrder > offers[i].SortOrder {
			t.Fatalf("offers out of order: %d before %d", offers[i-1].SortOrder, offers[i].SortOrder)
		}
	}
}

func TestListCaseStudiesFeaturedFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateCaseStudy(ctx, &domain.CaseStudy{ID: "plain", Title: "Plain", Featured: false})
	assertNoError(t, err)

	studies, err := repo.ListCaseStudies(ctx)
	assertNoError(t, err)

	seenUnfeatured := false
	for _, cs := range studies {
		if !cs.Featured {
			seenUnfeatured = true
		} else if seenUnfeatured {
			t.Fatal("featured case study listed after unfeatured one")
		}
	}
}

func TestReplaceSocials(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	replaced, err := repo.ReplaceSocials(ctx, []domain.SocialLink{
		{Platform: "Mastodon", URL: "https://example.social/@x", Icon: "mastodon"},
		{Platform: "GitHub", URL: "https://github.com/x", Icon: "github"},
	})
	assertNoError(t, err)
	assertEqual(t, 2, len(replaced))

	// Zero sort orders are assigned from list position.
	assertEqual(t, "Mastodon", replaced[0].Platform)
	assertEqual(t, 1, replaced[0].SortOrder)
	assertEqual(t, 2, replaced[1].SortOrder)
}

func TestReplaceSocialsEmptyList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	replaced, err := repo.ReplaceSocials(ctx, nil)
	assertNoError(t, err)
	assertEqual(t, 0, len(replaced))
}

func TestReplaceSocialsFailurePreservesRows(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	before, err := repo.ListSocials(ctx)
	assertNoError(t, err)
	if len(before) == 0 {
		t.Fatal("expected seeded social links")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = repo.ReplaceSocials(cancelled, []domain.SocialLink{
		{Platform: "X", URL: "https://x.com/example", Icon: "x"},
	})
	if err == nil {
		t.Fatal("expected replace to fail with a cancelled context")
	}

	after, err := repo.ListSocials(ctx)
	assertNoError(t, err)
	assertEqual(t, len(before), len(after))
	for i := range before {
		assertEqual(t, before[i].Platform, after[i].Platform)
	}
}

// ============================================================================
// Intake Tests
// ============================================================================

func TestCreateContactRequestStatusAlwaysNew(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateContactRequest(ctx, &domain.ContactRequest{
		Name:    "Alex",
		Email:   "alex@example.com",
		Subject: "Project inquiry",
		Message: "Hello",
		Status:  "archived",
	})
	assertNoError(t, err)
	assertNotNil(t, created)
	assertEqual(t, string(domain.ContactStatusNew), created.Status)
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
}

func TestUpdateContactStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateContactRequest(ctx, &domain.ContactRequest{
		Name: "Alex", Email: "alex@example.com", Subject: "s", Message: "m",
	})
	assertNoError(t, err)

	updated, err := repo.UpdateContactStatus(ctx, created.ID, string(domain.ContactStatusQuoted))
	assertNoError(t, err)
	assertNotNil(t, updated)
	assertEqual(t, string(domain.ContactStatusQuoted), updated.Status)
}

func TestUpdateContactStatusMissing(t *testing.T) {
	repo := newTestRepo(t)

	updated, err := repo.UpdateContactStatus(context.Background(), 9999, string(domain.ContactStatusClosed))
	assertNoError(t, err)
	assertNil(t, updated)
}

func TestLeadCaptureRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateLeadCapture(ctx, &domain.LeadCapture{
		Email:   "lead@example.com",
		Name:    "Lead",
		Company: "Acme",
		UseCase: "new website",
	})
	assertNoError(t, err)
	assertNotNil(t, created)
	assertEqual(t, "lead@example.com", created.Email)

	leads, err := repo.ListLeadCaptures(ctx)
	assertNoError(t, err)
	assertEqual(t, 1, len(leads))
}

func TestAnalyticsEvents(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assertNoError(t, repo.CreateAnalyticsEvent(ctx, "page_view", "/", map[string]any{"ref": "direct"}))
	assertNoError(t, repo.CreateAnalyticsEvent(ctx, "page_view", "/pricing", nil))
	assertNoError(t, repo.CreateAnalyticsEvent(ctx, "cta_click", "/pricing", nil))

	events, err := repo.ListAnalyticsEvents(ctx, 50)
	assertNoError(t, err)
	assertEqual(t, 3, len(events))

	// Nil metadata is stored and returned as an empty object.
	for _, ev := range events {
		if ev.Metadata == nil {
			t.Fatal("expected non-nil metadata map")
		}
	}
}

func TestListAnalyticsEventsClampsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assertNoError(t, repo.CreateAnalyticsEvent(ctx, "page_view", "/", nil))
	assertNoError(t, repo.CreateAnalyticsEvent(ctx, "page_view", "/a", nil))

	events, err := repo.ListAnalyticsEvents(ctx, 0)
	assertNoError(t, err)
	assertEqual(t, 1, len(events))

	events, err = repo.ListAnalyticsEvents(ctx, -5)
	assertNoError(t, err)
	assertEqual(t, 1, len(events))

	events, err = repo.ListAnalyticsEvents(ctx, 100000)
	assertNoError(t, err)
	assertEqual(t, 2, len(events))
}

func TestAnalyticsSummary(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assertNoError(t, repo.CreateAnalyticsEvent(ctx, "page_view", "/", nil))
	assertNoError(t, repo.CreateAnalyticsEvent(ctx, "page_view", "/", nil))
	assertNoError(t, repo.CreateAnalyticsEvent(ctx, "cta_click", "/pricing", nil))

	summary, err := repo.AnalyticsSummary(ctx)
	assertNoError(t, err)
	assertEqual(t, int64(3), summary.TotalEvents)
	assertEqual(t, 2, len(summary.ByEvent))
	assertEqual(t, "page_view", summary.ByEvent[0].EventName)
	assertEqual(t, int64(2), summary.ByEvent[0].Count)
	assertEqual(t, "/", summary.TopPaths[0].Path)
}

func TestAdminDashboard(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	cr, err := repo.CreateContactRequest(ctx, &domain.ContactRequest{
		Name: "a", Email: "a@example.com", Subject: "s", Message: "m",
	})
	assertNoError(t, err)
	_, err = repo.CreateContactRequest(ctx, &domain.ContactRequest{
		Name: "b", Email: "b@example.com", Subject: "s", Message: "m",
	})
	assertNoError(t, err)

	_, err = repo.UpdateContactStatus(ctx, cr.ID, string(domain.ContactStatusArchived))
	assertNoError(t, err)

	stats, err := repo.AdminDashboard(ctx)
	assertNoError(t, err)
	assertEqual(t, int64(len(seedProjects)), stats.TotalProjects)
	assertEqual(t, int64(len(seedOffers)), stats.TotalOffers)
	assertEqual(t, int64(1), stats.OpenContacts)
	assertEqual(t, int64(0), stats.TotalLeads)
}

// ============================================================================
// Session Tests
// ============================================================================

func TestLoginAdmin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session, err := repo.LoginAdmin(ctx, testAdminEmail, testAdminPassword)
	assertNoError(t, err)
	assertNotNil(t, session)
	assertEqual(t, testAdminEmail, session.User.Email)
	assertEqual(t, 64, len(session.Token))

	if _, err := time.Parse(time.RFC3339, session.ExpiresAt); err != nil {
		t.Fatalf("expires_at is not RFC3339: %v", err)
	}
}

func TestLoginAdminNormalizesEmail(t *testing.T) {
	repo := newTestRepo(t)

	session, err := repo.LoginAdmin(context.Background(), "  ADMIN@Example.COM  ", testAdminPassword)
	assertNoError(t, err)
	assertNotNil(t, session)
	assertEqual(t, testAdminEmail, session.User.Email)
}

func TestLoginAdminRejections(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: testAdminEmail, password: "nope"},
		{name: "unknown email", email: "nobody@example.com", password: testAdminPassword},
		{name: "empty email", email: "", password: testAdminPassword},
		{name: "empty password", email: testAdminEmail, password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := repo.LoginAdmin(ctx, tt.email, tt.password)
			assertNoError(t, err)
			assertNil(t, session)
		})
	}
}

func TestAdminBySessionToken(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session, err := repo.LoginAdmin(ctx, testAdminEmail, testAdminPassword)
	assertNoError(t, err)

	admin, err := repo.AdminBySessionToken(ctx, session.Token)
	assertNoError(t, err)
	assertNotNil(t, admin)
	assertEqual(t, testAdminEmail, admin.Email)

	admin, err = repo.AdminBySessionToken(ctx, "0000000000000000000000000000000000000000000000000000000000000000")
	assertNoError(t, err)
	assertNil(t, admin)

	admin, err = repo.AdminBySessionToken(ctx, "")
	assertNoError(t, err)
	assertNil(t, admin)
}

func TestRevokeAdminSession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session, err := repo.LoginAdmin(ctx, testAdminEmail, testAdminPassword)
	assertNoError(t, err)

	assertNoError(t, repo.RevokeAdminSession(ctx, session.Token))

	admin, err := repo.AdminBySessionToken(ctx, session.Token)
	assertNoError(t, err)
	assertNil(t, admin)

	// Revoking again is not an error.
	assertNoError(t, repo.RevokeAdminSession(ctx, session.Token))
}

func TestExpiredSessionIsSwept(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session, err := repo.LoginAdmin(ctx, testAdminEmail, testAdminPassword)
	assertNoError(t, err)

	// Force the session into the past.
	past := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	_, err = repo.db.Exec(`UPDATE admin_sessions SET expires_at = ? WHERE token = ?`, past, session.Token)
	assertNoError(t, err)

	admin, err := repo.AdminBySessionToken(ctx, session.Token)
	assertNoError(t, err)
	assertNil(t, admin)

	var count int
	err = repo.db.QueryRow(`SELECT COUNT(*) FROM admin_sessions WHERE token = ?`, session.Token).Scan(&count)
	assertNoError(t, err)
	assertEqual(t, 0, count)
}

func TestVerifyAdminPassword(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ok, err := repo.VerifyAdminPassword(ctx, testAdminPassword)
	assertNoError(t, err)
	assertEqual(t, true, ok)

	ok, err = repo.VerifyAdminPassword(ctx, "wrong")
	assertNoError(t, err)
	assertEqual(t, false, ok)

	ok, err = repo.VerifyAdminPassword(ctx, "")
	assertNoError(t, err)
	assertEqual(t, false, ok)
}

func TestUpsertSeedAdminRotatesHash(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assertNoError(t, repo.upsertSeedAdmin(testAdminEmail, "rotated-password"))

	session, err := repo.LoginAdmin(ctx, testAdminEmail, testAdminPassword)
	assertNoError(t, err)
	assertNil(t, session)

	session, err = repo.LoginAdmin(ctx, testAdminEmail, "rotated-password")
	assertNoError(t, err)
	assertNotNil(t, session)

	var count int
	err = repo.db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&count)
	assertNoError(t, err)
	assertEqual(t, 1, count)
}

func TestUpsertSeedAdminSkipsWhenUnconfigured(t *testing.T) {
	repo := newTestRepo(t)

	assertNoError(t, repo.upsertSeedAdmin("", "password"))
	assertNoError(t, repo.upsertSeedAdmin("someone@example.com", ""))

	var count int
	err := repo.db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&count)
	assertNoError(t, err)
	assertEqual(t, 1, count)
}
