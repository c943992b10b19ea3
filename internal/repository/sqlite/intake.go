package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/internal/domain"
)

// ----------------------------------------------------------------------------
// Contact requests
// ----------------------------------------------------------------------------

func scanContactRequest(s rowScanner) (*domain.ContactRequest, error) {
	var cr domain.ContactRequest
	err := s.Scan(&cr.ID, &cr.Name, &cr.Email, &cr.Subject, &cr.Message,
		&cr.BudgetRange, &cr.Timeline, &cr.ProjectType, &cr.Source,
		&cr.Status, &cr.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

const contactColumns = `id, name, email, subject, message, budget_range, timeline, project_type, source, status, created_at`

// CreateContactRequest stores a contact form submission. Status always
// starts at "new" regardless of caller input.
func (r *Repository) CreateContactRequest(ctx context.Context, cr *domain.ContactRequest) (*domain.ContactRequest, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_requests (name, email, subject, message, budget_range, timeline, project_type, source, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, cr.Name, cr.Email, cr.Subject, cr.Message, cr.BudgetRange, cr.Timeline,
		cr.ProjectType, cr.Source, string(domain.ContactStatusNew), nowISO())
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact request: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read contact request id: %w", err)
	}

	return r.contactRequestByID(ctx, id)
}

func (r *Repository) contactRequestByID(ctx context.Context, id int64) (*domain.ContactRequest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contact_requests WHERE id = ?`, id)

	cr, err := scanContactRequest(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query contact request: %w", err)
	}
	return cr, nil
}

// ListContactRequests returns all contact requests, newest first.
func (r *Repository) ListContactRequests(ctx context.Context) ([]domain.ContactRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+contactColumns+` FROM contact_requests
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact requests: %w", err)
	}
	defer rows.Close()

	requests := []domain.ContactRequest{}
	for rows.Next() {
		cr, err := scanContactRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact request: %w", err)
		}
		requests = append(requests, *cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact requests: %w", err)
	}

	return requests, nil
}

// UpdateContactStatus moves a contact request to a new triage status.
// Returns nil if the id does not exist. Status validity is the caller's
// responsibility.
func (r *Repository) UpdateContactStatus(ctx context.Context, id int64, status string) (*domain.ContactRequest, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE contact_requests SET status = ? WHERE id = ?
	`, status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}

	changed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if changed == 0 {
		return nil, nil
	}

	return r.contactRequestByID(ctx, id)
}

// ----------------------------------------------------------------------------
// Lead captures
// ----------------------------------------------------------------------------

// CreateLeadCapture stores a lead magnet signup.
func (r *Repository) CreateLeadCapture(ctx context.Context, lc *domain.LeadCapture) (*domain.LeadCapture, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO lead_captures (email, name, company, website, use_case, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, lc.Email, lc.Name, lc.Company, lc.Website, lc.UseCase, nowISO())
	if err != nil {
		return nil, fmt.Errorf("failed to insert lead capture: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read lead capture id: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, company, website, use_case, created_at
		FROM lead_captures WHERE id = ?
	`, id)

	var created domain.LeadCapture
	err = row.Scan(&created.ID, &created.Email, &created.Name, &created.Company,
		&created.Website, &created.UseCase, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back lead capture: %w", err)
	}
	return &created, nil
}

// ListLeadCaptures returns all captured leads, newest first.
func (r *Repository) ListLeadCaptures(ctx context.Context) ([]domain.LeadCapture, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, name, company, website, use_case, created_at
		FROM lead_captures ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lead captures: %w", err)
	}
	defer rows.Close()

	leads := []domain.LeadCapture{}
	for rows.Next() {
		var lc domain.LeadCapture
		err := rows.Scan(&lc.ID, &lc.Email, &lc.Name, &lc.Company, &lc.Website,
			&lc.UseCase, &lc.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead capture: %w", err)
		}
		leads = append(leads, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lead captures: %w", err)
	}

	return leads, nil
}

// ----------------------------------------------------------------------------
// Analytics
// ----------------------------------------------------------------------------

// CreateAnalyticsEvent appends one event. Metadata is stored as a JSON
// object; nil becomes {}.
func (r *Repository) CreateAnalyticsEvent(ctx context.Context, eventName, path string, metadata map[string]any) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO analytics_events (event_name, path, metadata, created_at)
		VALUES (?, ?, ?, ?)
	`, eventName, path, marshalMetadata(metadata), nowISO())
	if err != nil {
		return fmt.Errorf("failed to insert analytics event: %w", err)
	}
	return nil
}

// ListAnalyticsEvents returns the most recent events. The limit is
// clamped to [1, 1000].
func (r *Repository) ListAnalyticsEvents(ctx context.Context, limit int) ([]domain.AnalyticsEvent, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 1000 {
		limit = 1000
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_name, path, metadata, created_at
		FROM analytics_events ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analytics events: %w", err)
	}
	defer rows.Close()

	events := []domain.AnalyticsEvent{}
	for rows.Next() {
		var (
			ev       domain.AnalyticsEvent
			metadata string
		)
		err := rows.Scan(&ev.ID, &ev.EventName, &ev.Path, &metadata, &ev.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analytics event: %w", err)
		}
		ev.Metadata = parseMetadata(metadata)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analytics events: %w", err)
	}

	return events, nil
}

// AnalyticsSummary returns the total event count plus the ten most
// frequent event names and paths.
func (r *Repository) AnalyticsSummary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	summary := &domain.AnalyticsSummary{
		ByEvent:  []domain.EventCount{},
		TopPaths: []domain.PathCount{},
	}

	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analytics_events`).Scan(&summary.TotalEvents)
	if err != nil {
		return nil, fmt.Errorf("failed to count analytics events: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT event_name, COUNT(*) AS count
		FROM analytics_events
		GROUP BY event_name ORDER BY count DESC LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query event counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ec domain.EventCount
		if err := rows.Scan(&ec.EventName, &ec.Count); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		summary.ByEvent = append(summary.ByEvent, ec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event counts: %w", err)
	}

	pathRows, err := r.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS count
		FROM analytics_events
		GROUP BY path ORDER BY count DESC LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query path counts: %w", err)
	}
	defer pathRows.Close()

	for pathRows.Next() {
		var pc domain.PathCount
		if err := pathRows.Scan(&pc.Path, &pc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan path count: %w", err)
		}
		summary.TopPaths = append(summary.TopPaths, pc)
	}
	if err := pathRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating path counts: %w", err)
	}

	return summary, nil
}

// ----------------------------------------------------------------------------
// Dashboard
// ----------------------------------------------------------------------------

// AdminDashboard gathers the headline counts for the admin dashboard.
func (r *Repository) AdminDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM projects`, &stats.TotalProjects},
		{`SELECT COUNT(*) FROM offers`, &stats.TotalOffers},
		{`SELECT COUNT(*) FROM retainer_plans`, &stats.TotalRetainers},
		{`SELECT COUNT(*) FROM case_studies`, &stats.TotalCaseStudies},
		{`SELECT COUNT(*) FROM contact_requests WHERE status != 'archived'`, &stats.OpenContacts},
		{`SELECT COUNT(*) FROM lead_captures`, &stats.TotalLeads},
	}

	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to gather dashboard stats: %w", err)
		}
	}

	return stats, nil
}
