package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/internal/domain"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows, so each entity
// needs exactly one mapping function regardless of single- or multi-row
// queries.
type rowScanner interface {
	Scan(dest ...any) error
}

// ----------------------------------------------------------------------------
// Site bundle
// ----------------------------------------------------------------------------

// SiteBundle loads the complete public content payload.
func (r *Repository) SiteBundle(ctx context.Context) (*domain.SiteBundle, error) {
	profile, err := r.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("site profile row is missing")
	}

	socials, err := r.ListSocials(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := r.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	offers, err := r.ListOffers(ctx)
	if err != nil {
		return nil, err
	}
	retainers, err := r.ListRetainers(ctx)
	if err != nil {
		return nil, err
	}
	caseStudies, err := r.ListCaseStudies(ctx)
	if err != nil {
		return nil, err
	}
	servicePages, err := r.ListServicePages(ctx)
	if err != nil {
		return nil, err
	}
	blogPosts, err := r.ListBlogPosts(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SiteBundle{
		Profile:      *profile,
		Socials:      socials,
		Projects:     projects,
		Offers:       offers,
		Retainers:    retainers,
		CaseStudies:  caseStudies,
		ServicePages: servicePages,
		BlogPosts:    blogPosts,
	}, nil
}

// ----------------------------------------------------------------------------
// Profile
// ----------------------------------------------------------------------------

func scanProfile(s rowScanner) (*domain.SiteProfile, error) {
	var p domain.SiteProfile
	err := s.Scan(&p.Name, &p.Gamertag, &p.Title, &p.Bio, &p.Location, &p.Email,
		&p.NicheOffer, &p.ResponseSLA, &p.Availability, &p.BookingURL,
		&p.HourlyRateFrom, &p.MonthlyHostingFrom, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Profile returns the singleton site profile, or nil if the row has never
// been seeded.
func (r *Repository) Profile(ctx context.Context) (*domain.SiteProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, gamertag, title, bio, location, email,
			niche_offer, response_sla, availability, booking_url,
			hourly_rate_from, monthly_hosting_from, updated_at
		FROM site_profile WHERE id = 1
	`)

	profile, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query site profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile overwrites the singleton profile row and returns the
// stored result. The updated_at stamp is always server-side.
func (r *Repository) UpdateProfile(ctx context.Context, p *domain.SiteProfile) (*domain.SiteProfile, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE site_profile
		SET name = ?, gamertag = ?, title = ?, bio = ?, location = ?, email = ?,
			niche_offer = ?, response_sla = ?, availability = ?, booking_url = ?,
			hourly_rate_from = ?, monthly_hosting_from = ?, updated_at = ?
		WHERE id = 1
	`, p.Name, p.Gamertag, p.Title, p.Bio, p.Location, p.Email,
		p.NicheOffer, p.ResponseSLA, p.Availability, p.BookingURL,
		p.HourlyRateFrom, p.MonthlyHostingFrom, nowISO())
	if err != nil {
		return nil, fmt.Errorf("failed to update site profile: %w", err)
	}

	return r.Profile(ctx)
}

// ----------------------------------------------------------------------------
// Social links
// ----------------------------------------------------------------------------

// ListSocials returns the social links ordered by sort_order.
func (r *Repository) ListSocials(ctx context.Context) ([]domain.SocialLink, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, platform, url, icon, sort_order
		FROM social_links ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query social links: %w", err)
	}
	defer rows.Close()

	socials := []domain.SocialLink{}
	for rows.Next() {
		var link domain.SocialLink
		if err := rows.Scan(&link.ID, &link.Platform, &link.URL, &link.Icon, &link.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan social link: %w", err)
		}
		socials = append(socials, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating social links: %w", err)
	}

	return socials, nil
}

// ReplaceSocials replaces the entire social-link list atomically:
// delete-all then insert-all inside one transaction, so a failure
// mid-sequence leaves the previous list intact.
func (r *Repository) ReplaceSocials(ctx context.Context, items []domain.SocialLink) ([]domain.SocialLink, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM social_links`); err != nil {
		return nil, fmt.Errorf("failed to clear social links: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO social_links (platform, url, icon, sort_order) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare social link insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		sortOrder := item.SortOrder
		if sortOrder == 0 {
			sortOrder = i + 1
		}
		if _, err := stmt.ExecContext(ctx, item.Platform, item.URL, item.Icon, sortOrder); err != nil {
			return nil, fmt.Errorf("failed to insert social link %s: %w", item.Platform, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.ListSocials(ctx)
}

// ----------------------------------------------------------------------------
// Projects
// ----------------------------------------------------------------------------

func scanProject(s rowScanner) (*domain.Project, error) {
	var (
		p                 domain.Project
		frontend, backend string
		featured          int
	)
	err := s.Scan(&p.ID, &p.Name, &p.Description, &p.URL, &frontend, &backend,
		&featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.Frontend = parseStringArray(frontend)
	p.Backend = parseStringArray(backend)
	p.Featured = featured == 1
	return &p, nil
}

const projectColumns = `id, name, description, url, frontend, backend, featured, created_at, updated_at`

// ListProjects returns all projects, most recently updated first.
func (r *Repository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+projectColumns+` FROM projects
		ORDER BY updated_at DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// ProjectByID returns one project, or nil if the id does not exist.
func (r *Repository) ProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)

	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query project: %w", err)
	}
	return p, nil
}

// CreateProject inserts a project, stamping both timestamps. Any
// caller-supplied timestamps are ignored.
func (r *Repository) CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	now := nowISO()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, description, url, frontend, backend, featured, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Description, p.URL,
		marshalStringArray(p.Frontend), marshalStringArray(p.Backend),
		boolToInt(p.Featured), now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	created, err := r.ProjectByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("project %s vanished after insert", p.ID)
	}
	return created, nil
}

// UpdateProject overwrites a project's fields, leaving created_at alone.
// Returns nil if the id does not exist.
func (r *Repository) UpdateProject(ctx context.Context, id string, p *domain.Project) (*domain.Project, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, description = ?, url = ?, frontend = ?, backend = ?, featured = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, p.Description, p.URL,
		marshalStringArray(p.Frontend), marshalStringArray(p.Backend),
		boolToInt(p.Featured), nowISO(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	changed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if changed == 0 {
		return nil, nil
	}

	return r.ProjectByID(ctx, id)
}

// DeleteProject removes a project, reporting whether a row was deleted.
func (r *Repository) DeleteProject(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "projects", id)
}

// ----------------------------------------------------------------------------
// Offer packages
// ----------------------------------------------------------------------------

func scanOffer(s rowScanner) (*domain.OfferPackage, error) {
	var (
		o        domain.OfferPackage
		includes string
		featured int
	)
	err := s.Scan(&o.ID, &o.Name, &o.Description, &o.PriceFrom, &o.Timeline,
		&o.Revisions, &o.Hosting, &includes, &featured, &o.SortOrder, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	o.Includes = parseStringArray(includes)
	o.Featured = featured == 1
	return &o, nil
}

const offerColumns = `id, name, description, price_from, timeline, revisions, hosting, includes, featured, sort_order, updated_at`

// ListOffers returns all offers in display order.
func (r *Repository) ListOffers(ctx context.Context) ([]domain.OfferPackage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+offerColumns+` FROM offers
		ORDER BY sort_order ASC, updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	offers := []domain.OfferPackage{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}

	return offers, nil
}

// OfferByID returns one offer, or nil if the id does not exist.
func (r *Repository) OfferByID(ctx context.Context, id string) (*domain.OfferPackage, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = ?`, id)

	o, err := scanOffer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query offer: %w", err)
	}
	return o, nil
}

// CreateOffer inserts an offer package.
func (r *Repository) CreateOffer(ctx context.Context, o *domain.OfferPackage) (*domain.OfferPackage, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO offers (id, name, description, price_from, timeline, revisions, hosting, includes, featured, sort_order, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, o.ID, o.Name, o.Description, o.PriceFrom, o.Timeline, o.Revisions, o.Hosting,
		marshalStringArray(o.Includes), boolToInt(o.Featured), o.SortOrder, nowISO())
	if err != nil {
		return nil, fmt.Errorf("failed to insert offer: %w", err)
	}

	created, err := r.OfferByID(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("offer %s vanished after insert", o.ID)
	}
	return created, nil
}

// UpdateOffer overwrites an offer's fields. Returns nil if the id does
// not exist.
func (r *Repository) UpdateOffer(ctx context.Context, id string, o *domain.OfferPackage) (*domain.OfferPackage, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE offers
		SET name = ?, description = ?, price_from = ?, timeline = ?, revisions = ?, hosting = ?, includes = ?, featured = ?, sort_order = ?, updated_at = ?
		WHERE id = ?
	`, o.Name, o.Description, o.PriceFrom, o.Timeline, o.Revisions, o.Hosting,
		marshalStringArray(o.Includes), boolToInt(o.Featured), o.SortOrder, nowISO(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	changed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if changed == 0 {
		return nil, nil
	}

	return r.OfferByID(ctx, id)
}

// DeleteOffer removes an offer, reporting whether a row was deleted.
func (r *Repository) DeleteOffer(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "offers", id)
}

// ----------------------------------------------------------------------------
// Retainer plans
// ----------------------------------------------------------------------------

func scanRetainer(s rowScanner) (*domain.RetainerPlan, error) {
	var (
		plan            domain.RetainerPlan
		includes        string
		hostingIncluded int
	)
	err := s.Scan(&plan.ID, &plan.Name, &plan.HoursPerMonth, &plan.Price,
		&hostingIncluded, &plan.SupportSLA, &includes, &plan.SortOrder, &plan.UpdatedAt)
	if err != nil {
		return nil, err
	}

	plan.Includes = parseStringArray(includes)
	plan.HostingIncluded = hostingIncluded == 1
	return &plan, nil
}

const retainerColumns = `id, name, hours_per_month, price, hosting_included, support_sla, includes, sort_order, updated_at`

// ListRetainers returns all retainer plans in display order.
func (r *Repository) ListRetainers(ctx context.Context) ([]domain.RetainerPlan, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+retainerColumns+` FROM retainer_plans
		ORDER BY sort_order ASC, updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query retainers: %w", err)
	}
	defer rows.Close()

	plans := []domain.RetainerPlan{}
	for rows.Next() {
		plan, err := scanRetainer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan retainer: %w", err)
		}
		plans = append(plans, *plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating retainers: %w", err)
	}

	return plans, nil
}

// RetainerByID returns one retainer plan, or nil if the id does not exist.
func (r *Repository) RetainerByID(ctx context.Context, id string) (*domain.RetainerPlan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+retainerColumns+` FROM retainer_plans WHERE id = ?`, id)

	plan, err := scanRetainer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query retainer: %w", err)
	}
	return plan, nil
}

// CreateRetainer inserts a retainer plan.
func (r *Repository) CreateRetainer(ctx context.Context, plan *domain.RetainerPlan) (*domain.RetainerPlan, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO retainer_plans (id, name, hours_per_month, price, hosting_included, support_sla, includes, sort_order, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, plan.ID, plan.Name, plan.HoursPerMonth, plan.Price, boolToInt(plan.HostingIncluded),
		plan.SupportSLA, marshalStringArray(plan.Includes), plan.SortOrder, nowISO())
	if err != nil {
		return nil, fmt.Errorf("failed to insert retainer: %w", err)
	}

	created, err := r.RetainerByID(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("retainer %s vanished after insert", plan.ID)
	}
	return created, nil
}

// UpdateRetainer overwrites a retainer plan's fields. Returns nil if the
// id does not exist.
func (r *Repository) UpdateRetainer(ctx context.Context, id string, plan *domain.RetainerPlan) (*domain.RetainerPlan, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE retainer_plans
		SET name = ?, hours_per_month = ?, price = ?, hosting_included = ?, support_sla = ?, includes = ?, sort_order = ?, updated_at = ?
		WHERE id = ?
	`, plan.Name, plan.HoursPerMonth, plan.Price, boolToInt(plan.HostingIncluded),
		plan.SupportSLA, marshalStringArray(plan.Includes), plan.SortOrder, nowISO(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update retainer: %w", err)
	}

	changed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if changed == 0 {
		return nil, nil
	}

	return r.RetainerByID(ctx, id)
}

// DeleteRetainer removes a retainer plan, reporting whether a row was
// deleted.
func (r *Repository) DeleteRetainer(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "retainer_plans", id)
}

// ----------------------------------------------------------------------------
// Case studies
// ----------------------------------------------------------------------------

func scanCaseStudy(s rowScanner) (*domain.CaseStudy, error) {
	var (
		cs       domain.CaseStudy
		featured int
	)
	err := s.Scan(&cs.ID, &cs.Title, &cs.ClientName, &cs.Industry, &cs.Challenge,
		&cs.Solution, &cs.Outcome, &cs.TestimonialQuote, &cs.TestimonialAuthor,
		&cs.ProjectURL, &featured, &cs.UpdatedAt)
	if err != nil {
		return nil, err
	}

	cs.Featured = featured == 1
	return &cs, nil
}

const caseStudyColumns = `id, title, client_name, industry, challenge, solution, outcome, testimonial_quote, testimonial_author, project_url, featured, updated_at`

// ListCaseStudies returns all case studies, featured entries first.
func (r *Repository) ListCaseStudies(ctx context.Context) ([]domain.CaseStudy, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+caseStudyColumns+` FROM case_studies
		ORDER BY featured DESC, updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query case studies: %w", err)
	}
	defer rows.Close()

	studies := []domain.CaseStudy{}
	for rows.Next() {
		cs, err := scanCaseStudy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case study: %w", err)
		}
		studies = append(studies, *cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating case studies: %w", err)
	}

	return studies, nil
}

// CaseStudyByID returns one case study, or nil if the id does not exist.
func (r *Repository) CaseStudyByID(ctx context.Context, id string) (*domain.CaseStudy, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+caseStudyColumns+` FROM case_studies WHERE id = ?`, id)

	cs, err := scanCaseStudy(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query case study: %w", err)
	}
	return cs, nil
}

// CreateCaseStudy inserts a case study.
func (r *Repository) CreateCaseStudy(ctx context.Context, cs *domain.CaseStudy) (*domain.CaseStudy, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO case_studies (id, title, client_name, industry, challenge, solution, outcome, testimonial_quote, testimonial_author, project_url, featured, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, cs.ID, cs.Title, cs.ClientName, cs.Industry, cs.Challenge, cs.Solution,
		cs.Outcome, cs.TestimonialQuote, cs.TestimonialAuthor, cs.ProjectURL,
		boolToInt(cs.Featured), nowISO())
	if err != nil {
		return nil, fmt.Errorf("failed to insert case study: %w", err)
	}

	created, err := r.CaseStudyByID(ctx, cs.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("case study %s vanished after insert", cs.ID)
	}
	return created, nil
}

// UpdateCaseStudy overwrites a case study's fields. Returns nil if the id
// does not exist.
func (r *Repository) UpdateCaseStudy(ctx context.Context, id string, cs *domain.CaseStudy) (*domain.CaseStudy, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE case_studies
		SET title = ?, client_name = ?, industry = ?, challenge = ?, solution = ?, outcome = ?, testimonial_quote = ?, testimonial_author = ?, project_url = ?, featured = ?, updated_at = ?
		WHERE id = ?
	`, cs.Title, cs.ClientName, cs.Industry, cs.Challenge, cs.Solution, cs.Outcome,
		cs.TestimonialQuote, cs.TestimonialAuthor, cs.ProjectURL,
		boolToInt(cs.Featured), nowISO(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update case study: %w", err)
	}

	changed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if changed == 0 {
		return nil, nil
	}

	return r.CaseStudyByID(ctx, id)
}

// DeleteCaseStudy removes a case study, reporting whether a row was
// deleted.
func (r *Repository) DeleteCaseStudy(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "case_studies", id)
}

// ----------------------------------------------------------------------------
// Service landing pages
// ----------------------------------------------------------------------------

func scanServicePage(s rowScanner) (*domain.ServiceLandingPage, error) {
	var sp domain.ServiceLandingPage
	err := s.Scan(&sp.ID, &sp.Slug, &sp.Title, &sp.Audience, &sp.City,
		&sp.Summary, &sp.Offer, &sp.SEODescription, &sp.CTALabel, &sp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

const servicePageColumns = `id, slug, title, audience, city, summary, offer, seo_description, cta_label, updated_at`

// ListServicePages returns all service landing pages, most recently
// updated first.
func (r *Repository) ListServicePages(ctx context.Context) ([]domain.ServiceLandingPage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+servicePageColumns+` FROM service_pages
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query service pages: %w", err)
	}
	defer rows.Close()

	pages := []domain.ServiceLandingPage{}
	for rows.Next() {
		sp, err := scanServicePage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service page: %w", err)
		}
		pages = append(pages, *sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service pages: %w", err)
	}

	return pages, nil
}

// ServicePageByID returns one service page, or nil if the id does not
// exist.
func (r *Repository) ServicePageByID(ctx context.Context, id string) (*domain.ServiceLandingPage, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+servicePageColumns+` FROM service_pages WHERE id = ?`, id)

	sp, err := scanServicePage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query service page: %w", err)
	}
	return sp, nil
}

// CreateServicePage inserts a service landing page.
func (r *Repository) CreateServicePage(ctx context.Context, sp *domain.ServiceLandingPage) (*domain.ServiceLandingPage, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO service_pages (id, slug, title, audience, city, summary, offer, seo_description, cta_label, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sp.ID, sp.Slug, sp.Title, sp.Audience, sp.City, sp.Summary, sp.Offer,
		sp.SEODescription, sp.CTALabel, nowISO())
	if err != nil {
		return nil, fmt.Errorf("failed to insert service page: %w", err)
	}

	created, err := r.ServicePageByID(ctx, sp.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("service page %s vanished after insert", sp.ID)
	}
	return created, nil
}

// UpdateServicePage overwrites a service page's fields. Returns nil if
// the id does not exist.
func (r *Repository) UpdateServicePage(ctx context.Context, id string, sp *domain.ServiceLandingPage) (*domain.ServiceLandingPage, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE service_pages
		SET slug = ?, title = ?, audience = ?, city = ?, summary = ?, offer = ?, seo_description = ?, cta_label = ?, updated_at = ?
		WHERE id = ?
	`, sp.Slug, sp.Title, sp.Audience, sp.City, sp.Summary, sp.Offer,
		sp.SEODescription, sp.CTALabel, nowISO(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update service page: %w", err)
	}

	changed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if changed == 0 {
		return nil, nil
	}

	return r.ServicePageByID(ctx, id)
}

// DeleteServicePage removes a service page, reporting whether a row was
// deleted.
func (r *Repository) DeleteServicePage(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "service_pages", id)
}

// ----------------------------------------------------------------------------
// Blog posts
// ----------------------------------------------------------------------------

func scanBlogPost(s rowScanner) (*domain.BlogPost, error) {
	var bp domain.BlogPost
	err := s.Scan(&bp.ID, &bp.Slug, &bp.Title, &bp.Excerpt, &bp.Body,
		&bp.Category, &bp.ReadTime, &bp.PublishedAt, &bp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &bp, nil
}

const blogPostColumns = `id, slug, title, excerpt, body, category, read_time, published_at, updated_at`

// ListBlogPosts returns all blog posts, newest publication first.
func (r *Repository) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+blogPostColumns+` FROM blog_posts
		ORDER BY published_at DESC, updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.BlogPost{}
	for rows.Next() {
		bp, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, *bp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog posts: %w", err)
	}

	return posts, nil
}

// BlogPostByID returns one blog post, or nil if the id does not exist.
func (r *Repository) BlogPostByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE id = ?`, id)

	bp, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query blog post: %w", err)
	}
	return bp, nil
}

// CreateBlogPost inserts a blog post. PublishedAt is caller-controlled so
// posts can be back- or forward-dated; updated_at is stamped server-side.
func (r *Repository) CreateBlogPost(ctx context.Context, bp *domain.BlogPost) (*domain.BlogPost, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blog_posts (id, slug, title, excerpt, body, category, read_time, published_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, bp.ID, bp.Slug, bp.Title, bp.Excerpt, bp.Body, bp.Category, bp.ReadTime,
		bp.PublishedAt, nowISO())
	if err != nil {
		return nil, fmt.Errorf("failed to insert blog post: %w", err)
	}

	created, err := r.BlogPostByID(ctx, bp.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("blog post %s vanished after insert", bp.ID)
	}
	return created, nil
}

// UpdateBlogPost overwrites a blog post's fields. Returns nil if the id
// does not exist.
func (r *Repository) UpdateBlogPost(ctx context.Context, id string, bp *domain.BlogPost) (*domain.BlogPost, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE blog_posts
		SET slug = ?, title = ?, excerpt = ?, body = ?, category = ?, read_time = ?, published_at = ?, updated_at = ?
		WHERE id = ?
	`, bp.Slug, bp.Title, bp.Excerpt, bp.Body, bp.Category, bp.ReadTime,
		bp.PublishedAt, nowISO(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	changed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if changed == 0 {
		return nil, nil
	}

	return r.BlogPostByID(ctx, id)
}

// DeleteBlogPost removes a blog post, reporting whether a row was
// deleted.
func (r *Repository) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "blog_posts", id)
}

// deleteByID removes one row by string primary key. The table name is
// always a compile-time constant, never caller input.
func (r *Repository) deleteByID(ctx context.Context, table, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	changed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return changed > 0, nil
}
