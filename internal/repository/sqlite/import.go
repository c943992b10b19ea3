package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/internal/domain"
)

// ImportBundle replaces all public content with the bundle in one
// transaction. Sections left empty in the bundle are untouched, so a
// partial bundle can update just the collections it carries. Intake and
// admin tables are never affected.
func (r *Repository) ImportBundle(ctx context.Context, bundle *domain.SiteBundle) error {
	if bundle == nil {
		return fmt.Errorf("nil bundle")
	}

	now := nowISO()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if bundle.Profile.Name != "" {
		if err := importProfile(ctx, tx, &bundle.Profile, now); err != nil {
			return err
		}
	}
	if len(bundle.Socials) > 0 {
		if err := importSocials(ctx, tx, bundle.Socials); err != nil {
			return err
		}
	}
	if len(bundle.Projects) > 0 {
		if err := importProjects(ctx, tx, bundle.Projects, now); err != nil {
			return err
		}
	}
	if len(bundle.Offers) > 0 {
		if err := importOffers(ctx, tx, bundle.Offers, now); err != nil {
			return err
		}
	}
	if len(bundle.Retainers) > 0 {
		if err := importRetainers(ctx, tx, bundle.Retainers, now); err != nil {
			return err
		}
	}
	if len(bundle.CaseStudies) > 0 {
		if err := importCaseStudies(ctx, tx, bundle.CaseStudies, now); err != nil {
			return err
		}
	}
	if len(bundle.ServicePages) > 0 {
		if err := importServicePages(ctx, tx, bundle.ServicePages, now); err != nil {
			return err
		}
	}
	if len(bundle.BlogPosts) > 0 {
		if err := importBlogPosts(ctx, tx, bundle.BlogPosts, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func importProfile(ctx context.Context, tx *sql.Tx, p *domain.SiteProfile, now string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE site_profile
		SET name = ?, gamertag = ?, title = ?, bio = ?, location = ?, email = ?,
		    niche_offer = ?, response_sla = ?, availability = ?, booking_url = ?,
		    hourly_rate_from = ?, monthly_hosting_from = ?, updated_at = ?
		WHERE id = 1
	`, p.Name, p.Gamertag, p.Title, p.Bio, p.Location, p.Email,
		p.NicheOffer, p.ResponseSLA, p.Availability, p.BookingURL,
		p.HourlyRateFrom, p.MonthlyHostingFrom, now)
	if err != nil {
		return fmt.Errorf("import profile: %w", err)
	}
	return nil
}

func importSocials(ctx context.Context, tx *sql.Tx, items []domain.SocialLink) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM social_links`); err != nil {
		return fmt.Errorf("clear social links: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO social_links (platform, url, icon, sort_order) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare social insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		sortOrder := item.SortOrder
		if sortOrder == 0 {
			sortOrder = i + 1
		}
		if _, err := stmt.ExecContext(ctx, item.Platform, item.URL, item.Icon, sortOrder); err != nil {
			return fmt.Errorf("insert social link %q: %w", item.Platform, err)
		}
	}
	return nil
}

func importProjects(ctx context.Context, tx *sql.Tx, items []domain.Project, now string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clear projects: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO projects (id, name, description, url, frontend, backend, featured, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare project insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range items {
		createdAt := p.CreatedAt
		if createdAt == "" {
			createdAt = now
		}
		updatedAt := p.UpdatedAt
		if updatedAt == "" {
			updatedAt = now
		}
		_, err := stmt.ExecContext(ctx, p.ID, p.Name, p.Description, p.URL,
			marshalStringArray(p.Frontend), marshalStringArray(p.Backend),
			boolToInt(p.Featured), createdAt, updatedAt)
		if err != nil {
			return fmt.Errorf("insert project %q: %w", p.ID, err)
		}
	}
	return nil
}

func importOffers(ctx context.Context, tx *sql.Tx, items []domain.OfferPackage, now string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM offers`); err != nil {
		return fmt.Errorf("clear offers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO offers (id, name, description, price_from, timeline, revisions, hosting, includes, featured, sort_order, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare offer insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range items {
		updatedAt := o.UpdatedAt
		if updatedAt == "" {
			updatedAt = now
		}
		_, err := stmt.ExecContext(ctx, o.ID, o.Name, o.Description, o.PriceFrom,
			o.Timeline, o.Revisions, o.Hosting, marshalStringArray(o.Includes),
			boolToInt(o.Featured), o.SortOrder, updatedAt)
		if err != nil {
			return fmt.Errorf("insert offer %q: %w", o.ID, err)
		}
	}
	return nil
}

func importRetainers(ctx context.Context, tx *sql.Tx, items []domain.RetainerPlan, now string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM retainer_plans`); err != nil {
		return fmt.Errorf("clear retainer plans: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO retainer_plans (id, name, hours_per_month, price, hosting_included, support_sla, includes, sort_order, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare retainer insert: %w", err)
	}
	defer stmt.Close()

	for _, plan := range items {
		updatedAt := plan.UpdatedAt
		if updatedAt == "" {
			updatedAt = now
		}
		_, err := stmt.ExecContext(ctx, plan.ID, plan.Name, plan.HoursPerMonth, plan.Price,
			boolToInt(plan.HostingIncluded), plan.SupportSLA,
			marshalStringArray(plan.Includes), plan.SortOrder, updatedAt)
		if err != nil {
			return fmt.Errorf("insert retainer plan %q: %w", plan.ID, err)
		}
	}
	return nil
}

func importCaseStudies(ctx context.Context, tx *sql.Tx, items []domain.CaseStudy, now string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM case_studies`); err != nil {
		return fmt.Errorf("clear case studies: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO case_studies (id, title, client_name, industry, challenge, solution, outcome, testimonial_quote, testimonial_author, project_url, featured, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare case study insert: %w", err)
	}
	defer stmt.Close()

	for _, cs := range items {
		updatedAt := cs.UpdatedAt
		if updatedAt == "" {
			updatedAt = now
		}
		_, err := stmt.ExecContext(ctx, cs.ID, cs.Title, cs.ClientName, cs.Industry,
			cs.Challenge, cs.Solution, cs.Outcome, cs.TestimonialQuote,
			cs.TestimonialAuthor, cs.ProjectURL, boolToInt(cs.Featured), updatedAt)
		if err != nil {
			return fmt.Errorf("insert case study %q: %w", cs.ID, err)
		}
	}
	return nil
}

func importServicePages(ctx context.Context, tx *sql.Tx, items []domain.ServiceLandingPage, now string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM service_pages`); err != nil {
		return fmt.Errorf("clear service pages: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO service_pages (id, slug, title, audience, city, summary, offer, seo_description, cta_label, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare service page insert: %w", err)
	}
	defer stmt.Close()

	for _, sp := range items {
		updatedAt := sp.UpdatedAt
		if updatedAt == "" {
			updatedAt = now
		}
		_, err := stmt.ExecContext(ctx, sp.ID, sp.Slug, sp.Title, sp.Audience, sp.City,
			sp.Summary, sp.Offer, sp.SEODescription, sp.CTALabel, updatedAt)
		if err != nil {
			return fmt.Errorf("insert service page %q: %w", sp.ID, err)
		}
	}
	return nil
}

func importBlogPosts(ctx context.Context, tx *sql.Tx, items []domain.BlogPost, now string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM blog_posts`); err != nil {
		return fmt.Errorf("clear blog posts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO blog_posts (id, slug, title, excerpt, body, category, read_time, published_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare blog post insert: %w", err)
	}
	defer stmt.Close()

	for _, bp := range items {
		publishedAt := bp.PublishedAt
		if publishedAt == "" {
			publishedAt = now
		}
		updatedAt := bp.UpdatedAt
		if updatedAt == "" {
			updatedAt = now
		}
		_, err := stmt.ExecContext(ctx, bp.ID, bp.Slug, bp.Title, bp.Excerpt, bp.Body,
			bp.Category, bp.ReadTime, publishedAt, updatedAt)
		if err != nil {
			return fmt.Errorf("insert blog post %q: %w", bp.ID, err)
		}
	}
	return nil
}
