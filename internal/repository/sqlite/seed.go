package sqlite

import (
	"fmt"

	"portfolio/internal/auth"
	"portfolio/internal/domain"
)

// Baseline content inserted into empty collections so a fresh database
// serves a complete site immediately. Each collection is only seeded when
// it has zero rows, so operator edits are never overwritten.

var seedProfile = domain.SiteProfile{
	Name:               "Lars Nieuwenhuis",
	Gamertag:           "Safasfly",
	Title:              "Solo Freelance Full-Stack Developer",
	Bio:                "I help service businesses and SaaS teams launch, improve, and host production-ready websites and web apps without agency overhead.",
	Location:           "Netherlands",
	Email:              "lnieuwenhuis48@icloud.com",
	NicheOffer:         "I build and host conversion-focused websites in 7-14 days for businesses that need speed and reliability.",
	ResponseSLA:        "I reply to qualified inquiries within 24 hours.",
	Availability:       "Currently accepting 2 new client slots this month.",
	BookingURL:         "https://calendly.com/safasfly/intro-call",
	HourlyRateFrom:     "EUR 75/hour",
	MonthlyHostingFrom: "EUR 99/month",
}

var seedSocials = []domain.SocialLink{
	{Platform: "GitHub", URL: "https://github.com/lnieuwenhuis", Icon: "github", SortOrder: 1},
	{Platform: "LinkedIn", URL: "https://www.linkedin.com/in/lars-nieuwenhuis-b85848159/", Icon: "linkedin", SortOrder: 2},
	{Platform: "X", URL: "https://twitter.com/safasfly", Icon: "x", SortOrder: 3},
}

var seedProjects = []domain.Project{
	{
		ID:          "chat-app",
		Name:        "Real-time Chat App",
		Description: "A production chat platform with real-time messaging, account auth, and persistent conversations for support teams.",
		URL:         "https://chat.safasfly.dev",
		Frontend:    []string{"React", "TypeScript", "Tailwind CSS"},
		Backend:     []string{"Go", "MariaDB", "Docker"},
		Featured:    true,
	},
	{
		ID:          "ai-chat",
		Name:        "AI Chat Assistant",
		Description: "AI customer support interface with OpenRouter integration, prompt control, and operational dashboards.",
		URL:         "https://ai.safasfly.dev",
		Frontend:    []string{"React", "TypeScript", "Tailwind CSS"},
		Backend:     []string{"Go", "MariaDB", "Docker"},
		Featured:    true,
	},
	{
		ID:          "booking-site",
		Name:        "Booking Funnel Website",
		Description: "Lead-focused business website with qualification forms, booking flow, and analytics instrumentation.",
		URL:         "https://www.safasfly.dev",
		Frontend:    []string{"React", "TypeScript", "Vite"},
		Backend:     []string{"Hono", "SQLite", "Docker"},
		Featured:    false,
	},
}

var seedOffers = []domain.OfferPackage{
	{
		ID:          "starter-site",
		Name:        "Starter Website",
		Description: "For local businesses that need a professional online presence quickly.",
		PriceFrom:   "EUR 1,250",
		Timeline:    "7 days",
		Revisions:   "2 revision rounds",
		Hosting:     "Managed hosting optional from EUR 99/month",
		Includes:    []string{"Up to 5 pages", "Mobile-first design", "Contact form setup", "Basic SEO setup"},
		Featured:    true,
		SortOrder:   1,
	},
	{
		ID:          "growth-funnel",
		Name:        "Growth Funnel Build",
		Description: "For teams that need lead capture, analytics, and conversion-focused pages.",
		PriceFrom:   "EUR 2,800",
		Timeline:    "10-14 days",
		Revisions:   "3 revision rounds",
		Hosting:     "Managed hosting and monitoring included first month",
		Includes:    []string{"Landing pages + funnels", "Qualification form", "Calendar integration", "Event tracking"},
		Featured:    true,
		SortOrder:   2,
	},
	{
		ID:          "custom-app",
		Name:        "Custom Web App",
		Description: "For custom business logic, portals, or internal tooling with full-stack delivery.",
		PriceFrom:   "EUR 4,500",
		Timeline:    "3-6 weeks",
		Revisions:   "Milestone-based scope reviews",
		Hosting:     "Cloud deployment and maintenance available",
		Includes:    []string{"Frontend + backend", "Database design", "Auth/session setup", "Deployment pipeline"},
		Featured:    false,
		SortOrder:   3,
	},
}

var seedRetainers = []domain.RetainerPlan{
	{
		ID:              "retainer-core",
		Name:            "Core Retainer",
		HoursPerMonth:   10,
		Price:           "EUR 750/month",
		HostingIncluded: true,
		SupportSLA:      "Response within 1 business day",
		Includes:        []string{"Bug fixes", "Content updates", "Security patching", "Hosting + backups"},
		SortOrder:       1,
	},
	{
		ID:              "retainer-growth",
		Name:            "Growth Retainer",
		HoursPerMonth:   20,
		Price:           "EUR 1,450/month",
		HostingIncluded: true,
		SupportSLA:      "Response within 12 hours",
		Includes:        []string{"Feature delivery", "A/B iterations", "Performance monitoring", "Monthly strategy call"},
		SortOrder:       2,
	},
	{
		ID:              "retainer-priority",
		Name:            "Priority Retainer",
		HoursPerMonth:   35,
		Price:           "EUR 2,450/month",
		HostingIncluded: true,
		SupportSLA:      "Same-day response",
		Includes:        []string{"Priority queue", "Continuous delivery", "Incident support", "Dedicated roadmap execution"},
		SortOrder:       3,
	},
}

var seedCaseStudies = []domain.CaseStudy{
	{
		ID:                "saas-onboarding",
		Title:             "SaaS Onboarding Funnel Rebuild",
		ClientName:        "B2B SaaS Startup",
		Industry:          "SaaS",
		Challenge:         "Their trial signup flow dropped users before activation due to unclear onboarding and slow page loads.",
		Solution:          "Rebuilt the onboarding funnel with faster UI, event tracking, and clearer conversion copy.",
		Outcome:           "Trial-to-activation rate improved by 31% in 6 weeks.",
		TestimonialQuote:  "Lars moved fast and shipped with zero drama. We saw measurable gains quickly.",
		TestimonialAuthor: "Founder, B2B SaaS Startup",
		ProjectURL:        "https://www.safasfly.dev",
		Featured:          true,
	},
	{
		ID:                "local-business-bookings",
		Title:             "Local Service Booking Website",
		ClientName:        "Regional Service Business",
		Industry:          "Local Services",
		Challenge:         "Website looked outdated and generated inconsistent lead quality.",
		Solution:          "Built a new website with qualification forms, booking CTA, and trust signals.",
		Outcome:           "Qualified lead volume increased by 2.1x in the first month.",
		TestimonialQuote:  "Communication was direct and the website paid for itself quickly.",
		TestimonialAuthor: "Owner, Regional Service Business",
		ProjectURL:        "https://www.safasfly.dev",
		Featured:          true,
	},
}

var seedServicePages = []domain.ServiceLandingPage{
	{
		ID:             "service-local-business-nl",
		Slug:           "website-development-for-local-businesses-netherlands",
		Title:          "Website Development for Local Businesses (Netherlands)",
		Audience:       "Local businesses",
		City:           "Netherlands",
		Summary:        "Fast, conversion-first websites for local businesses that need more calls and bookings.",
		Offer:          "Launch-ready site in 7-14 days with managed hosting options.",
		SEODescription: "Freelance website developer in the Netherlands for local businesses.",
		CTALabel:       "Book a strategy call",
	},
	{
		ID:             "service-saas-conversion",
		Slug:           "saas-conversion-landing-pages",
		Title:          "SaaS Conversion Landing Pages",
		Audience:       "SaaS teams",
		City:           "Remote",
		Summary:        "Landing pages and onboarding funnels focused on activation and trial conversion.",
		Offer:          "Instrumented pages with analytics, tracking, and rapid iteration workflow.",
		SEODescription: "Freelance SaaS landing page developer for conversion optimization.",
		CTALabel:       "Discuss your funnel",
	},
	{
		ID:             "service-maintenance-hosting",
		Slug:           "ongoing-website-maintenance-and-hosting",
		Title:          "Ongoing Website Maintenance and Hosting",
		Audience:       "Growing businesses",
		City:           "Remote",
		Summary:        "Keep your site secure, up-to-date, and monitored with a single monthly plan.",
		Offer:          "Backups, SSL, uptime monitoring, incident response, and content updates.",
		SEODescription: "Managed website maintenance and hosting for business websites.",
		CTALabel:       "See retainer plans",
	},
}

var seedBlogPosts = []domain.BlogPost{
	{
		ID:          "website-cost-2026",
		Slug:        "how-much-does-a-business-website-cost-2026",
		Title:       "How Much Does a Business Website Cost in 2026?",
		Excerpt:     "A practical breakdown of website pricing, hidden costs, and how to budget for delivery and hosting.",
		Body:        "A business website budget should separate one-time build costs from recurring hosting and maintenance. The biggest pricing drivers are scope, integrations, and turnaround speed. For many service businesses, a focused website with clear conversion paths beats a bloated build.",
		Category:    "Pricing",
		ReadTime:    "6 min read",
		PublishedAt: "2026-01-20T09:00:00Z",
	},
	{
		ID:          "retainer-vs-one-off",
		Slug:        "retainer-vs-one-off-web-development",
		Title:       "Retainer vs One-Off Development: Which Fits Your Business?",
		Excerpt:     "When to buy fixed-scope projects and when a monthly development retainer gives better outcomes.",
		Body:        "If your roadmap changes monthly, retainers reduce friction and keep momentum. For clear, finite goals, one-off delivery can be more cost-effective. Most growing businesses use a hybrid: project launch first, then a maintenance or growth retainer.",
		Category:    "Strategy",
		ReadTime:    "5 min read",
		PublishedAt: "2026-01-27T09:00:00Z",
	},
	{
		ID:          "speed-matters-leads",
		Slug:        "why-site-speed-still-drives-lead-conversion",
		Title:       "Why Site Speed Still Drives Lead Conversion",
		Excerpt:     "Slow landing pages lose buyers before your offer is even seen. Here is how to fix it.",
		Body:        "Performance affects trust and action. A fast first impression keeps users engaged long enough to evaluate your offer. Prioritize image optimization, script discipline, and measured third-party usage to preserve conversion rates.",
		Category:    "Performance",
		ReadTime:    "4 min read",
		PublishedAt: "2026-02-03T09:00:00Z",
	},
}

func (r *Repository) tableEmpty(table string) (bool, error) {
	var count int64
	if err := r.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count %s rows: %w", table, err)
	}
	return count == 0, nil
}

func (r *Repository) seedContent() error {
	now := nowISO()

	empty, err := r.tableEmpty("site_profile")
	if err != nil {
		return err
	}
	if empty {
		p := seedProfile
		_, err := r.db.Exec(`
			INSERT INTO site_profile (id, name, gamertag, title, bio, location, email, niche_offer, response_sla, availability, booking_url, hourly_rate_from, monthly_hosting_from, updated_at)
			VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.Name, p.Gamertag, p.Title, p.Bio, p.Location, p.Email, p.NicheOffer,
			p.ResponseSLA, p.Availability, p.BookingURL, p.HourlyRateFrom,
			p.MonthlyHostingFrom, now)
		if err != nil {
			return fmt.Errorf("failed to seed site profile: %w", err)
		}
	}

	empty, err = r.tableEmpty("social_links")
	if err != nil {
		return err
	}
	if empty {
		for _, link := range seedSocials {
			_, err := r.db.Exec(`
				INSERT INTO social_links (platform, url, icon, sort_order) VALUES (?, ?, ?, ?)
			`, link.Platform, link.URL, link.Icon, link.SortOrder)
			if err != nil {
				return fmt.Errorf("failed to seed social link %s: %w", link.Platform, err)
			}
		}
	}

	empty, err = r.tableEmpty("projects")
	if err != nil {
		return err
	}
	if empty {
		for _, p := range seedProjects {
			_, err := r.db.Exec(`
				INSERT INTO projects (id, name, description, url, frontend, backend, featured, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, p.ID, p.Name, p.Description, p.URL,
				marshalStringArray(p.Frontend), marshalStringArray(p.Backend),
				boolToInt(p.Featured), now, now)
			if err != nil {
				return fmt.Errorf("failed to seed project %s: %w", p.ID, err)
			}
		}
	}

	empty, err = r.tableEmpty("offers")
	if err != nil {
		return err
	}
	if empty {
		for _, o := range seedOffers {
			_, err := r.db.Exec(`
				INSERT INTO offers (id, name, description, price_from, timeline, revisions, hosting, includes, featured, sort_order, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, o.ID, o.Name, o.Description, o.PriceFrom, o.Timeline, o.Revisions,
				o.Hosting, marshalStringArray(o.Includes), boolToInt(o.Featured),
				o.SortOrder, now)
			if err != nil {
				return fmt.Errorf("failed to seed offer %s: %w", o.ID, err)
			}
		}
	}

	empty, err = r.tableEmpty("retainer_plans")
	if err != nil {
		return err
	}
	if empty {
		for _, plan := range seedRetainers {
			_, err := r.db.Exec(`
				INSERT INTO retainer_plans (id, name, hours_per_month, price, hosting_included, support_sla, includes, sort_order, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, plan.ID, plan.Name, plan.HoursPerMonth, plan.Price,
				boolToInt(plan.HostingIncluded), plan.SupportSLA,
				marshalStringArray(plan.Includes), plan.SortOrder, now)
			if err != nil {
				return fmt.Errorf("failed to seed retainer %s: %w", plan.ID, err)
			}
		}
	}

	empty, err = r.tableEmpty("case_studies")
	if err != nil {
		return err
	}
	if empty {
		for _, cs := range seedCaseStudies {
			_, err := r.db.Exec(`
				INSERT INTO case_studies (id, title, client_name, industry, challenge, solution, outcome, testimonial_quote, testimonial_author, project_url, featured, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, cs.ID, cs.Title, cs.ClientName, cs.Industry, cs.Challenge,
				cs.Solution, cs.Outcome, cs.TestimonialQuote, cs.TestimonialAuthor,
				cs.ProjectURL, boolToInt(cs.Featured), now)
			if err != nil {
				return fmt.Errorf("failed to seed case study %s: %w", cs.ID, err)
			}
		}
	}

	empty, err = r.tableEmpty("service_pages")
	if err != nil {
		return err
	}
	if empty {
		for _, sp := range seedServicePages {
			_, err := r.db.Exec(`
				INSERT INTO service_pages (id, slug, title, audience, city, summary, offer, seo_description, cta_label, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, sp.ID, sp.Slug, sp.Title, sp.Audience, sp.City, sp.Summary,
				sp.Offer, sp.SEODescription, sp.CTALabel, now)
			if err != nil {
				return fmt.Errorf("failed to seed service page %s: %w", sp.ID, err)
			}
		}
	}

	empty, err = r.tableEmpty("blog_posts")
	if err != nil {
		return err
	}
	if empty {
		for _, bp := range seedBlogPosts {
			_, err := r.db.Exec(`
				INSERT INTO blog_posts (id, slug, title, excerpt, body, category, read_time, published_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, bp.ID, bp.Slug, bp.Title, bp.Excerpt, bp.Body, bp.Category,
				bp.ReadTime, bp.PublishedAt, now)
			if err != nil {
				return fmt.Errorf("failed to seed blog post %s: %w", bp.ID, err)
			}
		}
	}

	return nil
}

// upsertSeedAdmin creates or rotates the admin credential from the
// environment. A no-op unless both email and password are configured, so
// a restart without credentials never locks anyone out.
func (r *Repository) upsertSeedAdmin(email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	res, err := r.db.Exec(`UPDATE admins SET password_hash = ? WHERE email = ?`, hash, email)
	if err != nil {
		return fmt.Errorf("failed to update admin credential: %w", err)
	}

	changed, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if changed > 0 {
		return nil
	}

	_, err = r.db.Exec(`
		INSERT INTO admins (email, password_hash, created_at) VALUES (?, ?, ?)
	`, email, hash, nowISO())
	if err != nil {
		return fmt.Errorf("failed to insert admin credential: %w", err)
	}

	return nil
}
