package domain

// Project is a portfolio entry. Frontend and Backend are ordered tech
// stacks stored as JSON arrays in a single column each.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Frontend    []string `json:"frontend" yaml:"frontend"`
	Backend     []string `json:"backend" yaml:"backend"`
	Featured    bool     `json:"featured" yaml:"featured"`
	CreatedAt   string   `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   string   `json:"updatedAt" yaml:"updatedAt"`
}

// OfferPackage is a fixed-scope productized service offer.
type OfferPackage struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	PriceFrom   string   `json:"priceFrom" yaml:"priceFrom"`
	Timeline    string   `json:"timeline" yaml:"timeline"`
	Revisions   string   `json:"revisions" yaml:"revisions"`
	Hosting     string   `json:"hosting" yaml:"hosting"`
	Includes    []string `json:"includes" yaml:"includes"`
	Featured    bool     `json:"featured" yaml:"featured"`
	SortOrder   int      `json:"sortOrder" yaml:"sortOrder"`
	UpdatedAt   string   `json:"updatedAt" yaml:"updatedAt"`
}

// RetainerPlan is a recurring monthly engagement tier.
type RetainerPlan struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	HoursPerMonth   int      `json:"hoursPerMonth" yaml:"hoursPerMonth"`
	Price           string   `json:"price" yaml:"price"`
	HostingIncluded bool     `json:"hostingIncluded" yaml:"hostingIncluded"`
	SupportSLA      string   `json:"supportSla" yaml:"supportSla"`
	Includes        []string `json:"includes" yaml:"includes"`
	SortOrder       int      `json:"sortOrder" yaml:"sortOrder"`
	UpdatedAt       string   `json:"updatedAt" yaml:"updatedAt"`
}

// CaseStudy is a client success story with testimonial.
type CaseStudy struct {
	ID                string `json:"id" yaml:"id"`
	Title             string `json:"title" yaml:"title"`
	ClientName        string `json:"clientName" yaml:"clientName"`
	Industry          string `json:"industry" yaml:"industry"`
	Challenge         string `json:"challenge" yaml:"challenge"`
	Solution          string `json:"solution" yaml:"solution"`
	Outcome           string `json:"outcome" yaml:"outcome"`
	TestimonialQuote  string `json:"testimonialQuote" yaml:"testimonialQuote"`
	TestimonialAuthor string `json:"testimonialAuthor" yaml:"testimonialAuthor"`
	ProjectURL        string `json:"projectUrl" yaml:"projectUrl"`
	Featured          bool   `json:"featured" yaml:"featured"`
	UpdatedAt         string `json:"updatedAt" yaml:"updatedAt"`
}

// ServiceLandingPage is an SEO landing page targeting one audience/location.
type ServiceLandingPage struct {
	ID             string `json:"id" yaml:"id"`
	Slug           string `json:"slug" yaml:"slug"`
	Title          string `json:"title" yaml:"title"`
	Audience       string `json:"audience" yaml:"audience"`
	City           string `json:"city" yaml:"city"`
	Summary        string `json:"summary" yaml:"summary"`
	Offer          string `json:"offer" yaml:"offer"`
	SEODescription string `json:"seoDescription" yaml:"seoDescription"`
	CTALabel       string `json:"ctaLabel" yaml:"ctaLabel"`
	UpdatedAt      string `json:"updatedAt" yaml:"updatedAt"`
}

// BlogPost is a published article.
type BlogPost struct {
	ID          string `json:"id" yaml:"id"`
	Slug        string `json:"slug" yaml:"slug"`
	Title       string `json:"title" yaml:"title"`
	Excerpt     string `json:"excerpt" yaml:"excerpt"`
	Body        string `json:"body" yaml:"body"`
	Category    string `json:"category" yaml:"category"`
	ReadTime    string `json:"readTime" yaml:"readTime"`
	PublishedAt string `json:"publishedAt" yaml:"publishedAt"`
	UpdatedAt   string `json:"updatedAt" yaml:"updatedAt"`
}
