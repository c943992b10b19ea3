package handler

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"portfolio/internal/domain"
)

// Request payload parsing and validation. Every inbound string is trimmed
// and length-capped before it reaches storage; entity ids are always
// slugs derived from the payload.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func sanitizeString(value string, maxLength int) string {
	value = strings.TrimSpace(value)
	if len(value) > maxLength {
		// Back up to a rune boundary so the cap never leaves a split
		// multibyte character behind.
		cut := maxLength
		for cut > 0 && !utf8.RuneStart(value[cut]) {
			cut--
		}
		value = value[:cut]
	}
	return value
}

func isValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

func isValidHTTPURL(value string) bool {
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// toSlug lowercases value and collapses runs of non-alphanumerics into
// single hyphens.
func toSlug(value string, maxLength int) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = slugStrip.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	if len(value) > maxLength {
		value = strings.Trim(value[:maxLength], "-")
	}
	return value
}

// stringList accepts either a JSON array of strings or a single
// comma-separated string, so admin UIs can submit whichever is handy.
type stringList []string

func (s *stringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = arr
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = strings.Split(single, ",")
		return nil
	}

	// Wrong type is treated as empty; required-field checks reject it.
	*s = nil
	return nil
}

// cleanList trims items, drops empties, and caps the list length.
func cleanList(items []string, maxItems, maxItemLength int) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = sanitizeString(item, maxItemLength)
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == maxItems {
			break
		}
	}
	return out
}

// ----------------------------------------------------------------------------
// Entity payloads
// ----------------------------------------------------------------------------

type projectPayload struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Frontend    stringList `json:"frontend"`
	Backend     stringList `json:"backend"`
	Featured    bool       `json:"featured"`
}

// validate returns the cleaned project, or nil if required fields are
// missing or malformed. An explicit id wins; otherwise one is derived
// from the name.
func (p *projectPayload) validate() *domain.Project {
	id := toSlug(sanitizeString(p.ID, 120), 60)
	if id == "" {
		id = toSlug(sanitizeString(p.Name, 120), 60)
	}
	name := sanitizeString(p.Name, 120)
	description := sanitizeString(p.Description, 2000)
	rawURL := sanitizeString(p.URL, 512)
	frontend := cleanList(p.Frontend, 30, 120)
	backend := cleanList(p.Backend, 30, 120)

	if id == "" || name == "" || description == "" || rawURL == "" ||
		!isValidHTTPURL(rawURL) || len(frontend) == 0 || len(backend) == 0 {
		return nil
	}

	return &domain.Project{
		ID:          id,
		Name:        name,
		Description: description,
		URL:         rawURL,
		Frontend:    frontend,
		Backend:     backend,
		Featured:    p.Featured,
	}
}

type offerPayload struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	PriceFrom   string     `json:"priceFrom"`
	Timeline    string     `json:"timeline"`
	Revisions   string     `json:"revisions"`
	Hosting     string     `json:"hosting"`
	Includes    stringList `json:"includes"`
	Featured    bool       `json:"featured"`
	SortOrder   int        `json:"sortOrder"`
}

func (p *offerPayload) validate() *domain.OfferPackage {
	id := toSlug(sanitizeString(p.ID, 120), 60)
	if id == "" {
		id = toSlug(sanitizeString(p.Name, 120), 60)
	}
	name := sanitizeString(p.Name, 120)
	description := sanitizeString(p.Description, 1200)
	priceFrom := sanitizeString(p.PriceFrom, 120)
	timeline := sanitizeString(p.Timeline, 120)
	revisions := sanitizeString(p.Revisions, 120)
	hosting := sanitizeString(p.Hosting, 220)
	includes := cleanList(p.Includes, 40, 160)

	if id == "" || name == "" || description == "" || priceFrom == "" ||
		timeline == "" || revisions == "" || hosting == "" || len(includes) == 0 {
		return nil
	}

	return &domain.OfferPackage{
		ID:          id,
		Name:        name,
		Description: description,
		PriceFrom:   priceFrom,
		Timeline:    timeline,
		Revisions:   revisions,
		Hosting:     hosting,
		Includes:    includes,
		Featured:    p.Featured,
		SortOrder:   p.SortOrder,
	}
}

type retainerPayload struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	HoursPerMonth   int        `json:"hoursPerMonth"`
	Price           string     `json:"price"`
	HostingIncluded *bool      `json:"hostingIncluded"`
	SupportSLA      string     `json:"supportSla"`
	Includes        stringList `json:"includes"`
	SortOrder       int        `json:"sortOrder"`
}

func (p *retainerPayload) validate() *domain.RetainerPlan {
	id := toSlug(sanitizeString(p.ID, 120), 60)
	if id == "" {
		id = toSlug(sanitizeString(p.Name, 120), 60)
	}
	name := sanitizeString(p.Name, 120)
	price := sanitizeString(p.Price, 120)
	supportSLA := sanitizeString(p.SupportSLA, 160)
	includes := cleanList(p.Includes, 40, 160)

	hours := p.HoursPerMonth
	if hours < 1 {
		hours = 1
	}

	// Hosting defaults to included when the field is absent.
	hostingIncluded := true
	if p.HostingIncluded != nil {
		hostingIncluded = *p.HostingIncluded
	}

	if id == "" || name == "" || price == "" || supportSLA == "" || len(includes) == 0 {
		return nil
	}

	return &domain.RetainerPlan{
		ID:              id,
		Name:            name,
		HoursPerMonth:   hours,
		Price:           price,
		HostingIncluded: hostingIncluded,
		SupportSLA:      supportSLA,
		Includes:        includes,
		SortOrder:       p.SortOrder,
	}
}

type caseStudyPayload struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	ClientName        string `json:"clientName"`
	Industry          string `json:"industry"`
	Challenge         string `json:"challenge"`
	Solution          string `json:"solution"`
	Outcome           string `json:"outcome"`
	TestimonialQuote  string `json:"testimonialQuote"`
	TestimonialAuthor string `json:"testimonialAuthor"`
	ProjectURL        string `json:"projectUrl"`
	Featured          bool   `json:"featured"`
}

func (p *caseStudyPayload) validate() *domain.CaseStudy {
	id := toSlug(sanitizeString(p.ID, 120), 60)
	if id == "" {
		id = toSlug(sanitizeString(p.Title, 120), 60)
	}

	cs := &domain.CaseStudy{
		ID:                id,
		Title:             sanitizeString(p.Title, 180),
		ClientName:        sanitizeString(p.ClientName, 180),
		Industry:          sanitizeString(p.Industry, 120),
		Challenge:         sanitizeString(p.Challenge, 2400),
		Solution:          sanitizeString(p.Solution, 2400),
		Outcome:           sanitizeString(p.Outcome, 1200),
		TestimonialQuote:  sanitizeString(p.TestimonialQuote, 1200),
		TestimonialAuthor: sanitizeString(p.TestimonialAuthor, 180),
		ProjectURL:        sanitizeString(p.ProjectURL, 512),
		Featured:          p.Featured,
	}

	if cs.ID == "" || cs.Title == "" || cs.ClientName == "" || cs.Industry == "" ||
		cs.Challenge == "" || cs.Solution == "" || cs.Outcome == "" ||
		cs.TestimonialQuote == "" || cs.TestimonialAuthor == "" ||
		cs.ProjectURL == "" || !isValidHTTPURL(cs.ProjectURL) {
		return nil
	}

	return cs
}

type servicePagePayload struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	Audience       string `json:"audience"`
	City           string `json:"city"`
	Summary        string `json:"summary"`
	Offer          string `json:"offer"`
	SEODescription string `json:"seoDescription"`
	CTALabel       string `json:"ctaLabel"`
}

func (p *servicePagePayload) validate() *domain.ServiceLandingPage {
	id := toSlug(sanitizeString(p.ID, 120), 60)
	if id == "" {
		id = toSlug(sanitizeString(p.Title, 120), 60)
	}
	slug := toSlug(sanitizeString(p.Slug, 140), 120)
	if slug == "" {
		slug = toSlug(sanitizeString(p.Title, 140), 120)
	}

	sp := &domain.ServiceLandingPage{
		ID:             id,
		Slug:           slug,
		Title:          sanitizeString(p.Title, 180),
		Audience:       sanitizeString(p.Audience, 120),
		City:           sanitizeString(p.City, 120),
		Summary:        sanitizeString(p.Summary, 1200),
		Offer:          sanitizeString(p.Offer, 1200),
		SEODescription: sanitizeString(p.SEODescription, 280),
		CTALabel:       sanitizeString(p.CTALabel, 80),
	}

	if sp.ID == "" || sp.Slug == "" || sp.Title == "" || sp.Audience == "" ||
		sp.City == "" || sp.Summary == "" || sp.Offer == "" ||
		sp.SEODescription == "" || sp.CTALabel == "" {
		return nil
	}

	return sp
}

type blogPostPayload struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Body        string `json:"body"`
	Category    string `json:"category"`
	ReadTime    string `json:"readTime"`
	PublishedAt string `json:"publishedAt"`
}

// validate cleans the post. PublishedAt may come back empty; the admin
// handlers stamp the current time before saving so drafts can omit it.
func (p *blogPostPayload) validate() *domain.BlogPost {
	id := toSlug(sanitizeString(p.ID, 120), 60)
	if id == "" {
		id = toSlug(sanitizeString(p.Title, 120), 60)
	}
	slug := toSlug(sanitizeString(p.Slug, 140), 120)
	if slug == "" {
		slug = toSlug(sanitizeString(p.Title, 140), 120)
	}

	bp := &domain.BlogPost{
		ID:          id,
		Slug:        slug,
		Title:       sanitizeString(p.Title, 180),
		Excerpt:     sanitizeString(p.Excerpt, 320),
		Body:        sanitizeString(p.Body, 12000),
		Category:    sanitizeString(p.Category, 80),
		ReadTime:    sanitizeString(p.ReadTime, 80),
		PublishedAt: sanitizeString(p.PublishedAt, 80),
	}

	if bp.ID == "" || bp.Slug == "" || bp.Title == "" || bp.Excerpt == "" ||
		bp.Body == "" || bp.Category == "" || bp.ReadTime == "" {
		return nil
	}

	return bp
}

type profilePayload struct {
	Name               string `json:"name"`
	Gamertag           string `json:"gamertag"`
	Title              string `json:"title"`
	Bio                string `json:"bio"`
	Location           string `json:"location"`
	Email              string `json:"email"`
	NicheOffer         string `json:"nicheOffer"`
	ResponseSLA        string `json:"responseSla"`
	Availability       string `json:"availability"`
	BookingURL         string `json:"bookingUrl"`
	HourlyRateFrom     string `json:"hourlyRateFrom"`
	MonthlyHostingFrom string `json:"monthlyHostingFrom"`
}

// validate merges the payload over the current profile: empty fields keep
// their existing values, so partial updates are safe.
func (p *profilePayload) validate(current *domain.SiteProfile) *domain.SiteProfile {
	pick := func(value string, maxLength int, fallback string) string {
		if v := sanitizeString(value, maxLength); v != "" {
			return v
		}
		return fallback
	}

	merged := &domain.SiteProfile{
		Name:               pick(p.Name, 120, current.Name),
		Gamertag:           pick(p.Gamertag, 120, current.Gamertag),
		Title:              pick(p.Title, 180, current.Title),
		Bio:                pick(p.Bio, 3000, current.Bio),
		Location:           pick(p.Location, 120, current.Location),
		Email:              pick(strings.ToLower(p.Email), 254, current.Email),
		NicheOffer:         pick(p.NicheOffer, 500, current.NicheOffer),
		ResponseSLA:        pick(p.ResponseSLA, 180, current.ResponseSLA),
		Availability:       pick(p.Availability, 220, current.Availability),
		BookingURL:         pick(p.BookingURL, 512, current.BookingURL),
		HourlyRateFrom:     pick(p.HourlyRateFrom, 120, current.HourlyRateFrom),
		MonthlyHostingFrom: pick(p.MonthlyHostingFrom, 120, current.MonthlyHostingFrom),
	}

	if !isValidEmail(merged.Email) || !isValidHTTPURL(merged.BookingURL) {
		return nil
	}

	return merged
}

type socialsPayload struct {
	Items []socialItemPayload `json:"items"`
}

type socialItemPayload struct {
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sortOrder"`
}

// validate drops invalid entries and returns nil when nothing survives.
func (p *socialsPayload) validate() []domain.SocialLink {
	socials := make([]domain.SocialLink, 0, len(p.Items))
	for i, item := range p.Items {
		platform := sanitizeString(item.Platform, 120)
		rawURL := sanitizeString(item.URL, 512)
		icon := sanitizeString(item.Icon, 60)
		sortOrder := item.SortOrder
		if sortOrder == 0 {
			sortOrder = i + 1
		}

		if platform == "" || rawURL == "" || icon == "" || !isValidHTTPURL(rawURL) {
			continue
		}

		socials = append(socials, domain.SocialLink{
			Platform:  platform,
			URL:       rawURL,
			Icon:      icon,
			SortOrder: sortOrder,
		})
	}

	if len(socials) == 0 {
		return nil
	}
	return socials
}

type contactPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	BudgetRange string `json:"budgetRange"`
	Timeline    string `json:"timeline"`
	ProjectType string `json:"projectType"`
	Source      string `json:"source"`
}

func (p *contactPayload) validate() *domain.ContactRequest {
	cr := &domain.ContactRequest{
		Name:        sanitizeString(p.Name, 120),
		Email:       strings.ToLower(sanitizeString(p.Email, 254)),
		Subject:     sanitizeString(p.Subject, 180),
		Message:     sanitizeString(p.Message, 5000),
		BudgetRange: sanitizeString(p.BudgetRange, 120),
		Timeline:    sanitizeString(p.Timeline, 120),
		ProjectType: sanitizeString(p.ProjectType, 120),
		Source:      sanitizeString(p.Source, 120),
	}

	if cr.Name == "" || cr.Email == "" || cr.Subject == "" || cr.Message == "" || !isValidEmail(cr.Email) {
		return nil
	}

	return cr
}

type leadPayload struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Website string `json:"website"`
	UseCase string `json:"useCase"`
}

func (p *leadPayload) validate() *domain.LeadCapture {
	lc := &domain.LeadCapture{
		Email:   strings.ToLower(sanitizeString(p.Email, 254)),
		Name:    sanitizeString(p.Name, 120),
		Company: sanitizeString(p.Company, 120),
		Website: sanitizeString(p.Website, 255),
		UseCase: sanitizeString(p.UseCase, 500),
	}

	if lc.Email == "" || !isValidEmail(lc.Email) {
		return nil
	}

	return lc
}

type analyticsPayload struct {
	EventName string         `json:"eventName"`
	Path      string         `json:"path"`
	Metadata  map[string]any `json:"metadata"`
}

func (p *analyticsPayload) validate() bool {
	p.EventName = sanitizeString(p.EventName, 120)
	p.Path = sanitizeString(p.Path, 512)
	return p.EventName != "" && p.Path != ""
}
