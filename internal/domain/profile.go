package domain

// SiteProfile is the singleton profile row backing the public about/site
// endpoints. Exactly one row exists (id fixed to 1 in storage).
type SiteProfile struct {
	Name               string `json:"name" yaml:"name"`
	Gamertag           string `json:"gamertag" yaml:"gamertag"`
	Title              string `json:"title" yaml:"title"`
	Bio                string `json:"bio" yaml:"bio"`
	Location           string `json:"location" yaml:"location"`
	Email              string `json:"email" yaml:"email"`
	NicheOffer         string `json:"nicheOffer" yaml:"nicheOffer"`
	ResponseSLA        string `json:"responseSla" yaml:"responseSla"`
	Availability       string `json:"availability" yaml:"availability"`
	BookingURL         string `json:"bookingUrl" yaml:"bookingUrl"`
	HourlyRateFrom     string `json:"hourlyRateFrom" yaml:"hourlyRateFrom"`
	MonthlyHostingFrom string `json:"monthlyHostingFrom" yaml:"monthlyHostingFrom"`
	UpdatedAt          string `json:"updatedAt" yaml:"updatedAt"`
}

// SocialLink is one entry in the ordered social-link list. The list is
// replaced wholesale (delete-all then insert-all) rather than edited row
// by row, so IDs are never stable across updates.
type SocialLink struct {
	ID        int64  `json:"id" yaml:"id"`
	Platform  string `json:"platform" yaml:"platform"`
	URL       string `json:"url" yaml:"url"`
	Icon      string `json:"icon" yaml:"icon"`
	SortOrder int    `json:"sortOrder" yaml:"sortOrder"`
}
