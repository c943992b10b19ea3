package domain

// SiteBundle is the full public content payload served in one response so
// the marketing frontend can render without request waterfalls. It is also
// the shape used by the admin export endpoints.
type SiteBundle struct {
	Profile      SiteProfile          `json:"profile" yaml:"profile"`
	Socials      []SocialLink         `json:"socials" yaml:"socials"`
	Projects     []Project            `json:"projects" yaml:"projects"`
	Offers       []OfferPackage       `json:"offers" yaml:"offers"`
	Retainers    []RetainerPlan       `json:"retainers" yaml:"retainers"`
	CaseStudies  []CaseStudy          `json:"caseStudies" yaml:"caseStudies"`
	ServicePages []ServiceLandingPage `json:"servicePages" yaml:"servicePages"`
	BlogPosts    []BlogPost           `json:"blogPosts" yaml:"blogPosts"`
}
