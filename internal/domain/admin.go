package domain

// AdminUser identifies an authenticated admin. The password hash never
// leaves the repository layer.
type AdminUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// AdminSession is the result of a successful login: an opaque bearer token
// tied to an admin, valid until ExpiresAt.
type AdminSession struct {
	Token     string    `json:"token"`
	User      AdminUser `json:"user"`
	ExpiresAt string    `json:"expiresAt"`
}

// DashboardStats are the headline counts shown on the admin dashboard.
// OpenContacts excludes archived requests.
type DashboardStats struct {
	TotalProjects    int64 `json:"totalProjects"`
	TotalOffers      int64 `json:"totalOffers"`
	TotalRetainers   int64 `json:"totalRetainers"`
	TotalCaseStudies int64 `json:"totalCaseStudies"`
	OpenContacts     int64 `json:"openContacts"`
	TotalLeads       int64 `json:"totalLeads"`
}
