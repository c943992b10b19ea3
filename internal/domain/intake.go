package domain

// ContactStatus tracks the triage state of a contact request. Transitions
// are admin-driven; the public intake endpoint always creates "new".
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusInReview ContactStatus = "in_review"
	ContactStatusQuoted   ContactStatus = "quoted"
	ContactStatusClosed   ContactStatus = "closed"
	ContactStatusArchived ContactStatus = "archived"
)

// ValidContactStatus reports whether s is one of the known statuses.
func ValidContactStatus(s string) bool {
	switch ContactStatus(s) {
	case ContactStatusNew, ContactStatusInReview, ContactStatusQuoted,
		ContactStatusClosed, ContactStatusArchived:
		return true
	}
	return false
}

// ContactRequest is a message submitted through the public contact form,
// including the optional qualification fields added later (budget,
// timeline, project type, source).
type ContactRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	BudgetRange string `json:"budgetRange"`
	Timeline    string `json:"timeline"`
	ProjectType string `json:"projectType"`
	Source      string `json:"source"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// LeadCapture is a lighter-weight email signup from lead magnets.
type LeadCapture struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	Website   string `json:"website"`
	UseCase   string `json:"useCase"`
	CreatedAt string `json:"createdAt"`
}

// AnalyticsEvent is an append-only client-side event.
type AnalyticsEvent struct {
	ID        int64          `json:"id"`
	EventName string         `json:"eventName"`
	Path      string         `json:"path"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt string         `json:"createdAt"`
}

// EventCount pairs an event name with its occurrence count.
type EventCount struct {
	EventName string `json:"eventName"`
	Count     int64  `json:"count"`
}

// PathCount pairs a path with its occurrence count.
type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

// AnalyticsSummary aggregates the analytics table for the admin dashboard:
// total event count plus the ten most frequent event names and paths.
type AnalyticsSummary struct {
	TotalEvents int64        `json:"totalEvents"`
	ByEvent     []EventCount `json:"byEvent"`
	TopPaths    []PathCount  `json:"topPaths"`
}
