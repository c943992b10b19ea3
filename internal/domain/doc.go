// Package domain defines the core domain types for the portfolio backend.
//
// This package contains the entities persisted by the repository: the site
// profile singleton, social links, the content collections (projects, offers,
// retainer plans, case studies, service landing pages, blog posts), the
// public intake records (contact requests, lead captures, analytics events),
// and the admin identity/session pair used for authentication.
//
// Timestamps are RFC 3339 UTC strings throughout. They are stamped by the
// repository on every write; callers never supply them.
package domain
