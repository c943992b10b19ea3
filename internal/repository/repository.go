package repository

import (
	"context"

	"portfolio/internal/domain"
)

// Repository is the single data-access surface used by the HTTP layer.
//
// Read-by-id and update operations return (nil, nil) when the target does
// not exist; delete operations report whether a row was removed. Errors
// are reserved for storage failures and invariant violations.
type Repository interface {
	// Site bundle and profile
	SiteBundle(ctx context.Context) (*domain.SiteBundle, error)
	ImportBundle(ctx context.Context, bundle *domain.SiteBundle) error
	Profile(ctx context.Context) (*domain.SiteProfile, error)
	UpdateProfile(ctx context.Context, p *domain.SiteProfile) (*domain.SiteProfile, error)

	// Social links (replace-all semantics)
	ListSocials(ctx context.Context) ([]domain.SocialLink, error)
	ReplaceSocials(ctx context.Context, items []domain.SocialLink) ([]domain.SocialLink, error)

	// Projects
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ProjectByID(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, p *domain.Project) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)

	// Offer packages
	ListOffers(ctx context.Context) ([]domain.OfferPackage, error)
	OfferByID(ctx context.Context, id string) (*domain.OfferPackage, error)
	CreateOffer(ctx context.Context, o *domain.OfferPackage) (*domain.OfferPackage, error)
	UpdateOffer(ctx context.Context, id string, o *domain.OfferPackage) (*domain.OfferPackage, error)
	DeleteOffer(ctx context.Context, id string) (bool, error)

	// Retainer plans
	ListRetainers(ctx context.Context) ([]domain.RetainerPlan, error)
	RetainerByID(ctx context.Context, id string) (*domain.RetainerPlan, error)
	CreateRetainer(ctx context.Context, r *domain.RetainerPlan) (*domain.RetainerPlan, error)
	UpdateRetainer(ctx context.Context, id string, r *domain.RetainerPlan) (*domain.RetainerPlan, error)
	DeleteRetainer(ctx context.Context, id string) (bool, error)

	// Case studies
	ListCaseStudies(ctx context.Context) ([]domain.CaseStudy, error)
	CaseStudyByID(ctx context.Context, id string) (*domain.CaseStudy, error)
	CreateCaseStudy(ctx context.Context, cs *domain.CaseStudy) (*domain.CaseStudy, error)
	UpdateCaseStudy(ctx context.Context, id string, cs *domain.CaseStudy) (*domain.CaseStudy, error)
	DeleteCaseStudy(ctx context.Context, id string) (bool, error)

	// Service landing pages
	ListServicePages(ctx context.Context) ([]domain.ServiceLandingPage, error)
	ServicePageByID(ctx context.Context, id string) (*domain.ServiceLandingPage, error)
	CreateServicePage(ctx context.Context, sp *domain.ServiceLandingPage) (*domain.ServiceLandingPage, error)
	UpdateServicePage(ctx context.Context, id string, sp *domain.ServiceLandingPage) (*domain.ServiceLandingPage, error)
	DeleteServicePage(ctx context.Context, id string) (bool, error)

	// Blog posts
	ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error)
	BlogPostByID(ctx context.Context, id string) (*domain.BlogPost, error)
	CreateBlogPost(ctx context.Context, bp *domain.BlogPost) (*domain.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id string, bp *domain.BlogPost) (*domain.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) (bool, error)

	// Contact requests
	CreateContactRequest(ctx context.Context, cr *domain.ContactRequest) (*domain.ContactRequest, error)
	ListContactRequests(ctx context.Context) ([]domain.ContactRequest, error)
	UpdateContactStatus(ctx context.Context, id int64, status string) (*domain.ContactRequest, error)

	// Lead captures
	CreateLeadCapture(ctx context.Context, lc *domain.LeadCapture) (*domain.LeadCapture, error)
	ListLeadCaptures(ctx context.Context) ([]domain.LeadCapture, error)

	// Analytics
	CreateAnalyticsEvent(ctx context.Context, eventName, path string, metadata map[string]any) error
	ListAnalyticsEvents(ctx context.Context, limit int) ([]domain.AnalyticsEvent, error)
	AnalyticsSummary(ctx context.Context) (*domain.AnalyticsSummary, error)

	// Admin auth
	VerifyAdminPassword(ctx context.Context, password string) (bool, error)
	LoginAdmin(ctx context.Context, email, password string) (*domain.AdminSession, error)
	AdminBySessionToken(ctx context.Context, token string) (*domain.AdminUser, error)
	RevokeAdminSession(ctx context.Context, token string) error

	// Admin dashboard
	AdminDashboard(ctx context.Context) (*domain.DashboardStats, error)

	// Close releases resources
	Close() error
}
