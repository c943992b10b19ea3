package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"portfolio/internal/auth"
	"portfolio/internal/codec"
	"portfolio/internal/hub"
	"portfolio/internal/mailer"
	"portfolio/internal/repository"
)

// Handler serves the public, auth, and admin API
type Handler struct {
	repo       repository.Repository
	mail       *mailer.Mailer
	events     *hub.Hub
	jsonExport codec.Exporter
	yamlExport codec.Exporter
}

// New creates a handler over the repository and mailer
func New(repo repository.Repository, mail *mailer.Mailer) *Handler {
	return &Handler{
		repo:       repo,
		mail:       mail,
		jsonExport: codec.NewJSONCodec(),
		yamlExport: codec.NewYAMLCodec(),
	}
}

// SetEventHub enables live admin event streaming. Without a hub the
// broadcast calls are no-ops.
func (h *Handler) SetEventHub(events *hub.Hub) {
	h.events = events
}

func (h *Handler) broadcast(eventType hub.EventType, payload any) {
	if h.events == nil {
		return
	}
	h.events.Broadcast(hub.Event{Type: eventType, Payload: payload})
}

// Error response structure
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, ErrorResponse{Error: message}, status)
}

type contextKey string

const (
	adminContextKey contextKey = "admin"
	tokenContextKey contextKey = "sessionToken"
)

// sessionToken pulls the opaque token from the request headers.
// X-Session-Token wins over the Authorization bearer value. A token query
// parameter is the fallback for EventSource clients, which cannot set
// headers.
func sessionToken(r *http.Request) string {
	if token := auth.ExtractSessionToken(r.Header.Get("Authorization"), r.Header.Get("X-Session-Token")); token != "" {
		return token
	}
	return r.URL.Query().Get("token")
}

// RequireAdmin rejects requests without a valid admin session and places
// the resolved admin and token on the request context.
func (h *Handler) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			h.writeError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		admin, err := h.repo.AdminBySessionToken(r.Context(), token)
		if err != nil {
			log.Printf("Failed to resolve session: %v", err)
			h.writeError(w, "Failed to verify session", http.StatusInternalServerError)
			return
		}
		if admin == nil {
			h.writeError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, admin)
		ctx = context.WithValue(ctx, tokenContextKey, token)
		next(w, r.WithContext(ctx))
	}
}

// Register wires every API route onto mux. Admin routes are wrapped with
// RequireAdmin here so no protected endpoint can be registered bare.
func (h *Handler) Register(mux *http.ServeMux) {
	// Public content
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/site", h.GetSiteBundle)
	mux.HandleFunc("GET /api/about", h.GetAbout)
	mux.HandleFunc("GET /api/socials", h.ListSocials)
	mux.HandleFunc("GET /api/projects", h.ListProjects)
	mux.HandleFunc("GET /api/projects/{id}", h.GetProject)
	mux.HandleFunc("GET /api/offers", h.ListOffers)
	mux.HandleFunc("GET /api/retainers", h.ListRetainers)
	mux.HandleFunc("GET /api/case-studies", h.ListCaseStudies)
	mux.HandleFunc("GET /api/service-pages", h.ListServicePages)
	mux.HandleFunc("GET /api/blog-posts", h.ListBlogPosts)

	// Public intake
	mux.HandleFunc("POST /api/contact", h.SubmitContact)
	mux.HandleFunc("POST /api/leads", h.SubmitLead)
	mux.HandleFunc("POST /api/analytics/event", h.RecordAnalyticsEvent)

	// Auth
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/staging-unlock", h.StagingUnlock)
	mux.HandleFunc("POST /api/auth/logout", h.RequireAdmin(h.Logout))
	mux.HandleFunc("GET /api/auth/me", h.RequireAdmin(h.Me))

	// Admin
	mux.HandleFunc("GET /api/admin/dashboard", h.RequireAdmin(h.AdminDashboard))
	mux.HandleFunc("GET /api/admin/profile", h.RequireAdmin(h.AdminGetProfile))
	mux.HandleFunc("PUT /api/admin/profile", h.RequireAdmin(h.AdminUpdateProfile))
	mux.HandleFunc("GET /api/admin/socials", h.RequireAdmin(h.AdminListSocials))
	mux.HandleFunc("PUT /api/admin/socials", h.RequireAdmin(h.AdminReplaceSocials))

	mux.HandleFunc("GET /api/admin/projects", h.RequireAdmin(h.AdminListProjects))
	mux.HandleFunc("POST /api/admin/projects", h.RequireAdmin(h.AdminCreateProject))
	mux.HandleFunc("PUT /api/admin/projects/{id}", h.RequireAdmin(h.AdminUpdateProject))
	mux.HandleFunc("DELETE /api/admin/projects/{id}", h.RequireAdmin(h.AdminDeleteProject))

	mux.HandleFunc("GET /api/admin/offers", h.RequireAdmin(h.AdminListOffers))
	mux.HandleFunc("POST /api/admin/offers", h.RequireAdmin(h.AdminCreateOffer))
	mux.HandleFunc("PUT /api/admin/offers/{id}", h.RequireAdmin(h.AdminUpdateOffer))
	mux.HandleFunc("DELETE /api/admin/offers/{id}", h.RequireAdmin(h.AdminDeleteOffer))

	mux.HandleFunc("GET /api/admin/retainers", h.RequireAdmin(h.AdminListRetainers))
	mux.HandleFunc("POST /api/admin/retainers", h.RequireAdmin(h.AdminCreateRetainer))
	mux.HandleFunc("PUT /api/admin/retainers/{id}", h.RequireAdmin(h.AdminUpdateRetainer))
	mux.HandleFunc("DELETE /api/admin/retainers/{id}", h.RequireAdmin(h.AdminDeleteRetainer))

	mux.HandleFunc("GET /api/admin/case-studies", h.RequireAdmin(h.AdminListCaseStudies))
	mux.HandleFunc("POST /api/admin/case-studies", h.RequireAdmin(h.AdminCreateCaseStudy))
	mux.HandleFunc("PUT /api/admin/case-studies/{id}", h.RequireAdmin(h.AdminUpdateCaseStudy))
	mux.HandleFunc("DELETE /api/admin/case-studies/{id}", h.RequireAdmin(h.AdminDeleteCaseStudy))

	mux.HandleFunc("GET /api/admin/service-pages", h.RequireAdmin(h.AdminListServicePages))
	mux.HandleFunc("POST /api/admin/service-pages", h.RequireAdmin(h.AdminCreateServicePage))
	mux.HandleFunc("PUT /api/admin/service-pages/{id}", h.RequireAdmin(h.AdminUpdateServicePage))
	mux.HandleFunc("DELETE /api/admin/service-pages/{id}", h.RequireAdmin(h.AdminDeleteServicePage))

	mux.HandleFunc("GET /api/admin/blog-posts", h.RequireAdmin(h.AdminListBlogPosts))
	mux.HandleFunc("POST /api/admin/blog-posts", h.RequireAdmin(h.AdminCreateBlogPost))
	mux.HandleFunc("PUT /api/admin/blog-posts/{id}", h.RequireAdmin(h.AdminUpdateBlogPost))
	mux.HandleFunc("DELETE /api/admin/blog-posts/{id}", h.RequireAdmin(h.AdminDeleteBlogPost))

	mux.HandleFunc("GET /api/admin/contacts", h.RequireAdmin(h.AdminListContacts))
	mux.HandleFunc("PUT /api/admin/contacts/{id}/status", h.RequireAdmin(h.AdminUpdateContactStatus))
	mux.HandleFunc("GET /api/admin/leads", h.RequireAdmin(h.AdminListLeads))
	mux.HandleFunc("GET /api/admin/analytics/events", h.RequireAdmin(h.AdminListAnalyticsEvents))
	mux.HandleFunc("GET /api/admin/analytics/summary", h.RequireAdmin(h.AdminAnalyticsSummary))

	mux.HandleFunc("GET /api/admin/export/json", h.RequireAdmin(h.AdminExportJSON))
	mux.HandleFunc("GET /api/admin/export/yaml", h.RequireAdmin(h.AdminExportYAML))

	mux.HandleFunc("POST /api/admin/import/json", h.RequireAdmin(h.AdminImportJSON))
	mux.HandleFunc("POST /api/admin/import/yaml", h.RequireAdmin(h.AdminImportYAML))

	mux.HandleFunc("GET /api/admin/events", h.RequireAdmin(h.AdminEvents))
}
