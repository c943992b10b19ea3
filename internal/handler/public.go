package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"portfolio/internal/hub"
)

// Health reports service liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// GetSiteBundle returns the complete public content payload
func (h *Handler) GetSiteBundle(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.repo.SiteBundle(r.Context())
	if err != nil {
		log.Printf("Failed to load site bundle: %v", err)
		h.writeError(w, "Failed to load site content", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, bundle, http.StatusOK)
}

// GetAbout returns the site profile
func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	profile, err := h.repo.Profile(r.Context())
	if err != nil || profile == nil {
		log.Printf("Failed to load profile: %v", err)
		h.writeError(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, profile, http.StatusOK)
}

// ListSocials returns the social links
func (h *Handler) ListSocials(w http.ResponseWriter, r *http.Request) {
	socials, err := h.repo.ListSocials(r.Context())
	if err != nil {
		log.Printf("Failed to list socials: %v", err)
		h.writeError(w, "Failed to load socials", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, socials, http.StatusOK)
}

// ListProjects returns all projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.ListProjects(r.Context())
	if err != nil {
		log.Printf("Failed to list projects: %v", err)
		h.writeError(w, "Failed to load projects", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, projects, http.StatusOK)
}

// GetProject returns a single project by id
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.repo.ProjectByID(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Printf("Failed to get project: %v", err)
		h.writeError(w, "Failed to load project", http.StatusInternalServerError)
		return
	}
	if project == nil {
		h.writeError(w, "Project not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, project, http.StatusOK)
}

// ListOffers returns all offer packages
func (h *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.repo.ListOffers(r.Context())
	if err != nil {
		log.Printf("Failed to list offers: %v", err)
		h.writeError(w, "Failed to load offers", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, offers, http.StatusOK)
}

// ListRetainers returns all retainer plans
func (h *Handler) ListRetainers(w http.ResponseWriter, r *http.Request) {
	retainers, err := h.repo.ListRetainers(r.Context())
	if err != nil {
		log.Printf("Failed to list retainers: %v", err)
		h.writeError(w, "Failed to load retainers", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, retainers, http.StatusOK)
}

// ListCaseStudies returns all case studies
func (h *Handler) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	studies, err := h.repo.ListCaseStudies(r.Context())
	if err != nil {
		log.Printf("Failed to list case studies: %v", err)
		h.writeError(w, "Failed to load case studies", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, studies, http.StatusOK)
}

// ListServicePages returns all service landing pages
func (h *Handler) ListServicePages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.repo.ListServicePages(r.Context())
	if err != nil {
		log.Printf("Failed to list service pages: %v", err)
		h.writeError(w, "Failed to load service pages", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, pages, http.StatusOK)
}

// ListBlogPosts returns all blog posts
func (h *Handler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.repo.ListBlogPosts(r.Context())
	if err != nil {
		log.Printf("Failed to list blog posts: %v", err)
		h.writeError(w, "Failed to load blog posts", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, posts, http.StatusOK)
}

// SubmitContact stores a contact form submission and sends a best-effort
// notification mail.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var payload contactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid contact request payload", http.StatusBadRequest)
		return
	}

	cr := payload.validate()
	if cr == nil {
		h.writeError(w, "Invalid contact request payload", http.StatusBadRequest)
		return
	}

	saved, err := h.repo.CreateContactRequest(r.Context(), cr)
	if err != nil {
		log.Printf("Failed to save contact request: %v", err)
		h.writeError(w, "Failed to send message", http.StatusInternalServerError)
		return
	}

	emailSent := h.mail.NotifyContactRequest(saved)
	h.broadcast(hub.EventContactReceived, saved)

	message := "Message received successfully"
	if emailSent {
		message = "Message sent successfully"
	}

	h.writeJSON(w, map[string]any{
		"success":   true,
		"requestId": saved.ID,
		"message":   message,
	}, http.StatusOK)
}

// SubmitLead stores a lead capture
func (h *Handler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var payload leadPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid lead payload", http.StatusBadRequest)
		return
	}

	lc := payload.validate()
	if lc == nil {
		h.writeError(w, "Invalid lead payload", http.StatusBadRequest)
		return
	}

	saved, err := h.repo.CreateLeadCapture(r.Context(), lc)
	if err != nil {
		log.Printf("Failed to save lead capture: %v", err)
		h.writeError(w, "Failed to capture lead", http.StatusInternalServerError)
		return
	}

	h.broadcast(hub.EventLeadCaptured, saved)
	h.writeJSON(w, map[string]any{"success": true, "leadId": saved.ID}, http.StatusOK)
}

// RecordAnalyticsEvent appends a client-side analytics event
func (h *Handler) RecordAnalyticsEvent(w http.ResponseWriter, r *http.Request) {
	var payload analyticsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid analytics event payload", http.StatusBadRequest)
		return
	}

	if !payload.validate() {
		h.writeError(w, "Invalid analytics event payload", http.StatusBadRequest)
		return
	}

	if err := h.repo.CreateAnalyticsEvent(r.Context(), payload.EventName, payload.Path, payload.Metadata); err != nil {
		log.Printf("Failed to save analytics event: %v", err)
		h.writeError(w, "Failed to record analytics event", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}
