package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"portfolio/internal/codec"
	"portfolio/internal/domain"
	"portfolio/internal/hub"
	"portfolio/internal/loader"
)

// AdminDashboard returns headline counts for the admin overview
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.AdminDashboard(r.Context())
	if err != nil {
		log.Printf("Failed to load dashboard: %v", err)
		h.writeError(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, stats, http.StatusOK)
}

// AdminGetProfile returns the site profile for editing
func (h *Handler) AdminGetProfile(w http.ResponseWriter, r *http.Request) {
	h.GetAbout(w, r)
}

// AdminUpdateProfile applies a partial profile update. Empty fields keep
// their current values.
func (h *Handler) AdminUpdateProfile(w http.ResponseWriter, r *http.Request) {
	current, err := h.repo.Profile(r.Context())
	if err != nil || current == nil {
		log.Printf("Failed to load profile: %v", err)
		h.writeError(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid profile payload", http.StatusBadRequest)
		return
	}

	merged := payload.validate(current)
	if merged == nil {
		h.writeError(w, "Invalid profile payload", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.UpdateProfile(r.Context(), merged)
	if err != nil {
		log.Printf("Failed to update profile: %v", err)
		h.writeError(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, updated, http.StatusOK)
}

// AdminListSocials returns the social links for editing
func (h *Handler) AdminListSocials(w http.ResponseWriter, r *http.Request) {
	h.ListSocials(w, r)
}

// AdminReplaceSocials replaces the full social link list
func (h *Handler) AdminReplaceSocials(w http.ResponseWriter, r *http.Request) {
	var payload socialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid socials payload", http.StatusBadRequest)
		return
	}

	items := payload.validate()
	if items == nil {
		h.writeError(w, "Invalid socials payload", http.StatusBadRequest)
		return
	}

	replaced, err := h.repo.ReplaceSocials(r.Context(), items)
	if err != nil {
		log.Printf("Failed to replace socials: %v", err)
		h.writeError(w, "Failed to update socials", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, replaced, http.StatusOK)
}

// ----------------------------------------------------------------------------
// Projects
// ----------------------------------------------------------------------------

// AdminListProjects returns all projects for the admin UI
func (h *Handler) AdminListProjects(w http.ResponseWriter, r *http.Request) {
	h.ListProjects(w, r)
}

// AdminCreateProject creates a project, rejecting duplicate ids with 409
func (h *Handler) AdminCreateProject(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid project payload", http.StatusBadRequest)
		return
	}

	project := payload.validate()
	if project == nil {
		h.writeError(w, "Invalid project payload", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.ProjectByID(r.Context(), project.ID)
	if err != nil {
		log.Printf("Failed to check project id: %v", err)
		h.writeError(w, "Failed to create project", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		h.writeError(w, "Project id already exists", http.StatusConflict)
		return
	}

	created, err := h.repo.CreateProject(r.Context(), project)
	if err != nil {
		log.Printf("Failed to create project: %v", err)
		h.writeError(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, created, http.StatusCreated)
}

// AdminUpdateProject updates a project by path id
func (h *Handler) AdminUpdateProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid project payload", http.StatusBadRequest)
		return
	}

	// The path id is authoritative; the body cannot rename.
	payload.ID = id
	project := payload.validate()
	if project == nil {
		h.writeError(w, "Invalid project payload", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.UpdateProject(r.Context(), id, project)
	if err != nil {
		log.Printf("Failed to update project: %v", err)
		h.writeError(w, "Failed to update project", http.StatusInternalServerError)
		return
	}
	if updated == nil {
		h.writeError(w, "Project not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, updated, http.StatusOK)
}

// AdminDeleteProject removes a project
func (h *Handler) AdminDeleteProject(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.repo.DeleteProject(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Printf("Failed to delete project: %v", err)
		h.writeError(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}
	if !deleted {
		h.writeError(w, "Project not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// ----------------------------------------------------------------------------
// Offers
// ----------------------------------------------------------------------------

// AdminListOffers returns all offers for the admin UI
func (h *Handler) AdminListOffers(w http.ResponseWriter, r *http.Request) {
	h.ListOffers(w, r)
}

// AdminCreateOffer creates an offer package
func (h *Handler) AdminCreateOffer(w http.ResponseWriter, r *http.Request) {
	var payload offerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid offer payload", http.StatusBadRequest)
		return
	}

	offer := payload.validate()
	if offer == nil {
		h.writeError(w, "Invalid offer payload", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.OfferByID(r.Context(), offer.ID)
	if err != nil {
		log.Printf("Failed to check offer id: %v", err)
		h.writeError(w, "Failed to create offer", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		h.writeError(w, "Offer id already exists", http.StatusConflict)
		return
	}

	created, err := h.repo.CreateOffer(r.Context(), offer)
	if err != nil {
		log.Printf("Failed to create offer: %v", err)
		h.writeError(w, "Failed to create offer", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, created, http.StatusCreated)
}

// AdminUpdateOffer updates an offer by path id
func (h *Handler) AdminUpdateOffer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload offerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid offer payload", http.StatusBadRequest)
		return
	}

	payload.ID = id
	offer := payload.validate()
	if offer == nil {
		h.writeError(w, "Invalid offer payload", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.UpdateOffer(r.Context(), id, offer)
	if err != nil {
		log.Printf("Failed to update offer: %v", err)
		h.writeError(w, "Failed to update offer", http.StatusInternalServerError)
		return
	}
	if updated == nil {
		h.writeError(w, "Offer not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, updated, http.StatusOK)
}

// AdminDeleteOffer removes an offer
func (h *Handler) AdminDeleteOffer(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.repo.DeleteOffer(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Printf("Failed to delete offer: %v", err)
		h.writeError(w, "Failed to delete offer", http.StatusInternalServerError)
		return
	}
	if !deleted {
		h.writeError(w, "Offer not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// ----------------------------------------------------------------------------
// Retainers
// ----------------------------------------------------------------------------

// AdminListRetainers returns all retainer plans for the admin UI
func (h *Handler) AdminListRetainers(w http.ResponseWriter, r *http.Request) {
	h.ListRetainers(w, r)
}

// AdminCreateRetainer creates a retainer plan
func (h *Handler) AdminCreateRetainer(w http.ResponseWriter, r *http.Request) {
	var payload retainerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid retainer payload", http.StatusBadRequest)
		return
	}

	plan := payload.validate()
	if plan == nil {
		h.writeError(w, "Invalid retainer payload", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.RetainerByID(r.Context(), plan.ID)
	if err != nil {
		log.Printf("Failed to check retainer id: %v", err)
		h.writeError(w, "Failed to create retainer", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		h.writeError(w, "Retainer id already exists", http.StatusConflict)
		return
	}

	created, err := h.repo.CreateRetainer(r.Context(), plan)
	if err != nil {
		log.Printf("Failed to create retainer: %v", err)
		h.writeError(w, "Failed to create retainer", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, created, http.StatusCreated)
}

// AdminUpdateRetainer updates a retainer plan by path id
func (h *Handler) AdminUpdateRetainer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload retainerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid retainer payload", http.StatusBadRequest)
		return
	}

	payload.ID = id
	plan := payload.validate()
	if plan == nil {
		h.writeError(w, "Invalid retainer payload", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.UpdateRetainer(r.Context(), id, plan)
	if err != nil {
		log.Printf("Failed to update retainer: %v", err)
		h.writeError(w, "Failed to update retainer", http.StatusInternalServerError)
		return
	}
	if updated == nil {
		h.writeError(w, "Retainer not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, updated, http.StatusOK)
}

// AdminDeleteRetainer removes a retainer plan
func (h *Handler) AdminDeleteRetainer(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.repo.DeleteRetainer(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Printf("Failed to delete retainer: %v", err)
		h.writeError(w, "Failed to delete retainer", http.StatusInternalServerError)
		return
	}
	if !deleted {
		h.writeError(w, "Retainer not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// ----------------------------------------------------------------------------
// Case studies
// ----------------------------------------------------------------------------

// AdminListCaseStudies returns all case studies for the admin UI
func (h *Handler) AdminListCaseStudies(w http.ResponseWriter, r *http.Request) {
	h.ListCaseStudies(w, r)
}

// AdminCreateCaseStudy creates a case study
func (h *Handler) AdminCreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var payload caseStudyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid case study payload", http.StatusBadRequest)
		return
	}

	cs := payload.validate()
	if cs == nil {
		h.writeError(w, "Invalid case study payload", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.CaseStudyByID(r.Context(), cs.ID)
	if err != nil {
		log.Printf("Failed to check case study id: %v", err)
		h.writeError(w, "Failed to create case study", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		h.writeError(w, "Case study id already exists", http.StatusConflict)
		return
	}

	created, err := h.repo.CreateCaseStudy(r.Context(), cs)
	if err != nil {
		log.Printf("Failed to create case study: %v", err)
		h.writeError(w, "Failed to create case study", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, created, http.StatusCreated)
}

// AdminUpdateCaseStudy updates a case study by path id
func (h *Handler) AdminUpdateCaseStudy(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload caseStudyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid case study payload", http.StatusBadRequest)
		return
	}

	payload.ID = id
	cs := payload.validate()
	if cs == nil {
		h.writeError(w, "Invalid case study payload", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.UpdateCaseStudy(r.Context(), id, cs)
	if err != nil {
		log.Printf("Failed to update case study: %v", err)
		h.writeError(w, "Failed to update case study", http.StatusInternalServerError)
		return
	}
	if updated == nil {
		h.writeError(w, "Case study not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, updated, http.StatusOK)
}

// AdminDeleteCaseStudy removes a case study
func (h *Handler) AdminDeleteCaseStudy(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.repo.DeleteCaseStudy(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Printf("Failed to delete case study: %v", err)
		h.writeError(w, "Failed to delete case study", http.StatusInternalServerError)
		return
	}
	if !deleted {
		h.writeError(w, "Case study not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// ----------------------------------------------------------------------------
// Service pages
// ----------------------------------------------------------------------------

// AdminListServicePages returns all service pages for the admin UI
func (h *Handler) AdminListServicePages(w http.ResponseWriter, r *http.Request) {
	h.ListServicePages(w, r)
}

// AdminCreateServicePage creates a service landing page
func (h *Handler) AdminCreateServicePage(w http.ResponseWriter, r *http.Request) {
	var payload servicePagePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid service page payload", http.StatusBadRequest)
		return
	}

	sp := payload.validate()
	if sp == nil {
		h.writeError(w, "Invalid service page payload", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.ServicePageByID(r.Context(), sp.ID)
	if err != nil {
		log.Printf("Failed to check service page id: %v", err)
		h.writeError(w, "Failed to create service page", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		h.writeError(w, "Service page id already exists", http.StatusConflict)
		return
	}

	created, err := h.repo.CreateServicePage(r.Context(), sp)
	if err != nil {
		log.Printf("Failed to create service page: %v", err)
		h.writeError(w, "Failed to create service page", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, created, http.StatusCreated)
}

// AdminUpdateServicePage updates a service page by path id
func (h *Handler) AdminUpdateServicePage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload servicePagePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid service page payload", http.StatusBadRequest)
		return
	}

	payload.ID = id
	sp := payload.validate()
	if sp == nil {
		h.writeError(w, "Invalid service page payload", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.UpdateServicePage(r.Context(), id, sp)
	if err != nil {
		log.Printf("Failed to update service page: %v", err)
		h.writeError(w, "Failed to update service page", http.StatusInternalServerError)
		return
	}
	if updated == nil {
		h.writeError(w, "Service page not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, updated, http.StatusOK)
}

// AdminDeleteServicePage removes a service page
func (h *Handler) AdminDeleteServicePage(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.repo.DeleteServicePage(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Printf("Failed to delete service page: %v", err)
		h.writeError(w, "Failed to delete service page", http.StatusInternalServerError)
		return
	}
	if !deleted {
		h.writeError(w, "Service page not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// ----------------------------------------------------------------------------
// Blog posts
// ----------------------------------------------------------------------------

// AdminListBlogPosts returns all blog posts for the admin UI
func (h *Handler) AdminListBlogPosts(w http.ResponseWriter, r *http.Request) {
	h.ListBlogPosts(w, r)
}

// AdminCreateBlogPost creates a blog post. A missing publishedAt defaults
// to the current time.
func (h *Handler) AdminCreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var payload blogPostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid blog post payload", http.StatusBadRequest)
		return
	}

	bp := payload.validate()
	if bp == nil {
		h.writeError(w, "Invalid blog post payload", http.StatusBadRequest)
		return
	}
	if bp.PublishedAt == "" {
		bp.PublishedAt = time.Now().UTC().Format(time.RFC3339)
	}

	existing, err := h.repo.BlogPostByID(r.Context(), bp.ID)
	if err != nil {
		log.Printf("Failed to check blog post id: %v", err)
		h.writeError(w, "Failed to create blog post", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		h.writeError(w, "Blog post id already exists", http.StatusConflict)
		return
	}

	created, err := h.repo.CreateBlogPost(r.Context(), bp)
	if err != nil {
		log.Printf("Failed to create blog post: %v", err)
		h.writeError(w, "Failed to create blog post", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, created, http.StatusCreated)
}

// AdminUpdateBlogPost updates a blog post by path id
func (h *Handler) AdminUpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload blogPostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, "Invalid blog post payload", http.StatusBadRequest)
		return
	}

	payload.ID = id
	bp := payload.validate()
	if bp == nil {
		h.writeError(w, "Invalid blog post payload", http.StatusBadRequest)
		return
	}
	if bp.PublishedAt == "" {
		bp.PublishedAt = time.Now().UTC().Format(time.RFC3339)
	}

	updated, err := h.repo.UpdateBlogPost(r.Context(), id, bp)
	if err != nil {
		log.Printf("Failed to update blog post: %v", err)
		h.writeError(w, "Failed to update blog post", http.StatusInternalServerError)
		return
	}
	if updated == nil {
		h.writeError(w, "Blog post not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, updated, http.StatusOK)
}

// AdminDeleteBlogPost removes a blog post
func (h *Handler) AdminDeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.repo.DeleteBlogPost(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Printf("Failed to delete blog post: %v", err)
		h.writeError(w, "Failed to delete blog post", http.StatusInternalServerError)
		return
	}
	if !deleted {
		h.writeError(w, "Blog post not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// ----------------------------------------------------------------------------
// Contacts, leads, analytics
// ----------------------------------------------------------------------------

// AdminListContacts returns all contact requests
func (h *Handler) AdminListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.repo.ListContactRequests(r.Context())
	if err != nil {
		log.Printf("Failed to list contacts: %v", err)
		h.writeError(w, "Failed to load contacts", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, contacts, http.StatusOK)
}

// AdminUpdateContactStatus moves a contact request between triage states
func (h *Handler) AdminUpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, "Invalid contact id", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid contact status", http.StatusBadRequest)
		return
	}

	status := strings.ToLower(sanitizeString(req.Status, 40))
	if !domain.ValidContactStatus(status) {
		h.writeError(w, "Invalid contact status", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.UpdateContactStatus(r.Context(), id, status)
	if err != nil {
		log.Printf("Failed to update contact status: %v", err)
		h.writeError(w, "Failed to update contact status", http.StatusInternalServerError)
		return
	}
	if updated == nil {
		h.writeError(w, "Contact not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, updated, http.StatusOK)
}

// AdminListLeads returns all captured leads
func (h *Handler) AdminListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.repo.ListLeadCaptures(r.Context())
	if err != nil {
		log.Printf("Failed to list leads: %v", err)
		h.writeError(w, "Failed to load leads", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, leads, http.StatusOK)
}

// AdminListAnalyticsEvents returns recent analytics events. The limit
// query parameter defaults to 200.
func (h *Handler) AdminListAnalyticsEvents(w http.ResponseWriter, r *http.Request) {
	limit := 200
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	events, err := h.repo.ListAnalyticsEvents(r.Context(), limit)
	if err != nil {
		log.Printf("Failed to list analytics events: %v", err)
		h.writeError(w, "Failed to load analytics events", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, events, http.StatusOK)
}

// AdminAnalyticsSummary returns aggregate analytics counts
func (h *Handler) AdminAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.repo.AnalyticsSummary(r.Context())
	if err != nil {
		log.Printf("Failed to load analytics summary: %v", err)
		h.writeError(w, "Failed to load analytics summary", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, summary, http.StatusOK)
}

// ----------------------------------------------------------------------------
// Exports
// ----------------------------------------------------------------------------

// AdminExportJSON streams the full content bundle as JSON
func (h *Handler) AdminExportJSON(w http.ResponseWriter, r *http.Request) {
	h.exportBundle(w, r, h.jsonExport)
}

// AdminExportYAML streams the full content bundle as YAML
func (h *Handler) AdminExportYAML(w http.ResponseWriter, r *http.Request) {
	h.exportBundle(w, r, h.yamlExport)
}

func (h *Handler) exportBundle(w http.ResponseWriter, r *http.Request, exporter codec.Exporter) {
	bundle, err := h.repo.SiteBundle(r.Context())
	if err != nil {
		log.Printf("Failed to load site bundle for export: %v", err)
		h.writeError(w, "Failed to export content", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="site-content.`+exporter.Format()+`"`)

	if err := exporter.Export(bundle, w); err != nil {
		log.Printf("Failed to export content: %v", err)
	}
}

// AdminImportJSON replaces site content with an uploaded JSON bundle
func (h *Handler) AdminImportJSON(w http.ResponseWriter, r *http.Request) {
	h.importBundle(w, r, loader.FormatJSON)
}

// AdminImportYAML replaces site content with an uploaded YAML bundle
func (h *Handler) AdminImportYAML(w http.ResponseWriter, r *http.Request) {
	h.importBundle(w, r, loader.FormatYAML)
}

func (h *Handler) importBundle(w http.ResponseWriter, r *http.Request, format loader.Format) {
	bundle, err := loader.DecodeBundle(http.MaxBytesReader(w, r.Body, 2<<20), format)
	if err != nil {
		h.writeError(w, "Invalid content bundle", http.StatusBadRequest)
		return
	}

	if err := h.repo.ImportBundle(r.Context(), bundle); err != nil {
		log.Printf("Failed to import content: %v", err)
		h.writeError(w, "Failed to import content", http.StatusInternalServerError)
		return
	}

	summary := map[string]any{
		"success":      true,
		"projects":     len(bundle.Projects),
		"offers":       len(bundle.Offers),
		"retainers":    len(bundle.Retainers),
		"caseStudies":  len(bundle.CaseStudies),
		"servicePages": len(bundle.ServicePages),
		"blogPosts":    len(bundle.BlogPosts),
	}
	h.broadcast(hub.EventContentImported, summary)
	h.writeJSON(w, summary, http.StatusOK)
}

// AdminEvents streams intake and import events to the admin dashboard
// over SSE. EventSource clients pass the session token as a query
// parameter.
func (h *Handler) AdminEvents(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		h.writeError(w, "Event stream disabled", http.StatusNotFound)
		return
	}
	h.events.ServeHTTP(w, r)
}
