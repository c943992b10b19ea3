package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"portfolio/internal/domain"
)

// Login verifies admin credentials and issues a session token. Unknown
// emails and wrong passwords produce the same 401.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid email or password", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(sanitizeString(req.Email, 254))
	if email == "" || req.Password == "" || !isValidEmail(email) {
		h.writeError(w, "Invalid email or password", http.StatusBadRequest)
		return
	}

	session, err := h.repo.LoginAdmin(r.Context(), email, req.Password)
	if err != nil {
		log.Printf("Failed to login admin: %v", err)
		h.writeError(w, "Failed to login", http.StatusInternalServerError)
		return
	}
	if session == nil {
		h.writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	h.writeJSON(w, session, http.StatusOK)
}

// StagingUnlock checks a shared password against the admin credentials
// without issuing a session. Used to gate preview deployments.
func (h *Handler) StagingUnlock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid password", http.StatusBadRequest)
		return
	}

	if req.Password == "" || len(req.Password) > 255 {
		h.writeError(w, "Invalid password", http.StatusBadRequest)
		return
	}

	ok, err := h.repo.VerifyAdminPassword(r.Context(), req.Password)
	if err != nil {
		log.Printf("Failed to verify staging unlock: %v", err)
		h.writeError(w, "Failed to verify password", http.StatusInternalServerError)
		return
	}
	if !ok {
		h.writeError(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// Logout revokes the current session. Always succeeds for an
// authenticated caller.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := r.Context().Value(tokenContextKey).(string)
	if err := h.repo.RevokeAdminSession(r.Context(), token); err != nil {
		log.Printf("Failed to revoke session: %v", err)
	}

	h.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// Me returns the authenticated admin
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := r.Context().Value(adminContextKey).(*domain.AdminUser)
	if !ok {
		h.writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	h.writeJSON(w, map[string]any{"user": admin}, http.StatusOK)
}
