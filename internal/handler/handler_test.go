package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"portfolio/internal/mailer"
	"portfolio/internal/repository/sqlite"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct-horse-battery"
)

// newTestServer builds the full route table over an in-memory repository
func newTestServer(t *testing.T) *http.ServeMux {
	t.Helper()

	repo, err := sqlite.New(":memory:", sqlite.Options{
		SessionTTLDays:    30,
		SeedAdminEmail:    testAdminEmail,
		SeedAdminPassword: testAdminPassword,
	})
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
	})

	h := New(repo, mailer.New(mailer.Config{}))
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// login authenticates against the test server and returns the token
func login(t *testing.T, mux *http.ServeMux) string {
	t.Helper()

	rec := doJSON(t, mux, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", rec.Code, rec.Body.String())
	}

	var session struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &session)
	if session.Token == "" {
		t.Fatal("login returned empty token")
	}
	return session.Token
}

// ============================================================================
// Payload Helper Tests
// ============================================================================

func TestToSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Hello World", expected: "hello-world"},
		{name: "punctuation collapsed", input: "My  App! (v2)", expected: "my-app-v2"},
		{name: "leading trailing stripped", input: "--Edge Case--", expected: "edge-case"},
		{name: "already a slug", input: "starter-site", expected: "starter-site"},
		{name: "empty", input: "", expected: ""},
		{name: "only punctuation", input: "!!!", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toSlug(tt.input, 60); got != tt.expected {
				t.Fatalf("toSlug(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	if got := sanitizeString("  hello  ", 10); got != "hello" {
		t.Fatalf("expected trimmed string, got %q", got)
	}
	if got := sanitizeString("abcdefghij", 4); got != "abcd" {
		t.Fatalf("expected capped string, got %q", got)
	}
	// The cap must not split a multibyte rune.
	if got := sanitizeString("aé", 2); got != "a" {
		t.Fatalf("expected rune-boundary cut, got %q", got)
	}
	if got := sanitizeString("héllo wörld", 6); !utf8.ValidString(got) {
		t.Fatalf("capped string is not valid UTF-8: %q", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name@sub.example.com"}
	invalid := []string{"", "no-at.example.com", "two@@example.com", "spaces in@example.com", "user@nodot"}

	for _, email := range valid {
		if !isValidEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if isValidEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	valid := []string{"https://example.com", "http://example.com/path?q=1"}
	invalid := []string{"", "ftp://example.com", "javascript:alert(1)", "example.com", "https://"}

	for _, u := range valid {
		if !isValidHTTPURL(u) {
			t.Fatalf("expected %q to be valid", u)
		}
	}
	for _, u := range invalid {
		if isValidHTTPURL(u) {
			t.Fatalf("expected %q to be invalid", u)
		}
	}
}

func TestStringListAcceptsArrayOrCSV(t *testing.T) {
	var fromArray struct {
		Items stringList `json:"items"`
	}
	if err := json.Unmarshal([]byte(`{"items":["Go","React"]}`), &fromArray); err != nil {
		t.Fatalf("array unmarshal failed: %v", err)
	}
	if len(fromArray.Items) != 2 || fromArray.Items[0] != "Go" {
		t.Fatalf("unexpected array result: %v", fromArray.Items)
	}

	var fromCSV struct {
		Items stringList `json:"items"`
	}
	if err := json.Unmarshal([]byte(`{"items":"Go, React ,"}`), &fromCSV); err != nil {
		t.Fatalf("csv unmarshal failed: %v", err)
	}
	cleaned := cleanList(fromCSV.Items, 10, 50)
	if len(cleaned) != 2 || cleaned[1] != "React" {
		t.Fatalf("unexpected csv result: %v", cleaned)
	}
}

// ============================================================================
// Public Endpoint Tests
// ============================================================================

func TestHealth(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestGetSiteBundle(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/site", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var bundle struct {
		Profile  map[string]any   `json:"profile"`
		Projects []map[string]any `json:"projects"`
		Offers   []map[string]any `json:"offers"`
	}
	decodeBody(t, rec, &bundle)
	if name, _ := bundle.Profile["name"].(string); name == "" {
		t.Fatal("expected seeded profile in bundle")
	}
	if len(bundle.Projects) == 0 || len(bundle.Offers) == 0 {
		t.Fatal("expected seeded content in bundle")
	}
}

func TestGetProjectNotFound(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/projects/no-such-project", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body ErrorResponse
	decodeBody(t, rec, &body)
	if body.Error != "Project not found" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
}

func TestSubmitContact(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "Alex",
		"email":   "Alex@Example.COM",
		"subject": "Project inquiry",
		"message": "I need a website.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success   bool   `json:"success"`
		RequestID int64  `json:"requestId"`
		Message   string `json:"message"`
	}
	decodeBody(t, rec, &body)
	if !body.Success || body.RequestID == 0 {
		t.Fatalf("unexpected contact response: %+v", body)
	}
	// No SMTP configured, so the response reflects receipt, not delivery.
	if body.Message != "Message received successfully" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestSubmitContactValidation(t *testing.T) {
	mux := newTestServer(t)

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{name: "missing name", payload: map[string]string{"email": "a@b.co", "subject": "s", "message": "m"}},
		{name: "bad email", payload: map[string]string{"name": "a", "email": "not-an-email", "subject": "s", "message": "m"}},
		{name: "missing message", payload: map[string]string{"name": "a", "email": "a@b.co", "subject": "s"}},
		{name: "whitespace only", payload: map[string]string{"name": "  ", "email": "a@b.co", "subject": "s", "message": "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, mux, http.MethodPost, "/api/contact", "", tt.payload)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestSubmitLead(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/leads", "", map[string]string{
		"email": "lead@example.com",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/leads", "", map[string]string{
		"email": "not-an-email",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRecordAnalyticsEvent(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/analytics/event", "", map[string]any{
		"eventName": "page_view",
		"path":      "/",
		"metadata":  map[string]any{"ref": "direct"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/analytics/event", "", map[string]any{
		"eventName": "",
		"path":      "/",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// ============================================================================
// Auth Tests
// ============================================================================

func TestLoginAndMe(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/api/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	if body.User.Email != testAdminEmail {
		t.Fatalf("unexpected user %+v", body)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body ErrorResponse
	decodeBody(t, rec, &body)
	if body.Error != "Invalid credentials" {
		t.Fatalf("unexpected error %q", body.Error)
	}
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "not-an-email",
		"password": testAdminPassword,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBearerTokenAccepted(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d", rec.Code)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/auth/logout", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/auth/me", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestStagingUnlock(t *testing.T) {
	mux := newTestServer(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/auth/staging-unlock", "", map[string]string{
		"password": testAdminPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/auth/staging-unlock", "", map[string]string{
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/auth/staging-unlock", "", map[string]string{
		"password": "",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	mux := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/dashboard"},
		{http.MethodGet, "/api/admin/contacts"},
		{http.MethodPut, "/api/admin/profile"},
		{http.MethodPost, "/api/admin/projects"},
		{http.MethodGet, "/api/admin/export/json"},
	}

	for _, p := range paths {
		rec := doJSON(t, mux, p.method, p.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", p.method, p.path, rec.Code)
		}
	}

	rec := doJSON(t, mux, http.MethodGet, "/api/admin/dashboard", "bogus-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bogus token, got %d", rec.Code)
	}
}

// ============================================================================
// Admin Endpoint Tests
// ============================================================================

func TestAdminDashboard(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/api/admin/dashboard", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var stats struct {
		TotalProjects int64 `json:"totalProjects"`
		TotalOffers   int64 `json:"totalOffers"`
	}
	decodeBody(t, rec, &stats)
	if stats.TotalProjects == 0 || stats.TotalOffers == 0 {
		t.Fatalf("expected seeded counts, got %+v", stats)
	}
}

func TestAdminProjectCRUD(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	payload := map[string]any{
		"name":        "New Project",
		"description": "Something shiny",
		"url":         "https://example.com",
		"frontend":    []string{"React"},
		"backend":     []string{"Go"},
		"featured":    true,
	}

	rec := doJSON(t, mux, http.MethodPost, "/api/admin/projects", token, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		ID        string `json:"id"`
		CreatedAt string `json:"createdAt"`
	}
	decodeBody(t, rec, &created)
	if created.ID != "new-project" {
		t.Fatalf("expected slug id, got %q", created.ID)
	}
	if created.CreatedAt == "" {
		t.Fatal("expected server timestamp")
	}

	// Duplicate id conflicts.
	rec = doJSON(t, mux, http.MethodPost, "/api/admin/projects", token, payload)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	// Update via path id.
	payload["name"] = "Renamed Project"
	rec = doJSON(t, mux, http.MethodPut, "/api/admin/projects/new-project", token, payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated struct {
		Name string `json:"name"`
	}
	decodeBody(t, rec, &updated)
	if updated.Name != "Renamed Project" {
		t.Fatalf("unexpected name %q", updated.Name)
	}

	// Update of a missing id is 404.
	rec = doJSON(t, mux, http.MethodPut, "/api/admin/projects/no-such", token, payload)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	// Delete, then delete again.
	rec = doJSON(t, mux, http.MethodDelete, "/api/admin/projects/new-project", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodDelete, "/api/admin/projects/new-project", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestAdminProjectValidation(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "missing url", payload: map[string]any{
			"name": "x", "description": "d", "frontend": []string{"a"}, "backend": []string{"b"},
		}},
		{name: "non-http url", payload: map[string]any{
			"name": "x", "description": "d", "url": "ftp://example.com",
			"frontend": []string{"a"}, "backend": []string{"b"},
		}},
		{name: "empty stacks", payload: map[string]any{
			"name": "x", "description": "d", "url": "https://example.com",
			"frontend": []string{}, "backend": []string{},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, mux, http.MethodPost, "/api/admin/projects", token, tt.payload)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAdminUpdateProfilePartial(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPut, "/api/admin/profile", token, map[string]string{
		"title": "Updated Title",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var profile struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	}
	decodeBody(t, rec, &profile)
	if profile.Title != "Updated Title" {
		t.Fatalf("title not updated: %+v", profile)
	}
	// Omitted fields keep their seeded values.
	if profile.Name == "" {
		t.Fatalf("name should be preserved: %+v", profile)
	}
}

func TestAdminReplaceSocials(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPut, "/api/admin/socials", token, map[string]any{
		"items": []map[string]any{
			{"platform": "GitHub", "url": "https://github.com/new", "icon": "github"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var socials []struct {
		Platform string `json:"platform"`
	}
	decodeBody(t, rec, &socials)
	if len(socials) != 1 || socials[0].Platform != "GitHub" {
		t.Fatalf("unexpected socials %+v", socials)
	}

	// All-invalid payload is rejected before touching storage.
	rec = doJSON(t, mux, http.MethodPut, "/api/admin/socials", token, map[string]any{
		"items": []map[string]any{
			{"platform": "Bad", "url": "not-a-url", "icon": "x"},
		},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminContactStatusFlow(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Alex", "email": "alex@example.com", "subject": "s", "message": "m",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("contact submit failed: %d", rec.Code)
	}
	var submitted struct {
		RequestID int64 `json:"requestId"`
	}
	decodeBody(t, rec, &submitted)

	path := fmt.Sprintf("/api/admin/contacts/%d/status", submitted.RequestID)
	rec = doJSON(t, mux, http.MethodPut, path, token, map[string]string{"status": "quoted"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated struct {
		Status string `json:"status"`
	}
	decodeBody(t, rec, &updated)
	if updated.Status != "quoted" {
		t.Fatalf("unexpected status %q", updated.Status)
	}

	// Unknown status rejected.
	rec = doJSON(t, mux, http.MethodPut, path, token, map[string]string{"status": "bogus"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// Missing contact is 404.
	rec = doJSON(t, mux, http.MethodPut, "/api/admin/contacts/9999/status", token, map[string]string{"status": "closed"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	// Non-numeric id is 400.
	rec = doJSON(t, mux, http.MethodPut, "/api/admin/contacts/abc/status", token, map[string]string{"status": "closed"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminExport(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/api/admin/export/json", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "site-content.json") {
		t.Fatalf("unexpected disposition %q", rec.Header().Get("Content-Disposition"))
	}

	var bundle struct {
		Profile map[string]any `json:"profile"`
	}
	decodeBody(t, rec, &bundle)
	if name, _ := bundle.Profile["name"].(string); name == "" {
		t.Fatal("expected profile in JSON export")
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/admin/export/yaml", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "profile:") {
		t.Fatal("expected YAML document in export")
	}
}

// ============================================================================
// Middleware Tests
// ============================================================================

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := Chain(inner, CORS([]string{"https://allowed.example"}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://allowed.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://allowed.example" {
		t.Fatalf("expected allow-origin header, got %q", got)
	}

	// Unknown origins receive no CORS headers.
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin header, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight should not reach the handler")
	})
	h := Chain(inner, CORS([]string{"https://allowed.example"}))

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://allowed.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRecoverMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	h := Chain(inner, Recover)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

// ============================================================================
// Import and Event Stream Tests
// ============================================================================

func TestAdminImportJSON(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/admin/import/json", token, map[string]any{
		"projects": []map[string]any{
			{
				"id": "imported", "name": "Imported", "description": "d",
				"url": "https://example.com", "frontend": []string{"a"}, "backend": []string{"b"},
			},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var summary struct {
		Success  bool `json:"success"`
		Projects int  `json:"projects"`
	}
	decodeBody(t, rec, &summary)
	if !summary.Success || summary.Projects != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	// Imported content replaces the projects collection.
	rec = doJSON(t, mux, http.MethodGet, "/api/projects", "", nil)
	var projects []struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &projects)
	if len(projects) != 1 || projects[0].ID != "imported" {
		t.Fatalf("unexpected projects after import: %+v", projects)
	}
}

func TestAdminImportYAML(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	doc := "blogPosts:\n  - id: hello\n    slug: hello\n    title: Hello\n    body: Body\n"
	req := httptest.NewRequest(http.MethodPost, "/api/admin/import/yaml", strings.NewReader(doc))
	req.Header.Set("X-Session-Token", token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/blog-posts", "", nil)
	var posts []struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &posts)
	if len(posts) != 1 || posts[0].ID != "hello" {
		t.Fatalf("unexpected posts after import: %+v", posts)
	}
}

func TestAdminImportRejectsEmptyBundle(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/admin/import/json", token, map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQueryTokenAccepted(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/api/auth/me?token="+token, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with query token, got %d", rec.Code)
	}
}

func TestAdminEventsDisabledWithoutHub(t *testing.T) {
	mux := newTestServer(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/api/admin/events", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a hub, got %d", rec.Code)
	}
}
