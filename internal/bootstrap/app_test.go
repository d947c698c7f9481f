package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/payload"
	"portfolio-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *App {
	t.Helper()
	app, err := Build(config.Config{Env: "dev"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatalf("expected in-memory repositories without DATABASE_URL")
	}
	return app
}

func request(t *testing.T, app *App, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestBuildWiresHealthAndRequestID(t *testing.T) {
	app := buildTestApp(t)

	w := request(t, app, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header on every response")
	}
}

func TestResumeDownloadUsesProfileName(t *testing.T) {
	app := buildTestApp(t)

	w := request(t, app, http.MethodPost, "/api/user/update", map[string]any{"name": "Grace Hopper"})
	if w.Code != http.StatusOK {
		t.Fatalf("profile update: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	original := []byte("%PDF-1.4\nwired together")
	text, err := payload.Encode(payload.MimePDF, original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	w = request(t, app, http.MethodPost, "/api/resumes", map[string]any{
		"fileName": "cv.pdf",
		"fileData": text,
		"isActive": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create resume: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	w = request(t, app, http.MethodGet, "/api/resume/download", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("download: expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=Grace_Hopper_Resume.pdf" {
		t.Fatalf("unexpected Content-Disposition: %q", got)
	}
	if !bytes.Equal(w.Body.Bytes(), original) {
		t.Fatalf("download body differs from upload")
	}
}

func TestCollaboratorRoutesAreMounted(t *testing.T) {
	app := buildTestApp(t)

	for _, path := range []string{"/api/user", "/api/education", "/api/projects", "/api/skill-groups", "/api/profiles"} {
		w := request(t, app, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestBuildRequiresDatabaseInProduction(t *testing.T) {
	if _, err := Build(config.Config{Env: "production"}); err == nil {
		t.Fatalf("expected error without DATABASE_URL in production")
	}
}
