package resumes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/payload"
)

func newTestRouter(profileName string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := &Service{Repo: NewMemoryRepo(), Profile: fixedProfile{name: profileName}}
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResume(t *testing.T, w *httptest.ResponseRecorder) ResumeResponse {
	t.Helper()
	var res ResumeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, w.Body.String())
	}
	return res
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v (body %s)", err, w.Body.String())
	}
	return envelope.Error.Code
}

func TestCreateListActivateDeleteFlow(t *testing.T) {
	r := newTestRouter("")

	w := doJSON(t, r, http.MethodPost, "/api/resumes", map[string]any{
		"fileName": "first.pdf",
		"fileData": encodedPDF(t, "first"),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	first := decodeResume(t, w)

	w = doJSON(t, r, http.MethodPost, "/api/resumes", map[string]any{
		"fileName": "second.pdf",
		"fileData": encodedPDF(t, "second"),
		"isActive": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create second: expected 201, got %d", w.Code)
	}
	second := decodeResume(t, w)
	if !second.IsActive {
		t.Fatalf("expected second resume to be active")
	}

	w = doJSON(t, r, http.MethodGet, "/api/resumes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var items []ResumeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 resumes, got %d", len(items))
	}
	active := 0
	for _, item := range items {
		if item.IsActive {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active in list, got %d", active)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/resumes/"+first.ID+"/active", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("activate: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if res := decodeResume(t, w); !res.IsActive || res.ID != first.ID {
		t.Fatalf("activate returned wrong record: %+v", res)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/resumes/"+second.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	// Repeat delete of the same id still succeeds.
	w = doJSON(t, r, http.MethodDelete, "/api/resumes/"+second.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("repeat delete: expected 200, got %d", w.Code)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	r := newTestRouter("")

	w := doJSON(t, r, http.MethodPost, "/api/resumes", map[string]any{"fileName": "x.pdf"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "validation_error" {
		t.Fatalf("expected validation_error, got %s", code)
	}
}

func TestActivateUnknownIDReturns404(t *testing.T) {
	r := newTestRouter("")

	w := doJSON(t, r, http.MethodPatch, "/api/resumes/nope/active", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "not_found" {
		t.Fatalf("expected not_found, got %s", code)
	}
}

func TestDownloadHeadersAndBody(t *testing.T) {
	r := newTestRouter("Grace Hopper")

	original := []byte("%PDF-1.4\nresume body bytes")
	text, err := payload.Encode(payload.MimePDF, original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	w := doJSON(t, r, http.MethodPost, "/api/resumes", map[string]any{
		"fileName": "cv.pdf",
		"fileData": text,
		"isActive": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/resume/download", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("download: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != payload.MimePDF {
		t.Fatalf("expected Content-Type %s, got %s", payload.MimePDF, got)
	}
	want := fmt.Sprintf("attachment; filename=%s", "Grace_Hopper_Resume.pdf")
	if got := w.Header().Get("Content-Disposition"); got != want {
		t.Fatalf("expected Content-Disposition %q, got %q", want, got)
	}
	if got := w.Header().Get("Content-Length"); got != strconv.Itoa(len(original)) {
		t.Fatalf("expected Content-Length %d, got %s", len(original), got)
	}
	if !bytes.Equal(w.Body.Bytes(), original) {
		t.Fatalf("downloaded body differs from uploaded bytes")
	}
}

func TestDownloadFallsBackToMostRecent(t *testing.T) {
	r := newTestRouter("")

	for _, name := range []string{"one.pdf", "two.pdf"} {
		w := doJSON(t, r, http.MethodPost, "/api/resumes", map[string]any{
			"fileName": name,
			"fileData": encodedPDF(t, name),
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create %s: expected 201, got %d", name, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/resume/download", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("download: expected 200, got %d", w.Code)
	}
	want := []byte("%PDF-1.4\ntwo.pdf")
	if !bytes.Equal(w.Body.Bytes(), want) {
		t.Fatalf("expected most recent upload to be served, got %q", w.Body.Bytes())
	}
}

func TestDownloadEmptyStoreReturns404(t *testing.T) {
	r := newTestRouter("Anyone")

	w := doJSON(t, r, http.MethodGet, "/api/resume/download", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "not_found" {
		t.Fatalf("expected not_found, got %s", code)
	}
}
