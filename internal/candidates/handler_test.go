package candidates

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, extractFn func(ctx context.Context, resumeText string) (json.RawMessage, error)) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := NewService(NewMemoryRepo(), &stubStore{}, &stubLLM{extractFn: extractFn}, 5*time.Second)
	router := gin.New()
	NewHandler(svc).Register(router.Group("/api/v1"))
	return router, svc
}

func TestCreateCandidateEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	body := strings.NewReader(`{"fullName":"Ada Lovelace","email":"ada@example.com","phone":"555-0100"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/candidates", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got Candidate
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID == "" || got.ExtractionStatus != ExtractionNone {
		t.Fatalf("unexpected candidate: %+v", got)
	}
}

func TestCreateCandidateMissingFields(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/candidates", strings.NewReader(`{"phone":"1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetCandidateInvalidID(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_id") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestGetCandidateNotFound(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/7f1de0a0-66d1-4b3e-8c1f-1b6f6e1f0a11", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestUploadResumeEndpoint(t *testing.T) {
	router, svc := newTestRouter(t, func(ctx context.Context, resumeText string) (json.RawMessage, error) {
		return json.RawMessage(`{"skills":["Go"],"summary":"Engineer"}`), nil
	})
	candidate := mustCreate(t, svc)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("Go engineer, five years of APIs")); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/candidates/"+candidate.ID+"/resume", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got Candidate
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ExtractionStatus != ExtractionOK || len(got.Profile.Skills) != 1 {
		t.Fatalf("unexpected candidate: %+v", got)
	}
}

func TestUploadResumeRejectsWordDocument(t *testing.T) {
	router, svc := newTestRouter(t, func(ctx context.Context, resumeText string) (json.RawMessage, error) {
		t.Fatal("provider must not be called")
		return nil, nil
	})
	candidate := mustCreate(t, svc)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("file", "resume.docx")
	part.Write([]byte("PK\x03\x04"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/candidates/"+candidate.ID+"/resume", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "unsupported_format") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestDeleteCandidateEndpoint(t *testing.T) {
	router, svc := newTestRouter(t, nil)
	candidate := mustCreate(t, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/candidates/"+candidate.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, err := svc.Get(context.Background(), candidate.ID); err == nil {
		t.Fatal("candidate should be gone")
	}
}
