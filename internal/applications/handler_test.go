package applications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, candidate, job := newTestService(t)
	router := gin.New()
	NewHandler(svc).Register(router.Group("/api/v1"))
	return router, svc, candidate.ID, job.ID
}

func TestApplyEndpoint(t *testing.T) {
	router, _, candidateID, jobID := newTestRouter(t)

	body := `{"candidateId":"` + candidateID + `","jobId":"` + jobID + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got applicationView
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != StatusApplied || got.Stage != StageApplied {
		t.Fatalf("view = %+v", got)
	}
}

func TestApplyEndpointDuplicate(t *testing.T) {
	router, svc, candidateID, jobID := newTestRouter(t)
	if _, err := svc.Apply(context.Background(), candidateID, jobID); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	body := `{"candidateId":"` + candidateID + `","jobId":"` + jobID + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestTransitionEndpoint(t *testing.T) {
	router, svc, candidateID, jobID := newTestRouter(t)
	application, err := svc.Apply(context.Background(), candidateID, jobID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/"+application.ID+"/status",
		strings.NewReader(`{"status":"offer"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got applicationView
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != StatusOffer || got.Stage != StageOffer {
		t.Fatalf("view = %+v", got)
	}
}

func TestTransitionEndpointUnknownStatus(t *testing.T) {
	router, svc, candidateID, jobID := newTestRouter(t)
	application, _ := svc.Apply(context.Background(), candidateID, jobID)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/"+application.ID+"/status",
		strings.NewReader(`{"status":"screening"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "invalid_status") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
