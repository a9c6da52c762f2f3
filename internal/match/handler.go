package match

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ats-backend/internal/candidates"
	"ats-backend/internal/jobs"
	"ats-backend/internal/shared/server/respond"
)

// Handler exposes the match scoring endpoint.
type Handler struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Register mounts the match route on the group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/candidates/:id/match", h.score)
}

func (h *Handler) score(c *gin.Context) {
	candidateID := c.Param("id")
	if _, err := uuid.Parse(candidateID); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "candidate id must be a UUID", nil)
		return
	}
	jobID := c.Query("jobId")
	if _, err := uuid.Parse(jobID); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "jobId query parameter must be a UUID", nil)
		return
	}

	result, err := h.Service.Score(c.Request.Context(), candidateID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, candidates.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		case errors.Is(err, ErrProfileUnavailable):
			respond.Error(c, http.StatusInternalServerError, "extraction_failed",
				"candidate profile extraction failed; upload the resume again before matching", nil)
		case errors.Is(err, ErrScoringTimeout):
			respond.Error(c, http.StatusGatewayTimeout, "scoring_timeout",
				"match scoring timed out", result)
		case errors.Is(err, ErrScoringFailed):
			respond.Error(c, http.StatusInternalServerError, "scoring_failed",
				"match scoring failed", result)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to score match", nil)
		}
		return
	}
	respond.OK(c, result)
}
