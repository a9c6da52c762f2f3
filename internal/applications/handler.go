package applications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ats-backend/internal/candidates"
	"ats-backend/internal/jobs"
	"ats-backend/internal/shared/server/respond"
)

// Handler exposes application endpoints.
type Handler struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Register mounts application routes on the group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/applications", h.apply)
	rg.GET("/applications", h.list)
	rg.GET("/applications/:id", h.get)
	rg.PATCH("/applications/:id/status", h.transition)
	rg.DELETE("/applications/:id", h.withdraw)
}

type applyRequest struct {
	CandidateID string `json:"candidateId" binding:"required"`
	JobID       string `json:"jobId" binding:"required"`
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// applicationView decorates an application with its display stage.
type applicationView struct {
	Application
	Stage Stage `json:"stage"`
}

func viewOf(application Application) applicationView {
	return applicationView{Application: application, Stage: StageFor(application.Status)}
}

type listApplicationsResponse struct {
	Applications []applicationView `json:"applications"`
	Limit        int               `json:"limit"`
	Offset       int               `json:"offset"`
}

func (h *Handler) apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_input", "candidateId and jobId are required", nil)
		return
	}
	if _, err := uuid.Parse(req.CandidateID); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "candidateId must be a UUID", nil)
		return
	}
	if _, err := uuid.Parse(req.JobID); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "jobId must be a UUID", nil)
		return
	}

	application, err := h.Service.Apply(c.Request.Context(), req.CandidateID, req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, candidates.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		case errors.Is(err, ErrDuplicate):
			respond.Error(c, http.StatusConflict, "duplicate_application", "candidate already applied to this job", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create application", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, viewOf(application))
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	filter := Filter{
		CandidateID: c.Query("candidateId"),
		JobID:       c.Query("jobId"),
	}

	items, err := h.Service.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}
	views := make([]applicationView, 0, len(items))
	for _, application := range items {
		views = append(views, viewOf(application))
	}
	respond.OK(c, listApplicationsResponse{Applications: views, Limit: limit, Offset: offset})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "application id must be a UUID", nil)
		return
	}

	application, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load application", nil)
		return
	}
	respond.OK(c, viewOf(application))
}

func (h *Handler) transition(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "application id must be a UUID", nil)
		return
	}

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_input", "status is required", nil)
		return
	}

	application, err := h.Service.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "invalid_status", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update application", nil)
		}
		return
	}
	respond.OK(c, viewOf(application))
}

func (h *Handler) withdraw(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "application id must be a UUID", nil)
		return
	}

	if err := h.Service.Withdraw(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to withdraw application", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
