package jobs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ats-backend/internal/shared/server/respond"
)

// Handler exposes job posting endpoints.
type Handler struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Register mounts job routes on the group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.create)
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)
	rg.PATCH("/jobs/:id", h.update)
	rg.DELETE("/jobs/:id", h.delete)
}

type createJobRequest struct {
	Title          string `json:"title" binding:"required"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	Qualifications string `json:"qualifications"`
	Requirements   string `json:"requirements"`
}

type updateJobRequest struct {
	Title          *string `json:"title"`
	Location       *string `json:"location"`
	Description    *string `json:"description"`
	Qualifications *string `json:"qualifications"`
	Requirements   *string `json:"requirements"`
	Status         *string `json:"status"`
}

type listJobsResponse struct {
	Jobs   []Job `json:"jobs"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func (h *Handler) create(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_input", "title is required", nil)
		return
	}

	job, err := h.Service.Create(c.Request.Context(), CreateInput{
		Title:          req.Title,
		Location:       req.Location,
		Description:    req.Description,
		Qualifications: req.Qualifications,
		Requirements:   req.Requirements,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, job)
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	status := c.Query("status")

	items, err := h.Service.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}
	if items == nil {
		items = []Job{}
	}
	respond.OK(c, listJobsResponse{Jobs: items, Limit: limit, Offset: offset})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "job id must be a UUID", nil)
		return
	}

	job, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load job", nil)
		return
	}
	respond.OK(c, job)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "job id must be a UUID", nil)
		return
	}

	var req updateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_input", "malformed request body", nil)
		return
	}

	job, err := h.Service.Update(c.Request.Context(), id, UpdateInput{
		Title:          req.Title,
		Location:       req.Location,
		Description:    req.Description,
		Qualifications: req.Qualifications,
		Requirements:   req.Requirements,
		Status:         req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update job", nil)
		}
		return
	}
	respond.OK(c, job)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "job id must be a UUID", nil)
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete job", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
