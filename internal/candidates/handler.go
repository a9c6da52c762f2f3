package candidates

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ats-backend/internal/extract"
	"ats-backend/internal/shared/server/respond"
)

// Resume uploads larger than this are rejected before reading the body.
const maxResumeBytes = 10 << 20

// Handler exposes candidate endpoints.
type Handler struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Register mounts candidate routes on the group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/candidates", h.create)
	rg.GET("/candidates", h.list)
	rg.GET("/candidates/:id", h.get)
	rg.DELETE("/candidates/:id", h.delete)
	rg.POST("/candidates/:id/resume", h.uploadResume)
}

func (h *Handler) create(c *gin.Context) {
	var req createCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_input", "fullName and email are required", nil)
		return
	}

	candidate, err := h.Service.Create(c.Request.Context(), CreateInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create candidate", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, candidate)
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.Service.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list candidates", nil)
		return
	}
	if items == nil {
		items = []Candidate{}
	}
	respond.OK(c, listCandidatesResponse{Candidates: items, Limit: limit, Offset: offset})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "candidate id must be a UUID", nil)
		return
	}

	candidate, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load candidate", nil)
		return
	}
	respond.OK(c, candidate)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "candidate id must be a UUID", nil)
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete candidate", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) uploadResume(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "candidate id must be a UUID", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResumeBytes)
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_input", "multipart field 'file' is required", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_input", "failed to read upload", nil)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	candidate, err := h.Service.UploadResume(c.Request.Context(), id, header.Filename, mimeType, data)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
		case errors.Is(err, extract.ErrUnsupportedFormat):
			respond.Error(c, http.StatusBadRequest, "unsupported_format", "only PDF and plain-text resumes are accepted", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		case errors.Is(err, ErrExtractionFailed):
			respond.Error(c, http.StatusInternalServerError, "extraction_failed", "resume stored but profile extraction failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
		}
		return
	}
	respond.OK(c, candidate)
}
