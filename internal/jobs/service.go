package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service owns job posting lifecycle.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CreateInput carries the fields for posting a job.
type CreateInput struct {
	Title          string
	Location       string
	Description    string
	Qualifications string
	Requirements   string
}

// Create posts a new job in the open state.
func (s *Service) Create(ctx context.Context, input CreateInput) (Job, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return Job{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	job := Job{
		ID:             uuid.NewString(),
		Title:          title,
		Location:       strings.TrimSpace(input.Location),
		Description:    strings.TrimSpace(input.Description),
		Qualifications: strings.TrimSpace(input.Qualifications),
		Requirements:   strings.TrimSpace(input.Requirements),
		Status:         StatusOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Get returns a job by ID.
func (s *Service) Get(ctx context.Context, jobID string) (Job, error) {
	return s.Repo.GetByID(ctx, jobID)
}

// List returns a page of jobs, newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]Job, error) {
	if status != "" && status != StatusOpen && status != StatusClosed {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.Repo.List(ctx, status, limit, offset)
}

// UpdateInput carries the mutable fields of a job posting. Nil fields are
// left unchanged.
type UpdateInput struct {
	Title          *string
	Location       *string
	Description    *string
	Qualifications *string
	Requirements   *string
	Status         *string
}

// Update applies a partial update to a job posting.
func (s *Service) Update(ctx context.Context, jobID string, input UpdateInput) (Job, error) {
	job, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return Job{}, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return Job{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		job.Title = title
	}
	if input.Location != nil {
		job.Location = strings.TrimSpace(*input.Location)
	}
	if input.Description != nil {
		job.Description = strings.TrimSpace(*input.Description)
	}
	if input.Qualifications != nil {
		job.Qualifications = strings.TrimSpace(*input.Qualifications)
	}
	if input.Requirements != nil {
		job.Requirements = strings.TrimSpace(*input.Requirements)
	}
	if input.Status != nil {
		status := strings.TrimSpace(*input.Status)
		if status != StatusOpen && status != StatusClosed {
			return Job{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
		}
		job.Status = status
	}

	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return s.Repo.GetByID(ctx, jobID)
}

// Delete removes a job posting.
func (s *Service) Delete(ctx context.Context, jobID string) error {
	return s.Repo.Delete(ctx, jobID)
}
