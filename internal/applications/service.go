package applications

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/candidates"
	"ats-backend/internal/jobs"
)

// CandidateDirectory looks up candidates for existence checks.
type CandidateDirectory interface {
	GetByID(ctx context.Context, candidateID string) (candidates.Candidate, error)
}

// JobDirectory looks up job postings for existence checks.
type JobDirectory interface {
	GetByID(ctx context.Context, jobID string) (jobs.Job, error)
}

// Service owns the application pipeline.
type Service struct {
	Repo       Repo
	Candidates CandidateDirectory
	Jobs       JobDirectory
}

// NewService constructs a Service.
func NewService(repo Repo, candidateDir CandidateDirectory, jobDir JobDirectory) *Service {
	return &Service{Repo: repo, Candidates: candidateDir, Jobs: jobDir}
}

// Apply creates an application in the "applied" status. The candidate and
// job must exist and the job must still be open.
func (s *Service) Apply(ctx context.Context, candidateID, jobID string) (Application, error) {
	if _, err := s.Candidates.GetByID(ctx, candidateID); err != nil {
		return Application{}, err
	}
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return Application{}, err
	}
	if job.Status != jobs.StatusOpen {
		return Application{}, fmt.Errorf("%w: job %s is not open", ErrInvalidInput, jobID)
	}

	now := time.Now().UTC()
	application := Application{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      StatusApplied,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, application); err != nil {
		return Application{}, err
	}
	return application, nil
}

// Get returns an application by ID.
func (s *Service) Get(ctx context.Context, applicationID string) (Application, error) {
	return s.Repo.GetByID(ctx, applicationID)
}

// List returns a page of applications, newest first.
func (s *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]Application, error) {
	return s.Repo.List(ctx, filter, limit, offset)
}

// Transition moves an application to the status named by rawStatus. Unknown
// statuses are rejected by ParseStatus.
func (s *Service) Transition(ctx context.Context, applicationID string, rawStatus string) (Application, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return Application{}, err
	}
	if err := s.Repo.UpdateStatus(ctx, applicationID, status); err != nil {
		return Application{}, err
	}
	return s.Repo.GetByID(ctx, applicationID)
}

// Withdraw removes an application.
func (s *Service) Withdraw(ctx context.Context, applicationID string) error {
	return s.Repo.Delete(ctx, applicationID)
}
