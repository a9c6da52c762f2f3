package applications

import "context"

// Filter narrows application listings. Zero fields match everything.
type Filter struct {
	CandidateID string
	JobID       string
}

// Repo defines persistence operations for applications.
type Repo interface {
	Create(ctx context.Context, application Application) error
	GetByID(ctx context.Context, applicationID string) (Application, error)
	List(ctx context.Context, filter Filter, limit, offset int) ([]Application, error)
	UpdateStatus(ctx context.Context, applicationID string, status Status) error
	Delete(ctx context.Context, applicationID string) error
}
