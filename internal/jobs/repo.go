package jobs

import "context"

// Repo defines persistence operations for job postings.
type Repo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, jobID string) (Job, error)
	List(ctx context.Context, status string, limit, offset int) ([]Job, error)
	Update(ctx context.Context, job Job) error
	Delete(ctx context.Context, jobID string) error
}
