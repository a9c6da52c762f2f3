package candidates

import "context"

// Repo defines persistence operations for candidates.
type Repo interface {
	Create(ctx context.Context, candidate Candidate) error
	GetByID(ctx context.Context, candidateID string) (Candidate, error)
	List(ctx context.Context, limit, offset int) ([]Candidate, error)
	UpdateResume(ctx context.Context, candidateID string, update ResumeUpdate) error
	Delete(ctx context.Context, candidateID string) error
}

// ResumeUpdate carries the fields overwritten by a resume upload.
type ResumeUpdate struct {
	ResumeKey        string
	ResumeFileName   string
	ResumeMimeType   string
	Profile          Profile
	ExtractionStatus string
}
