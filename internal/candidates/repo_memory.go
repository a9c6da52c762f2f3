package candidates

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores candidates in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Candidate
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Candidate)}
}

// Create stores the candidate.
func (r *MemoryRepo) Create(ctx context.Context, candidate Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if candidate.ExtractionStatus == "" {
		candidate.ExtractionStatus = ExtractionNone
	}
	r.byID[candidate.ID] = candidate
	return nil
}

// GetByID returns a candidate by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, candidateID string) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	candidate, ok := r.byID[candidateID]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	return candidate, nil
}

// List returns candidates ordered newest-first.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Candidate, 0, len(r.byID))
	for _, candidate := range r.byID {
		all = append(all, candidate)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// UpdateResume overwrites the resume metadata and extracted profile.
func (r *MemoryRepo) UpdateResume(ctx context.Context, candidateID string, update ResumeUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.byID[candidateID]
	if !ok {
		return ErrNotFound
	}
	candidate.ResumeKey = update.ResumeKey
	candidate.ResumeFileName = update.ResumeFileName
	candidate.ResumeMimeType = update.ResumeMimeType
	candidate.Profile = update.Profile
	candidate.ExtractionStatus = update.ExtractionStatus
	candidate.UpdatedAt = time.Now().UTC()
	r.byID[candidateID] = candidate
	return nil
}

// Delete removes a candidate.
func (r *MemoryRepo) Delete(ctx context.Context, candidateID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[candidateID]; !ok {
		return ErrNotFound
	}
	delete(r.byID, candidateID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
