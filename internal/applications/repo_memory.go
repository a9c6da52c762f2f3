package applications

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores applications in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Application
	byPair map[[2]string]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Application),
		byPair: make(map[[2]string]string),
	}
}

// Create stores the application, enforcing one per (candidate, job) pair.
func (r *MemoryRepo) Create(ctx context.Context, application Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	pair := [2]string{application.CandidateID, application.JobID}
	if _, ok := r.byPair[pair]; ok {
		return ErrDuplicate
	}
	r.byID[application.ID] = application
	r.byPair[pair] = application.ID
	return nil
}

// GetByID returns an application by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, applicationID string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	application, ok := r.byID[applicationID]
	if !ok {
		return Application{}, ErrNotFound
	}
	return application, nil
}

// List returns applications newest-first, optionally filtered.
func (r *MemoryRepo) List(ctx context.Context, filter Filter, limit, offset int) ([]Application, error) {
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

	all := make([]Application, 0, len(r.byID))
	for _, application := range r.byID {
		if filter.CandidateID != "" && application.CandidateID != filter.CandidateID {
			continue
		}
		if filter.JobID != "" && application.JobID != filter.JobID {
			continue
		}
		all = append(all, application)
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

// UpdateStatus moves an application to a new pipeline status.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, applicationID string, status Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	application, ok := r.byID[applicationID]
	if !ok {
		return ErrNotFound
	}
	application.Status = status
	application.UpdatedAt = time.Now().UTC()
	r.byID[applicationID] = application
	return nil
}

// Delete removes an application.
func (r *MemoryRepo) Delete(ctx context.Context, applicationID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	application, ok := r.byID[applicationID]
	if !ok {
		return ErrNotFound
	}
	delete(r.byID, applicationID)
	delete(r.byPair, [2]string{application.CandidateID, application.JobID})
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
