package jobs

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `id, title, location, description, qualifications, requirements, status, created_at, updated_at`

// Create inserts a new job posting.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (
    id, title, location, description, qualifications, requirements, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`
	status := job.Status
	if status == "" {
		status = StatusOpen
	}
	_, err := r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.Title,
		job.Location,
		job.Description,
		job.Qualifications,
		job.Requirements,
		status,
		job.CreatedAt,
	)
	return err
}

// GetByID fetches a job by ID.
func (r *PGRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	query := `
SELECT ` + jobColumns + `
FROM jobs
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, jobID)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

// List returns job postings ordered newest-first, optionally filtered by status.
func (r *PGRepo) List(ctx context.Context, status string, limit, offset int) ([]Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
SELECT ` + jobColumns + `
FROM jobs
WHERE deleted_at IS NULL AND ($1 = '' OR status = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// Update overwrites the mutable fields of a job posting.
func (r *PGRepo) Update(ctx context.Context, job Job) error {
	const query = `
UPDATE jobs
SET title = $1,
    location = $2,
    description = $3,
    qualifications = $4,
    requirements = $5,
    status = $6,
    updated_at = $7
WHERE id = $8 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(
		ctx,
		query,
		job.Title,
		job.Location,
		job.Description,
		job.Qualifications,
		job.Requirements,
		job.Status,
		time.Now().UTC(),
		job.ID,
	)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes a job posting.
func (r *PGRepo) Delete(ctx context.Context, jobID string) error {
	const query = `
UPDATE jobs
SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, jobID)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Location,
		&job.Description,
		&job.Qualifications,
		&job.Requirements,
		&job.Status,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return Job{}, err
	}
	return job, nil
}

var _ Repo = (*PGRepo)(nil)
