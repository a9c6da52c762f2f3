package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const applicationColumns = `id, candidate_id, job_id, status, created_at, updated_at`

// Create inserts a new application. A second application for the same
// (candidate, job) pair violates the unique constraint and maps to
// ErrDuplicate.
func (r *PGRepo) Create(ctx context.Context, application Application) error {
	const query = `
INSERT INTO applications (id, candidate_id, job_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		application.ID,
		application.CandidateID,
		application.JobID,
		string(application.Status),
		application.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID fetches an application by ID.
func (r *PGRepo) GetByID(ctx context.Context, applicationID string) (Application, error) {
	query := `
SELECT ` + applicationColumns + `
FROM applications
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, applicationID)
	application, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return application, nil
}

// List returns applications newest-first, optionally filtered by candidate
// and/or job.
func (r *PGRepo) List(ctx context.Context, filter Filter, limit, offset int) ([]Application, error) {
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
SELECT ` + applicationColumns + `
FROM applications
WHERE ($1 = '' OR candidate_id = $1)
  AND ($2 = '' OR job_id = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4`

	rows, err := r.DB.QueryContext(ctx, query, filter.CandidateID, filter.JobID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, application)
	}
	return out, rows.Err()
}

// UpdateStatus moves an application to a new pipeline status.
func (r *PGRepo) UpdateStatus(ctx context.Context, applicationID string, status Status) error {
	const query = `
UPDATE applications
SET status = $1,
    updated_at = $2
WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, string(status), time.Now().UTC(), applicationID)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an application.
func (r *PGRepo) Delete(ctx context.Context, applicationID string) error {
	const query = `DELETE FROM applications WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, applicationID)
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

// scanApplication parses the stored status through ParseStatus, so a row
// holding an unknown status surfaces as an error instead of a wrong stage.
func scanApplication(row rowScanner) (Application, error) {
	var application Application
	var rawStatus string
	err := row.Scan(
		&application.ID,
		&application.CandidateID,
		&application.JobID,
		&rawStatus,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		return Application{}, err
	}
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return Application{}, fmt.Errorf("application %s: %w", application.ID, err)
	}
	application.Status = status
	return application, nil
}

var _ Repo = (*PGRepo)(nil)
