package candidates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new candidate.
func (r *PGRepo) Create(ctx context.Context, candidate Candidate) error {
	const query = `
INSERT INTO candidates (
    id,
    full_name,
    email,
    phone,
    resume_key,
    resume_file_name,
    resume_mime_type,
    profile,
    extraction_status,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

	status := candidate.ExtractionStatus
	if status == "" {
		status = ExtractionNone
	}

	profileJSON, err := json.Marshal(candidate.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		candidate.ID,
		candidate.FullName,
		candidate.Email,
		candidate.Phone,
		nullableString(candidate.ResumeKey),
		nullableString(candidate.ResumeFileName),
		nullableString(candidate.ResumeMimeType),
		profileJSON,
		status,
		candidate.CreatedAt,
	)
	return err
}

const candidateColumns = `id, full_name, email, phone, resume_key, resume_file_name, resume_mime_type, profile, extraction_status, created_at, updated_at`

// GetByID fetches a candidate by ID.
func (r *PGRepo) GetByID(ctx context.Context, candidateID string) (Candidate, error) {
	query := `
SELECT ` + candidateColumns + `
FROM candidates
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, candidateID)
	candidate, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	return candidate, nil
}

// List returns candidates ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Candidate, error) {
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
SELECT ` + candidateColumns + `
FROM candidates
WHERE deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, candidate)
	}
	return out, rows.Err()
}

// UpdateResume overwrites the resume metadata and extracted profile.
func (r *PGRepo) UpdateResume(ctx context.Context, candidateID string, update ResumeUpdate) error {
	const query = `
UPDATE candidates
SET resume_key = $1,
    resume_file_name = $2,
    resume_mime_type = $3,
    profile = $4,
    extraction_status = $5,
    updated_at = $6
WHERE id = $7 AND deleted_at IS NULL`

	profileJSON, err := json.Marshal(update.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		nullableString(update.ResumeKey),
		nullableString(update.ResumeFileName),
		nullableString(update.ResumeMimeType),
		profileJSON,
		update.ExtractionStatus,
		time.Now().UTC(),
		candidateID,
	)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes a candidate.
func (r *PGRepo) Delete(ctx context.Context, candidateID string) error {
	const query = `
UPDATE candidates
SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, candidateID)
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

func scanCandidate(row rowScanner) (Candidate, error) {
	var candidate Candidate
	var resumeKey sql.NullString
	var resumeFileName sql.NullString
	var resumeMimeType sql.NullString
	var profileJSON []byte
	err := row.Scan(
		&candidate.ID,
		&candidate.FullName,
		&candidate.Email,
		&candidate.Phone,
		&resumeKey,
		&resumeFileName,
		&resumeMimeType,
		&profileJSON,
		&candidate.ExtractionStatus,
		&candidate.CreatedAt,
		&candidate.UpdatedAt,
	)
	if err != nil {
		return Candidate{}, err
	}
	if resumeKey.Valid {
		candidate.ResumeKey = resumeKey.String
	}
	if resumeFileName.Valid {
		candidate.ResumeFileName = resumeFileName.String
	}
	if resumeMimeType.Valid {
		candidate.ResumeMimeType = resumeMimeType.String
	}
	if len(profileJSON) > 0 {
		if err := json.Unmarshal(profileJSON, &candidate.Profile); err != nil {
			return Candidate{}, fmt.Errorf("unmarshal profile: %w", err)
		}
	}
	return candidate, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
