package candidates

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/extract"
	"ats-backend/internal/llm"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/storage/object"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/internal/shared/util"
)

// Service owns candidate lifecycle and resume structuring.
type Service struct {
	Repo    Repo
	Store   object.ObjectStore
	LLM     llm.Client
	Timeout time.Duration
}

// NewService constructs a Service. Timeout bounds each provider call.
func NewService(repo Repo, store object.ObjectStore, client llm.Client, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Service{Repo: repo, Store: store, LLM: client, Timeout: timeout}
}

// CreateInput carries the fields for registering a candidate.
type CreateInput struct {
	FullName string
	Email    string
	Phone    string
}

// Create registers a new candidate with an empty profile.
func (s *Service) Create(ctx context.Context, input CreateInput) (Candidate, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if fullName == "" {
		return Candidate{}, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if email == "" || !strings.Contains(email, "@") {
		return Candidate{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	candidate := Candidate{
		ID:               uuid.NewString(),
		FullName:         fullName,
		Email:            email,
		Phone:            strings.TrimSpace(input.Phone),
		ExtractionStatus: ExtractionNone,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.Create(ctx, candidate); err != nil {
		return Candidate{}, err
	}
	return candidate, nil
}

// Get returns a candidate by ID.
func (s *Service) Get(ctx context.Context, candidateID string) (Candidate, error) {
	return s.Repo.GetByID(ctx, candidateID)
}

// List returns a page of candidates, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Candidate, error) {
	return s.Repo.List(ctx, limit, offset)
}

// Delete removes a candidate.
func (s *Service) Delete(ctx context.Context, candidateID string) error {
	return s.Repo.Delete(ctx, candidateID)
}

// UploadResume stores a resume and replaces the candidate's structured
// profile with the provider's extraction of it. Last upload wins.
//
// Unsupported or unreadable files fail before anything is stored. A provider
// failure after storage leaves the candidate with an empty profile tagged
// ExtractionFailed and returns ErrExtractionFailed.
func (s *Service) UploadResume(ctx context.Context, candidateID string, fileName string, mimeType string, data []byte) (Candidate, error) {
	if _, err := s.Repo.GetByID(ctx, candidateID); err != nil {
		return Candidate{}, err
	}

	cleanName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(data) == 0 {
		return Candidate{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	text, err := extract.TextFromBytes(ctx, data, mimeType, cleanName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return Candidate{}, err
		}
		return Candidate{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(text) == "" {
		return Candidate{}, fmt.Errorf("%w: resume contains no extractable text", ErrInvalidInput)
	}

	storageKey, sizeBytes, detectedMime, err := s.Store.Save(ctx, candidateID, cleanName, bytes.NewReader(data))
	if err != nil {
		return Candidate{}, fmt.Errorf("store resume: %w", err)
	}
	telemetry.Info("resume.stored", map[string]any{
		"candidate_id": candidateID,
		"storage_key":  storageKey,
		"size_bytes":   sizeBytes,
		"mime_type":    detectedMime,
	})

	update := ResumeUpdate{
		ResumeKey:      storageKey,
		ResumeFileName: cleanName,
		ResumeMimeType: detectedMime,
	}

	profile, extractErr := s.extractProfile(ctx, candidateID, text)
	if extractErr != nil {
		update.ExtractionStatus = ExtractionFailed
		if err := s.Repo.UpdateResume(ctx, candidateID, update); err != nil {
			return Candidate{}, err
		}
		candidate, err := s.Repo.GetByID(ctx, candidateID)
		if err != nil {
			return Candidate{}, err
		}
		return candidate, fmt.Errorf("%w: %v", ErrExtractionFailed, extractErr)
	}

	update.Profile = profile
	update.ExtractionStatus = ExtractionOK
	if err := s.Repo.UpdateResume(ctx, candidateID, update); err != nil {
		return Candidate{}, err
	}
	return s.Repo.GetByID(ctx, candidateID)
}

func (s *Service) extractProfile(ctx context.Context, candidateID string, resumeText string) (Profile, error) {
	metrics.IncExtraction()

	callCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	raw, err := s.LLM.ExtractProfile(callCtx, resumeText)
	if err != nil {
		metrics.IncExtractionFailed()
		telemetry.Error("resume.extract_failed", map[string]any{
			"candidate_id": candidateID,
			"error":        err.Error(),
		})
		return Profile{}, err
	}

	profile, err := ParseProfile(raw)
	if err != nil {
		metrics.IncExtractionFailed()
		telemetry.Error("resume.extract_failed", map[string]any{
			"candidate_id": candidateID,
			"error":        err.Error(),
		})
		return Profile{}, err
	}
	return profile, nil
}
