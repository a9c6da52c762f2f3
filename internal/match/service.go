package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"ats-backend/internal/candidates"
	"ats-backend/internal/jobs"
	"ats-backend/internal/llm"
	"ats-backend/internal/match/radar"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/telemetry"
)

// CandidateDirectory looks up candidates for scoring.
type CandidateDirectory interface {
	GetByID(ctx context.Context, candidateID string) (candidates.Candidate, error)
}

// JobDirectory looks up job postings for scoring.
type JobDirectory interface {
	GetByID(ctx context.Context, jobID string) (jobs.Job, error)
}

// Service scores candidates against jobs via the scoring provider. Results
// are computed per request and never cached; concurrent requests for the
// same (candidate, job) pair share one in-flight provider call.
type Service struct {
	Candidates CandidateDirectory
	Jobs       JobDirectory
	LLM        llm.Client
	Timeout    time.Duration

	group singleflight.Group
}

// NewService constructs a Service. Timeout bounds each provider call.
func NewService(candidateDir CandidateDirectory, jobDir JobDirectory, client llm.Client, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Service{Candidates: candidateDir, Jobs: jobDir, LLM: client, Timeout: timeout}
}

// Score computes the match between a candidate and a job.
//
// Provider failures return the well-defined fallback Result (status "error",
// score 0, "analysis unavailable") together with ErrScoringFailed or
// ErrScoringTimeout so callers can render a caveat instead of a fake score.
func (s *Service) Score(ctx context.Context, candidateID, jobID string) (Result, error) {
	metrics.IncMatchRequested()

	candidate, err := s.Candidates.GetByID(ctx, candidateID)
	if err != nil {
		return Result{}, err
	}
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return Result{}, err
	}

	if candidate.ExtractionStatus == candidates.ExtractionFailed {
		metrics.IncMatchFailed()
		return Result{}, fmt.Errorf("%w: last resume extraction failed for candidate %s", ErrProfileUnavailable, candidateID)
	}

	// Simultaneous refreshes for the same pair ride one provider call. The
	// shared call runs under the first caller's context; joiners that need
	// independent cancellation can retry.
	key := candidateID + ":" + jobID
	value, err, shared := s.group.Do(key, func() (any, error) {
		return s.score(ctx, candidate, job)
	})
	if shared {
		telemetry.Info("match.deduplicated", map[string]any{
			"candidate_id": candidateID,
			"job_id":       jobID,
		})
	}

	result, ok := value.(Result)
	if !ok {
		result = fallbackResult(candidate, job)
	}
	return result, err
}

// score issues one scoring call. It returns a Result in every case: the
// parsed one on success, the tagged fallback alongside the error otherwise.
func (s *Service) score(ctx context.Context, candidate candidates.Candidate, job jobs.Job) (Result, error) {
	start := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	raw, err := s.LLM.ScoreMatch(callCtx, llm.ScoreInput{
		ProfileText:      candidate.Profile.Text(),
		RequirementsText: job.RequirementsText(),
		JobTitle:         job.Title,
	})
	if err != nil {
		return fallbackResult(candidate, job), s.scoringError(candidate.ID, job.ID, err)
	}

	payload, err := parseScorePayload(raw)
	if err != nil {
		return fallbackResult(candidate, job), s.scoringError(candidate.ID, job.ID, err)
	}

	score := clampScore(payload.Score)
	result := Result{
		Status:        StatusOK,
		Score:         score,
		MatchedSkills: payload.MatchedSkills,
		MissingSkills: payload.MissingSkills,
		Comments:      payload.Comments,
		CandidateName: candidate.FullName,
		JobTitle:      job.Title,
		JobLocation:   job.Location,
		DomainScores:  radar.Decompose(score, payload.MatchedSkills, payload.MissingSkills),
	}

	metrics.IncMatchCompleted()
	metrics.ObserveMatchDurationMs(metrics.SinceMillis(start))
	return result, nil
}

func (s *Service) scoringError(candidateID, jobID string, cause error) error {
	metrics.IncMatchFailed()
	telemetry.Error("match.score_failed", map[string]any{
		"candidate_id": candidateID,
		"job_id":       jobID,
		"error":        cause.Error(),
	})
	if errors.Is(cause, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrScoringTimeout, cause)
	}
	return fmt.Errorf("%w: %v", ErrScoringFailed, cause)
}

// fallbackResult is the well-defined zero result for a failed scoring call.
// The "error" status and fixed comments keep it distinguishable from a
// legitimate zero-skill match.
func fallbackResult(candidate candidates.Candidate, job jobs.Job) Result {
	return Result{
		Status:        StatusError,
		Score:         0,
		MatchedSkills: []string{},
		MissingSkills: []string{},
		Comments:      unavailableComments,
		CandidateName: candidate.FullName,
		JobTitle:      job.Title,
		JobLocation:   job.Location,
		DomainScores:  radar.Decompose(0, nil, nil),
	}
}
