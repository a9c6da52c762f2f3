package applications

import (
	"fmt"
	"strings"
	"time"
)

// Status is the pipeline status of an application. It is the single owner of
// the status vocabulary; values are only constructed through ParseStatus so
// an unknown string can never masquerade as a real stage.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInReview  Status = "in_review"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
)

// AllStatuses lists every pipeline status in pipeline order.
func AllStatuses() []Status {
	return []Status{StatusApplied, StatusInReview, StatusInterview, StatusOffer, StatusHired, StatusRejected}
}

// ParseStatus converts a raw string into a Status. Unknown values are a hard
// error, never a default.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.TrimSpace(strings.ToLower(raw))) {
	case StatusApplied:
		return StatusApplied, nil
	case StatusInReview:
		return StatusInReview, nil
	case StatusInterview:
		return StatusInterview, nil
	case StatusOffer:
		return StatusOffer, nil
	case StatusHired:
		return StatusHired, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: unknown application status %q", ErrInvalidInput, raw)
	}
}

// Stage is the display name of a pipeline status.
type Stage string

const (
	StageApplied   Stage = "Applied"
	StageInReview  Stage = "In Review"
	StageInterview Stage = "Interview"
	StageOffer     Stage = "Offer"
	StageHired     Stage = "Hired"
	StageRejected  Stage = "Rejected"
)

// StageFor maps every Status to its display stage. A Status that did not
// come from ParseStatus maps to an empty stage so the gap is visible instead
// of being shown as "Applied".
func StageFor(status Status) Stage {
	switch status {
	case StatusApplied:
		return StageApplied
	case StatusInReview:
		return StageInReview
	case StatusInterview:
		return StageInterview
	case StatusOffer:
		return StageOffer
	case StatusHired:
		return StageHired
	case StatusRejected:
		return StageRejected
	default:
		return ""
	}
}

// Application associates a candidate with a job posting.
type Application struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	JobID       string    `json:"jobId"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
