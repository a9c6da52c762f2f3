package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for resume structuring and match scoring.
type Client interface {
	// ExtractProfile turns raw resume text into JSON matching the
	// candidate profile schema.
	ExtractProfile(ctx context.Context, resumeText string) (json.RawMessage, error)
	// ScoreMatch scores a structured profile against job requirements and
	// returns JSON matching the match result schema.
	ScoreMatch(ctx context.Context, input ScoreInput) (json.RawMessage, error)
}

// ScoreInput captures the inputs needed for a match scoring request.
type ScoreInput struct {
	ProfileText      string
	RequirementsText string
	JobTitle         string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// ExtractProfile returns ErrNotImplemented.
func (PlaceholderClient) ExtractProfile(ctx context.Context, resumeText string) (json.RawMessage, error) {
	_ = ctx
	_ = resumeText
	return nil, ErrNotImplemented
}

// ScoreMatch returns ErrNotImplemented.
func (PlaceholderClient) ScoreMatch(ctx context.Context, input ScoreInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}
