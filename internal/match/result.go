package match

import (
	"encoding/json"
	"fmt"
	"strings"

	"ats-backend/internal/match/radar"
)

// Result status values. StatusError tags the well-defined fallback result so
// callers can tell "couldn't analyze" from a legitimately low score.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// unavailableComments is shown when the scoring call failed.
const unavailableComments = "analysis unavailable"

// Result is the outcome of scoring one candidate against one job. It is
// computed on demand and never persisted.
type Result struct {
	Status        string              `json:"status"`
	Score         int                 `json:"score"`
	MatchedSkills []string            `json:"matchedSkills"`
	MissingSkills []string            `json:"missingSkills"`
	Comments      string              `json:"comments"`
	CandidateName string              `json:"candidateName"`
	JobTitle      string              `json:"jobTitle"`
	JobLocation   string              `json:"jobLocation,omitempty"`
	DomainScores  []radar.DomainScore `json:"domainScores"`
}

// scorePayload is the shape the scoring provider is instructed to return.
type scorePayload struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	Comments      string   `json:"comments"`
}

// parseScorePayload decodes and normalizes a provider response. The score is
// clamped to [0,100] and skill sets are deduplicated case-insensitively;
// malformed JSON is a hard failure.
func parseScorePayload(raw json.RawMessage) (scorePayload, error) {
	if len(raw) == 0 {
		return scorePayload{}, fmt.Errorf("empty score payload")
	}
	var payload scorePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return scorePayload{}, fmt.Errorf("decode score payload: %w", err)
	}
	payload.MatchedSkills = dedupeSkills(payload.MatchedSkills)
	payload.MissingSkills = dedupeSkills(payload.MissingSkills)
	payload.Comments = strings.TrimSpace(payload.Comments)
	return payload, nil
}

// clampScore bounds an untrusted provider score to [0,100].
func clampScore(value float64) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return int(value)
}

// dedupeSkills trims entries and removes case-insensitive duplicates,
// keeping the first spelling seen. The provider has no canonical vocabulary
// and returns near-duplicate phrasing.
func dedupeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
