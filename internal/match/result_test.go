package match

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseScorePayloadMalformed(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"score": "high"}`} {
		if _, err := parseScorePayload(json.RawMessage(raw)); err == nil {
			t.Fatalf("expected error for payload %q", raw)
		}
	}
}

func TestParseScorePayloadDedupesSkills(t *testing.T) {
	raw := json.RawMessage(`{
		"score": 72,
		"matchedSkills": ["Go", "go", " GO ", "Postgres"],
		"missingSkills": ["Kubernetes", "kubernetes", ""],
		"comments": "  solid fit  "
	}`)
	payload, err := parseScorePayload(raw)
	if err != nil {
		t.Fatalf("parseScorePayload: %v", err)
	}
	if !reflect.DeepEqual(payload.MatchedSkills, []string{"Go", "Postgres"}) {
		t.Fatalf("matched = %v", payload.MatchedSkills)
	}
	if !reflect.DeepEqual(payload.MissingSkills, []string{"Kubernetes"}) {
		t.Fatalf("missing = %v", payload.MissingSkills)
	}
	if payload.Comments != "solid fit" {
		t.Fatalf("comments = %q", payload.Comments)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{42.7, 42},
		{100, 100},
		{150, 100},
	}
	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.want {
			t.Fatalf("clampScore(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
