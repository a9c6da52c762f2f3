package applications

import (
	"errors"
	"testing"
)

func TestParseStatusAcceptsEveryStatus(t *testing.T) {
	for _, status := range AllStatuses() {
		got, err := ParseStatus(string(status))
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", status, err)
		}
		if got != status {
			t.Fatalf("ParseStatus(%q) = %q", status, got)
		}
	}
}

func TestParseStatusNormalizes(t *testing.T) {
	got, err := ParseStatus("  In_Review ")
	if err != nil {
		t.Fatalf("ParseStatus: %v", err)
	}
	if got != StatusInReview {
		t.Fatalf("got %q", got)
	}
}

func TestParseStatusUnknownIsHardError(t *testing.T) {
	for _, raw := range []string{"", "screening", "APPLIED!", "in-review"} {
		if _, err := ParseStatus(raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ParseStatus(%q): expected ErrInvalidInput, got %v", raw, err)
		}
	}
}

func TestStageForIsTotalOverParsedStatuses(t *testing.T) {
	want := map[Status]Stage{
		StatusApplied:   StageApplied,
		StatusInReview:  StageInReview,
		StatusInterview: StageInterview,
		StatusOffer:     StageOffer,
		StatusHired:     StageHired,
		StatusRejected:  StageRejected,
	}
	for _, status := range AllStatuses() {
		if got := StageFor(status); got != want[status] {
			t.Fatalf("StageFor(%q) = %q, want %q", status, got, want[status])
		}
	}
}

func TestStageForUnknownIsEmptyNotApplied(t *testing.T) {
	if got := StageFor(Status("bogus")); got != "" {
		t.Fatalf("unknown status must not map to a real stage, got %q", got)
	}
}
