package jobs

import (
	"strings"
	"time"
)

// Job posting status.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Job is an open position candidates can be matched against.
type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Qualifications string    `json:"qualifications"`
	Requirements   string    `json:"requirements"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// RequirementsText concatenates the textual fields used as the job side of
// the scoring prompt. Empty sections are skipped.
func (j Job) RequirementsText() string {
	var parts []string
	if q := strings.TrimSpace(j.Qualifications); q != "" {
		parts = append(parts, "Qualifications:\n"+q)
	}
	if d := strings.TrimSpace(j.Description); d != "" {
		parts = append(parts, "Description:\n"+d)
	}
	if r := strings.TrimSpace(j.Requirements); r != "" {
		parts = append(parts, "Requirements:\n"+r)
	}
	return strings.Join(parts, "\n\n")
}
