package candidates

import "errors"

var (
	ErrNotFound     = errors.New("candidate not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtractionFailed marks a resume upload whose provider extraction
	// call failed. The candidate keeps an empty profile tagged
	// ExtractionFailed so callers can tell "failed" from "no data".
	ErrExtractionFailed = errors.New("profile extraction failed")
)
