package match

import "errors"

var (
	// ErrProfileUnavailable marks a candidate whose last resume extraction
	// failed; scoring would grade an empty profile that should exist.
	ErrProfileUnavailable = errors.New("candidate profile unavailable")

	// ErrScoringFailed marks a failed or malformed scoring call.
	ErrScoringFailed = errors.New("match scoring failed")

	// ErrScoringTimeout marks a scoring call that exceeded its deadline.
	ErrScoringTimeout = errors.New("match scoring timed out")
)
