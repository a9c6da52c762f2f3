package applications

import "errors"

var (
	ErrNotFound     = errors.New("application not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate marks a second application by the same candidate to the
	// same job.
	ErrDuplicate = errors.New("candidate already applied to this job")
)
