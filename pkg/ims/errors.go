package ims

import "errors"

// Service errors.
var (
	// ErrServiceUnavailable is returned by query operations that require a
	// live connection to the feature service when none exists. Callers
	// should retry once connectivity resumes.
	ErrServiceUnavailable = errors.New("feature service unavailable")

	// ErrServiceDown indicates the connection to the feature service was
	// lost while setting it up. The connector treats this as a recoverable
	// connection failure.
	ErrServiceDown = errors.New("feature service down")
)
