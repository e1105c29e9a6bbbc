// Package common defines shared sentinel errors used across the simulated
// backend, the local store, and the sync client. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// ErrNotFound is returned when a job, candidate, or assessment does not
	// exist (the 404-equivalent).
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when a request is rejected before touching
	// any state, e.g. creating a job without a title (the 400-equivalent).
	ErrValidation = errors.New("validation error")

	// ErrUnavailable is returned when the simulated network injects a
	// transient failure. Callers are expected to retry manually.
	ErrUnavailable = errors.New("service unavailable")

	// ErrLocalStore is returned when the local database rejects an operation.
	ErrLocalStore = errors.New("local store error")
)
