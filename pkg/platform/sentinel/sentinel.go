package sentinel

import "errors"

// Sentinel dependency errors. Stores and caches should return these (optionally
// wrapped) so services can translate them into domain errors exactly once.
var (
	ErrNotFound    = errors.New("not found")
	ErrAlreadyUsed = errors.New("already used")
	ErrUnavailable = errors.New("unavailable")
)
