package application

import "errors"

// Service-level error taxonomy. Handlers collapse these into the external
// 404/400 contract, but the classification is kept distinct internally so
// failures stay attributable in logs and tests.
var (
	// ErrNotFound means a directly requested entity does not exist.
	ErrNotFound = errors.New("entity not found")
	// ErrPrecondition means a referential-integrity precondition was
	// violated (missing referenced entity, duplicate profile, subscription
	// state mismatch).
	ErrPrecondition = errors.New("precondition failed")
	// ErrValidation means the input itself is unacceptable regardless of
	// store state (e.g. a sentinel-invalid id).
	ErrValidation = errors.New("invalid input")
)
