package storage

import "errors"

// Normalized error taxonomy. Both backends signal failures through these
// sentinels so callers can errors.Is on them regardless of the backend.
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrTransactionFailure  = errors.New("transaction failed")
)
