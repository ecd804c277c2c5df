package adapter

import "errors"

var (
	// ErrUnauthorized means the authority rejected the bearer token.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrVersionConflict means the authority's version advanced past local
	// belief; surfaced per-record, never retried as-is.
	ErrVersionConflict = errors.New("version conflict")
)
