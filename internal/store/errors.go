package store

import "errors"

var (
	// ErrRecordNotFound is returned when a record lookup matches no row.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnknownTable is returned when a caller names a table outside the
	// closed syncable set.
	ErrUnknownTable = errors.New("unknown syncable table")
)
