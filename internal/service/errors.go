package service

import "errors"

var (
	// ErrSyncInProgress is returned when a cycle is requested while another
	// cycle is already running. The caller should wait for the running cycle.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrOffline is returned when a cycle is requested while the device is
	// marked offline.
	ErrOffline = errors.New("device is offline")

	// ErrNotConflicted is returned by the conflict-resolution primitives when
	// the target record is not in the conflict state.
	ErrNotConflicted = errors.New("record is not in conflict state")

	// ErrRecordConflicted is returned when a plain edit targets a conflicted
	// record; conflicted records are only mutated through resolution.
	ErrRecordConflicted = errors.New("record has an unresolved conflict")

	// ErrRecordDeleted is returned when an edit targets a tombstoned record.
	ErrRecordDeleted = errors.New("record is deleted")

	// ErrEmptyPayload is returned when a create or update carries no field
	// payload.
	ErrEmptyPayload = errors.New("record payload is empty")
)
