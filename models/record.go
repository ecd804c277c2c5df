package models

import (
	"encoding/json"
	"time"
)

// SyncStatus tracks a record's relationship to the remote authority.
type SyncStatus string

const (
	// StatusPending marks unacknowledged local changes (create, edit, or
	// soft delete) that the next push cycle must send.
	StatusPending SyncStatus = "pending"

	// StatusSynced means the local version equals the value last
	// acknowledged by the authority.
	StatusSynced SyncStatus = "synced"

	// StatusConflict means the last push was rejected because the remote
	// version advanced past local belief. Cleared only by user action.
	StatusConflict SyncStatus = "conflict"
)

// SyncRecord is one row in one of the syncable tables. The field payload is
// kept opaque (json.RawMessage); the registry's per-table mapping is the only
// place that interprets it.
type SyncRecord struct {
	ID     string    `json:"id"`
	UserID int64     `json:"user_id"`
	Table  TableName `json:"table_name"`

	// Version is the per-record monotonic counter assigned by the
	// authority on each acknowledged write. Zero means never synced.
	Version int64 `json:"version"`

	// DeletedAt non-nil marks the record as a tombstone awaiting
	// propagation and eventual pruning.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	SyncStatus SyncStatus `json:"sync_status"`
	SyncError  string     `json:"sync_error,omitempty"`

	// ConflictRemoteVersion is the authority's version at the moment a
	// conflict was detected, when the authority reported it. Used by the
	// conflict-resolution primitives; zero when unknown.
	ConflictRemoteVersion int64 `json:"conflict_remote_version,omitempty"`

	Data json.RawMessage `json:"data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsTombstone reports whether the record is soft-deleted.
func (r SyncRecord) IsTombstone() bool {
	return r.DeletedAt != nil
}

// ParentRefs extracts the record's foreign-key parents via the table
// registry. Records in tables without parents return an empty slice.
func (r SyncRecord) ParentRefs() ([]ParentRef, error) {
	spec, err := Spec(r.Table)
	if err != nil {
		return nil, err
	}
	if spec.ParentRefs == nil || len(r.Data) == 0 {
		return nil, nil
	}
	return spec.ParentRefs(r.Data)
}
