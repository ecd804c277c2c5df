package models

import (
	"encoding/json"
	"time"
)

// Wire shapes for the remote-authority contract. The transport is JSON over
// HTTP; these types are shared by the adapter and the in-repo dev authority.

// CheckChangesResponse answers the lightweight "anything newer than my
// checkpoint?" probe.
type CheckChangesResponse struct {
	HasChanges          bool  `json:"has_changes"`
	LatestServerVersion int64 `json:"latest_server_version"`
}

// RemoteRecord is one record as the authority ships it: the stable ID, the
// authority-assigned version, an optional deletion marker, and the opaque
// field payload.
type RemoteRecord struct {
	ID        string          `json:"id"`
	Version   int64           `json:"version"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// ChangesPage is one page of a changes-since fetch. The maximum version in a
// full page is the resumption cursor for the next page.
type ChangesPage struct {
	Records []RemoteRecord `json:"records"`
}

// PushRecord is one record as the replica ships it in a batch upsert.
// Version is the replica's base version (the authority rejects the write as
// a conflict when its own version is higher).
type PushRecord struct {
	ID        string          `json:"id"`
	Version   int64           `json:"version"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// BatchUpsertRequest carries one chunk of pending records for one table.
type BatchUpsertRequest struct {
	Records []PushRecord `json:"records"`
}

// BatchUpsertResponse reports per-record outcomes for one chunk. IDs present
// in none of the three sets are treated as transient failures and retried on
// the next cycle.
type BatchUpsertResponse struct {
	SyncedIDs []string `json:"synced_ids"`

	// SyncedVersions maps each synced ID to the version the authority
	// assigned on this write.
	SyncedVersions map[string]int64 `json:"synced_versions"`

	ConflictIDs []string `json:"conflict_ids"`

	// ConflictVersions maps conflicted IDs to the authority's current
	// version where known; used by the conflict-resolution primitives.
	ConflictVersions map[string]int64 `json:"conflict_versions,omitempty"`

	// ErrorMap carries free-form per-ID diagnostics. Never escalated to a
	// fatal condition by the replica.
	ErrorMap map[string]string `json:"error_map,omitempty"`
}

// Delete outcome error codes for the versioned delete endpoint.
const (
	DeleteErrVersionConflict = "version_conflict"
	DeleteErrNotFound        = "not_found"
)

// DeleteOutcome is the authority's answer to a delete-with-version request.
type DeleteOutcome struct {
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	CurrentVersion int64  `json:"current_version,omitempty"`
}
