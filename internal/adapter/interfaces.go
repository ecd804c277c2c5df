package adapter

import (
	"context"

	"github.com/centavohq/centavo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteAuthority is the engine's view of the central backend. Transport
// errors are returned as-is; the engine treats them uniformly as per-batch
// transient failures. Timeouts belong to the transport, not the engine.
type RemoteAuthority interface {
	// CheckForChanges is the lightweight probe: "are there changes newer
	// than sinceVersion, and what is your current latest version?"
	CheckForChanges(ctx context.Context, userID, sinceVersion int64) (models.CheckChangesResponse, error)

	// GetChangesSince fetches one page of a table's changes with versions
	// strictly greater than sinceVersion. The maximum version in a full
	// page is the resumption cursor for the next call.
	GetChangesSince(ctx context.Context, table models.TableName, userID, sinceVersion int64, limit int) ([]models.RemoteRecord, error)

	// BatchUpsert sends one chunk of pending records and returns the
	// per-record outcome sets.
	BatchUpsert(ctx context.Context, table models.TableName, userID int64, records []models.PushRecord) (models.BatchUpsertResponse, error)

	// DeleteWithVersion deletes a single record with delete-time version
	// checking, for tables whose registry entry demands it.
	DeleteWithVersion(ctx context.Context, table models.TableName, userID int64, id string, expectedVersion int64) (models.DeleteOutcome, error)

	// SetToken installs the bearer token identifying the user scope.
	SetToken(token string)
}
