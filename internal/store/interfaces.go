package store

import (
	"context"

	"github.com/centavohq/centavo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalRecordRepository is the device-local replica's record store. All
// operations are scoped to one user.
type LocalRecordRepository interface {
	// Save upserts a full record row (used by local edits and buffered
	// edit replay).
	Save(ctx context.Context, rec models.SyncRecord) error

	// Get loads one record. Returns ErrRecordNotFound when absent.
	Get(ctx context.Context, userID int64, table models.TableName, id string) (models.SyncRecord, error)

	// ListPending returns the table's locally pending records: the prune
	// set when tombstoned is true, the plant set otherwise.
	ListPending(ctx context.Context, userID int64, table models.TableName, tombstoned bool) ([]models.SyncRecord, error)

	// ListConflicts returns every record currently surfaced as a conflict,
	// across all tables, for UI presentation.
	ListConflicts(ctx context.Context, userID int64) ([]models.SyncRecord, error)

	// MarkSynced records an authority ack: status synced, version
	// overwritten with the authority-assigned value.
	MarkSynced(ctx context.Context, userID int64, table models.TableName, id string, version int64) error

	// MarkConflict surfaces a version conflict with the authority's
	// verbatim message and, where known, its current version.
	MarkConflict(ctx context.Context, userID int64, table models.TableName, id, message string, remoteVersion int64) error

	// MarkPending keeps (or returns) a record to the pending state,
	// storing message as a retry diagnostic.
	MarkPending(ctx context.Context, userID int64, table models.TableName, id, message string) error

	// DeletePhysical removes the row outright. Used by conflict discard;
	// tombstone pruning goes through SyncMetadataRepository.
	DeletePhysical(ctx context.Context, userID int64, table models.TableName, id string) error

	// ApplyPullBatch applies one pull cycle's changes inside a single
	// all-or-nothing transaction: every upsert, every tombstone, then the
	// per-table checkpoint advancement. Partial application is never
	// observable.
	ApplyPullBatch(ctx context.Context, userID int64, changes []models.TableChanges, advance map[models.TableName]int64) error
}

// SyncMetadataRepository owns the per-table checkpoints and the tombstone
// retention policy.
type SyncMetadataRepository interface {
	// Checkpoint returns the effective global checkpoint: the minimum
	// last-synced version across all syncable tables (absent rows count
	// as zero).
	Checkpoint(ctx context.Context, userID int64) (int64, error)

	// TableCheckpoints returns each table's stored checkpoint.
	TableCheckpoints(ctx context.Context, userID int64) (map[models.TableName]int64, error)

	// RecordError stores a per-table diagnostic without touching the
	// checkpoint.
	RecordError(ctx context.Context, userID int64, table models.TableName, message string) error

	// LowerCheckpoint lowers one table's checkpoint (no-op when already
	// lower). Only the conflict-discard path calls this.
	LowerCheckpoint(ctx context.Context, userID int64, table models.TableName, version int64) error

	// PruneTombstones physically removes soft-deleted, authority-confirmed
	// records older than the retention window.
	PruneTombstones(ctx context.Context, userID int64, retentionDays int) (models.PruneResult, error)
}
