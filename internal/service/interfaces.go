package service

import (
	"context"
	"encoding/json"

	"github.com/centavohq/centavo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PushEngine sends local pending changes to the remote authority in two
// phases per cycle: prune (tombstones) then plant (creates and edits), both
// walking tables in fixed dependency order.
type PushEngine interface {
	PushPendingChanges(ctx context.Context, userID int64) (models.PushResult, error)
}

// PullEngine fetches remote changes newer than the local checkpoint and
// applies them atomically, advancing the checkpoint in the same transaction.
type PullEngine interface {
	PullIncrementalChanges(ctx context.Context, userID int64) (models.PullResult, error)
}

// Orchestrator runs full sync cycles (push then pull) with single-flight
// protection and exposes the current phase for the UI.
type Orchestrator interface {
	// RunFullCycle executes one push-then-pull cycle. Returns
	// ErrSyncInProgress when a cycle is already running and ErrOffline when
	// the device is marked offline.
	RunFullCycle(ctx context.Context, userID int64) (models.CycleResult, error)

	// Phase returns the cycle phase currently in progress.
	Phase() models.SyncPhase

	// SetOnlineStatus flips the engine's connectivity belief.
	SetOnlineStatus(online bool)

	// Online reports the engine's current connectivity belief.
	Online() bool

	// FollowUp yields a signal whenever a finished pull left more remote
	// data behind (safety limit hit) and an immediate follow-up cycle
	// should be scheduled.
	FollowUp() <-chan struct{}
}

// ConflictService exposes surfaced conflicts and the two resolution
// primitives. The engine never resolves a conflict on its own.
type ConflictService interface {
	// ListConflicts returns every record currently surfaced as a conflict.
	ListConflicts(ctx context.Context, userID int64) ([]models.SyncRecord, error)

	// DiscardLocal drops the local copy of a conflicted record and lowers
	// the table checkpoint so the next pull restores the authority's copy.
	DiscardLocal(ctx context.Context, userID int64, table models.TableName, id string) error

	// RetryWithLocal re-bases the conflicted record on the authority's
	// version and returns it to pending, so the next push sends the local
	// data on top of the remote state.
	RetryWithLocal(ctx context.Context, userID int64, table models.TableName, id string) error
}

// RecordService is the local write path the UI uses. Every mutation lands as
// a pending record; edits against records with an in-flight push are buffered
// and replayed once the push outcome is applied.
type RecordService interface {
	Create(ctx context.Context, userID int64, table models.TableName, data json.RawMessage) (models.SyncRecord, error)
	Update(ctx context.Context, userID int64, table models.TableName, id string, data json.RawMessage) (models.SyncRecord, error)
	SoftDelete(ctx context.Context, userID int64, table models.TableName, id string) error
	Get(ctx context.Context, userID int64, table models.TableName, id string) (models.SyncRecord, error)
}

// TombstonePruner removes authority-confirmed tombstones older than the
// retention window from the local replica.
type TombstonePruner interface {
	PruneExpiredTombstones(ctx context.Context, userID int64) (models.PruneResult, error)
}
