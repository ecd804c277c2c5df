package service

import (
	"context"
	"fmt"
	"time"

	"github.com/centavohq/centavo/internal/adapter"
	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/store"
	"github.com/centavohq/centavo/models"
)

type pushEngine struct {
	records store.LocalRecordRepository
	meta    store.SyncMetadataRepository
	remote  adapter.RemoteAuthority
	locks   *MutationLockManager
	cfg     config.ClientSync
	phase   func(models.SyncPhase)
	logger  *logger.Logger
}

// NewPushEngine constructs the push half of the sync engine. The phase hook
// is invoked as the engine moves between the prune and plant stages; pass nil
// when no observer is wired.
func NewPushEngine(
	records store.LocalRecordRepository,
	meta store.SyncMetadataRepository,
	remote adapter.RemoteAuthority,
	locks *MutationLockManager,
	cfg config.ClientSync,
	phase func(models.SyncPhase),
	log *logger.Logger,
) PushEngine {
	if phase == nil {
		phase = func(models.SyncPhase) {}
	}
	return &pushEngine{
		records: records,
		meta:    meta,
		remote:  remote,
		locks:   locks,
		cfg:     cfg,
		phase:   phase,
		logger:  log,
	}
}

// PushPendingChanges runs one push cycle: first every table's tombstones
// (prune), then every table's creates and edits (plant), both in fixed
// dependency order. A record whose parent failed, conflicted, or was skipped
// earlier in the same cycle is chain-skipped and retried next cycle. One
// table failing wholesale never aborts the cycle; the remaining tables still
// push, minus the failed table's dependents.
func (e *pushEngine) PushPendingChanges(ctx context.Context, userID int64) (result models.PushResult, err error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	result = models.PushResult{
		Success:  true,
		PerTable: make(map[models.TableName]*models.TablePushResult),
	}
	for _, table := range models.SyncOrder() {
		result.PerTable[table] = &models.TablePushResult{Table: table}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("func", "pushEngine.PushPendingChanges").
				Interface("panic", r).
				Msg("push cycle panicked")
			result.Success = false
			result.Error = fmt.Sprintf("push panicked: %v", r)
			err = fmt.Errorf("push panicked: %v", r)
		}
		result.Duration = time.Since(start)
	}()

	tracker := newFailedParentTracker()

	e.phase(models.PhasePruning)
	for _, table := range models.SyncOrder() {
		e.pushTableTombstones(ctx, userID, table, tracker, result.PerTable[table])
	}

	e.phase(models.PhasePlanting)
	for _, table := range models.SyncOrder() {
		e.pushTableUpserts(ctx, userID, table, tracker, result.PerTable[table])
	}

	for _, tr := range result.PerTable {
		result.TotalPushed += tr.Pushed
		result.TotalConflicts += tr.Conflicts
		result.TotalFailures += tr.Failures
		if tr.Error != "" || tr.Failures > 0 {
			result.Success = false
		}
	}

	log.Info().
		Str("func", "pushEngine.PushPendingChanges").
		Int64("user_id", userID).
		Int("pushed", result.TotalPushed).
		Int("conflicts", result.TotalConflicts).
		Int("failures", result.TotalFailures).
		Dur("duration", time.Since(start)).
		Msg("push cycle finished")

	return result, nil
}

// pushTableTombstones is the prune stage for one table. Tables flagged for
// delete-time conflict checking go through the per-record versioned delete
// endpoint; everything else ships its tombstones as batched upserts.
func (e *pushEngine) pushTableTombstones(ctx context.Context, userID int64, table models.TableName, tracker *failedParentTracker, tr *models.TablePushResult) {
	log := logger.FromContext(ctx)

	tombstones, err := e.records.ListPending(ctx, userID, table, true)
	if err != nil {
		e.failTable(ctx, userID, table, tracker, tr, tombstones, fmt.Errorf("list pending tombstones: %w", err))
		return
	}
	if len(tombstones) == 0 {
		return
	}

	spec, err := models.Spec(table)
	if err != nil {
		e.failTable(ctx, userID, table, tracker, tr, tombstones, err)
		return
	}

	log.Debug().
		Str("func", "pushEngine.pushTableTombstones").
		Str("table", string(table)).
		Int("count", len(tombstones)).
		Msg("pruning tombstones")

	if spec.DeleteConflictCheck {
		e.deleteWithVersionEach(ctx, userID, table, tombstones, tracker, tr)
		return
	}
	e.pushChunks(ctx, userID, table, tombstones, tracker, tr)
}

// pushTableUpserts is the plant stage for one table.
func (e *pushEngine) pushTableUpserts(ctx context.Context, userID int64, table models.TableName, tracker *failedParentTracker, tr *models.TablePushResult) {
	pending, err := e.records.ListPending(ctx, userID, table, false)
	if err != nil {
		e.failTable(ctx, userID, table, tracker, tr, pending, fmt.Errorf("list pending records: %w", err))
		return
	}
	if len(pending) == 0 {
		return
	}

	e.pushChunks(ctx, userID, table, pending, tracker, tr)
}

// pushChunks filters out chain-skipped records, then ships the rest in
// batches of at most PushBatchSize, applying per-record outcomes after each
// batch.
func (e *pushEngine) pushChunks(ctx context.Context, userID int64, table models.TableName, recs []models.SyncRecord, tracker *failedParentTracker, tr *models.TablePushResult) {
	log := logger.FromContext(ctx)

	sendable := make([]models.SyncRecord, 0, len(recs))
	for _, rec := range recs {
		if parent, blocked := tracker.BlockedBy(rec); blocked {
			tracker.Add(table, rec.ID)
			tr.Skipped++
			log.Debug().
				Str("func", "pushEngine.pushChunks").
				Str("table", string(table)).
				Str("id", rec.ID).
				Str("blocked_by_table", string(parent.Table)).
				Str("blocked_by_id", parent.ID).
				Msg("chain-skipped record")
			continue
		}
		sendable = append(sendable, rec)
	}

	batchSize := e.cfg.PushBatchSize
	if batchSize <= 0 {
		batchSize = 50
	}

	for offset := 0; offset < len(sendable); offset += batchSize {
		end := offset + batchSize
		if end > len(sendable) {
			end = len(sendable)
		}
		e.pushBatch(ctx, userID, table, sendable[offset:end], tracker, tr)
	}
}

// pushBatch sends one chunk and maps the authority's per-record outcomes
// back onto local state. The chunk's records are locked for the duration so
// concurrent local edits are buffered, then replayed as pending afterwards.
func (e *pushEngine) pushBatch(ctx context.Context, userID int64, table models.TableName, batch []models.SyncRecord, tracker *failedParentTracker, tr *models.TablePushResult) {
	log := logger.FromContext(ctx)

	ids := make([]string, len(batch))
	wire := make([]models.PushRecord, len(batch))
	byID := make(map[string]models.SyncRecord, len(batch))
	for i, rec := range batch {
		ids[i] = rec.ID
		byID[rec.ID] = rec
		wire[i] = models.PushRecord{
			ID:        rec.ID,
			Version:   rec.Version,
			DeletedAt: rec.DeletedAt,
			Data:      rec.Data,
		}
	}

	e.locks.Lock(table, ids)
	defer e.replayBuffered(ctx, table, ids)

	resp, err := e.remote.BatchUpsert(ctx, table, userID, wire)
	if err != nil {
		e.failTable(ctx, userID, table, tracker, tr, batch, fmt.Errorf("batch upsert: %w", err))
		return
	}

	acked := make(map[string]struct{}, len(batch))

	for _, id := range resp.SyncedIDs {
		rec, ok := byID[id]
		if !ok {
			continue
		}
		acked[id] = struct{}{}
		version, known := resp.SyncedVersions[id]
		if !known {
			version = rec.Version + 1
		}
		if markErr := e.records.MarkSynced(ctx, userID, table, id, version); markErr != nil {
			log.Err(markErr).
				Str("func", "pushEngine.pushBatch").
				Str("table", string(table)).
				Str("id", id).
				Msg("failed to mark record synced")
			continue
		}
		tr.Pushed++
	}

	for _, id := range resp.ConflictIDs {
		if _, ok := byID[id]; !ok {
			continue
		}
		acked[id] = struct{}{}
		message := resp.ErrorMap[id]
		if message == "" {
			message = "version conflict"
		}
		if markErr := e.records.MarkConflict(ctx, userID, table, id, message, resp.ConflictVersions[id]); markErr != nil {
			log.Err(markErr).
				Str("func", "pushEngine.pushBatch").
				Str("table", string(table)).
				Str("id", id).
				Msg("failed to mark record conflicted")
		}
		tracker.Add(table, id)
		tr.Conflicts++
	}

	// Anything the authority did not acknowledge either way stays pending
	// and is retried next cycle; its dependents are skipped this cycle.
	for _, rec := range batch {
		if _, ok := acked[rec.ID]; ok {
			continue
		}
		message := resp.ErrorMap[rec.ID]
		if message == "" {
			message = "no acknowledgement from authority"
		}
		if markErr := e.records.MarkPending(ctx, userID, table, rec.ID, message); markErr != nil {
			log.Err(markErr).
				Str("func", "pushEngine.pushBatch").
				Str("table", string(table)).
				Str("id", rec.ID).
				Msg("failed to mark record pending")
		}
		tracker.Add(table, rec.ID)
		tr.Failures++
	}
}

// deleteWithVersionEach pushes tombstones one record at a time through the
// versioned delete endpoint, mapping each outcome onto local state.
func (e *pushEngine) deleteWithVersionEach(ctx context.Context, userID int64, table models.TableName, tombstones []models.SyncRecord, tracker *failedParentTracker, tr *models.TablePushResult) {
	log := logger.FromContext(ctx)

	for _, rec := range tombstones {
		e.locks.Lock(table, []string{rec.ID})

		outcome, err := e.remote.DeleteWithVersion(ctx, table, userID, rec.ID, rec.Version)
		switch {
		case err != nil:
			if markErr := e.records.MarkPending(ctx, userID, table, rec.ID, err.Error()); markErr != nil {
				log.Err(markErr).
					Str("func", "pushEngine.deleteWithVersionEach").
					Str("table", string(table)).
					Str("id", rec.ID).
					Msg("failed to mark tombstone pending")
			}
			tracker.Add(table, rec.ID)
			tr.Failures++

		case outcome.Success, outcome.Error == models.DeleteErrNotFound:
			// Not-found means the authority already has no such record; the
			// delete's intent is satisfied either way.
			if markErr := e.records.MarkSynced(ctx, userID, table, rec.ID, rec.Version); markErr != nil {
				log.Err(markErr).
					Str("func", "pushEngine.deleteWithVersionEach").
					Str("table", string(table)).
					Str("id", rec.ID).
					Msg("failed to mark tombstone synced")
			}
			tr.Pushed++

		case outcome.Error == models.DeleteErrVersionConflict:
			if markErr := e.records.MarkConflict(ctx, userID, table, rec.ID, "delete rejected: version conflict", outcome.CurrentVersion); markErr != nil {
				log.Err(markErr).
					Str("func", "pushEngine.deleteWithVersionEach").
					Str("table", string(table)).
					Str("id", rec.ID).
					Msg("failed to mark tombstone conflicted")
			}
			tracker.Add(table, rec.ID)
			tr.Conflicts++

		default:
			if markErr := e.records.MarkPending(ctx, userID, table, rec.ID, outcome.Error); markErr != nil {
				log.Err(markErr).
					Str("func", "pushEngine.deleteWithVersionEach").
					Str("table", string(table)).
					Str("id", rec.ID).
					Msg("failed to mark tombstone pending")
			}
			tracker.Add(table, rec.ID)
			tr.Failures++
		}

		e.replayBuffered(ctx, table, []string{rec.ID})
	}
}

// failTable records a wholesale table failure: every record in the set stays
// pending and feeds the tracker so its dependents are skipped this cycle.
func (e *pushEngine) failTable(ctx context.Context, userID int64, table models.TableName, tracker *failedParentTracker, tr *models.TablePushResult, recs []models.SyncRecord, cause error) {
	log := logger.FromContext(ctx)

	log.Err(cause).
		Str("func", "pushEngine.failTable").
		Str("table", string(table)).
		Int64("user_id", userID).
		Msg("table push failed")

	tr.Error = cause.Error()
	tr.Failures += len(recs)
	for _, rec := range recs {
		tracker.Add(table, rec.ID)
		if markErr := e.records.MarkPending(ctx, userID, table, rec.ID, cause.Error()); markErr != nil {
			log.Err(markErr).
				Str("func", "pushEngine.failTable").
				Str("table", string(table)).
				Str("id", rec.ID).
				Msg("failed to mark record pending after table failure")
		}
	}

	if metaErr := e.meta.RecordError(ctx, userID, table, cause.Error()); metaErr != nil {
		log.Err(metaErr).
			Str("func", "pushEngine.failTable").
			Str("table", string(table)).
			Msg("failed to record table sync error")
	}
}

// replayBuffered releases the records' push locks and re-persists any edits
// buffered while the push was in flight. A buffered edit always lands as
// pending, overriding whatever outcome the push just applied.
func (e *pushEngine) replayBuffered(ctx context.Context, table models.TableName, ids []string) {
	log := logger.FromContext(ctx)

	for _, rec := range e.locks.Release(table, ids) {
		rec.SyncStatus = models.StatusPending
		rec.SyncError = ""
		if saveErr := e.records.Save(ctx, rec); saveErr != nil {
			log.Err(saveErr).
				Str("func", "pushEngine.replayBuffered").
				Str("table", string(rec.Table)).
				Str("id", rec.ID).
				Msg("failed to replay buffered edit")
		}
	}
}
