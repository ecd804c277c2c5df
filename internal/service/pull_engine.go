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

type pullEngine struct {
	records store.LocalRecordRepository
	meta    store.SyncMetadataRepository
	remote  adapter.RemoteAuthority
	cfg     config.ClientSync
	phase   func(models.SyncPhase)
	logger  *logger.Logger
}

// NewPullEngine constructs the pull half of the sync engine.
func NewPullEngine(
	records store.LocalRecordRepository,
	meta store.SyncMetadataRepository,
	remote adapter.RemoteAuthority,
	cfg config.ClientSync,
	phase func(models.SyncPhase),
	log *logger.Logger,
) PullEngine {
	if phase == nil {
		phase = func(models.SyncPhase) {}
	}
	return &pullEngine{
		records: records,
		meta:    meta,
		remote:  remote,
		cfg:     cfg,
		phase:   phase,
		logger:  log,
	}
}

// PullIncrementalChanges runs one pull cycle:
//
//  1. Probe the authority with the global checkpoint; a quiet answer makes
//     the cycle a no-op.
//  2. Fetch each table's changes newer than the checkpoint, page by page,
//     capped at MaxRecordsPerTable per table per cycle.
//  3. Apply every fetched record and every checkpoint advancement in one
//     all-or-nothing transaction.
//
// A table that hit its per-cycle cap advances only to the highest version it
// actually ingested; the result's HasMore flag tells the caller to schedule
// an immediate follow-up cycle.
func (e *pullEngine) PullIncrementalChanges(ctx context.Context, userID int64) (result models.PullResult, err error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	e.phase(models.PhasePulling)

	result = models.PullResult{TableStats: make(map[models.TableName]*models.TablePullStats)}
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("func", "pullEngine.PullIncrementalChanges").
				Interface("panic", r).
				Msg("pull cycle panicked")
			result.Success = false
			result.Error = fmt.Sprintf("pull panicked: %v", r)
			err = fmt.Errorf("pull panicked: %v", r)
		}
		result.Duration = time.Since(start)
	}()

	checkpoint, err := e.meta.Checkpoint(ctx, userID)
	if err != nil {
		result.Error = err.Error()
		return result, fmt.Errorf("load checkpoint: %w", err)
	}

	check, err := e.remote.CheckForChanges(ctx, userID, checkpoint)
	if err != nil {
		result.Error = err.Error()
		return result, fmt.Errorf("check for changes: %w", err)
	}
	// A latest version at or below the checkpoint means nothing new, even if
	// the authority set the changes flag.
	if !check.HasChanges || check.LatestServerVersion <= checkpoint {
		result.Success = true
		result.NewHighWaterMark = checkpoint
		return result, nil
	}

	log.Debug().
		Str("func", "pullEngine.PullIncrementalChanges").
		Int64("user_id", userID).
		Int64("checkpoint", checkpoint).
		Int64("latest_server_version", check.LatestServerVersion).
		Msg("remote has changes, fetching")

	changes := make([]models.TableChanges, 0, len(models.SyncOrder()))
	for _, table := range models.SyncOrder() {
		tc, fetchErr := e.fetchTableChanges(ctx, userID, table, checkpoint)
		if fetchErr != nil {
			// Nothing has been applied yet, so failing the whole cycle here
			// keeps the replica exactly where it was.
			result.Error = fetchErr.Error()
			if metaErr := e.meta.RecordError(ctx, userID, table, fetchErr.Error()); metaErr != nil {
				log.Err(metaErr).
					Str("func", "pullEngine.PullIncrementalChanges").
					Str("table", string(table)).
					Msg("failed to record table sync error")
			}
			return result, fmt.Errorf("fetch changes (table=%s): %w", table, fetchErr)
		}
		changes = append(changes, tc)
	}

	advance := e.advanceTargets(changes, check.LatestServerVersion)

	if err = e.records.ApplyPullBatch(ctx, userID, changes, advance); err != nil {
		result.Error = err.Error()
		return result, fmt.Errorf("apply pull batch: %w", err)
	}

	result.Success = true
	for _, tc := range changes {
		result.TableStats[tc.Table] = &models.TablePullStats{
			Table:          tc.Table,
			Upserts:        len(tc.Upserts),
			Tombstones:     len(tc.Tombstones),
			Pages:          tc.Pages,
			MaxVersion:     tc.MaxVersion,
			HitSafetyLimit: tc.HitSafetyLimit,
		}
		if tc.HitSafetyLimit {
			result.HasMore = true
		}
	}

	result.NewHighWaterMark = globalCheckpoint(advance)

	log.Info().
		Str("func", "pullEngine.PullIncrementalChanges").
		Int64("user_id", userID).
		Int64("new_high_water_mark", result.NewHighWaterMark).
		Bool("has_more", result.HasMore).
		Dur("duration", time.Since(start)).
		Msg("pull cycle finished")

	return result, nil
}

// fetchTableChanges pages through one table's changes-since feed. The cursor
// for each page is the maximum version seen in the previous page; a short
// page means the feed is exhausted.
func (e *pullEngine) fetchTableChanges(ctx context.Context, userID int64, table models.TableName, checkpoint int64) (models.TableChanges, error) {
	pageSize := e.cfg.PullPageSize
	if pageSize <= 0 {
		pageSize = 500
	}
	maxRecords := e.cfg.MaxRecordsPerTable
	if maxRecords <= 0 {
		maxRecords = 5000
	}
	maxPages := (maxRecords + pageSize - 1) / pageSize

	tc := models.TableChanges{Table: table, MaxVersion: checkpoint}
	cursor := checkpoint

	for tc.Pages < maxPages {
		page, err := e.remote.GetChangesSince(ctx, table, userID, cursor, pageSize)
		if err != nil {
			return models.TableChanges{}, err
		}
		if len(page) == 0 {
			return tc, nil
		}

		tc.Pages++
		pageMax := cursor
		for _, rec := range page {
			if rec.DeletedAt != nil {
				tc.Tombstones = append(tc.Tombstones, rec)
			} else {
				tc.Upserts = append(tc.Upserts, rec)
			}
			if rec.Version > pageMax {
				pageMax = rec.Version
			}
		}
		if pageMax > tc.MaxVersion {
			tc.MaxVersion = pageMax
		}

		if len(page) < pageSize {
			return tc, nil
		}
		// A full page whose versions did not advance the cursor would loop
		// forever; stop and let the next cycle resume.
		if pageMax <= cursor {
			tc.HitSafetyLimit = true
			return tc, nil
		}
		cursor = pageMax
	}

	tc.HitSafetyLimit = true
	return tc, nil
}

// advanceTargets decides each table's new checkpoint. A capped table only
// advances to the highest version it actually ingested; every other table's
// fetch was exhaustive, so it can advance past record-free gaps up to the
// authority's reported latest version. This is also what heals a stale
// checkpoint pointing below changes the replica already holds.
func (e *pullEngine) advanceTargets(changes []models.TableChanges, latestServerVersion int64) map[models.TableName]int64 {
	advance := make(map[models.TableName]int64, len(changes))
	for _, tc := range changes {
		if tc.HitSafetyLimit {
			advance[tc.Table] = tc.MaxVersion
			continue
		}
		target := tc.MaxVersion
		if latestServerVersion > target {
			target = latestServerVersion
		}
		advance[tc.Table] = target
	}
	return advance
}

// globalCheckpoint mirrors the store's rule: the effective checkpoint is the
// minimum across all tables.
func globalCheckpoint(advance map[models.TableName]int64) int64 {
	var minVersion int64
	for i, table := range models.SyncOrder() {
		v := advance[table]
		if i == 0 || v < minVersion {
			minVersion = v
		}
	}
	return minVersion
}
