package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/models"
)

type syncMetadataRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncMetadataRepository constructs the SQLite-backed checkpoint store.
func NewSyncMetadataRepository(db *DB, logger *logger.Logger) SyncMetadataRepository {
	return &syncMetadataRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *syncMetadataRepository) Checkpoint(ctx context.Context, userID int64) (int64, error) {
	checkpoints, err := s.TableCheckpoints(ctx, userID)
	if err != nil {
		return 0, err
	}

	// The global checkpoint is the minimum across all tables, with absent
	// rows counting as zero. Conservative on purpose: after a crash
	// mid-apply no table is ever consulted above data it has ingested.
	var minVersion int64
	for i, table := range models.SyncOrder() {
		v := checkpoints[table]
		if i == 0 || v < minVersion {
			minVersion = v
		}
	}

	return minVersion, nil
}

func (s *syncMetadataRepository) TableCheckpoints(ctx context.Context, userID int64) (map[models.TableName]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getTableCheckpoints, userID)
	if err != nil {
		log.Err(err).
			Str("func", "syncMetadataRepository.TableCheckpoints").
			Int64("user_id", userID).
			Msg("failed to query sync metadata")
		return nil, fmt.Errorf("failed to query sync metadata: %w", err)
	}
	defer rows.Close()

	checkpoints := make(map[models.TableName]int64, len(models.SyncOrder()))
	for rows.Next() {
		var table models.TableName
		var version int64
		if scanErr := rows.Scan(&table, &version); scanErr != nil {
			return nil, fmt.Errorf("failed to scan sync metadata row: %w", scanErr)
		}
		checkpoints[table] = version
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating sync metadata rows: %w", rowsErr)
	}

	return checkpoints, nil
}

func (s *syncMetadataRepository) RecordError(ctx context.Context, userID int64, table models.TableName, message string) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, recordTableSyncError, userID, table, message, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "syncMetadataRepository.RecordError").
			Int64("user_id", userID).
			Str("table", string(table)).
			Msg("failed to record table sync error")
		return fmt.Errorf("failed to record sync error (table=%s): %w", table, err)
	}

	return nil
}

func (s *syncMetadataRepository) LowerCheckpoint(ctx context.Context, userID int64, table models.TableName, version int64) error {
	log := logger.FromContext(ctx)

	if version < 0 {
		version = 0
	}

	_, err := s.DB.ExecContext(ctx, lowerTableCheckpoint, userID, table, version, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "syncMetadataRepository.LowerCheckpoint").
			Int64("user_id", userID).
			Str("table", string(table)).
			Int64("version", version).
			Msg("failed to lower table checkpoint")
		return fmt.Errorf("failed to lower checkpoint (table=%s): %w", table, err)
	}

	return nil
}

func (s *syncMetadataRepository) PruneTombstones(ctx context.Context, userID int64, retentionDays int) (models.PruneResult, error) {
	log := logger.FromContext(ctx)

	if retentionDays <= 0 {
		retentionDays = 30
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	result := models.PruneResult{ByTable: make(map[models.TableName]int)}

	err := s.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		for _, table := range models.SyncOrder() {
			// Only authority-confirmed tombstones are eligible: a pending
			// tombstone still has a delete to propagate.
			query, args, buildErr := sq.Delete("sync_records").
				Where(sq.Eq{"user_id": userID, "table_name": table, "sync_status": models.StatusSynced}).
				Where(sq.NotEq{"deleted_at": nil}).
				Where(sq.Lt{"deleted_at": cutoff}).
				ToSql()
			if buildErr != nil {
				return fmt.Errorf("failed to build prune query: %w", buildErr)
			}

			res, execErr := tx.ExecContext(ctx, query, args...)
			if execErr != nil {
				return fmt.Errorf("failed to prune tombstones (table=%s): %w", table, execErr)
			}

			affected, raErr := res.RowsAffected()
			if raErr != nil {
				return fmt.Errorf("failed to get pruned row count: %w", raErr)
			}
			if affected > 0 {
				result.ByTable[table] = int(affected)
				result.PrunedCount += int(affected)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "syncMetadataRepository.PruneTombstones").
			Int64("user_id", userID).
			Msg("tombstone prune transaction failed")
		return models.PruneResult{}, err
	}

	return result, nil
}
