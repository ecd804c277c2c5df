package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/models"
)

type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRecordRepository constructs the SQLite-backed record repository.
func NewLocalRecordRepository(db *DB, logger *logger.Logger) LocalRecordRepository {
	return &localRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localRecordRepository) Save(ctx context.Context, rec models.SyncRecord) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err := l.DB.ExecContext(ctx, saveRecord,
		rec.UserID,
		rec.Table,
		rec.ID,
		rec.Version,
		string(rec.Data),
		rec.DeletedAt,
		rec.SyncStatus,
		nullableString(rec.SyncError),
		rec.ConflictRemoteVersion,
		createdAt,
		now,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.Save").
			Int64("user_id", rec.UserID).
			Str("table", string(rec.Table)).
			Str("id", rec.ID).
			Msg("failed to execute upsert for sync record")
		return fmt.Errorf("failed to save record (table=%s, id=%s): %w", rec.Table, rec.ID, err)
	}

	return nil
}

func (l *localRecordRepository) Get(ctx context.Context, userID int64, table models.TableName, id string) (models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	row := l.DB.QueryRowContext(ctx, getRecord, userID, table, id)
	rec, err := scanRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncRecord{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "localRecordRepository.Get").
			Int64("user_id", userID).
			Str("table", string(table)).
			Str("id", id).
			Msg("failed to scan sync record row")
		return models.SyncRecord{}, fmt.Errorf("failed to scan record row: %w", err)
	}

	return rec, nil
}

func (l *localRecordRepository) ListPending(ctx context.Context, userID int64, table models.TableName, tombstoned bool) ([]models.SyncRecord, error) {
	builder := sq.Select(recordColumns...).
		From("sync_records").
		Where(sq.Eq{"user_id": userID, "table_name": table, "sync_status": models.StatusPending}).
		OrderBy("updated_at ASC", "id ASC")

	if tombstoned {
		builder = builder.Where(sq.NotEq{"deleted_at": nil})
	} else {
		builder = builder.Where(sq.Eq{"deleted_at": nil})
	}

	return l.queryRecords(ctx, "localRecordRepository.ListPending", userID, builder)
}

func (l *localRecordRepository) ListConflicts(ctx context.Context, userID int64) ([]models.SyncRecord, error) {
	builder := sq.Select(recordColumns...).
		From("sync_records").
		Where(sq.Eq{"user_id": userID, "sync_status": models.StatusConflict}).
		OrderBy("table_name ASC", "updated_at ASC")

	return l.queryRecords(ctx, "localRecordRepository.ListConflicts", userID, builder)
}

func (l *localRecordRepository) MarkSynced(ctx context.Context, userID int64, table models.TableName, id string, version int64) error {
	return l.execMark(ctx, "localRecordRepository.MarkSynced", markRecordSynced,
		version, time.Now().UTC(), userID, table, id)
}

func (l *localRecordRepository) MarkConflict(ctx context.Context, userID int64, table models.TableName, id, message string, remoteVersion int64) error {
	return l.execMark(ctx, "localRecordRepository.MarkConflict", markRecordConflict,
		message, remoteVersion, time.Now().UTC(), userID, table, id)
}

func (l *localRecordRepository) MarkPending(ctx context.Context, userID int64, table models.TableName, id, message string) error {
	return l.execMark(ctx, "localRecordRepository.MarkPending", markRecordPending,
		nullableString(message), time.Now().UTC(), userID, table, id)
}

func (l *localRecordRepository) DeletePhysical(ctx context.Context, userID int64, table models.TableName, id string) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, deleteRecordPhysical, userID, table, id)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.DeletePhysical").
			Int64("user_id", userID).
			Str("table", string(table)).
			Str("id", id).
			Msg("failed to physically delete sync record")
		return fmt.Errorf("failed to delete record (table=%s, id=%s): %w", table, id, err)
	}

	return nil
}

func (l *localRecordRepository) ApplyPullBatch(ctx context.Context, userID int64, changes []models.TableChanges, advance map[models.TableName]int64) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	err := l.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		for _, tc := range changes {
			for _, rec := range tc.Upserts {
				if _, err := tx.ExecContext(ctx, applyRemoteRecord,
					userID, tc.Table, rec.ID, rec.Version, string(rec.Data), nil, now, now,
				); err != nil {
					return fmt.Errorf("apply upsert (table=%s, id=%s): %w", tc.Table, rec.ID, err)
				}
			}
			for _, rec := range tc.Tombstones {
				deletedAt := rec.DeletedAt
				if deletedAt == nil {
					deletedAt = &now
				}
				if _, err := tx.ExecContext(ctx, applyRemoteRecord,
					userID, tc.Table, rec.ID, rec.Version, string(rec.Data), deletedAt, now, now,
				); err != nil {
					return fmt.Errorf("apply tombstone (table=%s, id=%s): %w", tc.Table, rec.ID, err)
				}
			}
		}

		// Checkpoint advancement happens inside the same transaction:
		// either every table's data and its checkpoint land together,
		// or none of it does.
		for table, version := range advance {
			if _, err := tx.ExecContext(ctx, advanceTableCheckpoint,
				userID, table, version, now,
			); err != nil {
				return fmt.Errorf("advance checkpoint (table=%s): %w", table, err)
			}
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.ApplyPullBatch").
			Int64("user_id", userID).
			Msg("pull apply transaction failed")
		return err
	}

	return nil
}

func (l *localRecordRepository) execMark(ctx context.Context, fn, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute record status update")
		return fmt.Errorf("failed to update record status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (l *localRecordRepository) queryRecords(ctx context.Context, fn string, userID int64, builder sq.SelectBuilder) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build record query: %w", err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("failed to execute record query")
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var items []models.SyncRecord
	for rows.Next() {
		rec, scanErr := scanRecord(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", fn).
				Int64("user_id", userID).
				Msg("failed to scan sync record row")
			return nil, fmt.Errorf("failed to scan record row: %w", scanErr)
		}
		items = append(items, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating record rows: %w", rowsErr)
	}

	return items, nil
}

var recordColumns = []string{
	"user_id",
	"table_name",
	"id",
	"version",
	"data",
	"deleted_at",
	"sync_status",
	"sync_error",
	"conflict_remote_version",
	"created_at",
	"updated_at",
}

func scanRecord(scan func(dest ...any) error) (models.SyncRecord, error) {
	var rec models.SyncRecord
	var data string
	var deletedAt sql.NullTime
	var syncError sql.NullString

	err := scan(
		&rec.UserID,
		&rec.Table,
		&rec.ID,
		&rec.Version,
		&data,
		&deletedAt,
		&rec.SyncStatus,
		&syncError,
		&rec.ConflictRemoteVersion,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return models.SyncRecord{}, err
	}

	rec.Data = []byte(data)
	if deletedAt.Valid {
		t := deletedAt.Time
		rec.DeletedAt = &t
	}
	if syncError.Valid {
		rec.SyncError = syncError.String
	}

	return rec, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
