package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/store"
	"github.com/centavohq/centavo/models"
)

type recordService struct {
	records store.LocalRecordRepository
	locks   *MutationLockManager
	logger  *logger.Logger
}

// NewRecordService constructs the local write path. Every mutation routes
// through the lock manager so edits racing an in-flight push are buffered
// rather than written.
func NewRecordService(records store.LocalRecordRepository, locks *MutationLockManager, log *logger.Logger) RecordService {
	return &recordService{
		records: records,
		locks:   locks,
		logger:  log,
	}
}

func (s *recordService) Create(ctx context.Context, userID int64, table models.TableName, data json.RawMessage) (models.SyncRecord, error) {
	if !models.ValidTable(table) {
		return models.SyncRecord{}, store.ErrUnknownTable
	}
	if len(data) == 0 {
		return models.SyncRecord{}, ErrEmptyPayload
	}

	now := time.Now().UTC()
	rec := models.SyncRecord{
		ID:         uuid.NewString(),
		UserID:     userID,
		Table:      table,
		Version:    0,
		SyncStatus: models.StatusPending,
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.persist(ctx, rec); err != nil {
		return models.SyncRecord{}, err
	}
	return rec, nil
}

func (s *recordService) Update(ctx context.Context, userID int64, table models.TableName, id string, data json.RawMessage) (models.SyncRecord, error) {
	if len(data) == 0 {
		return models.SyncRecord{}, ErrEmptyPayload
	}

	rec, err := s.records.Get(ctx, userID, table, id)
	if err != nil {
		return models.SyncRecord{}, err
	}
	if rec.SyncStatus == models.StatusConflict {
		return models.SyncRecord{}, ErrRecordConflicted
	}
	if rec.IsTombstone() {
		return models.SyncRecord{}, ErrRecordDeleted
	}

	rec.Data = data
	rec.SyncStatus = models.StatusPending
	rec.SyncError = ""
	rec.UpdatedAt = time.Now().UTC()

	if err = s.persist(ctx, rec); err != nil {
		return models.SyncRecord{}, err
	}
	return rec, nil
}

func (s *recordService) SoftDelete(ctx context.Context, userID int64, table models.TableName, id string) error {
	rec, err := s.records.Get(ctx, userID, table, id)
	if err != nil {
		return err
	}
	if rec.SyncStatus == models.StatusConflict {
		return ErrRecordConflicted
	}
	if rec.IsTombstone() {
		return nil
	}

	now := time.Now().UTC()
	rec.DeletedAt = &now
	rec.SyncStatus = models.StatusPending
	rec.SyncError = ""
	rec.UpdatedAt = now

	return s.persist(ctx, rec)
}

func (s *recordService) Get(ctx context.Context, userID int64, table models.TableName, id string) (models.SyncRecord, error) {
	return s.records.Get(ctx, userID, table, id)
}

// persist writes the record unless it is locked by an in-flight push, in
// which case the edit is buffered and replayed by the push engine once the
// push outcome lands.
func (s *recordService) persist(ctx context.Context, rec models.SyncRecord) error {
	if s.locks.Submit(rec) {
		logger.FromContext(ctx).Debug().
			Str("func", "recordService.persist").
			Str("table", string(rec.Table)).
			Str("id", rec.ID).
			Msg("edit buffered behind in-flight push")
		return nil
	}
	return s.records.Save(ctx, rec)
}
