package service

import (
	"context"
	"fmt"
	"time"

	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/store"
	"github.com/centavohq/centavo/models"
)

type conflictService struct {
	records store.LocalRecordRepository
	meta    store.SyncMetadataRepository
	logger  *logger.Logger
}

// NewConflictService constructs the conflict-resolution service.
func NewConflictService(records store.LocalRecordRepository, meta store.SyncMetadataRepository, log *logger.Logger) ConflictService {
	return &conflictService{
		records: records,
		meta:    meta,
		logger:  log,
	}
}

func (s *conflictService) ListConflicts(ctx context.Context, userID int64) ([]models.SyncRecord, error) {
	return s.records.ListConflicts(ctx, userID)
}

// DiscardLocal resolves a conflict in the authority's favour: the local copy
// is removed and the table checkpoint is lowered below the authority's known
// version, so the next pull re-fetches and restores the remote record.
func (s *conflictService) DiscardLocal(ctx context.Context, userID int64, table models.TableName, id string) error {
	log := logger.FromContext(ctx)

	rec, err := s.records.Get(ctx, userID, table, id)
	if err != nil {
		return err
	}
	if rec.SyncStatus != models.StatusConflict {
		return ErrNotConflicted
	}

	if err = s.records.DeletePhysical(ctx, userID, table, id); err != nil {
		return fmt.Errorf("discard local copy: %w", err)
	}

	// When the authority never reported its version, lower to zero and let
	// the next pull re-walk the whole table.
	target := int64(0)
	if rec.ConflictRemoteVersion > 0 {
		target = rec.ConflictRemoteVersion - 1
	}
	if err = s.meta.LowerCheckpoint(ctx, userID, table, target); err != nil {
		return fmt.Errorf("lower checkpoint after discard: %w", err)
	}

	log.Info().
		Str("func", "conflictService.DiscardLocal").
		Int64("user_id", userID).
		Str("table", string(table)).
		Str("id", id).
		Int64("checkpoint_target", target).
		Msg("discarded local copy of conflicted record")

	return nil
}

// RetryWithLocal resolves a conflict in the local copy's favour: the record
// is re-based on the authority's version and returned to pending, so the
// next push sends the local data on top of the remote state.
func (s *conflictService) RetryWithLocal(ctx context.Context, userID int64, table models.TableName, id string) error {
	log := logger.FromContext(ctx)

	rec, err := s.records.Get(ctx, userID, table, id)
	if err != nil {
		return err
	}
	if rec.SyncStatus != models.StatusConflict {
		return ErrNotConflicted
	}

	if rec.ConflictRemoteVersion > 0 {
		rec.Version = rec.ConflictRemoteVersion
	}
	rec.SyncStatus = models.StatusPending
	rec.SyncError = ""
	rec.ConflictRemoteVersion = 0
	rec.UpdatedAt = time.Now().UTC()

	if err = s.records.Save(ctx, rec); err != nil {
		return fmt.Errorf("rebase conflicted record: %w", err)
	}

	log.Info().
		Str("func", "conflictService.RetryWithLocal").
		Int64("user_id", userID).
		Str("table", string(table)).
		Str("id", id).
		Int64("rebased_version", rec.Version).
		Msg("conflicted record rebased for retry")

	return nil
}
