package service

import (
	"context"

	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/store"
	"github.com/centavohq/centavo/models"
)

type tombstonePruner struct {
	meta   store.SyncMetadataRepository
	cfg    config.ClientSync
	logger *logger.Logger
}

// NewTombstonePruner constructs the retention sweep over confirmed
// tombstones.
func NewTombstonePruner(meta store.SyncMetadataRepository, cfg config.ClientSync, log *logger.Logger) TombstonePruner {
	return &tombstonePruner{
		meta:   meta,
		cfg:    cfg,
		logger: log,
	}
}

func (p *tombstonePruner) PruneExpiredTombstones(ctx context.Context, userID int64) (models.PruneResult, error) {
	log := logger.FromContext(ctx)

	result, err := p.meta.PruneTombstones(ctx, userID, p.cfg.TombstoneRetentionDays)
	if err != nil {
		return models.PruneResult{}, err
	}

	if result.PrunedCount > 0 {
		log.Info().
			Str("func", "tombstonePruner.PruneExpiredTombstones").
			Int64("user_id", userID).
			Int("pruned", result.PrunedCount).
			Msg("expired tombstones removed")
	}
	return result, nil
}
