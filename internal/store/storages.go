package store

import (
	"context"
	"fmt"

	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/logger"
)

// ClientStorages groups the device-local repositories into a single value
// the service layer can be wired with.
type ClientStorages struct {
	// Records is the SQLite-backed store of syncable records.
	Records LocalRecordRepository

	// Metadata owns the per-table checkpoints and tombstone retention.
	Metadata SyncMetadataRepository
}

// NewClientStorages initialises the local storage layer:
//  1. Opens the SQLite replica at cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the record and metadata repositories.
//
// Returns an error if the connection cannot be established or migration
// fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Records:  NewLocalRecordRepository(db, logger),
		Metadata: NewSyncMetadataRepository(db, logger),
	}, nil
}
