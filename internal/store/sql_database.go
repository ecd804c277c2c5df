package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/migrations"
)

// DB wraps the local replica connection. All repository types embed it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// WithinTx runs fn inside a single all-or-nothing transaction. Any error
// (or panic) from fn rolls the transaction back; the pull engine relies on
// this boundary for its apply+checkpoint atomicity.
func (db *DB) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
