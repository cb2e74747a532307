package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jrescalona/rainalert/internal/platform/logger"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction executes fn within a new transaction on db.
// If fn returns an error or panics, the transaction is rolled back;
// otherwise it is committed.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if txErr := tx.Rollback(); txErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", txErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic",
					slog.Any("panic", p))
			}
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rollbackErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf(
				"error rolling back transaction: %v (original error: %w)",
				rollbackErr,
				err,
			)
		}
		log.Debug("rolled back transaction due to error",
			slog.String("error", err.Error()))
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error("failed to commit transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}

	log.Debug("transaction committed successfully")
	return nil
}

// RunInTx runs fn atomically against db. When db is a connection pool a new
// transaction is opened with RunInTransaction; when it is already a
// transaction (or any other DBTX) fn joins it and the caller keeps control
// of commit and rollback.
func RunInTx(ctx context.Context, db DBTX, fn func(ctx context.Context, q DBTX) error) error {
	pool, ok := db.(*sql.DB)
	if !ok {
		return fn(ctx, db)
	}
	return RunInTransaction(ctx, pool, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, tx)
	})
}
