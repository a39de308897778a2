package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// withTransaction runs fn inside a transaction opened on q. When q is already a
// transaction the work runs in a savepoint.
func withTransaction(ctx context.Context, q Executor, fn func(tx pgx.Tx) error) error {
	tx, err := q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
