package database

import (
	"context"
	"fmt"
)

// WithTx runs fn inside a single transaction. Any error from fn, or a
// failed commit, leaves the database untouched.
func WithTx(ctx context.Context, db DB, fn func(q Querier) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("WithTx begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("WithTx commit: %w", err)
	}
	return nil
}
