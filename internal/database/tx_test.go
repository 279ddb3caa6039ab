package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("begin error", func(t *testing.T) {
		db := &FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return nil, errors.New("begin") }}
		called := false
		err := WithTx(ctx, db, func(Querier) error { called = true; return nil })
		require.Error(t, err)
		require.False(t, called)
	})

	t.Run("fn error rolls back", func(t *testing.T) {
		tx := &FakeTx{}
		boom := errors.New("boom")
		err := WithTx(ctx, TxDB(tx), func(Querier) error { return boom })
		require.ErrorIs(t, err, boom)
		require.True(t, tx.RolledBack)
		require.False(t, tx.Committed)
	})

	t.Run("commit error", func(t *testing.T) {
		tx := &FakeTx{CommitFn: func(context.Context) error { return errors.New("commit") }}
		err := WithTx(ctx, TxDB(tx), func(Querier) error { return nil })
		require.Error(t, err)
		require.True(t, tx.RolledBack)
	})

	t.Run("success commits through tx", func(t *testing.T) {
		var execSQL string
		tx := &FakeTx{ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
			execSQL = sql
			return pgconn.CommandTag{}, nil
		}}
		err := WithTx(ctx, TxDB(tx), func(q Querier) error {
			_, err := q.Exec(ctx, "DELETE FROM item_tags")
			return err
		})
		require.NoError(t, err)
		require.True(t, tx.Committed)
		require.False(t, tx.RolledBack)
		require.Equal(t, "DELETE FROM item_tags", execSQL)
	})
}
