package postgres_test

import (
	"context"
	"database/sql"
	"qrscanner/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type pruneTestArgs struct {
	Keep uint `json:"keep"`
}

func (pruneTestArgs) Kind() string { return "prune_test" }

func TestPgSQL_AddJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("inside a transaction", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		inserted, err := tx.AddJob(ctx, pruneTestArgs{Keep: 1}, nil)
		require.NoError(t, err)
		require.True(t, inserted)

		rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t,
			tx.(*postgres.PgSQL).DB.(*sql.Tx), &pruneTestArgs{}, nil)
	})

	t.Run("outside a transaction", func(t *testing.T) {
		inserted, err := pg.AddJob(ctx, pruneTestArgs{Keep: 2}, nil)
		require.NoError(t, err)
		require.True(t, inserted)

		rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t,
			riverdatabasesql.New(pg.DB.(*sql.DB)), &pruneTestArgs{}, nil)
	})

	t.Run("unique by args", func(t *testing.T) {
		opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}

		inserted, err := pg.AddJob(ctx, pruneTestArgs{Keep: 3}, opts)
		require.NoError(t, err)
		require.True(t, inserted)

		inserted, err = pg.AddJob(ctx, pruneTestArgs{Keep: 3}, opts)
		require.NoError(t, err)
		require.False(t, inserted)
	})
}
