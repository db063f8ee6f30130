//go:build integration

package bootstrap_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"trackswift/internal/bootstrap"
	"trackswift/internal/logx"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))
	return pool
}

func TestEnsureSchemaAndSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t)
	logger := logx.Nop()

	// Running both steps twice must not error or duplicate data.
	for i := 0; i < 2; i++ {
		require.NoError(t, bootstrap.EnsureSchema(ctx, pool))
		require.NoError(t, bootstrap.EnsureSeed(ctx, pool, logger))
	}

	var users, shipments, manifests int64
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&users))
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM shipments`).Scan(&shipments))
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM manifests`).Scan(&manifests))

	require.Equal(t, int64(5), users)
	require.Equal(t, int64(8), shipments)
	require.Equal(t, int64(8), manifests)

	var role string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT role FROM users WHERE username = 'manager'`).Scan(&role))
	require.Equal(t, "admin", role)

	var status string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT status FROM shipments WHERE tracking_id = 'TRK003'`).Scan(&status))
	require.Equal(t, "Delivered", status)
}
