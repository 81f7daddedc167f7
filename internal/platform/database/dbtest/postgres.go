// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

// Package dbtest boots a migrated PostgreSQL database for repository tests.
//
// Tests using it carry the integration build tag and need Docker, unless
// HERSTYLE_TEST_PG_DSN points at an existing database.
package dbtest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/taibuivan/herstyle/internal/platform/constants"
	"github.com/taibuivan/herstyle/internal/platform/migration"
	pgstore "github.com/taibuivan/herstyle/internal/platform/postgres"
)

// EnvDSN overrides the container with an existing database.
const EnvDSN = "HERSTYLE_TEST_PG_DSN"

// tables lists every mutable table, children first.
var tables = []string{
	constants.SchemaCommerce + ".orderitem",
	constants.SchemaCommerce + ".orders",
	constants.SchemaCommerce + ".cartitem",
	constants.SchemaCatalog + ".review",
	constants.SchemaCatalog + ".product",
	constants.SchemaUsers + ".account",
}

// Start returns a pool on a freshly migrated, empty database. The container
// and pool are released when the test ends.
func Start(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		container, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("herstyle"),
			postgres.WithUsername("herstyle"),
			postgres.WithPassword("herstyle"),
			postgres.BasicWaitStrategies(),
		)
		require.NoError(t, err, "start postgres container")
		t.Cleanup(func() { _ = container.Terminate(context.Background()) })

		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err, "resolve connection string")
	}

	require.NoError(t, migration.RunUp(dsn, migrationsPath(t), logger), "apply migrations")

	pool, err := pgstore.NewPool(ctx, dsn, logger)
	require.NoError(t, err, "connect")
	t.Cleanup(pool.Close)

	Reset(t, pool)
	return pool
}

// Reset truncates every mutable table.
func Reset(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "TRUNCATE TABLE "+strings.Join(tables, ", ")+" CASCADE")
	require.NoError(t, err, "truncate")
}

// migrationsPath locates data/migrations from this source file.
func migrationsPath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "data", "migrations")
}
