//go:build integration

package database

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestPostgresUniqueViolation(t *testing.T) {
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("servicehub"),
		postgres.WithUsername("servicehub"),
		postgres.WithPassword("servicehub"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.True(t, IsPostgres(dsn))

	db, err := Connect(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db, &account{}))

	email := "dup@example.com"
	require.NoError(t, db.Create(&account{Mobile: "9000000001", Email: &email}).Error)

	err = db.Create(&account{Mobile: "9000000002", Email: &email}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, strings.Contains(UniqueViolationColumn(err), "email"), UniqueViolationColumn(err))

	err = db.Create(&account{Mobile: "9000000001"}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, strings.Contains(UniqueViolationColumn(err), "mobile"), UniqueViolationColumn(err))
}
