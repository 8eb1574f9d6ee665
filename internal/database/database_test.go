package database

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID     int64   `gorm:"primaryKey"`
	Mobile string  `gorm:"size:15;not null;uniqueIndex"`
	Email  *string `gorm:"size:100;uniqueIndex"`
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost:5432/db"))
	assert.True(t, IsPostgres("postgresql://localhost/db"))
	assert.False(t, IsPostgres("servicehub.db"))
	assert.False(t, IsPostgres("file::memory:?cache=shared"))
}

func TestSQLiteUniqueViolation(t *testing.T) {
	db, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db, &account{}))

	email := "dup@example.com"
	require.NoError(t, db.Create(&account{Mobile: "9000000001", Email: &email}).Error)

	err = db.Create(&account{Mobile: "9000000002", Email: &email}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, strings.Contains(UniqueViolationColumn(err), "email"), UniqueViolationColumn(err))

	// nullable unique columns accept many NULLs
	require.NoError(t, db.Create(&account{Mobile: "9000000003"}).Error)
	require.NoError(t, db.Create(&account{Mobile: "9000000004"}).Error)
}

func TestIsUniqueViolationOtherErrors(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.Equal(t, "", UniqueViolationColumn(errors.New("connection refused")))
}
