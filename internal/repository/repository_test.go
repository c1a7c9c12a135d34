package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coastalrealty/coastal-api/internal/database"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *database.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite database")

	require.NoError(t, database.Migrate(gdb), "failed to migrate schema")

	return &database.Database{Gorm: gdb}
}
