package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema and a
// zeroed analytics row. Each test gets its own store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Project{},
		&models.Comment{},
		&models.Contact{},
		&models.Experience{},
		&models.Analytics{},
	))
	require.NoError(t, repository.EnsureAnalytics(db))
	return db
}

func analyticsSnapshot(t *testing.T, db *gorm.DB) models.Analytics {
	t.Helper()
	snapshot, err := repository.NewAnalyticsRepository(db).Get()
	require.NoError(t, err)
	return *snapshot
}
