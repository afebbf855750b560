package database_test

import (
	"testing"

	"placebook/backend/internal/database"
	"placebook/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open("mysql", "", logger.Default)
	assert.EqualError(t, err, `unsupported database driver "mysql"`)
}

func TestMigrateSQLite(t *testing.T) {
	db, err := database.Open("sqlite", ":memory:", logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, database.Migrate(db))

	for _, table := range []any{&models.User{}, &models.Category{}, &models.Place{}, &models.PlaceShare{}, &models.Friendship{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.True(t, db.Migrator().HasIndex(&models.Friendship{}, "idx_friendships_pair_key"))
}
