package repository

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shivshankarkannoujiya/Medium/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter atomic.Int64

// newTestDB opens an isolated in-memory SQLite database with the schema
// migrated. Shared cache plus a unique name keeps the database alive across
// pooled connections while isolating tests from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
