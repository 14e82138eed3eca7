package seed

import (
	"testing"

	"github.com/shivshankarkannoujiya/Medium/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestRun(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Run(db, Options{NumUsers: 4, NumPosts: 10, ShouldClean: true}))

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.Equal(t, int64(4), userCount)
	assert.Equal(t, int64(10), postCount)

	// Every post references a seeded user.
	var orphaned int64
	require.NoError(t, db.Model(&models.Post{}).
		Where("author_id NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Count(&orphaned).Error)
	assert.Zero(t, orphaned)

	// Seeded accounts are usable with the shared default password.
	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(DefaultPassword)))
}

func TestRunCleans(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Run(db, Options{NumUsers: 2, NumPosts: 3}))
	require.NoError(t, Run(db, Options{NumUsers: 1, NumPosts: 1, ShouldClean: true}))

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), postCount)
}

func TestRunRejectsPostsWithoutUsers(t *testing.T) {
	db := newTestDB(t)

	err := Run(db, Options{NumUsers: 0, NumPosts: 5, ShouldClean: true})
	assert.Error(t, err)
}
