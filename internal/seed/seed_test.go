package seed

import (
	"fmt"
	"testing"

	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeed(t *testing.T) {
	db := setupSeedDB(t)

	err := Seed(db, Options{NumUsers: 3, NumPosts: 12, SkipBcrypt: true})
	require.NoError(t, err)

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.EqualValues(t, 3, userCount)
	assert.EqualValues(t, 12, postCount)

	// Every post must belong to a seeded user
	var orphans int64
	require.NoError(t, db.Model(&models.Post{}).
		Where("owner_id NOT IN (?)", db.Model(&models.User{}).Select("id")).
		Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestFactory_DryRun(t *testing.T) {
	factory := NewFactory(nil, Options{DryRun: true, SkipBcrypt: true})

	user, err := factory.CreateUser()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)

	post, err := factory.CreatePost(user)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.Equal(t, user.ID, post.OwnerID)
}

func TestFactory_Overrides(t *testing.T) {
	db := setupSeedDB(t)
	factory := NewFactory(db, Options{SkipBcrypt: true})

	user, err := factory.CreateUser(func(u *models.User) {
		u.Username = "fixedname"
	})
	require.NoError(t, err)
	assert.Equal(t, "fixedname", user.Username)

	post, err := factory.CreatePost(user, func(p *models.Post) {
		p.Title = "Fixed Title"
	})
	require.NoError(t, err)
	assert.Equal(t, "Fixed Title", post.Title)
}
