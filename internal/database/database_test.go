package database

import (
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 15,
	}

	assert.NoError(t, configurePool(db, cfg))

	// Zero values fall back to defaults without error.
	assert.NoError(t, configurePool(db, &config.Config{}))
}

func TestMigrate_SchemaRoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	owner := &models.User{Username: "author", Email: "author@example.com", Password: "x"}
	require.NoError(t, db.Create(owner).Error)
	assert.NotEqual(t, uuid.Nil, owner.ID)

	post := &models.Post{Title: "Hello", Content: "World", OwnerID: owner.ID}
	require.NoError(t, db.Create(post).Error)
	assert.NotEqual(t, uuid.Nil, post.ID)

	var loaded models.Post
	require.NoError(t, db.Preload("Owner").First(&loaded, "id = ?", post.ID).Error)
	assert.Equal(t, "Hello", loaded.Title)
	assert.Equal(t, owner.ID, loaded.OwnerID)
	assert.Equal(t, "author", loaded.Owner.Username)
}
