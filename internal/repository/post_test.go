package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	post := &models.Post{Title: "Test Post", Content: "Content", OwnerID: owner}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "posts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(ctx, post)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, post.ID, "BeforeCreate must assign an ID")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	postID := uuid.New()
	ownerID := uuid.New()

	t.Run("Success with owner preload", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1`).
			WithArgs(postID.String(), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "owner_id"}).
				AddRow(postID.String(), "Post 1", "Body", ownerID.String()))

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
			WithArgs(ownerID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
				AddRow(ownerID.String(), "owner10"))

		post, err := repo.GetByID(ctx, postID)
		assert.NoError(t, err)
		assert.Equal(t, "Post 1", post.Title)
		assert.Equal(t, ownerID, post.OwnerID)
		assert.Equal(t, "owner10", post.Owner.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		missing := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1`).
			WithArgs(missing.String(), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		post, err := repo.GetByID(ctx, missing)
		assert.Nil(t, post)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	postID := uuid.New()
	ownerID := uuid.New()

	t.Run("Search filters title or content, ordered ascending", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "posts" WHERE title ILIKE \$1 OR content ILIKE \$2 ORDER BY created_at ASC LIMIT \$3`).
			WithArgs("%foo%", "%foo%", 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "owner_id"}).
				AddRow(postID.String(), "foo bar", "Body", ownerID.String()))

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
			WithArgs(ownerID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
				AddRow(ownerID.String(), "owner10"))

		posts, err := repo.List(ctx, "foo", 10, 0)
		assert.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "foo bar", posts[0].Title)
		assert.Equal(t, "owner10", posts[0].Owner.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No search applies only ordering and pagination", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "posts" ORDER BY created_at ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 20).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "owner_id"}))

		posts, err := repo.List(ctx, "", 10, 20)
		assert.NoError(t, err)
		assert.Empty(t, posts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{ID: uuid.New(), Title: "Updated", Content: "Body", OwnerID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(ctx, post)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	postID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "posts" WHERE id = \$1`).
		WithArgs(postID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(ctx, postID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
