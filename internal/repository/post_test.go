package repository

import (
	"context"
	"testing"

	"github.com/shivshankarkannoujiya/Medium/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAuthor(t *testing.T, repo UserRepository) *models.User {
	t.Helper()
	user := &models.User{Name: "Author", Email: "author@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestPostRepository_CreateAndGetByID(t *testing.T) {
	db := newTestDB(t)
	author := seedAuthor(t, NewUserRepository(db))
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "First", Content: "Body text", AuthorID: author.ID}
	require.NoError(t, repo.Create(ctx, post))
	require.NotZero(t, post.ID)

	// Round-trip: fetch right after create must return matching fields.
	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Title)
	assert.Equal(t, "Body text", got.Content)
	assert.Equal(t, author.ID, got.AuthorID)
}

func TestPostRepository_GetByIDMiss(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	got, err := repo.GetByID(context.Background(), 4242)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostRepository_Update(t *testing.T) {
	db := newTestDB(t)
	author := seedAuthor(t, NewUserRepository(db))
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "Old", Content: "Old body", AuthorID: author.ID}
	require.NoError(t, repo.Create(ctx, post))

	updated, err := repo.Update(ctx, post.ID, "New", "New body")
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "New body", updated.Content)
	assert.Equal(t, author.ID, updated.AuthorID)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
}

func TestPostRepository_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.Update(context.Background(), 999, "T", "C")
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_List(t *testing.T) {
	db := newTestDB(t)
	author := seedAuthor(t, NewUserRepository(db))
	repo := NewPostRepository(db)
	ctx := context.Background()

	created := make([]uint, 0, 3)
	for _, title := range []string{"one", "two", "three"} {
		post := &models.Post{Title: title, Content: "c", AuthorID: author.ID}
		require.NoError(t, repo.Create(ctx, post))
		created = append(created, post.ID)
	}

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(posts), 3)

	ids := make(map[uint]bool, len(posts))
	for _, p := range posts {
		ids[p.ID] = true
	}
	for _, id := range created {
		assert.Truef(t, ids[id], "created post %d missing from list", id)
	}
}
