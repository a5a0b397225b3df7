package store

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-share/pkg/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGormUserStore(t *testing.T) {
	s := NewGormUserStore(openTestDB(t))

	user := models.User{ID: "u1", Email: "a@example.com", Username: "alice", Password: "hash", Avatar: "pic"}
	require.NoError(t, s.Create(user))

	got, err := s.GetByEmail("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	assert.ErrorIs(t, s.Create(models.User{ID: "u2", Email: "a@example.com"}), ErrDuplicateEmail)

	_, err = s.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormVideoStore_OrderingAndTags(t *testing.T) {
	s := NewGormVideoStore(openTestDB(t))

	require.NoError(t, s.Create(models.Video{ID: "a", Title: "first", Tags: []string{"go", "web"}}))
	require.NoError(t, s.Create(models.Video{ID: "b", Title: "second", Tags: []string{}}))

	videos, err := s.List()
	require.NoError(t, err)
	require.Len(t, videos, 2)
	// Later inserts list first, same as the memory store's prepend.
	assert.Equal(t, "b", videos[0].ID)
	assert.Equal(t, "a", videos[1].ID)

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "web"}, got.Tags)
	assert.Equal(t, []string{}, videos[0].Tags)
}

func TestGormVideoStore_UpdateKeepsPosition(t *testing.T) {
	s := NewGormVideoStore(openTestDB(t))
	require.NoError(t, s.Create(models.Video{ID: "a", Title: "t"}))
	require.NoError(t, s.Create(models.Video{ID: "b", Title: "t"}))

	updated, err := s.Update("a", func(v *models.Video) { v.Likes = 7 })
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Likes)

	videos, err := s.List()
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "b", videos[0].ID, "update must not reorder the catalog")

	_, err = s.Update("missing", func(v *models.Video) {})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormVideoStore_Delete(t *testing.T) {
	s := NewGormVideoStore(openTestDB(t))
	require.NoError(t, s.Create(models.Video{ID: "a"}))

	require.NoError(t, s.Delete("a"))
	assert.ErrorIs(t, s.Delete("a"), ErrNotFound)

	videos, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, videos)
}
