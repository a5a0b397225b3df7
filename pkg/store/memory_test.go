package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-share/pkg/models"
)

func TestMemoryUserStore_DuplicateEmail(t *testing.T) {
	s := NewMemoryUserStore()

	first := models.User{ID: "1", Email: "a@example.com", Username: "alice", Password: "hash1"}
	require.NoError(t, s.Create(first))

	err := s.Create(models.User{ID: "2", Email: "a@example.com", Username: "impostor"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The stored record is untouched by the failed attempt.
	got, err := s.GetByEmail("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestMemoryUserStore_GetByEmailMissing(t *testing.T) {
	s := NewMemoryUserStore()
	_, err := s.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryVideoStore_PrependOrdering(t *testing.T) {
	s := NewMemoryVideoStore()

	require.NoError(t, s.Create(models.Video{ID: "a", Title: "first"}))
	require.NoError(t, s.Create(models.Video{ID: "b", Title: "second"}))
	require.NoError(t, s.Create(models.Video{ID: "c", Title: "third"}))

	videos, err := s.List()
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, "c", videos[0].ID)
	assert.Equal(t, "b", videos[1].ID)
	assert.Equal(t, "a", videos[2].ID)
}

func TestMemoryVideoStore_Update(t *testing.T) {
	s := NewMemoryVideoStore()
	require.NoError(t, s.Create(models.Video{ID: "a", Title: "t", Likes: 1, Views: 5}))

	updated, err := s.Update("a", func(v *models.Video) { v.Likes = 42 })
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Likes)
	assert.Equal(t, "t", updated.Title)
	assert.Equal(t, 5, updated.Views)

	// The mutation is visible on a later read.
	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 42, got.Likes)

	_, err = s.Update("missing", func(v *models.Video) {})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryVideoStore_Delete(t *testing.T) {
	s := NewMemoryVideoStore()
	require.NoError(t, s.Create(models.Video{ID: "a"}))
	require.NoError(t, s.Create(models.Video{ID: "b"}))

	require.NoError(t, s.Delete("a"))

	videos, err := s.List()
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "b", videos[0].ID)

	// Deleting the same id twice fails the second time.
	assert.ErrorIs(t, s.Delete("a"), ErrNotFound)
}

func TestSeed(t *testing.T) {
	s := NewMemoryVideoStore()
	now := time.Now()

	require.NoError(t, Seed(s, now))

	videos, err := s.List()
	require.NoError(t, err)
	require.Len(t, videos, 9)
	assert.Equal(t, "1", videos[0].ID)
	assert.Equal(t, "Introduction to React Hooks", videos[0].Title)
	assert.Equal(t, "9", videos[8].ID)
	assert.Equal(t, now.AddDate(0, 0, -8).Format("2006-01-02"), videos[0].UploadDate)

	// Seeding a non-empty store is a no-op.
	require.NoError(t, Seed(s, now))
	videos, err = s.List()
	require.NoError(t, err)
	assert.Len(t, videos, 9)
}
