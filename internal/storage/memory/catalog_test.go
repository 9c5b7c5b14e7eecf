package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

func TestGenreStorage_SeededContent(t *testing.T) {
	store := NewGenreStorage()

	genres, err := store.FindAll()
	require.NoError(t, err)
	require.Len(t, genres, 6)
	assert.Equal(t, "Комедия", genres[0].Name)
	assert.Equal(t, "Боевик", genres[5].Name)

	genre, err := store.FindByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Мультфильм", genre.Name)

	_, err = store.FindByID(7)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGenreStorage_CreateExtendsCatalog(t *testing.T) {
	store := NewGenreStorage()

	created, err := store.Create(&models.Genre{Name: "Фантастика"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID, "new entries continue after the seeded ids")

	ok, err := store.Contains(created.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenreStorage_ContainsName(t *testing.T) {
	store := NewGenreStorage()

	used, err := store.ContainsName("Драма", 0)
	require.NoError(t, err)
	assert.True(t, used)

	used, err = store.ContainsName("Драма", 2)
	require.NoError(t, err)
	assert.False(t, used, "the entry itself is excluded from the check")
}

func TestMpaStorage_SeededContent(t *testing.T) {
	store := NewMpaStorage()

	ratings, err := store.FindAll()
	require.NoError(t, err)
	require.Len(t, ratings, 5)
	assert.Equal(t, "G", ratings[0].Name)
	assert.Equal(t, "NC-17", ratings[4].Name)
	assert.NotEmpty(t, ratings[0].Description)
}

func TestMpaStorage_UpdateAndRemove(t *testing.T) {
	store := NewMpaStorage()

	updated, err := store.Update(&models.Mpa{ID: 1, Name: "G", Description: "без ограничений"})
	require.NoError(t, err)
	assert.Equal(t, "без ограничений", updated.Description)

	removed, err := store.RemoveByID(5)
	require.NoError(t, err)
	assert.Equal(t, "NC-17", removed.Name)

	_, err = store.FindByID(5)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.Update(&models.Mpa{ID: 5, Name: "NC-17"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
