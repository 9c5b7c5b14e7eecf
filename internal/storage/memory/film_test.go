package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

func newFilmStore() *FilmStorage {
	return NewFilmStorage(NewGenreStorage(), NewMpaStorage())
}

func newFilm(name string) *models.Film {
	return &models.Film{
		Name:        name,
		Description: "описание",
		ReleaseDate: models.NewDate(2000, time.January, 1),
		Duration:    120,
	}
}

func TestFilmStorage_CreateResolvesReferences(t *testing.T) {
	store := newFilmStore()

	film := newFilm("Inception")
	film.Mpa = &models.Mpa{ID: 3}
	film.Genres = []models.Genre{{ID: 4}, {ID: 1}, {ID: 4}}

	created, err := store.Create(film)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	require.NotNil(t, created.Mpa)
	assert.Equal(t, "PG-13", created.Mpa.Name, "bare rating reference is resolved to the full catalog row")

	require.Len(t, created.Genres, 2, "duplicate genre references collapse")
	assert.Equal(t, int64(1), created.Genres[0].ID, "genres come back ordered by id")
	assert.Equal(t, "Комедия", created.Genres[0].Name)
	assert.Equal(t, int64(4), created.Genres[1].ID)
}

func TestFilmStorage_CreateWithDanglingReference(t *testing.T) {
	store := newFilmStore()

	film := newFilm("Ghost")
	film.Mpa = &models.Mpa{ID: 999}
	_, err := store.Create(film)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	film = newFilm("Ghost")
	film.Genres = []models.Genre{{ID: 999}}
	_, err = store.Create(film)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := store.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all, "no partial write on a dangling reference")
}

func TestFilmStorage_FindByIDMaterializesEmptySets(t *testing.T) {
	store := newFilmStore()
	created, err := store.Create(newFilm("Minimal"))
	require.NoError(t, err)

	found, err := store.FindByID(created.ID)
	require.NoError(t, err)
	assert.NotNil(t, found.Genres, "genres render as an empty list, not null")
	assert.NotNil(t, found.Likes)
	assert.Nil(t, found.Mpa)

	_, err = store.FindByID(42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFilmStorage_UpdateGenreSemantics(t *testing.T) {
	store := newFilmStore()

	film := newFilm("Original")
	film.Genres = []models.Genre{{ID: 1}, {ID: 2}}
	created, err := store.Create(film)
	require.NoError(t, err)

	t.Run("NilLeavesGenresUntouched", func(t *testing.T) {
		upd := *created
		upd.Name = "Renamed"
		upd.Genres = nil

		updated, err := store.Update(&upd)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Len(t, updated.Genres, 2)
	})

	t.Run("NonNilReplacesGenres", func(t *testing.T) {
		upd := *created
		upd.Genres = []models.Genre{{ID: 6}}

		updated, err := store.Update(&upd)
		require.NoError(t, err)
		require.Len(t, updated.Genres, 1)
		assert.Equal(t, "Боевик", updated.Genres[0].Name)
	})

	t.Run("EmptyClearsGenres", func(t *testing.T) {
		upd := *created
		upd.Genres = []models.Genre{}

		updated, err := store.Update(&upd)
		require.NoError(t, err)
		assert.Empty(t, updated.Genres)
	})
}

func TestFilmStorage_LikesAreIdempotent(t *testing.T) {
	store := newFilmStore()
	created, _ := store.Create(newFilm("Liked"))

	require.NoError(t, store.AddLike(created.ID, 7))
	require.NoError(t, store.AddLike(created.ID, 7))
	require.NoError(t, store.AddLike(created.ID, 3))

	found, err := store.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7}, found.Likes)

	require.NoError(t, store.RemoveLike(created.ID, 7))
	require.NoError(t, store.RemoveLike(created.ID, 7), "removing an absent like is a no-op")

	found, _ = store.FindByID(created.ID)
	assert.Equal(t, []int64{3}, found.Likes)

	assert.ErrorIs(t, store.AddLike(42, 1), storage.ErrNotFound)
	assert.ErrorIs(t, store.RemoveLike(42, 1), storage.ErrNotFound)
}

func TestFilmStorage_FindPopular(t *testing.T) {
	store := newFilmStore()
	first, _ := store.Create(newFilm("First"))
	second, _ := store.Create(newFilm("Second"))
	third, _ := store.Create(newFilm("Third"))

	require.NoError(t, store.AddLike(second.ID, 1))
	require.NoError(t, store.AddLike(second.ID, 2))
	require.NoError(t, store.AddLike(third.ID, 1))

	popular, err := store.FindPopular(10)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, second.ID, popular[0].ID)
	assert.Equal(t, third.ID, popular[1].ID)
	assert.Equal(t, first.ID, popular[2].ID, "films without likes still rank, last")

	popular, err = store.FindPopular(1)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, second.ID, popular[0].ID)
}

func TestFilmStorage_RemoveByIDDropsLikes(t *testing.T) {
	store := newFilmStore()
	created, _ := store.Create(newFilm("Doomed"))
	require.NoError(t, store.AddLike(created.ID, 1))

	removed, err := store.RemoveByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, removed.Likes, "snapshot keeps the pre-deletion likes")

	_, err = store.FindByID(created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.RemoveByID(created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
