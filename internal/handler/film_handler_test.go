package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/service"
	"github.com/VitalyVL1/filmorate/internal/storage/memory"
)

func newFilmRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	userStore := memory.NewUserStorage()
	genreStore := memory.NewGenreStorage()
	mpaStore := memory.NewMpaStorage()
	filmStore := memory.NewFilmStorage(genreStore, mpaStore)

	users := NewUserHandler(service.NewUserService(userStore))
	films := NewFilmHandler(service.NewFilmService(filmStore, userStore, genreStore, mpaStore))

	router := gin.New()
	router.POST("/users", users.Create)
	router.GET("/films/popular", films.FindPopular)
	router.POST("/films", films.Create)
	router.PUT("/films", films.Update)
	router.GET("/films", films.FindAll)
	router.GET("/films/:id", films.FindByID)
	router.DELETE("/films/:id", films.Remove)
	router.PUT("/films/:id/like/:userId", films.AddLike)
	router.DELETE("/films/:id/like/:userId", films.RemoveLike)
	return router
}

func createFilm(t *testing.T, router *gin.Engine, body string) models.Film {
	t.Helper()
	w := perform(router, http.MethodPost, "/films", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var film models.Film
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &film))
	return film
}

func TestFilmHandler_Create(t *testing.T) {
	router := newFilmRouter()

	t.Run("WithReferences", func(t *testing.T) {
		film := createFilm(t, router,
			`{"name":"Interstellar","description":"Космос","releaseDate":"2014-11-06","duration":169,"mpa":{"id":3},"genres":[{"id":2},{"id":2},{"id":1}]}`)

		assert.NotZero(t, film.ID)
		require.NotNil(t, film.Mpa)
		assert.Equal(t, "PG-13", film.Mpa.Name)
		require.Len(t, film.Genres, 2)
		assert.Equal(t, int64(1), film.Genres[0].ID)
	})

	t.Run("BlankName", func(t *testing.T) {
		w := perform(router, http.MethodPost, "/films",
			`{"name":"   ","releaseDate":"2014-11-06","duration":169}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ReleaseDateTooEarly", func(t *testing.T) {
		w := perform(router, http.MethodPost, "/films",
			`{"name":"Old","releaseDate":"1895-12-28","duration":60}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "the birth of cinema itself is too early")

		w = perform(router, http.MethodPost, "/films",
			`{"name":"Old","releaseDate":"1895-12-29","duration":60}`)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("NonPositiveDuration", func(t *testing.T) {
		w := perform(router, http.MethodPost, "/films",
			`{"name":"Zero","releaseDate":"2000-01-01","duration":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownMpa", func(t *testing.T) {
		w := perform(router, http.MethodPost, "/films",
			`{"name":"Ghost","releaseDate":"2000-01-01","duration":100,"mpa":{"id":999}}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UnknownGenre", func(t *testing.T) {
		w := perform(router, http.MethodPost, "/films",
			`{"name":"Ghost","releaseDate":"2000-01-01","duration":100,"genres":[{"id":999}]}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFilmHandler_Update(t *testing.T) {
	router := newFilmRouter()
	film := createFilm(t, router,
		`{"name":"Original","releaseDate":"2000-01-01","duration":100,"genres":[{"id":1},{"id":2}]}`)

	t.Run("OmittedGenresStay", func(t *testing.T) {
		w := perform(router, http.MethodPut, "/films",
			fmt.Sprintf(`{"id":%d,"name":"Renamed"}`, film.ID))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated models.Film
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "Renamed", updated.Name)
		assert.Len(t, updated.Genres, 2)
	})

	t.Run("SuppliedGenresReplace", func(t *testing.T) {
		w := perform(router, http.MethodPut, "/films",
			fmt.Sprintf(`{"id":%d,"genres":[{"id":6}]}`, film.ID))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated models.Film
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Len(t, updated.Genres, 1)
		assert.Equal(t, int64(6), updated.Genres[0].ID)
	})

	t.Run("EmptyGenresClear", func(t *testing.T) {
		w := perform(router, http.MethodPut, "/films",
			fmt.Sprintf(`{"id":%d,"genres":[]}`, film.ID))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated models.Film
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Empty(t, updated.Genres)
	})

	t.Run("UnknownFilm", func(t *testing.T) {
		w := perform(router, http.MethodPut, "/films", `{"id":9999,"name":"Ghost"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFilmHandler_Likes(t *testing.T) {
	router := newFilmRouter()
	film := createFilm(t, router, `{"name":"Liked","releaseDate":"2000-01-01","duration":100}`)

	w := perform(router, http.MethodPost, "/users", `{"email":"alice@example.com","login":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	t.Run("AddLike", func(t *testing.T) {
		w := perform(router, http.MethodPut, fmt.Sprintf("/films/%d/like/%d", film.ID, user.ID), "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var liked models.Film
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
		assert.Equal(t, []int64{user.ID}, liked.Likes)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		w := perform(router, http.MethodPut, fmt.Sprintf("/films/%d/like/9999", film.ID), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("RemoveLike", func(t *testing.T) {
		w := perform(router, http.MethodDelete, fmt.Sprintf("/films/%d/like/%d", film.ID, user.ID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var unliked models.Film
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unliked))
		assert.Empty(t, unliked.Likes)
	})
}

func TestFilmHandler_FindPopular(t *testing.T) {
	router := newFilmRouter()
	first := createFilm(t, router, `{"name":"First","releaseDate":"2000-01-01","duration":100}`)
	second := createFilm(t, router, `{"name":"Second","releaseDate":"2001-01-01","duration":100}`)

	w := perform(router, http.MethodPost, "/users", `{"email":"alice@example.com","login":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	w = perform(router, http.MethodPut, fmt.Sprintf("/films/%d/like/%d", second.ID, user.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("OrderedByLikes", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/films/popular", "")
		require.Equal(t, http.StatusOK, w.Code)

		var films []models.Film
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &films))
		require.Len(t, films, 2)
		assert.Equal(t, second.ID, films[0].ID)
		assert.Equal(t, first.ID, films[1].ID)
	})

	t.Run("CountLimits", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/films/popular?count=1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var films []models.Film
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &films))
		assert.Len(t, films, 1)
	})

	t.Run("NegativeCount", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/films/popular?count=-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFilmHandler_Remove(t *testing.T) {
	router := newFilmRouter()
	film := createFilm(t, router, `{"name":"Doomed","releaseDate":"2000-01-01","duration":100}`)

	w := perform(router, http.MethodDelete, fmt.Sprintf("/films/%d", film.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodGet, fmt.Sprintf("/films/%d", film.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
