package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/service"
)

// Cinema was born on 1895-12-28; release dates must be strictly after.
var earliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// region --- DTOs ---

// MpaRef references an MPA rating by id.
type MpaRef struct {
	ID int64 `json:"id" binding:"required" example:"3"`
}

// GenreRef references a genre by id.
type GenreRef struct {
	ID int64 `json:"id" binding:"required" example:"1"`
}

// CreateFilmInput defines the structure for film creation.
type CreateFilmInput struct {
	Name        string      `json:"name" binding:"required" example:"Interstellar"`
	Description string      `json:"description" binding:"max=200"`
	ReleaseDate models.Date `json:"releaseDate"`
	Duration    int         `json:"duration" binding:"required,gt=0" example:"169"`
	Mpa         *MpaRef     `json:"mpa"`
	Genres      []GenreRef  `json:"genres"`
}

func (in *CreateFilmInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name must not be blank")
	}
	if in.ReleaseDate.IsZero() || !in.ReleaseDate.After(earliestReleaseDate) {
		return errors.New("release date must be after 1895-12-28")
	}
	return nil
}

// UpdateFilmInput defines the structure for a partial film update. A supplied
// genre list fully replaces the existing associations.
type UpdateFilmInput struct {
	ID          int64        `json:"id" example:"1"`
	Name        *string      `json:"name"`
	Description *string      `json:"description" binding:"omitempty,max=200"`
	ReleaseDate *models.Date `json:"releaseDate"`
	Duration    *int         `json:"duration" binding:"omitempty,gt=0"`
	Mpa         *MpaRef      `json:"mpa"`
	Genres      []GenreRef   `json:"genres"`
}

func (in *UpdateFilmInput) validate() error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return errors.New("name must not be blank")
	}
	if in.ReleaseDate != nil && !in.ReleaseDate.After(earliestReleaseDate) {
		return errors.New("release date must be after 1895-12-28")
	}
	return nil
}

// endregion

// FilmHandler serves the /films endpoints.
type FilmHandler struct {
	films *service.FilmService
}

// NewFilmHandler creates a film handler over the given service.
func NewFilmHandler(films *service.FilmService) *FilmHandler {
	return &FilmHandler{films: films}
}

// Create godoc
// @Summary      Create a new film
// @Description  Creates a film. Referenced rating and genres must exist.
// @Tags         films
// @Accept       json
// @Produce      json
// @Param        input body CreateFilmInput true "Film Info"
// @Success      201  {object}  models.Film
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Referenced rating or genre not found"
// @Router       /films [post]
func (h *FilmHandler) Create(c *gin.Context) {
	var input CreateFilmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film := models.Film{
		Name:        input.Name,
		Description: input.Description,
		ReleaseDate: input.ReleaseDate,
		Duration:    input.Duration,
		Mpa:         mpaFromRef(input.Mpa),
		Genres:      genresFromRefs(input.Genres),
	}

	created, err := h.films.Create(&film)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary      Update a film
// @Description  Applies the non-null fields of the body onto the stored film. A supplied genre list replaces the existing associations.
// @Tags         films
// @Accept       json
// @Produce      json
// @Param        input body UpdateFilmInput true "Updated fields"
// @Success      200  {object}  models.Film
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /films [put]
func (h *FilmHandler) Update(c *gin.Context) {
	var input UpdateFilmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.films.Update(service.FilmUpdate{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		ReleaseDate: input.ReleaseDate,
		Duration:    input.Duration,
		Mpa:         mpaFromRef(input.Mpa),
		Genres:      genresFromRefs(input.Genres),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// FindAll godoc
// @Summary      List all films
// @Tags         films
// @Produce      json
// @Success      200  {array}  models.Film
// @Router       /films [get]
func (h *FilmHandler) FindAll(c *gin.Context) {
	films, err := h.films.FindAll()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

// FindByID godoc
// @Summary      Get film by ID
// @Tags         films
// @Produce      json
// @Param        id   path      int  true  "Film ID"
// @Success      200  {object}  models.Film
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /films/{id} [get]
func (h *FilmHandler) FindByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	film, err := h.films.FindByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

// Remove godoc
// @Summary      Delete a film
// @Description  Deletes the film together with its likes and genre associations.
// @Tags         films
// @Produce      json
// @Param        id   path      int  true  "Film ID"
// @Success      200  {object}  models.Film
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /films/{id} [delete]
func (h *FilmHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	removed, err := h.films.RemoveByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, removed)
}

// AddLike godoc
// @Summary      Like a film
// @Description  Records the user's like. Liking an already-liked film is a no-op.
// @Tags         likes
// @Produce      json
// @Param        id      path  int  true  "Film ID"
// @Param        userId  path  int  true  "User ID"
// @Success      200  {object}  models.Film
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /films/{id}/like/{userId} [put]
func (h *FilmHandler) AddLike(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	film, err := h.films.AddLike(id, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

// RemoveLike godoc
// @Summary      Unlike a film
// @Description  Removes the user's like. Removing an absent like is a no-op.
// @Tags         likes
// @Produce      json
// @Param        id      path  int  true  "Film ID"
// @Param        userId  path  int  true  "User ID"
// @Success      200  {object}  models.Film
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /films/{id}/like/{userId} [delete]
func (h *FilmHandler) RemoveLike(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	film, err := h.films.RemoveLike(id, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

// FindPopular godoc
// @Summary      List the most liked films
// @Tags         films
// @Produce      json
// @Param        count  query  int  false  "Maximum number of films"  default(10)
// @Success      200  {array}   models.Film
// @Failure      400  {object}  ErrorResponse
// @Router       /films/popular [get]
func (h *FilmHandler) FindPopular(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil || count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count parameter"})
		return
	}

	films, err := h.films.FindPopular(count)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

func mpaFromRef(ref *MpaRef) *models.Mpa {
	if ref == nil {
		return nil
	}
	return &models.Mpa{ID: ref.ID}
}

func genresFromRefs(refs []GenreRef) []models.Genre {
	if refs == nil {
		return nil
	}
	genres := make([]models.Genre, 0, len(refs))
	for _, ref := range refs {
		genres = append(genres, models.Genre{ID: ref.ID})
	}
	return genres
}
