package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/service"
)

// GenreInput defines the structure for genre creation and update.
type GenreInput struct {
	Name string `json:"name" binding:"required" example:"Комедия"`
}

// GenreHandler serves the /genres read endpoints and the /admin/genres
// administrative extension.
type GenreHandler struct {
	genres *service.GenreService
}

// NewGenreHandler creates a genre handler over the given service.
func NewGenreHandler(genres *service.GenreService) *GenreHandler {
	return &GenreHandler{genres: genres}
}

// FindAll godoc
// @Summary      List all genres
// @Tags         genres
// @Produce      json
// @Success      200  {array}  models.Genre
// @Router       /genres [get]
func (h *GenreHandler) FindAll(c *gin.Context) {
	genres, err := h.genres.FindAll()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

// FindByID godoc
// @Summary      Get genre by ID
// @Tags         genres
// @Produce      json
// @Param        id   path      int  true  "Genre ID"
// @Success      200  {object}  models.Genre
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /genres/{id} [get]
func (h *GenreHandler) FindByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	genre, err := h.genres.FindByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

// Create godoc
// @Summary      Create a new genre
// @Description  Extends the genre catalog. The name must be unique.
// @Tags         admin-genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GenreInput true "Genre Info"
// @Success      201  {object}  models.Genre
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/genres [post]
func (h *GenreHandler) Create(c *gin.Context) {
	var input GenreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.genres.Create(&models.Genre{Name: input.Name})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary      Update a genre
// @Tags         admin-genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int        true  "Genre ID"
// @Param        input body      GenreInput true  "New Genre Info"
// @Success      200   {object}  models.Genre
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse
// @Router       /admin/genres/{id} [put]
func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input GenreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.genres.Update(&models.Genre{ID: id, Name: input.Name})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Remove godoc
// @Summary      Delete a genre
// @Description  Removes the catalog entry. Film associations referencing it are deleted with it.
// @Tags         admin-genres
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Genre ID"
// @Success      200  {object}  models.Genre
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/genres/{id} [delete]
func (h *GenreHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	removed, err := h.genres.RemoveByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, removed)
}
