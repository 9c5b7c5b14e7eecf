package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/service"
)

// MpaInput defines the structure for MPA rating creation and update.
type MpaInput struct {
	Name        string `json:"name" binding:"required" example:"PG-13"`
	Description string `json:"description" example:"детям до 13 лет просмотр не желателен"`
}

// MpaHandler serves the /mpa read endpoints and the /admin/mpa
// administrative extension.
type MpaHandler struct {
	mpa *service.MpaService
}

// NewMpaHandler creates an MPA handler over the given service.
func NewMpaHandler(mpa *service.MpaService) *MpaHandler {
	return &MpaHandler{mpa: mpa}
}

// FindAll godoc
// @Summary      List all MPA ratings
// @Tags         mpa
// @Produce      json
// @Success      200  {array}  models.Mpa
// @Router       /mpa [get]
func (h *MpaHandler) FindAll(c *gin.Context) {
	ratings, err := h.mpa.FindAll()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// FindByID godoc
// @Summary      Get MPA rating by ID
// @Tags         mpa
// @Produce      json
// @Param        id   path      int  true  "MPA ID"
// @Success      200  {object}  models.Mpa
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /mpa/{id} [get]
func (h *MpaHandler) FindByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	mpa, err := h.mpa.FindByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, mpa)
}

// Create godoc
// @Summary      Create a new MPA rating
// @Description  Extends the rating catalog. The name must be unique.
// @Tags         admin-mpa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body MpaInput true "MPA Info"
// @Success      201  {object}  models.Mpa
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/mpa [post]
func (h *MpaHandler) Create(c *gin.Context) {
	var input MpaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.mpa.Create(&models.Mpa{Name: input.Name, Description: input.Description})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary      Update an MPA rating
// @Tags         admin-mpa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int      true  "MPA ID"
// @Param        input body      MpaInput true  "New MPA Info"
// @Success      200   {object}  models.Mpa
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse
// @Router       /admin/mpa/{id} [put]
func (h *MpaHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input MpaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.mpa.Update(&models.Mpa{ID: id, Name: input.Name, Description: input.Description})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Remove godoc
// @Summary      Delete an MPA rating
// @Description  Removes the catalog entry. Films referencing it keep a null rating.
// @Tags         admin-mpa
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "MPA ID"
// @Success      200  {object}  models.Mpa
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/mpa/{id} [delete]
func (h *MpaHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	removed, err := h.mpa.RemoveByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, removed)
}
