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

// region --- DTOs ---

// CreateUserInput defines the structure for user creation.
type CreateUserInput struct {
	Email    string       `json:"email" binding:"required,email" example:"bob@example.com"`
	Login    string       `json:"login" binding:"required" example:"bob"`
	Name     string       `json:"name" example:"Bob"`
	Birthday *models.Date `json:"birthday"`
}

func (in *CreateUserInput) validate() error {
	if strings.ContainsAny(in.Login, " \t") {
		return errors.New("login must not contain whitespace")
	}
	if in.Birthday != nil && in.Birthday.After(time.Now()) {
		return errors.New("birthday must not be in the future")
	}
	return nil
}

// UpdateUserInput defines the structure for a partial user update. Absent
// fields leave the stored values untouched.
type UpdateUserInput struct {
	ID       int64        `json:"id" example:"1"`
	Email    *string      `json:"email" binding:"omitempty,email"`
	Login    *string      `json:"login"`
	Name     *string      `json:"name"`
	Birthday *models.Date `json:"birthday"`
}

func (in *UpdateUserInput) validate() error {
	if in.Login != nil && (strings.TrimSpace(*in.Login) == "" || strings.ContainsAny(*in.Login, " \t")) {
		return errors.New("login must be non-blank without whitespace")
	}
	if in.Birthday != nil && in.Birthday.After(time.Now()) {
		return errors.New("birthday must not be in the future")
	}
	return nil
}

// endregion

// UserHandler serves the /users endpoints.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a user handler over the given service.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create godoc
// @Summary      Create a new user
// @Description  Creates a user. A blank name defaults to the login.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body CreateUserInput true "User Info"
// @Success      201  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Email: input.Email,
		Login: input.Login,
		Name:  input.Name,
	}
	if input.Birthday != nil {
		user.Birthday = *input.Birthday
	}

	created, err := h.users.Create(&user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary      Update a user
// @Description  Applies the non-null fields of the body onto the stored user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body UpdateUserInput true "Updated fields"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users [put]
func (h *UserHandler) Update(c *gin.Context) {
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.users.Update(service.UserUpdate{
		ID:       input.ID,
		Email:    input.Email,
		Login:    input.Login,
		Name:     input.Name,
		Birthday: input.Birthday,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// FindAll godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.User
// @Router       /users [get]
func (h *UserHandler) FindAll(c *gin.Context) {
	users, err := h.users.FindAll()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// FindByID godoc
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) FindByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Remove godoc
// @Summary      Delete a user
// @Description  Deletes the user together with its friendship edges and likes.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	removed, err := h.users.RemoveByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, removed)
}

// AddFriend godoc
// @Summary      Add a friend
// @Description  Installs a friendship edge. A CONFIRMED status also installs the reciprocal edge.
// @Tags         friendship
// @Produce      json
// @Param        id        path   int     true   "User ID"
// @Param        friendId  path   int     true   "Friend ID"
// @Param        status    query  string  false  "Friendship status (UNCONFIRMED or CONFIRMED)" default(UNCONFIRMED)
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/friends/{friendId} [put]
func (h *UserHandler) AddFriend(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}
	status := c.DefaultQuery("status", string(models.StatusUnconfirmed))

	user, err := h.users.AddFriend(id, friendID, status)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// RemoveFriend godoc
// @Summary      Remove a friend
// @Description  Deletes only the owner's directed edge; a confirmed reciprocal edge survives.
// @Tags         friendship
// @Produce      json
// @Param        id        path  int  true  "User ID"
// @Param        friendId  path  int  true  "Friend ID"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/friends/{friendId} [delete]
func (h *UserHandler) RemoveFriend(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}

	user, err := h.users.RemoveFriend(id, friendID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// FindFriends godoc
// @Summary      List a user's friends
// @Tags         friendship
// @Produce      json
// @Param        id   path  int  true  "User ID"
// @Success      200  {array}   models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/friends [get]
func (h *UserHandler) FindFriends(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	friends, err := h.users.FindFriends(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

// FindCommonFriends godoc
// @Summary      List common friends of two users
// @Tags         friendship
// @Produce      json
// @Param        id       path  int  true  "User ID"
// @Param        otherId  path  int  true  "Other User ID"
// @Success      200  {array}   models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/friends/common/{otherId} [get]
func (h *UserHandler) FindCommonFriends(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(c, "otherId")
	if !ok {
		return
	}

	common, err := h.users.FindCommonFriends(id, otherID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, common)
}

// pathID parses a numeric path parameter, answering 400 on malformed input.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}
