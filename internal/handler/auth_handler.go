package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/VitalyVL1/filmorate/internal/config"
	"github.com/VitalyVL1/filmorate/pkg/jwt"
)

// LoginInput defines the structure for the admin login request.
type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges the administrator password for a JWT used on /admin routes
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Admin credentials"
// @Success      200  {object}  map[string]string "token"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken("admin", "admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
