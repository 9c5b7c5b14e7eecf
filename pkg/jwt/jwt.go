package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VitalyVL1/filmorate/internal/config"
)

// GenerateToken creates a new JWT carrying the subject and role claims.
func GenerateToken(subject, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
