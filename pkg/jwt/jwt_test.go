package jwt

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyVL1/filmorate/internal/config"
)

func TestGenerateToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	signed, err := GenerateToken("admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := gojwt.Parse(signed, func(token *gojwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(gojwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
	assert.Greater(t, claims["exp"].(float64), claims["iat"].(float64))
}

func TestGenerateToken_WrongSecretFailsVerification(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	signed, err := GenerateToken("admin", "admin")
	require.NoError(t, err)

	_, err = gojwt.Parse(signed, func(token *gojwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
