package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "avigate-tracker",
	}
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "commuter", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "commuter", (*claims)["role"])
	assert.Equal(t, "avigate-tracker", (*claims)["iss"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "avigate-tracker",
	}

	tokenString, _, err := GenerateToken(uuid.New(), "commuter", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: -5,
		Issuer:     "avigate-tracker",
	}

	tokenString, _, err := GenerateToken(uuid.New(), "commuter", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.Secret)
	assert.Error(t, err)
}
