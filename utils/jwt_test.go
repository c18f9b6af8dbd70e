package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbertrand-dev/watchstore-api/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: 42, Email: "alex@example.com", Role: models.RoleAdmin}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateToken(&models.User{ID: 1, Email: "a@b.c", Role: models.RoleCustomer})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenTTL(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "")
	assert.Equal(t, 7*24*time.Hour, TokenTTL())

	t.Setenv("JWT_EXPIRES_IN", "24h")
	assert.Equal(t, 24*time.Hour, TokenTTL())

	t.Setenv("JWT_EXPIRES_IN", "bogus")
	assert.Equal(t, 7*24*time.Hour, TokenTTL())
}
