package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", ValidateToken, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c), "role": c.GetString(CtxRole)})
	})
	r.GET("/admin", ValidateToken, RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateTokenMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w := doRequest(authRouter(), "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w := doRequest(authRouter(), "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenSetsIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken(&models.User{ID: 7, Email: "c@example.com", Role: models.RoleCustomer})
	require.NoError(t, err)

	w := doRequest(authRouter(), "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)
}

func TestRequireAdminRejectsCustomer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken(&models.User{ID: 7, Email: "c@example.com", Role: models.RoleCustomer})
	require.NoError(t, err)

	w := doRequest(authRouter(), "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken(&models.User{ID: 1, Email: "admin@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	w := doRequest(authRouter(), "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
