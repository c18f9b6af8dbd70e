package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failWith(t *testing.T, err error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestFailMapsAppError(t *testing.T) {
	w, env := failWith(t, ErrEmptyCart)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Cart is empty", env.Error.Message)
	assert.Equal(t, "EMPTY_CART", env.Error.Details)
}

func TestFailMapsUnknownErrorTo500(t *testing.T) {
	w, env := failWith(t, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Internal server error", env.Error.Message)
}

func TestFailRedactsCauseInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	_, env := failWith(t, Internal("Failed to fetch watches", errors.New("dial tcp: refused")))

	require.NotNil(t, env.Error)
	assert.Equal(t, "PERSISTENCE_ERROR", env.Error.Details)
	assert.NotContains(t, env.Error.Details, "dial tcp")
}

func TestFailExposesCauseInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	_, env := failWith(t, Internal("Failed to fetch watches", errors.New("dial tcp: refused")))

	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "dial tcp")
}

func TestAppErrorWrapKeepsCode(t *testing.T) {
	wrapped := ErrInvalidCriteria.Wrap(errors.New("invalid price bound"))
	assert.Equal(t, http.StatusBadRequest, wrapped.Code)
	assert.ErrorContains(t, wrapped, "invalid price bound")

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
}
