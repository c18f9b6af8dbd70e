package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

// Context keys set by ValidateToken.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// ValidateToken authenticates the bearer token and stashes the caller's
// identity in the request context.
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		utils.Fail(c, utils.ErrNoToken)
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		utils.Fail(c, utils.ErrUnauthorized)
		c.Abort()
		return
	}

	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxEmail, claims.Email)
	c.Set(CtxRole, claims.Role)
	c.Next()
}

// RequireAdmin rejects callers whose token does not carry the admin role.
// Must run after ValidateToken.
func RequireAdmin(c *gin.Context) {
	if c.GetString(CtxRole) != models.RoleAdmin {
		utils.Fail(c, utils.ErrForbidden)
		c.Abort()
		return
	}
	c.Next()
}

// UserID returns the authenticated user's id from the request context.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// IsAdmin reports whether the current request carries the admin role.
func IsAdmin(c *gin.Context) bool {
	return c.GetString(CtxRole) == models.RoleAdmin
}
