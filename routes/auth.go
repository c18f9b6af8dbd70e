package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/hbertrand-dev/watchstore-api/controllers/auth"
	"github.com/hbertrand-dev/watchstore-api/middleware"
)

// SetupAuthRoutes registers the /auth endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authControllers.Register(db))
		auth.POST("/login", authControllers.Login(db))
		auth.POST("/logout", middleware.ValidateToken, authControllers.Logout())
		auth.GET("/me", middleware.ValidateToken, authControllers.Me(db))
	}
}
