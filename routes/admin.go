package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	supportControllers "github.com/hbertrand-dev/watchstore-api/controllers/support"
	userControllers "github.com/hbertrand-dev/watchstore-api/controllers/user"
	"github.com/hbertrand-dev/watchstore-api/middleware"
)

// SetupAdminRoutes registers user management and support-ticket endpoints.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	users.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		users.GET("", userControllers.GetAllUsers(db))
		users.GET("/:id", userControllers.GetUserByID(db))
		users.POST("", userControllers.CreateUser(db))
		users.PUT("/:id", userControllers.UpdateUser(db))
		users.DELETE("/:id", userControllers.DeleteUser(db))
	}

	support := api.Group("/support")
	support.Use(middleware.ValidateToken)
	{
		support.POST("", supportControllers.CreateTicket(db))
		support.GET("/mine", supportControllers.GetMyTickets(db))
		support.GET("", middleware.RequireAdmin, supportControllers.GetAllTickets(db))
		support.PUT("/:id", middleware.RequireAdmin, supportControllers.UpdateTicket(db))
	}
}
