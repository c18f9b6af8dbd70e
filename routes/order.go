package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/hbertrand-dev/watchstore-api/controllers/order"
	"github.com/hbertrand-dev/watchstore-api/middleware"
)

// SetupOrderRoutes registers the order endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Checkout: convert the caller's cart into an order
		orders.POST("", orderControllers.CreateOrderHandler(db))

		orders.GET("", orderControllers.GetOrdersHandler(db))
		orders.GET("/all", middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(db))

		// Live order events for the admin dashboard
		orders.GET("/events", middleware.RequireAdmin, orderControllers.OrderEventsHandler)

		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
		orders.PUT("/:id/status", middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(db))
		orders.PUT("/:id/payment-status", middleware.RequireAdmin, orderControllers.UpdatePaymentStatusHandler(db))
	}
}
