package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/hbertrand-dev/watchstore-api/controllers/cart"
	wishlistControllers "github.com/hbertrand-dev/watchstore-api/controllers/wishlist"
	"github.com/hbertrand-dev/watchstore-api/middleware"
)

// SetupCartRoutes registers the cart and wishlist endpoints. All require a token.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.AddToCart(db))
		cart.PUT("/:id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:id", cartControllers.RemoveFromCart(db))
		cart.DELETE("", cartControllers.ClearCart(db))
	}

	wishlist := api.Group("/wishlist")
	wishlist.Use(middleware.ValidateToken)
	{
		wishlist.GET("", wishlistControllers.GetWishlist(db))
		wishlist.POST("", wishlistControllers.AddToWishlist(db))
		wishlist.DELETE("/:id", wishlistControllers.RemoveFromWishlist(db))
	}
}
