package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	watchControllers "github.com/hbertrand-dev/watchstore-api/controllers/watch"
	"github.com/hbertrand-dev/watchstore-api/middleware"
)

// SetupWatchRoutes registers the catalog endpoints. Reads are public;
// mutations and the export are admin-gated.
func SetupWatchRoutes(api *gin.RouterGroup, db *gorm.DB) {
	watches := api.Group("/watches")
	{
		watches.GET("", watchControllers.GetWatches(db))
		watches.GET("/search", watchControllers.SearchWatches(db))
		watches.GET("/featured", watchControllers.GetFeaturedWatches(db))
		watches.GET("/best-sellers", watchControllers.GetBestSellers(db))
		watches.GET("/export", middleware.ValidateToken, middleware.RequireAdmin, watchControllers.ExportWatchesToExcel(db))
		watches.GET("/:id", watchControllers.GetWatchByID(db))

		watches.POST("", middleware.ValidateToken, middleware.RequireAdmin, watchControllers.CreateWatch(db))
		watches.PUT("/:id", middleware.ValidateToken, middleware.RequireAdmin, watchControllers.UpdateWatch(db))
		watches.DELETE("/:id", middleware.ValidateToken, middleware.RequireAdmin, watchControllers.DeleteWatch(db))
	}
}
