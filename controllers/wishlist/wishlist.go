package wishlistControllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/middleware"
	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

type AddToWishlistRequest struct {
	WatchID uint `json:"watchId" binding:"required"`
}

// GetWishlist lists the caller's wishlist with the watches joined in.
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := []models.WishlistItem{}
		if err := db.Preload("Watch").
			Where("user_id = ?", middleware.UserID(c)).
			Find(&items).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch wishlist", err))
			return
		}
		utils.OK(c, items)
	}
}

// AddToWishlist adds a watch to the caller's wishlist. Duplicates are a 400.
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}
		userID := middleware.UserID(c)

		var existing models.WishlistItem
		err := db.Where("user_id = ? AND watch_id = ?", userID, req.WatchID).
			First(&existing).Error
		if err == nil {
			utils.Fail(c, utils.Validation("Item already in wishlist"))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, utils.Internal("Failed to fetch wishlist", err))
			return
		}

		item := models.WishlistItem{UserID: userID, WatchID: req.WatchID}
		if err := db.Create(&item).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to add to wishlist", err))
			return
		}
		utils.Created(c, item)
	}
}

// RemoveFromWishlist deletes one of the caller's wishlist entries.
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid wishlist item ID"))
			return
		}
		result := db.Where("id = ? AND user_id = ?", id, middleware.UserID(c)).
			Delete(&models.WishlistItem{})
		if result.Error != nil {
			utils.Fail(c, utils.Internal("Failed to remove from wishlist", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			utils.Fail(c, utils.NotFound("Wishlist item not found"))
			return
		}
		utils.Message(c, "Item removed from wishlist")
	}
}
