package cartControllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/middleware"
	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

type AddToCartRequest struct {
	WatchID   uint  `json:"watchId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"omitempty,min=1"`
	VariantID *uint `json:"variantId"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetCart lists the caller's cart lines with their watches.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := []models.CartItem{}
		if err := db.Preload("Watch").
			Where("user_id = ?", middleware.UserID(c)).
			Find(&items).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch cart", err))
			return
		}
		utils.OK(c, items)
	}
}

// AddToCart adds a watch to the cart. Adding a (watch, variant) pair that is
// already in the cart increments its quantity instead of creating a new line.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		userID := middleware.UserID(c)

		var watch models.Watch
		if err := db.First(&watch, req.WatchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.Validation("Watch does not exist"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to validate watch", err))
			return
		}

		query := db.Where("user_id = ? AND watch_id = ?", userID, req.WatchID)
		if req.VariantID != nil {
			query = query.Where("variant_id = ?", *req.VariantID)
		} else {
			query = query.Where("variant_id IS NULL")
		}

		var existing models.CartItem
		err := query.First(&existing).Error
		if err == nil {
			existing.Quantity += req.Quantity
			if err := db.Save(&existing).Error; err != nil {
				utils.Fail(c, utils.Internal("Failed to update cart item", err))
				return
			}
			utils.OK(c, existing)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, utils.Internal("Failed to fetch cart item", err))
			return
		}

		item := models.CartItem{
			UserID:    userID,
			WatchID:   req.WatchID,
			Quantity:  req.Quantity,
			VariantID: req.VariantID,
		}
		if err := db.Create(&item).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to add item to cart", err))
			return
		}
		utils.Created(c, item)
	}
}

// UpdateCartItem sets the quantity of one of the caller's cart lines.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid cart item ID"))
			return
		}

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", id, middleware.UserID(c)).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.NotFound("Cart item not found"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to fetch cart item", err))
			return
		}

		item.Quantity = req.Quantity
		if err := db.Save(&item).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to update cart item", err))
			return
		}
		utils.OK(c, item)
	}
}

// RemoveFromCart deletes one of the caller's cart lines.
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid cart item ID"))
			return
		}

		result := db.Where("id = ? AND user_id = ?", id, middleware.UserID(c)).
			Delete(&models.CartItem{})
		if result.Error != nil {
			utils.Fail(c, utils.Internal("Failed to remove from cart", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			utils.Fail(c, utils.NotFound("Cart item not found"))
			return
		}
		utils.Message(c, "Item removed from cart")
	}
}

// ClearCart deletes every line in the caller's cart.
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("user_id = ?", middleware.UserID(c)).
			Delete(&models.CartItem{}).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to clear cart", err))
			return
		}
		utils.Message(c, "Cart cleared successfully")
	}
}
