package orderControllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/logger"
	"github.com/hbertrand-dev/watchstore-api/middleware"
	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"trackingNumber"`
}

func parseOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ValidTransition enforces the fulfillment workflow:
// pending → processing → shipped → delivered, with cancellation allowed
// from any non-terminal state.
func ValidTransition(from, to models.OrderStatus) bool {
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusProcessing || to == models.OrderStatusCancelled
	case models.OrderStatusProcessing:
		return to == models.OrderStatusShipped || to == models.OrderStatusCancelled
	case models.OrderStatusShipped:
		return to == models.OrderStatusDelivered || to == models.OrderStatusCancelled
	default:
		// delivered and cancelled are terminal
		return false
	}
}

// CreateOrderHandler checks out the caller's cart.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}

		userID := middleware.UserID(c)
		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			utils.Fail(c, err)
			return
		}

		logger.Log.Info("order placed",
			zap.Uint("order_id", order.ID),
			zap.Uint("user_id", userID),
			zap.String("total", order.Total.StringFixed(2)),
		)
		broadcastOrderEvent("order.created", order)
		utils.Created(c, order)
	}
}

// GetOrdersHandler lists the caller's own orders, newest first, paginated.
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		params, err := utils.ParsePageParams(c, 10)
		if err != nil {
			utils.Fail(c, err)
			return
		}

		query := db.Model(&models.Order{}).Where("user_id = ?", userID)

		var total int64
		if err := query.Count(&total).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch orders", err))
			return
		}

		orders := []models.Order{}
		if err := query.Order("created_at DESC, id DESC").
			Limit(params.Limit).Offset(params.Offset()).
			Find(&orders).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch orders", err))
			return
		}

		utils.Page(c, orders, utils.Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: utils.TotalPages(total, params.Limit),
		})
	}
}

// GetAllOrdersHandler lists every order with its user and items. Admin only.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := []models.Order{}
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Watch").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch orders", err))
			return
		}
		utils.OK(c, orders)
	}
}

// GetOrderByIDHandler returns one order with its items. Owner or admin.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid order ID"))
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Watch").
			First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.NotFound("Order not found"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to fetch order", err))
			return
		}

		if order.UserID != middleware.UserID(c) && !middleware.IsAdmin(c) {
			utils.Fail(c, utils.ErrAccessDenied)
			return
		}
		utils.OK(c, order)
	}
}

// UpdateOrderStatusHandler moves an order along the fulfillment workflow.
// Admin only. Shipping an order without a tracking number assigns one.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid order ID"))
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}
		newStatus, err := parseOrderStatus(req.Status)
		if err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.NotFound("Order not found"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to fetch order", err))
			return
		}

		if !ValidTransition(order.Status, newStatus) {
			utils.Fail(c, utils.Validation("invalid status transition "+string(order.Status)+" → "+string(newStatus)))
			return
		}

		order.Status = newStatus
		if req.TrackingNumber != "" {
			order.TrackingNumber = req.TrackingNumber
		} else if newStatus == models.OrderStatusShipped && order.TrackingNumber == "" {
			order.TrackingNumber = uuid.NewString()
		}

		if err := db.Save(&order).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to update order", err))
			return
		}

		logger.Log.Info("order status updated",
			zap.Uint("order_id", order.ID),
			zap.String("status", string(newStatus)),
		)
		broadcastOrderEvent("order.status", &order)
		utils.OK(c, order)
	}
}

// UpdatePaymentStatusHandler records the outcome of a payment attempt. Admin only.
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid order ID"))
			return
		}

		var req struct {
			PaymentStatus string `json:"paymentStatus" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}

		var newStatus models.PaymentStatus
		switch strings.ToLower(req.PaymentStatus) {
		case string(models.PaymentStatusPending):
			newStatus = models.PaymentStatusPending
		case string(models.PaymentStatusPaid):
			newStatus = models.PaymentStatusPaid
		case string(models.PaymentStatusFailed):
			newStatus = models.PaymentStatusFailed
		default:
			utils.Fail(c, utils.Validation("invalid payment status"))
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.NotFound("Order not found"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to fetch order", err))
			return
		}

		order.PaymentStatus = newStatus
		if err := db.Save(&order).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to update payment status", err))
			return
		}
		broadcastOrderEvent("order.payment", &order)
		utils.OK(c, order)
	}
}
