package orderControllers

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

type PlaceOrderRequest struct {
	ShippingAddress json.RawMessage `json:"shippingAddress" binding:"required"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required"`
}

// checkoutLine is one cart row joined to the live watch price. The price
// read here is what the customer agrees to pay; it is snapshotted into the
// order item and never re-derived.
type checkoutLine struct {
	WatchID  uint
	Quantity int
	Price    decimal.Decimal
}

// checkoutLockClass namespaces the per-user advisory lock so it cannot
// collide with other advisory lock users on the same database.
const checkoutLockClass = 7201

// computeTotal sums price × quantity across the cart in decimal arithmetic,
// rounded to 2 places.
func computeTotal(lines []checkoutLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2)
}

// PlaceOrder converts the user's cart into an order: read the cart joined to
// live prices, write the order and its items with the captured unit prices,
// and clear the cart. The whole sequence runs in one transaction, serialized
// per user by a transaction-scoped advisory lock, so concurrent checkouts
// cannot double-charge a cart and a failure anywhere rolls everything back.
func PlaceOrder(db *gorm.DB, userID uint, req PlaceOrderRequest) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", checkoutLockClass, int64(userID)).Error; err != nil {
			return utils.Internal("Failed to create order", err)
		}

		var lines []checkoutLine
		if err := tx.Table("cart_items").
			Select("cart_items.watch_id, cart_items.quantity, watches.price").
			Joins("JOIN watches ON watches.id = cart_items.watch_id").
			Where("cart_items.user_id = ?", userID).
			Scan(&lines).Error; err != nil {
			return utils.Internal("Failed to read cart", err)
		}
		if len(lines) == 0 {
			return utils.ErrEmptyCart
		}

		order = models.Order{
			UserID:          userID,
			Total:           computeTotal(lines),
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			ShippingAddress: datatypes.JSON(req.ShippingAddress),
			PaymentMethod:   req.PaymentMethod,
		}
		if err := tx.Create(&order).Error; err != nil {
			return utils.Internal("Failed to create order", err)
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, models.OrderItem{
				OrderID:  order.ID,
				WatchID:  line.WatchID,
				Quantity: line.Quantity,
				Price:    line.Price,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return utils.Internal("Failed to create order items", err)
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return utils.Internal("Failed to clear cart", err)
		}

		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
