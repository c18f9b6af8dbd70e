package models

import "time"

// CartItem is one pending line in a user's cart. A (user, watch, variant)
// combination has at most one row; repeated adds bump the quantity instead.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_line" json:"userId"`
	WatchID   uint      `gorm:"not null;uniqueIndex:idx_cart_line" json:"watchId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	VariantID *uint     `gorm:"uniqueIndex:idx_cart_line" json:"variantId,omitempty"`
	Watch     *Watch    `gorm:"foreignKey:WatchID" json:"watch,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
