package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting processing
	OrderStatusProcessing OrderStatus = "processing" // being prepared for dispatch
	OrderStatusShipped    OrderStatus = "shipped"    // handed to the carrier
	OrderStatusDelivered  OrderStatus = "delivered"  // received by the customer
	OrderStatusCancelled  OrderStatus = "cancelled"  // terminated before delivery

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"userId"`
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status          OrderStatus     `gorm:"type:varchar(50);default:'pending'" json:"status"`
	ShippingAddress datatypes.JSON  `json:"shippingAddress"`
	PaymentMethod   string          `gorm:"size:50" json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(50);default:'pending'" json:"paymentStatus"`
	TrackingNumber  string          `gorm:"size:100" json:"trackingNumber,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem pins one line of a completed order to the unit price the customer
// agreed to at checkout. It is never re-derived from the watch afterwards.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"orderId"`
	WatchID   uint            `gorm:"not null" json:"watchId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Watch     *Watch          `gorm:"foreignKey:WatchID" json:"watch,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
