package models

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	FirstName  string    `gorm:"size:100;not null" json:"firstName"`
	LastName   string    `gorm:"size:100;not null" json:"lastName"`
	Role       string    `gorm:"size:20;not null;default:'customer'" json:"role"`
	Phone      string    `gorm:"size:20" json:"phone,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	IsVerified bool      `gorm:"default:false" json:"isVerified"`
	Addresses  []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Orders     []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Address struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	AddressLine1 string    `gorm:"size:255;not null" json:"addressLine1"`
	AddressLine2 string    `gorm:"size:255" json:"addressLine2,omitempty"`
	City         string    `gorm:"size:100;not null" json:"city"`
	State        string    `gorm:"size:100" json:"state,omitempty"`
	Country      string    `gorm:"size:100;not null" json:"country"`
	PostalCode   string    `gorm:"size:20;not null" json:"postalCode"`
	IsDefault    bool      `gorm:"default:false" json:"isDefault"`
	CreatedAt    time.Time `json:"createdAt"`
}
