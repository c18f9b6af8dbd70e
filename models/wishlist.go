package models

import "time"

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_watch" json:"userId"`
	WatchID   uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_watch" json:"watchId"`
	Watch     *Watch    `gorm:"foreignKey:WatchID" json:"watch,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
