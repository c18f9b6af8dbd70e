package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WatchID   uint      `gorm:"not null;index" json:"watchId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
