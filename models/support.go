package models

import "time"

const (
	TicketStatusOpen     = "open"
	TicketStatusPending  = "pending"
	TicketStatusResolved = "resolved"
	TicketStatusClosed   = "closed"
)

type SupportTicket struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	Subject    string    `gorm:"size:255;not null" json:"subject"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Status     string    `gorm:"size:50;default:'open'" json:"status"`
	Priority   string    `gorm:"size:20;default:'medium'" json:"priority"`
	AssignedTo *uint     `json:"assignedTo,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
