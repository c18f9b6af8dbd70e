package supportControllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/middleware"
	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

type CreateTicketRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type UpdateTicketRequest struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AssignedTo *uint   `json:"assignedTo"`
}

// CreateTicket opens a support ticket for the caller.
func CreateTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}

		ticket := models.SupportTicket{
			UserID:  middleware.UserID(c),
			Subject: req.Subject,
			Message: req.Message,
			Status:  models.TicketStatusOpen,
		}
		if err := db.Create(&ticket).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to create ticket", err))
			return
		}
		utils.Created(c, ticket)
	}
}

// GetMyTickets lists the caller's tickets, newest first.
func GetMyTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tickets := []models.SupportTicket{}
		if err := db.Where("user_id = ?", middleware.UserID(c)).
			Order("created_at DESC").
			Find(&tickets).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch tickets", err))
			return
		}
		utils.OK(c, tickets)
	}
}

// GetAllTickets lists every ticket. Admin only.
func GetAllTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tickets := []models.SupportTicket{}
		query := db.Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if err := query.Find(&tickets).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch tickets", err))
			return
		}
		utils.OK(c, tickets)
	}
}

// UpdateTicket changes a ticket's status, priority, or assignee. Admin only.
func UpdateTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid ticket ID"))
			return
		}

		var ticket models.SupportTicket
		if err := db.First(&ticket, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.NotFound("Ticket not found"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to fetch ticket", err))
			return
		}

		var req UpdateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}

		if req.Status != nil {
			ticket.Status = *req.Status
		}
		if req.Priority != nil {
			ticket.Priority = *req.Priority
		}
		if req.AssignedTo != nil {
			ticket.AssignedTo = req.AssignedTo
		}

		if err := db.Save(&ticket).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to update ticket", err))
			return
		}
		utils.OK(c, ticket)
	}
}
