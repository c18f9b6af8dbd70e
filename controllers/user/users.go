package userControllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

// publicFields keeps password hashes out of admin listings.
var publicFields = []string{
	"id", "email", "first_name", "last_name", "role",
	"phone", "avatar", "is_verified", "created_at",
}

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

type UpdateUserRequest struct {
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Role       *string `json:"role"`
	Phone      *string `json:"phone"`
	Avatar     *string `json:"avatar"`
	IsVerified *bool   `json:"isVerified"`
}

// GetAllUsers lists users (public fields only), paginated. Admin only.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1
		pageSize := 10
		if raw := c.Query("page"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				page = n
			}
		}
		if raw := c.Query("pageSize"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				pageSize = n
			}
		}

		users := []models.User{}
		if err := db.Select(publicFields).
			Order("created_at DESC, id DESC").
			Limit(pageSize).Offset((page - 1) * pageSize).
			Find(&users).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch users", err))
			return
		}
		utils.OK(c, users)
	}
}

// GetUserByID returns one user's public fields. Admin only.
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid user ID"))
			return
		}

		var user models.User
		if err := db.Select(publicFields).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.NotFound("User not found"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to fetch user", err))
			return
		}
		utils.OK(c, user)
	}
}

// CreateUser creates an account with an explicit role. Admin only.
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}
		role := req.Role
		if role == "" {
			role = models.RoleCustomer
		}
		if role != models.RoleCustomer && role != models.RoleAdmin {
			utils.Fail(c, utils.Validation("invalid role"))
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Fail(c, utils.Internal("Failed to create user", err))
			return
		}

		user := models.User{
			Email:     req.Email,
			Password:  string(hashed),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      role,
			Phone:     req.Phone,
		}
		if err := db.Create(&user).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to create user", err))
			return
		}
		utils.Created(c, user)
	}
}

// UpdateUser partially updates an account; a new password is re-hashed. Admin only.
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid user ID"))
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.NotFound("User not found"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to fetch user", err))
			return
		}

		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}

		updates := make(map[string]interface{})
		if req.Email != nil {
			updates["email"] = *req.Email
		}
		if req.Password != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				utils.Fail(c, utils.Internal("Failed to update user", err))
				return
			}
			updates["password"] = string(hashed)
		}
		if req.FirstName != nil {
			updates["first_name"] = *req.FirstName
		}
		if req.LastName != nil {
			updates["last_name"] = *req.LastName
		}
		if req.Role != nil {
			if *req.Role != models.RoleCustomer && *req.Role != models.RoleAdmin {
				utils.Fail(c, utils.Validation("invalid role"))
				return
			}
			updates["role"] = *req.Role
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}
		if req.Avatar != nil {
			updates["avatar"] = *req.Avatar
		}
		if req.IsVerified != nil {
			updates["is_verified"] = *req.IsVerified
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				utils.Fail(c, utils.Internal("Failed to update user", err))
				return
			}
		}
		utils.OK(c, user)
	}
}

// DeleteUser removes an account. Admin only.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid user ID"))
			return
		}
		if err := db.Delete(&models.User{}, id).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to delete user", err))
			return
		}
		utils.Message(c, "User deleted successfully")
	}
}
