package watchControllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

type CreateWatchRequest struct {
	Name            string          `json:"name" binding:"required"`
	Brand           string          `json:"brand" binding:"required"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	Description     string          `json:"description"`
	Images          []string        `json:"images"`
	Category        string          `json:"category"`
	Movement        string          `json:"movement"`
	CaseMaterial    string          `json:"caseMaterial"`
	CaseDiameter    int             `json:"caseDiameter"`
	StrapMaterial   string          `json:"strapMaterial"`
	WaterResistance int             `json:"waterResistance"`
	Color           string          `json:"color"`
	Stock           int             `json:"stock"`
	IsFeatured      bool            `json:"isFeatured"`
	IsBestSeller    bool            `json:"isBestSeller"`
	StoreID         *uint           `json:"storeId"`
}

type UpdateWatchRequest struct {
	Name            *string          `json:"name"`
	Brand           *string          `json:"brand"`
	Price           *decimal.Decimal `json:"price"`
	Description     *string          `json:"description"`
	Images          []string         `json:"images"`
	Category        *string          `json:"category"`
	Movement        *string          `json:"movement"`
	CaseMaterial    *string          `json:"caseMaterial"`
	CaseDiameter    *int             `json:"caseDiameter"`
	StrapMaterial   *string          `json:"strapMaterial"`
	WaterResistance *int             `json:"waterResistance"`
	Color           *string          `json:"color"`
	Stock           *int             `json:"stock"`
	IsFeatured      *bool            `json:"isFeatured"`
	IsBestSeller    *bool            `json:"isBestSeller"`
	StoreID         *uint            `json:"storeId"`
}

func imagesJSON(images []string) (datatypes.JSON, error) {
	if images == nil {
		images = []string{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// CreateWatch adds a watch to the catalog. Admin only.
func CreateWatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateWatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}
		if req.Price.IsNegative() {
			utils.Fail(c, utils.Validation("price must not be negative"))
			return
		}
		if req.Stock < 0 {
			utils.Fail(c, utils.Validation("stock must not be negative"))
			return
		}
		if !models.ValidMovement(req.Movement) {
			utils.Fail(c, utils.Validation("invalid movement"))
			return
		}

		images, err := imagesJSON(req.Images)
		if err != nil {
			utils.Fail(c, utils.Validation("invalid images"))
			return
		}

		watch := models.Watch{
			Name:            req.Name,
			Brand:           req.Brand,
			Price:           req.Price,
			Description:     req.Description,
			Images:          images,
			Category:        req.Category,
			Movement:        req.Movement,
			CaseMaterial:    req.CaseMaterial,
			CaseDiameter:    req.CaseDiameter,
			StrapMaterial:   req.StrapMaterial,
			WaterResistance: req.WaterResistance,
			Color:           req.Color,
			Stock:           req.Stock,
			IsFeatured:      req.IsFeatured,
			IsBestSeller:    req.IsBestSeller,
			StoreID:         req.StoreID,
		}
		if err := db.Create(&watch).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to create watch", err))
			return
		}
		utils.Created(c, watch)
	}
}

// UpdateWatch partially updates a watch. Admin only.
func UpdateWatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid watch ID"))
			return
		}

		var watch models.Watch
		if err := db.First(&watch, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.NotFound("Watch not found"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to fetch watch", err))
			return
		}

		var req UpdateWatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}

		if req.Name != nil {
			watch.Name = *req.Name
		}
		if req.Brand != nil {
			watch.Brand = *req.Brand
		}
		if req.Price != nil {
			if req.Price.IsNegative() {
				utils.Fail(c, utils.Validation("price must not be negative"))
				return
			}
			watch.Price = *req.Price
		}
		if req.Description != nil {
			watch.Description = *req.Description
		}
		if req.Images != nil {
			images, err := imagesJSON(req.Images)
			if err != nil {
				utils.Fail(c, utils.Validation("invalid images"))
				return
			}
			watch.Images = images
		}
		if req.Category != nil {
			watch.Category = *req.Category
		}
		if req.Movement != nil {
			if !models.ValidMovement(*req.Movement) {
				utils.Fail(c, utils.Validation("invalid movement"))
				return
			}
			watch.Movement = *req.Movement
		}
		if req.CaseMaterial != nil {
			watch.CaseMaterial = *req.CaseMaterial
		}
		if req.CaseDiameter != nil {
			watch.CaseDiameter = *req.CaseDiameter
		}
		if req.StrapMaterial != nil {
			watch.StrapMaterial = *req.StrapMaterial
		}
		if req.WaterResistance != nil {
			watch.WaterResistance = *req.WaterResistance
		}
		if req.Color != nil {
			watch.Color = *req.Color
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				utils.Fail(c, utils.Validation("stock must not be negative"))
				return
			}
			watch.Stock = *req.Stock
		}
		if req.IsFeatured != nil {
			watch.IsFeatured = *req.IsFeatured
		}
		if req.IsBestSeller != nil {
			watch.IsBestSeller = *req.IsBestSeller
		}
		if req.StoreID != nil {
			watch.StoreID = req.StoreID
		}

		if err := db.Save(&watch).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to update watch", err))
			return
		}
		utils.OK(c, watch)
	}
}

// DeleteWatch removes a watch from the catalog. Admin only.
func DeleteWatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid watch ID"))
			return
		}
		if err := db.Delete(&models.Watch{}, id).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to delete watch", err))
			return
		}
		utils.Message(c, "Watch deleted successfully")
	}
}
