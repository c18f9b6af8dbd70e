package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Movement values accepted for a watch.
const (
	MovementAutomatic  = "automatic"
	MovementQuartz     = "quartz"
	MovementMechanical = "mechanical"
)

type Watch struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Brand           string          `gorm:"size:100;not null;index" json:"brand"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	Images          datatypes.JSON  `gorm:"default:'[]'" json:"images"` // ordered list of URL strings
	Category        string          `gorm:"size:100;index" json:"category,omitempty"`
	Movement        string          `gorm:"size:50" json:"movement,omitempty"`
	CaseMaterial    string          `gorm:"size:100" json:"caseMaterial,omitempty"`
	CaseDiameter    int             `json:"caseDiameter,omitempty"` // millimetres
	StrapMaterial   string          `gorm:"size:100" json:"strapMaterial,omitempty"`
	WaterResistance int             `json:"waterResistance,omitempty"`
	Color           string          `gorm:"size:50" json:"color,omitempty"`
	Stock           int             `gorm:"default:0" json:"stock"`
	IsFeatured      bool            `gorm:"default:false" json:"isFeatured"`
	IsBestSeller    bool            `gorm:"default:false" json:"isBestSeller"`
	StoreID         *uint           `json:"storeId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ValidMovement reports whether m is one of the accepted movement values.
// The empty string is allowed (movement not specified).
func ValidMovement(m string) bool {
	switch m {
	case "", MovementAutomatic, MovementQuartz, MovementMechanical:
		return true
	}
	return false
}
