package watchControllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

// ExportWatchesToExcel streams the full catalog as an XLSX download. Admin only.
func ExportWatchesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var watches []models.Watch
		if err := db.Order("id").Find(&watches).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch watches", err))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Watches")
		if err != nil {
			utils.Fail(c, utils.Internal("Failed to create Excel sheet", err))
			return
		}

		headers := []string{
			"ID", "Name", "Brand", "Price", "Category", "Movement",
			"CaseMaterial", "CaseDiameter", "StrapMaterial", "WaterResistance",
			"Color", "Stock", "IsFeatured", "IsBestSeller", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, w := range watches {
			row := sheet.AddRow()
			row.AddCell().SetValue(w.ID)
			row.AddCell().SetValue(w.Name)
			row.AddCell().SetValue(w.Brand)
			row.AddCell().SetValue(w.Price.StringFixed(2))
			row.AddCell().SetValue(w.Category)
			row.AddCell().SetValue(w.Movement)
			row.AddCell().SetValue(w.CaseMaterial)
			row.AddCell().SetValue(w.CaseDiameter)
			row.AddCell().SetValue(w.StrapMaterial)
			row.AddCell().SetValue(w.WaterResistance)
			row.AddCell().SetValue(w.Color)
			row.AddCell().SetValue(w.Stock)
			row.AddCell().SetValue(w.IsFeatured)
			row.AddCell().SetValue(w.IsBestSeller)
			row.AddCell().SetValue(w.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=watches.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			utils.Fail(c, utils.Internal("Failed to write Excel file", err))
			return
		}
	}
}
