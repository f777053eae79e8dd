package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poppolabs/restaurant-catalog/models"
	"github.com/poppolabs/restaurant-catalog/utils"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type CatalogExportController struct {
	DB *gorm.DB
}

func NewCatalogExportController(db *gorm.DB) *CatalogExportController {
	return &CatalogExportController{DB: db}
}

// ExportCatalog writes the whole catalog to an xlsx download, one row per
// priced menu entry.
// Endpoint: GET /catalog/export
func (cec *CatalogExportController) ExportCatalog(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := cec.DB.Preload("Menus.MenuFoodItems.MenuItem").
		Order("name").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	xl := excelize.NewFile()
	defer xl.Close()

	sheet := "Sheet1"
	headers := []string{"Restaurant", "Menu", "Item", "Price"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		xl.SetCellValue(sheet, cell, header)
	}

	row := 2
	for _, restaurant := range restaurants {
		for _, menu := range restaurant.Menus {
			for _, foodItem := range menu.MenuFoodItems {
				xl.SetCellValue(sheet, fmt.Sprintf("A%d", row), restaurant.Name)
				xl.SetCellValue(sheet, fmt.Sprintf("B%d", row), menu.Name)
				xl.SetCellValue(sheet, fmt.Sprintf("C%d", row), foodItem.MenuItem.Name)
				xl.SetCellValue(sheet, fmt.Sprintf("D%d", row), foodItem.Price)
				row++
			}
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="catalog.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
