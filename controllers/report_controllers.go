package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/dinehub/restaurant-backend/models"
	"github.com/dinehub/restaurant-backend/utils"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// ExportData streams an XLSX workbook with one sheet per record type.
func (rc *ReportController) ExportData(c *gin.Context) {
	var foods []models.Food
	if err := rc.DB.Find(&foods).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var staff []models.Staff
	if err := rc.DB.Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	foodSheet := "Foods"
	f.SetSheetName("Sheet1", foodSheet)
	foodHeaders := []string{"ID", "Name", "Price", "Category", "Image", "Veg"}
	for i, h := range foodHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(foodSheet, cell, h)
	}
	for row, food := range foods {
		category := ""
		if food.Category != nil {
			category = *food.Category
		}
		veg := ""
		if food.IsVeg != nil {
			veg = strconv.FormatBool(*food.IsVeg)
		}
		values := []interface{}{food.ID, food.Name, food.Price, category, food.Image, veg}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(foodSheet, cell, v)
		}
	}

	staffSheet := "Staff"
	if _, err := f.NewSheet(staffSheet); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	staffHeaders := []string{"ID", "Name", "Role", "Age", "Salary", "Payment Status"}
	for i, h := range staffHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(staffSheet, cell, h)
	}
	for row, member := range staff {
		values := []interface{}{member.ID, member.Name, member.Role, member.Age, member.Salary, member.PaymentStatus}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(staffSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="restaurant-report.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
