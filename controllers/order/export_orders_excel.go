package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

// ExportOrdersToExcel downloads all orders as a spreadsheet.
// GET /admin/orders/export-excel
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderRef", "UserID", "Total", "Status", "PaymentMethod",
			"GatewayOrderID", "Items", "City", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, item.ProductName+" x"+strconv.Itoa(item.Quantity))
			}

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.GatewayOrderID)
			row.AddCell().SetValue(strings.Join(lines, "; "))
			row.AddCell().SetValue(o.Shipping.City)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
