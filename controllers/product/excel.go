package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

// ImportProductsFromExcel bulk-creates or updates products from a
// spreadsheet with the same column layout the export produces.
// POST /admin/products/import-excel
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			title := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			badge := get(4)
			status := models.ProductStatus(get(5))
			image := get(6)

			if title == "" || priceErr != nil || price <= 0 {
				skippedCount++
				continue
			}
			if status != models.ProductStatusArchived {
				status = models.ProductStatusActive
			}

			if id != "" {
				var existing models.Product
				if err := db.First(&existing, "id = ?", id).Error; err == nil {
					existing.Title = title
					existing.Description = description
					existing.Price = price
					existing.Badge = badge
					existing.Status = status
					existing.Image = image

					if err := db.Save(&existing).Error; err == nil {
						updatedCount++
					} else {
						skippedCount++
					}
					continue
				}
			} else {
				id = models.SlugFromTitle(title)
			}

			product := models.Product{
				ID:          id,
				Title:       title,
				Description: description,
				Price:       price,
				Badge:       badge,
				Status:      status,
				Image:       image,
			}
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
