package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

// ArchiveProduct hides a product from the shoppable catalog while keeping
// it for historical order display.
// POST /admin/products/:id/archive
func ArchiveProduct(db *gorm.DB) gin.HandlerFunc {
	return setProductStatus(db, models.ProductStatusArchived, "Product archived")
}

// RestoreProduct brings an archived product back into the catalog.
// POST /admin/products/:id/restore
func RestoreProduct(db *gorm.DB) gin.HandlerFunc {
	return setProductStatus(db, models.ProductStatusActive, "Product restored")
}

func setProductStatus(db *gorm.DB, status models.ProductStatus, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		result := db.Model(&models.Product{}).Where("id = ?", id).Update("status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

// DeleteProduct permanently removes a product. Archive is the normal
// lifecycle path; this is the explicit permanent-delete admin action.
// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
