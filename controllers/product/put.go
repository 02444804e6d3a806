package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

type UpdateProductInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Badge       *string  `json:"badge"`
}

// UpdateProduct updates an existing product by ID. Only supplied fields
// change; historical order snapshots keep the old values.
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
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

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Title != nil {
			product.Title = *input.Title
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
				return
			}
			product.Price = *input.Price
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Badge != nil {
			product.Badge = *input.Badge
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
