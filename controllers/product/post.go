package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

type CreateProductInput struct {
	ID          string  `json:"id"` // optional; derived from the title when absent
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image" binding:"required,uri"`
	Badge       string  `json:"badge"`
}

// CreateProduct creates a new catalog product.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id := input.ID
		if id == "" {
			id = models.SlugFromTitle(input.Title)
		}

		newProduct := models.Product{
			ID:          id,
			Title:       input.Title,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Badge:       input.Badge,
			Status:      models.ProductStatusActive,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
