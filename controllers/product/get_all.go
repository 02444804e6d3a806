package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

var sortableColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"title":      true,
}

// GetProducts returns the shoppable catalog: active products only, with
// optional search, price range and sorting. Archived products stay out of
// this listing but remain available for historical order display.
// GET /user/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return listProducts(db, false)
}

// GetAllProductsAdmin returns every product regardless of status.
// GET /admin/products
func GetAllProductsAdmin(db *gorm.DB) gin.HandlerFunc {
	return listProducts(db, true)
}

func listProducts(db *gorm.DB, includeArchived bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Filtering & sorting params
		search := c.Query("search")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !sortableColumns[sortBy] {
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{})
		if !includeArchived {
			query = query.Where("status = ?", models.ProductStatusActive)
		}

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("title ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
		var products []models.Product
		if err := query.Order(orderClause).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
