package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

// GetDashboardSummary returns the back-office landing numbers: catalog
// size, order and payment counts, and captured revenue.
// GET /admin/dashboard
func GetDashboardSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			productCount  int64
			archivedCount int64
			orderCount    int64
			pendingCount  int64
			userCount     int64
			paymentCount  int64
			reviewCount   int64
			revenue       float64
		)

		db.Model(&models.Product{}).Where("status = ?", models.ProductStatusActive).Count(&productCount)
		db.Model(&models.Product{}).Where("status = ?", models.ProductStatusArchived).Count(&archivedCount)
		db.Model(&models.Order{}).Count(&orderCount)
		db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pendingCount)
		db.Model(&models.User{}).Count(&userCount)
		db.Model(&models.Payment{}).Count(&paymentCount)
		db.Model(&models.Review{}).Count(&reviewCount)

		// Revenue comes from the webhook-recorded captures, not from orders.
		if err := db.Model(&models.Payment{}).
			Where("status = ?", "captured").
			Select("COALESCE(SUM(amount), 0)").
			Scan(&revenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue"})
			return
		}

		var recentOrders []models.Order
		db.Preload("Items").Order("created_at DESC").Limit(10).Find(&recentOrders)

		c.JSON(http.StatusOK, gin.H{
			"products":          productCount,
			"archived_products": archivedCount,
			"orders":            orderCount,
			"pending_orders":    pendingCount,
			"users":             userCount,
			"payments":          paymentCount,
			"reviews":           reviewCount,
			"revenue":           revenue,
			"recent_orders":     recentOrders,
		})
	}
}
