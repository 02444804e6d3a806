package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

type CreateReviewInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type AdminReplyInput struct {
	Reply string `json:"reply" binding:"required"`
}

// GET /products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var reviews []models.Review
		if err := db.Where("product_id = ?", productID).Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /user/reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		// Binding enforces the range already; keep the invariant explicit
		// for callers that bypass binding.
		if input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		review := models.Review{
			ProductID: input.ProductID,
			UserID:    userID,
			UserName:  user.Name,
			Rating:    input.Rating,
			Comment:   input.Comment,
			Verified:  hasPurchased(db, userID, input.ProductID),
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		models.LogActivity(db, userID, "review_posted", input.ProductID)
		c.JSON(http.StatusCreated, review)
	}
}

// hasPurchased reports whether the user has a delivered or completed order
// containing the product.
func hasPurchased(db *gorm.DB, userID, productID string) bool {
	var count int64
	db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ? AND orders.status IN ?",
			userID, productID,
			[]models.OrderStatus{models.OrderStatusDelivered, models.OrderStatusCompleted}).
		Count(&count)
	return count > 0
}

// PUT /admin/reviews/:id/reply
func ReplyToReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID := c.Param("id")

		var input AdminReplyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reply is required"})
			return
		}

		result := db.Model(&models.Review{}).Where("id = ?", reviewID).Update("admin_reply", input.Reply)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reply"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Reply saved"})
	}
}

// DELETE /admin/reviews/:id/reply
func ClearReviewReply(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID := c.Param("id")

		result := db.Model(&models.Review{}).Where("id = ?", reviewID).Update("admin_reply", "")
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear reply"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Reply cleared"})
	}
}

// DELETE /admin/reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID := c.Param("id")

		result := db.Where("id = ?", reviewID).Delete(&models.Review{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
