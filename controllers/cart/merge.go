package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

type MergeCartInput struct {
	Items []MergeCartItem `json:"items"`
}

// MergeCartItem is a line from the client's locally persisted cart,
// submitted at sign-in for reconciliation with the server copy.
type MergeCartItem struct {
	ProductID    string  `json:"product_id" binding:"required"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
}

// MergeItems reconciles the client's local cart with the server copy:
// union by product id, and for a product present in both the LOCAL quantity
// wins.
func MergeItems(local []MergeCartItem, remote []models.CartItem) []models.CartItem {
	merged := make([]models.CartItem, 0, len(local)+len(remote))
	seen := make(map[string]bool, len(local))

	remoteByID := make(map[string]models.CartItem, len(remote))
	for _, item := range remote {
		remoteByID[item.ProductID] = item
	}

	for _, l := range local {
		item := models.CartItem{
			ProductID:    l.ProductID,
			ProductName:  l.ProductName,
			ProductPrice: l.ProductPrice,
			ProductImage: l.ProductImage,
			Quantity:     l.Quantity,
		}
		if r, ok := remoteByID[l.ProductID]; ok {
			// Keep the remote snapshot fields, take the local quantity.
			item = r
			item.Quantity = l.Quantity
		}
		merged = append(merged, item)
		seen[l.ProductID] = true
	}

	// Items only the server knows about are kept as-is.
	for _, r := range remote {
		if !seen[r.ProductID] {
			merged = append(merged, r)
		}
	}

	return merged
}

// POST /user/cart/merge
// Sign-in reconciliation: replaces the server cart with the merge result and
// returns it so the client can adopt it as the new local copy.
func MergeUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
		if !ok {
			return
		}

		var input MergeCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		merged := MergeItems(input.Items, cart.Items)

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			for i := range merged {
				merged[i].ID = 0
				merged[i].CartID = cart.CartID
				if merged[i].AddedAt.IsZero() {
					merged[i].AddedAt = time.Now()
				}
				if err := tx.Create(&merged[i]).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to merge cart"})
			return
		}

		cart.Items = merged
		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"total": cart.Total(),
			"count": cart.Count(),
		})
	}
}
