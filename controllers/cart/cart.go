package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// userCart loads the authenticated user's cart with items.
func userCart(c *gin.Context, db *gorm.DB) (*models.Cart, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID, _ := userIDVal.(string)

	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
		return nil, false
	}
	return &cart, true
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"total": cart.Total(),
			"count": cart.Count(),
		})
	}
}

// POST /user/cart
// Add merges by product id: an existing line accumulates quantity, a new
// product is appended with a name/price/image snapshot.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Fetch product from DB; archived products are not shoppable
		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}
		if product.Status != models.ProductStatusActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not available"})
			return
		}

		// Check if item already exists in the cart
		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				newItem := models.CartItem{
					CartID:       cart.CartID,
					ProductID:    product.ID,
					ProductName:  product.Title,
					ProductPrice: product.Price,
					ProductImage: product.Image,
					Quantity:     input.Quantity,
					AddedAt:      time.Now(),
				}
				if err := db.Create(&newItem).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
					return
				}
				c.JSON(http.StatusCreated, newItem)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		// Same product added again: quantities accumulate
		item.Quantity += input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// PUT /user/cart/:product_id
// Sets the quantity for a line. A quantity below 1 removes the line; the
// cart never holds a zero or negative quantity row.
func UpdateCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Quantity < 1 {
			result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).Delete(&models.CartItem{})
			if result.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
				return
			}
			if result.RowsAffected == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity = input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := userCart(c, db)
		if !ok {
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart.Items)
	}
}
