package checkoutControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	orderControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/order"
	paymentControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/payment"
	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

// ShippingInput carries the postal fields collected by the checkout form.
// Presence is required; beyond that only the email/phone shapes are checked.
type ShippingInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,min=7"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

func (s ShippingInput) address() models.Address {
	return models.Address{
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Street:     s.Street,
		City:       s.City,
		State:      s.State,
		PostalCode: s.PostalCode,
		Country:    s.Country,
	}
}

type InitiateRequest struct {
	Shipping ShippingInput `json:"shipping" binding:"required"`
}

type CompleteRequest struct {
	RazorpayPaymentID string        `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string        `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string        `json:"razorpay_signature" binding:"required"`
	Shipping          ShippingInput `json:"shipping" binding:"required"`
	PaymentMethod     string        `json:"payment_method"`
}

type CancelRequest struct {
	RazorpayOrderID string `json:"razorpay_order_id"`
}

// VerifyCheckoutSignature checks the signature the hosted widget hands the
// client on success: hex HMAC-SHA256 of "<order_id>|<payment_id>" under the
// key secret. The client callback is untrusted until this passes; the
// webhook remains the authoritative proof of capture.
func VerifyCheckoutSignature(gatewayOrderID, paymentID, signature, keySecret string) bool {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func authedUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, _ := userIDVal.(string)
	return userID, true
}

// POST /user/checkout/initiate
// Validates the shipping form, totals the cart once, and creates the
// capture-enabled gateway order the payment widget opens against. Every
// failure halts the flow with a user-visible message; nothing is retried.
func InitiateCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authedUserID(c)
		if !ok {
			return
		}

		var req InitiateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Incomplete shipping details: " + err.Error()})
			return
		}

		keyID := os.Getenv("RAZORPAY_KEY_ID")
		if keyID == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "razorpay key not configured"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		total := cart.Total()
		order, err := paymentControllers.CreateGatewayOrder(total, "INR", "", map[string]interface{}{
			"user_id": userID,
		})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		orderID, _ := order["id"].(string)
		if orderID == "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": "gateway returned no order id"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"key_id":   keyID,
			"order":    order,
			"amount":   total,
			"currency": "INR",
		})
	}
}

// POST /user/checkout/complete
// Lands the widget's success callback. The callback is client-supplied and
// untrusted, so the checkout signature is verified server-side before the
// domain order is written and the cart cleared.
func CompleteCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authedUserID(c)
		if !ok {
			return
		}

		var req CompleteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkout payload: " + err.Error()})
			return
		}

		keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
		if keySecret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "razorpay not configured"})
			return
		}
		if !VerifyCheckoutSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, keySecret) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment signature"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		paymentMethod := req.PaymentMethod
		if paymentMethod == "" {
			paymentMethod = "razorpay"
		}

		order := models.Order{
			OrderRef:       generateOrderRef(),
			UserID:         userID,
			Items:          snapshotItems(cart.Items),
			TotalAmount:    cart.Total(),
			Status:         models.OrderStatusConfirmed,
			PaymentMethod:  paymentMethod,
			GatewayOrderID: req.RazorpayOrderID,
			Shipping:       req.Shipping.address(),
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			// Clear cart items
			return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		models.LogActivity(db, userID, "order_placed", order.OrderRef)
		orderControllers.BroadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

// POST /user/checkout/cancel
// Widget dismiss path: nothing is written and the cart is left untouched so
// the user can retry.
func CancelCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authedUserID(c)
		if !ok {
			return
		}

		var req CancelRequest
		_ = c.ShouldBindJSON(&req)

		models.LogActivity(db, userID, "checkout_cancelled", req.RazorpayOrderID)
		c.JSON(http.StatusOK, gin.H{"message": "Checkout cancelled"})
	}
}

// snapshotItems copies cart lines into order lines so later product edits
// never change historical orders.
func snapshotItems(items []models.CartItem) []models.OrderItem {
	snapshot := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, models.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
		})
	}
	return snapshot
}

// generateOrderRef builds a unique order reference, e.g. 20250908130500-<uuid>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
