package paymentControllers

import (
	"fmt"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

// razorpayConfig reads the gateway credentials; the key secret stays
// server-side, only the key id is ever exposed to clients.
func razorpayConfig() (keyID, keySecret string, err error) {
	keyID = os.Getenv("RAZORPAY_KEY_ID")
	keySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return "", "", fmt.Errorf("razorpay configuration missing")
	}
	return keyID, keySecret, nil
}

// ToMinorUnit converts a major-unit amount (rupees) to the gateway's minor
// unit (paise), rounding to the nearest paisa.
func ToMinorUnit(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateGatewayOrder creates a capture-enabled order in Razorpay and returns
// the gateway order object verbatim. Amount is in the major currency unit and
// must be positive; it is converted to paise (x100, rounded) for the gateway.
// Gateway failures are wrapped and returned without retry.
func CreateGatewayOrder(amount float64, currency, receipt string, notes map[string]interface{}) (map[string]interface{}, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be a positive number")
	}

	keyID, keySecret, err := razorpayConfig()
	if err != nil {
		return nil, err
	}

	if currency == "" {
		currency = "INR"
	}
	if receipt == "" {
		// Timestamp receipt; the gateway namespaces receipts per merchant.
		receipt = fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())
	}

	data := map[string]interface{}{
		"amount":          ToMinorUnit(amount),
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	client := razorpay.NewClient(keyID, keySecret)
	order, err := client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	return order, nil
}

type CreateOrderRequest struct {
	Amount   float64                `json:"amount"`
	Currency string                 `json:"currency"`
	Receipt  string                 `json:"receipt"`
	Notes    map[string]interface{} `json:"notes"`
}

// CreateOrderHandler exposes gateway order creation for widget callers.
// POST /api/create-order
func CreateOrderHandler(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body", "error": err.Error()})
		return
	}

	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "amount must be a positive number"})
		return
	}

	order, err := CreateGatewayOrder(req.Amount, req.Currency, req.Receipt, req.Notes)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "failed to create order", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// RazorpayKeyHandler returns the public key id for the hosted widget.
// GET /api/razorpay-key
func RazorpayKeyHandler(c *gin.Context) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	if keyID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "razorpay key not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key_id": keyID})
}

// GetAllPaymentsHandler lists webhook-recorded payments for the back office.
// GET /admin/payments
func GetAllPaymentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payments []models.Payment
		if err := db.Order("created_at DESC").Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}
