package paymentControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

// WebhookEvent is Razorpay's event envelope. Only the fields the receiver
// acts on are mapped; everything else in the payload is ignored.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity PaymentEntity `json:"entity"`
		} `json:"payment"`
		Order struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

type PaymentEntity struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // minor unit (paise)
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Method   string `json:"method"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}

// PaymentFromEvent maps a payment.captured envelope to the stored record,
// converting the amount from paise to rupees.
func PaymentFromEvent(event WebhookEvent) models.Payment {
	entity := event.Payload.Payment.Entity

	gatewayOrderID := entity.OrderID
	if gatewayOrderID == "" {
		gatewayOrderID = event.Payload.Order.Entity.ID
	}

	return models.Payment{
		PaymentID:      entity.ID,
		GatewayOrderID: gatewayOrderID,
		Amount:         float64(entity.Amount) / 100.0,
		Currency:       entity.Currency,
		Status:         entity.Status,
		Method:         entity.Method,
		Email:          entity.Email,
		Contact:        entity.Contact,
	}
}

// RazorpayWebhookHandler records captured payments. Signature verification
// has already happened in middleware over the raw body. The write is a keyed
// upsert on the gateway payment id, so replayed deliveries of the same event
// converge to one record. Event types other than payment.captured return 200
// with no side effect so the gateway stops retrying them.
// POST /razorpay-webhook
func RazorpayWebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event WebhookEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event body"})
			return
		}

		if event.Event != "payment.captured" {
			c.JSON(http.StatusOK, gin.H{"message": "event ignored"})
			return
		}

		payment := PaymentFromEvent(event)
		if payment.PaymentID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "event missing payment id"})
			return
		}

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payment_id"}},
			UpdateAll: true,
		}).Create(&payment).Error; err != nil {
			// 500 so the gateway redelivers the event.
			log.Printf("failed to record payment %s: %v", payment.PaymentID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "payment recorded"})
	}
}
