package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/payment"
	"github.com/shivarajm8234/mahalaxmifoods-api/middleware"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		// Gateway order creation for widget callers
		api.POST("/create-order", paymentControllers.CreateOrderHandler)

		// Public key id for the hosted widget
		api.GET("/razorpay-key", paymentControllers.RazorpayKeyHandler)
	}

	// Webhook endpoint: signature verification happens in middleware over
	// the raw body, the handler only sees verified events.
	r.POST("/razorpay-webhook",
		middleware.RazorpayWebhookAuth(),
		paymentControllers.RazorpayWebhookHandler(db),
	)
}
