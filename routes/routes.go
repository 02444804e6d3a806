package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Admin,
// Order and Payment route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin routes (API-Key-protected)
	SetupAdminRoutes(r, db)

	// Order routes
	SetupOrderRoutes(r, db)

	// Razorpay payment routes
	SetupPaymentRoutes(r, db)
}
