package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/shivarajm8234/mahalaxmifoods-api/controllers/admin"
	cartControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/cart"
	orderControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/order"
	paymentControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/payment"
	productcontroller "github.com/shivarajm8234/mahalaxmifoods-api/controllers/product"
	reviewControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/review"
	userControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/user"
	"github.com/shivarajm8234/mahalaxmifoods-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboardSummary(db))

		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/users/:user_id/activities", userControllers.GetUserActivities(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.GET("", productcontroller.GetAllProductsAdmin(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.POST("/:id/archive", productcontroller.ArchiveProduct(db))
			productAdmin.POST("/:id/restore", productcontroller.RestoreProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
		}

		// ─────────── Payments ───────────
		adminGroup.GET("/payments", paymentControllers.GetAllPaymentsHandler(db))

		// ─────────── Review Moderation ───────────
		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.PUT("/:id/reply", reviewControllers.ReplyToReview(db))
			reviewAdmin.DELETE("/:id/reply", reviewControllers.ClearReviewReply(db))
			reviewAdmin.DELETE("/:id", reviewControllers.DeleteReview(db))
		}

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(db))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(db))
			adminMgmt.POST("/reject", adminController.RejectAdmin(db))
		}

		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(db))
		}
	}
}
