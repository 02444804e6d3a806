package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/cart"
	checkoutControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/checkout"
	productControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/product"
	reviewControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/review"
	userControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/user"
	"github.com/shivarajm8234/mahalaxmifoods-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints plus the public catalog
// reads. The "/user/*" group requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Public catalog ────────────────
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(db))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                           // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db))                          // POST /user/cart
			cartGroup.POST("/merge", cartControllers.MergeUserCart(db))                   // POST /user/cart/merge
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItemQuantity(db))     // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))          // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))                      // DELETE /user/cart
		}

		// ──────────────── Checkout ────────────────
		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.POST("/initiate", checkoutControllers.InitiateCheckout(db))
			checkoutGroup.POST("/complete", checkoutControllers.CompleteCheckout(db))
			checkoutGroup.POST("/cancel", checkoutControllers.CancelCheckout(db))
		}

		// ──────────────── Reviews ────────────────
		userGroup.POST("/reviews", reviewControllers.CreateReview(db))
	}
}
