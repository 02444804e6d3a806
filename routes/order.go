package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/shivarajm8234/mahalaxmifoods-api/controllers/order"
	"github.com/shivarajm8234/mahalaxmifoods-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch orders for a specific user
		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(db))

		// Fetch a single order by id or order ref
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
