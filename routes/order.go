package routes

import (
	"github.com/gin-gonic/gin"

	orderController "github.com/isaacbabu/groceryapp/controllers/order"
	"github.com/isaacbabu/groceryapp/middleware"
)

// SetupOrderRoutes registers the owner-facing order lifecycle endpoints.
func SetupOrderRoutes(r *gin.RouterGroup, d Deps) {
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.RequireAuth(d.Store))
	{
		orderGroup.POST("", orderController.CreateOrder(d.Store))
		orderGroup.GET("", orderController.GetMyOrders(d.Store))
		orderGroup.PUT("/:order_id", orderController.UpdateOrder(d.Store))
		orderGroup.DELETE("/:order_id", orderController.DeleteOrder(d.Store))
	}
}
