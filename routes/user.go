package routes

import (
	"github.com/gin-gonic/gin"

	cartController "github.com/isaacbabu/groceryapp/controllers/cart"
	userController "github.com/isaacbabu/groceryapp/controllers/user"
	"github.com/isaacbabu/groceryapp/middleware"
)

// SetupUserRoutes registers the session-protected profile and cart
// endpoints.
func SetupUserRoutes(r *gin.RouterGroup, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth(d.Store))
	{
		userGroup.GET("/profile", userController.GetProfile())
		userGroup.PUT("/profile", userController.UpdateProfile(d.Store))
	}

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireAuth(d.Store))
	{
		cartGroup.GET("", cartController.GetCart(d.Store))
		cartGroup.PUT("", cartController.UpdateCart(d.Store))
		cartGroup.DELETE("", cartController.ClearCart(d.Store))
	}
}
