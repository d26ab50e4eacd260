package routes

import (
	"github.com/gin-gonic/gin"

	categoryController "github.com/isaacbabu/groceryapp/controllers/category"
	itemController "github.com/isaacbabu/groceryapp/controllers/item"
	orderController "github.com/isaacbabu/groceryapp/controllers/order"
	rolesController "github.com/isaacbabu/groceryapp/controllers/roles"
	"github.com/isaacbabu/groceryapp/middleware"
)

// SetupAdminRoutes registers all /admin/* endpoints. Every route resolves
// the session first and then requires the admin flag.
func SetupAdminRoutes(r *gin.RouterGroup, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(d.Store), middleware.RequireAdmin())
	{
		itemAdmin := adminGroup.Group("/items")
		{
			itemAdmin.POST("", itemController.CreateItem(d.Store, d.Cache))
			itemAdmin.PUT("/:item_id", itemController.UpdateItem(d.Store, d.Cache))
			itemAdmin.DELETE("/:item_id", itemController.DeleteItem(d.Store, d.Cache))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", categoryController.GetAdminCategories(d.Store))
			categoryAdmin.POST("", categoryController.CreateCategory(d.Store, d.Cache))
			categoryAdmin.DELETE("/:category_id", categoryController.DeleteCategory(d.Store, d.Cache))
		}

		rolesAdmin := adminGroup.Group("/roles")
		{
			rolesAdmin.GET("", rolesController.GetAdmins(d.Store))
			rolesAdmin.POST("", rolesController.AddAdmin(d.Store))
			rolesAdmin.DELETE("/:user_id", rolesController.RemoveAdmin(d.Store, d.Config))
		}

		adminGroup.GET("/orders", orderController.GetAllOrders(d.Store))
		adminGroup.PATCH("/orders/:order_id/confirm", orderController.ConfirmOrder(d.Store))
	}
}
