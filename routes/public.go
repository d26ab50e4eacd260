package routes

import (
	"github.com/gin-gonic/gin"

	categoryController "github.com/isaacbabu/groceryapp/controllers/category"
	itemController "github.com/isaacbabu/groceryapp/controllers/item"
)

// SetupPublicRoutes registers the unauthenticated catalog endpoints.
func SetupPublicRoutes(r *gin.RouterGroup, d Deps) {
	r.GET("/items", itemController.GetItems(d.Store, d.Cache))
	r.GET("/categories", categoryController.GetCategories(d.Store, d.Cache))
	r.POST("/seed-items", itemController.SeedItems(d.Store, d.Cache))
}
