package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/isaacbabu/groceryapp/auth"
	userController "github.com/isaacbabu/groceryapp/controllers/user"
	"github.com/isaacbabu/groceryapp/middleware"
)

// SetupAuthRoutes registers the /auth/* endpoints.
func SetupAuthRoutes(r *gin.RouterGroup, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession(d.Store, d.Verifier, d.Config))
		authGroup.GET("/me", middleware.RequireAuth(d.Store), userController.GetProfile())
		authGroup.POST("/logout", auth.Logout(d.Store))
	}
}
