package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/isaacbabu/groceryapp/auth"
	"github.com/isaacbabu/groceryapp/cache"
	"github.com/isaacbabu/groceryapp/config"
	"github.com/isaacbabu/groceryapp/store"
)

// Deps bundles everything the route groups need.
type Deps struct {
	Store    *store.Store
	Cache    *cache.Cache
	Config   *config.Config
	Verifier auth.TokenVerifier
}

// SetupRoutes is the single entry-point that wires up the Auth, Public,
// User, Order, and Admin route groups under the /api prefix.
func SetupRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	SetupAuthRoutes(api, d)
	SetupPublicRoutes(api, d)
	SetupUserRoutes(api, d)
	SetupOrderRoutes(api, d)
	SetupAdminRoutes(api, d)
}
