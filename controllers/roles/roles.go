package rolesController

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isaacbabu/groceryapp/config"
	"github.com/isaacbabu/groceryapp/middleware"
	"github.com/isaacbabu/groceryapp/sanitize"
	"github.com/isaacbabu/groceryapp/store"
)

type AdminRoleInput struct {
	Email string `json:"email" binding:"required,email"`
}

// GET /admin/roles
func GetAdmins(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		admins, err := s.Users.ListAdmins(c.Request.Context())
		if err != nil {
			log.Printf("failed to list admins: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}

// POST /admin/roles: grants admin by email. Admin status cannot be
// pre-provisioned: the target must have logged in at least once.
func AddAdmin(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AdminRoleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": sanitize.BindingErrors(err)})
			return
		}

		ctx := c.Request.Context()
		target, err := s.Users.GetByEmail(ctx, input.Email)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found. They must log in to the app at least once before they can be made an admin."})
			return
		}
		if err != nil {
			log.Printf("failed to look up user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add admin"})
			return
		}

		if target.IsAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User is already an admin."})
			return
		}

		if err := s.Users.SetAdmin(ctx, target.UserID, true); err != nil {
			log.Printf("failed to grant admin: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add admin"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Admin added successfully"})
	}
}

// RemoveAdmin revokes admin from a user. The guards run in a fixed order:
// unknown target, then super-admin protection, then self-revocation. The
// allow-list must never lose admin through this API and every admin must
// stay revocable by someone other than themselves.
func RemoveAdmin(s *store.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.CurrentUser(c)
		ctx := c.Request.Context()

		target, err := s.Users.GetByID(ctx, c.Param("user_id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			log.Printf("failed to look up user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke admin"})
			return
		}

		if cfg.IsSuperAdmin(target.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot revoke permissions from the Super Admin."})
			return
		}

		if target.UserID == caller.UserID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot revoke your own admin permissions."})
			return
		}

		if err := s.Users.SetAdmin(ctx, target.UserID, false); err != nil {
			log.Printf("failed to revoke admin: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke admin"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Admin revoked successfully"})
	}
}
