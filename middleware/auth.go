package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isaacbabu/groceryapp/auth"
	"github.com/isaacbabu/groceryapp/models"
	"github.com/isaacbabu/groceryapp/store"
)

const userContextKey = "user"

// RequireAuth resolves the request's credential to a user. The session
// cookie wins over the Authorization header when both are present.
// Expired sessions are rejected but not deleted here; the store's TTL
// index reaps them asynchronously.
func RequireAuth(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(auth.SessionCookieName)
		if token == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		session, err := s.Sessions.GetByToken(ctx, token)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}

		if session.ExpiresAt.UTC().Before(time.Now().UTC()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			c.Abort()
			return
		}

		user, err := s.Users.GetByID(ctx, session.UserID)
		if errors.Is(err, store.ErrNotFound) {
			// Orphaned session: user record gone but session survived.
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAdmin gates privileged routes. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// SetCurrentUser injects a user into the context; used by handler tests.
func SetCurrentUser(c *gin.Context, u *models.User) {
	c.Set(userContextKey, u)
}
