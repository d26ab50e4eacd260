package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isaacbabu/groceryapp/config"
	"github.com/isaacbabu/groceryapp/models"
	"github.com/isaacbabu/groceryapp/store"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session_token"

const sessionTTL = 7 * 24 * time.Hour

// CreateSession verifies a provider ID token, upserts the user by email and
// issues a fresh session. The token is returned both as a cookie (web
// clients) and in the body (bearer-token API clients).
func CreateSession(s *store.Store, verifier TokenVerifier, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"id_token"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
			return
		}
		if req.IDToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id_token required"})
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), req.IDToken)
		if err != nil {
			log.Printf("ID token verification failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID token: " + err.Error()})
			return
		}

		ctx := c.Request.Context()
		now := time.Now().UTC()

		var userID string
		existing, err := s.Users.GetByEmail(ctx, ident.Email)
		switch {
		case err == nil:
			userID = existing.UserID
			// Admin status is never downgraded by a login; allow-list
			// membership is rechecked every time.
			isAdmin := existing.IsAdmin || cfg.IsSuperAdmin(ident.Email)
			if err := s.Users.UpdateLogin(ctx, userID, ident.Name, ident.Picture, isAdmin); err != nil {
				log.Printf("failed to update user on login: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during user creation"})
				return
			}
		case errors.Is(err, store.ErrNotFound):
			userID = models.NewID("user")
			user := &models.User{
				UserID:    userID,
				Email:     ident.Email,
				Name:      ident.Name,
				Picture:   ident.Picture,
				IsAdmin:   cfg.IsSuperAdmin(ident.Email),
				CreatedAt: now,
			}
			if err := s.Users.Create(ctx, user); err != nil {
				log.Printf("failed to create user: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during user creation"})
				return
			}
		default:
			log.Printf("user lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during user creation"})
			return
		}

		token := models.NewSessionToken()
		session := &models.Session{
			UserID:       userID,
			SessionToken: token,
			ExpiresAt:    now.Add(sessionTTL),
			CreatedAt:    now,
		}
		if err := s.Sessions.Create(ctx, session); err != nil {
			log.Printf("failed to create session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during user creation"})
			return
		}

		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(SessionCookieName, token, int(sessionTTL.Seconds()), "/", "", true, true)

		user, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			log.Printf("failed to reload user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during user creation"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "session_token": token})
	}
}

// Logout destroys the session if one is presented. Always answers 200;
// deleting an absent token is not an error.
func Logout(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
			if err := s.Sessions.Delete(c.Request.Context(), token); err != nil {
				log.Printf("failed to delete session: %v", err)
			}
		}

		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
