package userController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isaacbabu/groceryapp/middleware"
	"github.com/isaacbabu/groceryapp/sanitize"
	"github.com/isaacbabu/groceryapp/store"
)

type ProfileUpdateInput struct {
	PhoneNumber string  `json:"phone_number" binding:"required,min=7,max=20"`
	HomeAddress string  `json:"home_address" binding:"required,min=5,max=1000"`
	Geolocation *string `json:"geolocation"`
}

// GET /auth/me and GET /user/profile
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.CurrentUser(c))
	}
}

// PUT /user/profile
func UpdateProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input ProfileUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": sanitize.BindingErrors(err)})
			return
		}

		phone := sanitize.String(input.PhoneNumber, 20)
		if !sanitize.ValidPhone(phone) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"detail": []sanitize.FieldError{
					sanitize.NewFieldError("phone_number", "Invalid phone number format", input.PhoneNumber),
				},
			})
			return
		}
		address := sanitize.String(input.HomeAddress, sanitize.MaxAddressLength)

		ctx := c.Request.Context()
		if err := s.Users.UpdateProfile(ctx, user.UserID, phone, address, input.Geolocation); err != nil {
			log.Printf("failed to update profile: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		updated, err := s.Users.GetByID(ctx, user.UserID)
		if err != nil {
			log.Printf("failed to reload user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}
