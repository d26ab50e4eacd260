package cartController

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isaacbabu/groceryapp/middleware"
	"github.com/isaacbabu/groceryapp/models"
	"github.com/isaacbabu/groceryapp/sanitize"
	"github.com/isaacbabu/groceryapp/store"
)

type CartUpdateInput struct {
	Items []models.CartItem `json:"items" binding:"max=100,dive"`
}

// GET /cart: an absent cart is a normal state, answered with an empty
// shape rather than 404.
func GetCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		cart, err := s.Carts.GetByUser(c.Request.Context(), user.UserID)
		if err == store.ErrNotFound {
			c.JSON(http.StatusOK, gin.H{
				"cart_id":    nil,
				"user_id":    user.UserID,
				"items":      []models.CartItem{},
				"updated_at": nil,
			})
			return
		}
		if err != nil {
			log.Printf("failed to fetch cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// PUT /cart: full replace of the item list. The existing cart_id is kept
// across updates; a fresh one is minted on first write. Item totals are
// range-checked but stored as sent; only the order layer recomputes money.
func UpdateCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input CartUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": sanitize.BindingErrors(err)})
			return
		}
		// The key must be present: an explicit empty list empties the
		// cart, a missing or null items field is a malformed request.
		if input.Items == nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"detail": []sanitize.FieldError{
					sanitize.NewFieldError("items", "failed on the 'required' rule", ""),
				},
			})
			return
		}

		items := input.Items
		for i := range items {
			items[i].ItemName = sanitize.String(items[i].ItemName, sanitize.MaxNameLength)
		}

		ctx := c.Request.Context()
		cart := &models.Cart{
			UserID:    user.UserID,
			Items:     items,
			UpdatedAt: time.Now().UTC(),
		}

		existing, err := s.Carts.GetByUser(ctx, user.UserID)
		switch {
		case err == nil:
			cart.CartID = existing.CartID
		case err == store.ErrNotFound:
			cart.CartID = models.NewID("cart")
		default:
			log.Printf("failed to fetch cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		if err := s.Carts.Save(ctx, cart); err != nil {
			log.Printf("failed to save cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart: removes the document entirely; clearing an absent cart
// still succeeds.
func ClearCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		if err := s.Carts.DeleteByUser(c.Request.Context(), user.UserID); err != nil {
			log.Printf("failed to clear cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
