package orderController

import (
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/isaacbabu/groceryapp/middleware"
	"github.com/isaacbabu/groceryapp/models"
	"github.com/isaacbabu/groceryapp/sanitize"
	"github.com/isaacbabu/groceryapp/store"
)

// totalTolerance absorbs client-side float rounding; anything beyond it is
// overridden with the server-computed value rather than rejected.
const totalTolerance = 0.01

type OrderInput struct {
	Items      []models.OrderItem `json:"items" binding:"required,min=1,max=100,dive"`
	GrandTotal float64            `json:"grand_total" binding:"gte=0"`
}

func lineTotal(rate, quantity float64) float64 {
	t, _ := decimal.NewFromFloat(rate).Mul(decimal.NewFromFloat(quantity)).Round(2).Float64()
	return t
}

// normalize sanitizes item names and makes the totals server-authoritative:
// each line total and the grand total are recomputed and replace the client
// values whenever they disagree beyond the tolerance.
func normalize(items []models.OrderItem, clientGrandTotal float64) ([]models.OrderItem, float64) {
	for i := range items {
		items[i].ItemName = sanitize.String(items[i].ItemName, sanitize.MaxNameLength)
		expected := lineTotal(items[i].Rate, items[i].Quantity)
		if math.Abs(items[i].Total-expected) > totalTolerance {
			items[i].Total = expected
		}
	}

	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Total))
	}
	expectedGrand, _ := sum.Round(2).Float64()
	if math.Abs(clientGrandTotal-expectedGrand) > totalTolerance {
		return items, expectedGrand
	}
	return items, clientGrandTotal
}

// POST /orders: creates a Pending order with the caller's contact details
// snapshotted so later profile edits don't rewrite history.
func CreateOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": sanitize.BindingErrors(err)})
			return
		}

		items, grandTotal := normalize(input.Items, input.GrandTotal)
		order := &models.Order{
			OrderID:     models.NewID("order"),
			UserID:      user.UserID,
			Items:       items,
			GrandTotal:  grandTotal,
			Status:      models.OrderStatusPending,
			UserName:    user.Name,
			UserEmail:   user.Email,
			UserPhone:   user.PhoneNumber,
			UserAddress: user.HomeAddress,
			CreatedAt:   time.Now().UTC(),
		}

		if err := s.Orders.Create(c.Request.Context(), order); err != nil {
			log.Printf("failed to create order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /orders: the caller's orders, newest first.
func GetMyOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		orders, err := s.Orders.ListByUser(c.Request.Context(), user.UserID)
		if err != nil {
			log.Printf("failed to list orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// PUT /orders/:order_id: owner or admin; totals recomputed as on create
// and status reset to Pending, so an edited order needs re-confirmation.
func UpdateOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		orderID := c.Param("order_id")
		ctx := c.Request.Context()

		existing, err := s.Orders.GetByID(ctx, orderID)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			log.Printf("failed to fetch order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		if existing.UserID != user.UserID && !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		var input OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": sanitize.BindingErrors(err)})
			return
		}

		items, grandTotal := normalize(input.Items, input.GrandTotal)
		order, err := s.Orders.Update(ctx, orderID, items, grandTotal)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			log.Printf("failed to update order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:order_id: owner or admin.
func DeleteOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		orderID := c.Param("order_id")
		ctx := c.Request.Context()

		order, err := s.Orders.GetByID(ctx, orderID)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			log.Printf("failed to fetch order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		if order.UserID != user.UserID && !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		if err := s.Orders.Delete(ctx, orderID); err != nil {
			log.Printf("failed to delete order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

// GET /admin/orders: every order, newest first.
func GetAllOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.Orders.ListAll(c.Request.Context())
		if err != nil {
			log.Printf("failed to list all orders: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// PATCH /admin/orders/:order_id/confirm: unconditional transition to
// Order Confirmed; re-confirming is a no-op, not an error.
func ConfirmOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := s.Orders.SetStatus(c.Request.Context(), c.Param("order_id"), models.OrderStatusConfirmed)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			log.Printf("failed to confirm order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
