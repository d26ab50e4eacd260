package cartController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacbabu/groceryapp/middleware"
	"github.com/isaacbabu/groceryapp/models"
	"github.com/isaacbabu/groceryapp/store"
	"github.com/isaacbabu/groceryapp/store/storetest"
)

func newCartRouter(s *store.Store, user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { middleware.SetCurrentUser(c, user) })
	r.GET("/cart", GetCart(s))
	r.PUT("/cart", UpdateCart(s))
	r.DELETE("/cart", ClearCart(s))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func shopper() *models.User {
	return &models.User{UserID: "user_shopper", Email: "shopper@example.com", Name: "Shopper"}
}

func TestGetCart_AbsentReturnsEmptyShape(t *testing.T) {
	r := newCartRouter(storetest.New(), shopper())

	w := doJSON(r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CartID *string           `json:"cart_id"`
		UserID string            `json:"user_id"`
		Items  []models.CartItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.CartID)
	assert.Equal(t, "user_shopper", resp.UserID)
	assert.Empty(t, resp.Items)
}

func TestUpdateCart_PreservesCartID(t *testing.T) {
	s := storetest.New()
	r := newCartRouter(s, shopper())

	body := `{"items":[{"item_id":"item_1","item_name":"Toor Dal","rate":150,"quantity":2,"total":300}]}`
	w := doJSON(r, http.MethodPut, "/cart", body)
	require.Equal(t, http.StatusOK, w.Code)

	var first models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.True(t, strings.HasPrefix(first.CartID, "cart_"))

	w = doJSON(r, http.MethodPut, "/cart", `{"items":[]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var second models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.CartID, second.CartID)
	assert.Empty(t, second.Items)
}

func TestUpdateCart_TotalsStoredAsSent(t *testing.T) {
	s := storetest.New()
	r := newCartRouter(s, shopper())

	// 150 x 2 is 300, but the cart layer does not recompute
	body := `{"items":[{"item_id":"item_1","item_name":"Toor Dal","rate":150,"quantity":2,"total":42}]}`
	w := doJSON(r, http.MethodPut, "/cart", body)
	require.Equal(t, http.StatusOK, w.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 42.0, cart.Items[0].Total)
}

func TestUpdateCart_SanitizesItemNames(t *testing.T) {
	s := storetest.New()
	r := newCartRouter(s, shopper())

	body := `{"items":[{"item_id":"item_1","item_name":"  Dal <b>fresh</b> ","rate":10,"quantity":1,"total":10}]}`
	w := doJSON(r, http.MethodPut, "/cart", body)
	require.Equal(t, http.StatusOK, w.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Dal &lt;b&gt;fresh&lt;/b&gt;", cart.Items[0].ItemName)
}

func TestUpdateCart_MissingItemsKeyRejected(t *testing.T) {
	s := storetest.New()
	r := newCartRouter(s, shopper())

	seedBody := `{"items":[{"item_id":"item_1","item_name":"Dal","rate":10,"quantity":1,"total":10}]}`
	w := doJSON(r, http.MethodPut, "/cart", seedBody)
	require.Equal(t, http.StatusOK, w.Code)

	for _, body := range []string{`{}`, `{"items":null}`} {
		w = doJSON(r, http.MethodPut, "/cart", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, body)
	}

	// the stored cart was not clobbered
	w = doJSON(r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 1)
}

func TestUpdateCart_RejectsBadQuantity(t *testing.T) {
	r := newCartRouter(storetest.New(), shopper())

	body := `{"items":[{"item_id":"item_1","item_name":"Dal","rate":10,"quantity":0,"total":0}]}`
	w := doJSON(r, http.MethodPut, "/cart", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Quantity")
}

func TestClearCart(t *testing.T) {
	s := storetest.New()
	r := newCartRouter(s, shopper())

	body := `{"items":[{"item_id":"item_1","item_name":"Dal","rate":10,"quantity":1,"total":10}]}`
	w := doJSON(r, http.MethodPut, "/cart", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cart cleared")

	// clearing again is still a success
	w = doJSON(r, http.MethodDelete, "/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		CartID *string `json:"cart_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.CartID)
}
