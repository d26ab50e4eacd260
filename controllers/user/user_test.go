package userController

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

func newUserRouter(s *store.Store, user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { middleware.SetCurrentUser(c, user) })
	r.GET("/user/profile", GetProfile())
	r.PUT("/user/profile", UpdateProfile(s))
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

func seedUser(s *store.Store) *models.User {
	user := &models.User{UserID: "user_abc", Email: "shopper@example.com", Name: "Shopper"}
	s.Users.(*storetest.Users).Add(user)
	return user
}

func TestGetProfile(t *testing.T) {
	s := storetest.New()
	user := seedUser(s)
	r := newUserRouter(s, user)

	w := doJSON(r, http.MethodGet, "/user/profile", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, user.UserID, got.UserID)
	assert.Equal(t, user.Email, got.Email)
}

func TestUpdateProfile_PersistsAndReturnsUser(t *testing.T) {
	s := storetest.New()
	user := seedUser(s)
	r := newUserRouter(s, user)

	body := `{"phone_number":"+91 98765 43210","home_address":"12 Market Road, Kochi","geolocation":"9.93,76.26"}`
	w := doJSON(r, http.MethodPut, "/user/profile", body)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotNil(t, got.PhoneNumber)
	assert.Equal(t, "+91 98765 43210", *got.PhoneNumber)
	require.NotNil(t, got.HomeAddress)
	assert.Equal(t, "12 Market Road, Kochi", *got.HomeAddress)
	require.NotNil(t, got.Geolocation)
	assert.Equal(t, "9.93,76.26", *got.Geolocation)
}

func TestUpdateProfile_InvalidPhone(t *testing.T) {
	s := storetest.New()
	r := newUserRouter(s, seedUser(s))

	body := `{"phone_number":"not-a-phone","home_address":"12 Market Road"}`
	w := doJSON(r, http.MethodPut, "/user/profile", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid phone number format")
}

func TestUpdateProfile_ShortAddress(t *testing.T) {
	s := storetest.New()
	r := newUserRouter(s, seedUser(s))

	body := `{"phone_number":"1234567","home_address":"abc"}`
	w := doJSON(r, http.MethodPut, "/user/profile", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "min")
}
