package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacbabu/groceryapp/auth"
	"github.com/isaacbabu/groceryapp/models"
	"github.com/isaacbabu/groceryapp/store"
	"github.com/isaacbabu/groceryapp/store/storetest"
)

func newProbeRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", RequireAuth(s), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentUser(c))
	})
	r.GET("/admin-probe", RequireAuth(s), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func seedSession(s *store.Store, token string, isAdmin bool, expiresAt time.Time) *models.User {
	user := &models.User{
		UserID:    "user_" + token,
		Email:     token + "@example.com",
		Name:      "Test User",
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
	}
	s.Users.(*storetest.Users).Add(user)
	s.Sessions.(*storetest.Sessions).Add(&models.Session{
		UserID:       user.UserID,
		SessionToken: token,
		ExpiresAt:    expiresAt,
		CreatedAt:    time.Now().UTC(),
	})
	return user
}

func TestRequireAuth_NoCredential(t *testing.T) {
	r := newProbeRouter(storetest.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authenticated")
}

func TestRequireAuth_UnknownToken(t *testing.T) {
	r := newProbeRouter(storetest.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer session_deadbeef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid session")
}

func TestRequireAuth_ExpiredSession(t *testing.T) {
	s := storetest.New()
	seedSession(s, "tok1", false, time.Now().UTC().Add(-time.Hour))
	r := newProbeRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "tok1"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session expired")

	// the record is left for the TTL reaper, not deleted inline
	_, err := s.Sessions.GetByToken(req.Context(), "tok1")
	assert.NoError(t, err)
}

func TestRequireAuth_ValidCookie(t *testing.T) {
	s := storetest.New()
	user := seedSession(s, "tok2", false, time.Now().UTC().Add(time.Hour))
	r := newProbeRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "tok2"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.UserID)
}

func TestRequireAuth_ValidBearer(t *testing.T) {
	s := storetest.New()
	seedSession(s, "tok3", false, time.Now().UTC().Add(time.Hour))
	r := newProbeRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer tok3")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_CookieWinsOverBearer(t *testing.T) {
	s := storetest.New()
	seedSession(s, "tok4", false, time.Now().UTC().Add(time.Hour))
	r := newProbeRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "bogus"})
	req.Header.Set("Authorization", "Bearer tok4")
	r.ServeHTTP(w, req)

	// the bogus cookie is used, the valid bearer header is ignored
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid session")
}

func TestRequireAuth_OrphanedSession(t *testing.T) {
	s := storetest.New()
	s.Sessions.(*storetest.Sessions).Add(&models.Session{
		UserID:       "user_gone",
		SessionToken: "tok5",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	})
	r := newProbeRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer tok5")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestRequireAdmin(t *testing.T) {
	s := storetest.New()
	seedSession(s, "plain", false, time.Now().UTC().Add(time.Hour))
	seedSession(s, "boss", true, time.Now().UTC().Add(time.Hour))
	r := newProbeRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-probe", nil)
	req.Header.Set("Authorization", "Bearer plain")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin-probe", nil)
	req.Header.Set("Authorization", "Bearer boss")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
