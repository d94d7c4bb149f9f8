package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lafamilia/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret-0123456789"

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session": SessionID(c), "email": c.GetString("user_email")})
	})...)
	return r
}

func TestSessionMiddleware(t *testing.T) {
	r := newRouter(SessionMiddleware())

	t.Run("issues a new id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		sid := w.Header().Get(SessionHeader)
		_, err := uuid.Parse(sid)
		require.NoError(t, err)
		assert.Contains(t, w.Header().Get("Set-Cookie"), SessionCookie+"="+sid)
	})

	t.Run("keeps the header id", func(t *testing.T) {
		sid := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(SessionHeader, sid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, sid, w.Header().Get(SessionHeader))
	})

	t.Run("falls back to the cookie", func(t *testing.T) {
		sid := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sid})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, sid, w.Header().Get(SessionHeader))
	})
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(AuthMiddleware(secret), AdminMiddleware())

	adminToken, err := utils.GenerateToken(secret, "admin@example.com", RoleAdmin, time.Hour)
	require.NoError(t, err)
	otherToken, err := utils.GenerateToken(secret, "user@example.com", "visitor", time.Hour)
	require.NoError(t, err)
	forged, err := utils.GenerateToken("another-secret", "admin@example.com", RoleAdmin, time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateToken(secret, "admin@example.com", RoleAdmin, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + adminToken, http.StatusUnauthorized},
		{"forged", "Bearer " + forged, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"not admin", "Bearer " + otherToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAuthMiddleware_Unconfigured(t *testing.T) {
	r := newRouter(AuthMiddleware(""))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
