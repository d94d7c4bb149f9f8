package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"
	SessionKey    = "session_id"

	sessionMaxAge = 30 * 24 * 60 * 60
)

// SessionMiddleware identifies the visitor by the X-Session-ID header or the
// session_id cookie, issuing a new id when neither carries a valid uuid.
// The id is echoed back in both so any client can keep it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(SessionHeader)
		if sid == "" {
			sid, _ = c.Cookie(SessionCookie)
		}
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
		}

		c.Set(SessionKey, sid)
		c.Header(SessionHeader, sid)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
