package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/internal/storefront"
)

const (
	// SessionCookieName is the cookie carrying the session ID.
	SessionCookieName = "sid"
	// SessionKey is the context key of the *storefront.Session.
	SessionKey ContextKey = "session"
)

// SessionConfig controls the session cookie.
type SessionConfig struct {
	// TTL sets the cookie Max-Age. Zero makes it a browser-session cookie.
	TTL time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// Session attaches the visitor's session to the request, creating it and setting the
// cookie when the cookie is missing or names an expired session.
func Session(store *storefront.SessionStore, cfg SessionConfig) gin.HandlerFunc {
	maxAge := int(cfg.TTL / time.Second)

	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookieName)
		session, created := store.GetOrCreate(id)

		// refresh Max-Age on every request so the cookie outlives idle gaps shorter than TTL
		if created || maxAge > 0 {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, session.ID, maxAge, "/", "", cfg.Secure, true)
		}

		c.Set(string(SessionKey), session)
		c.Next()
	}
}

// GetSession returns the session attached by Session, or nil.
func GetSession(c *gin.Context) *storefront.Session {
	if v, ok := c.Get(string(SessionKey)); ok {
		if s, ok := v.(*storefront.Session); ok {
			return s
		}
	}
	return nil
}

// GetSessionID returns the attached session's ID, or "".
func GetSessionID(c *gin.Context) string {
	if s := GetSession(c); s != nil {
		return s.ID
	}
	return ""
}
