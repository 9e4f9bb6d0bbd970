package middleware

import (
	"net/http"

	"shop/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// sessionIDContextKey is the echo context key carrying the visitor session ID.
const sessionIDContextKey = "session_id"

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Config *config.Config
}

// SessionMiddleware assigns every visitor a stable session identity via a cookie.
// The session ID scopes the cart; no authentication is involved.
type SessionMiddleware struct {
	cfg *config.Config
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		cfg: params.Config,
	}
}

// Ensure reads the session cookie, minting a fresh UUID when the cookie is
// missing or does not parse as a UUID. The ID is stored on the echo context
// for handlers.
func (m *SessionMiddleware) Ensure(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := ""

		cookie, err := c.Cookie(m.cfg.Cart.CookieName)
		if err == nil {
			if parsed, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
				sessionID = parsed.String()
			}
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(&http.Cookie{
				Name:     m.cfg.Cart.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(m.cfg.Cart.TTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionIDContextKey, sessionID)

		return next(c)
	}
}

// GetSessionID retrieves the session ID stored by the session middleware.
func GetSessionID(c echo.Context) (string, bool) {
	sessionID, ok := c.Get(sessionIDContextKey).(string)
	if !ok || sessionID == "" {
		return "", false
	}

	return sessionID, true
}
