package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/AhmetTK4/harmony/internal/session"
)

// CookieName carries the opaque console session ID. The token itself never
// reaches the browser.
const CookieName = "harmony_session"

const (
	sessionContextKey = "console_session"
	tokenContextKey   = "console_token"
)

// ResolveSession binds every request to a session handle, minting a new
// session ID (and cookie) when the browser presents none. It runs on all
// routes, authenticated or not: an anonymous session is still a session.
func ResolveSession(store session.Store, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
				id = ck.Value
			}
			if id == "" {
				generated, err := session.GenerateID()
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "failed to start session")
				}
				id = generated
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionContextKey, session.New(id, store, log))
			return next(c)
		}
	}
}

// RequireAuth is the route guard for authenticated screens: it pre-checks
// the session and short-circuits with a local 401 instead of issuing an
// upstream call that would fail anyway. The token read here is the latest
// persisted value; it is attached once per request and a logout that lands
// mid-flight does not retract it.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFrom(c)
			if sess == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			token := sess.Token(c.Request().Context())
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(tokenContextKey, token)
			return next(c)
		}
	}
}

// SessionFrom extracts the session handle injected by ResolveSession.
func SessionFrom(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionContextKey).(*session.Session)
	return sess
}

// TokenFrom extracts the bearer token injected by RequireAuth. Empty on
// unguarded routes.
func TokenFrom(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}
