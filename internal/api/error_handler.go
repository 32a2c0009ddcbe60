package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/AhmetTK4/harmony/internal/api/middleware"
	"github.com/AhmetTK4/harmony/internal/gateway"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Surfaces gateway failures with their fixed operation label and, when
//     the upstream answered, its real HTTP status; a transport failure maps
//     to 502. The upstream error body never reaches the browser.
//   - Clears the session token when the upstream rejected the credential
//     (401), so the next screen load lands on the login page.
//   - Logs unexpected errors internally without leaking details.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Gateway failures: generic message outward, typed status inward.
	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		if gwErr.Unauthorized() {
			// Expired or invalid token; drop it so the session reads as
			// anonymous from here on.
			if sess := middleware.SessionFrom(c); sess != nil {
				sess.Clear(c.Request().Context())
			}
			return http.StatusUnauthorized, gwErr.Error()
		}
		if gwErr.StatusCode == 0 {
			return http.StatusBadGateway, gwErr.Error()
		}
		return gwErr.StatusCode, gwErr.Error()
	}

	// Echo's own errors (bind failures, 404 from router, guard rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
