package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/AhmetTK4/harmony/internal/api/middleware"
	"github.com/AhmetTK4/harmony/internal/gateway"
	"github.com/AhmetTK4/harmony/internal/session"
)

func newErrorTestServer(store session.Store, failWith error) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.Use(middleware.ResolveSession(store, zerolog.Nop()))
	e.GET("/fail", func(c echo.Context) error {
		return failWith
	})
	return e
}

func doFail(e *echo.Echo, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: sessionID})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return resp.Error
}

func TestErrorHandler_UpstreamStatusPassesThrough(t *testing.T) {
	gwErr := &gateway.Error{Service: gateway.ServiceProduct, Op: "Failed to fetch products", StatusCode: http.StatusServiceUnavailable}
	rec := doFail(newErrorTestServer(session.NewMemoryStore(), gwErr), "")

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected upstream 503 to pass through, got %d", rec.Code)
	}
	if msg := decodeEnvelope(t, rec); msg != "Failed to fetch products" {
		t.Fatalf("expected fixed label in envelope, got %q", msg)
	}
}

func TestErrorHandler_TransportFailureMapsToBadGateway(t *testing.T) {
	gwErr := &gateway.Error{Service: gateway.ServiceOrder, Op: "Failed to fetch user orders"}
	rec := doFail(newErrorTestServer(session.NewMemoryStore(), gwErr), "")

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for a transport failure, got %d", rec.Code)
	}
}

func TestErrorHandler_UnauthorizedClearsSession(t *testing.T) {
	store := session.NewMemoryStore()
	if err := store.Set(context.Background(), "sess-1", "tok-stale", time.Hour); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	gwErr := &gateway.Error{Service: gateway.ServiceUser, Op: "Failed to fetch users", StatusCode: http.StatusUnauthorized}
	rec := doFail(newErrorTestServer(store, gwErr), "sess-1")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if token, _ := store.Get(context.Background(), "sess-1"); token != "" {
		t.Fatalf("expected stale token cleared after upstream 401, got %q", token)
	}
}

func TestErrorHandler_EchoErrorsKeepTheirStatus(t *testing.T) {
	rec := doFail(newErrorTestServer(session.NewMemoryStore(), echo.NewHTTPError(http.StatusBadRequest, "invalid payload")), "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeEnvelope(t, rec); msg != "invalid payload" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnknownErrorsStayGeneric(t *testing.T) {
	rec := doFail(newErrorTestServer(session.NewMemoryStore(), errors.New("database on fire")), "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := decodeEnvelope(t, rec); msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}
