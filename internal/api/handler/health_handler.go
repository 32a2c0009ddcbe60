package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AhmetTK4/harmony/internal/core/ports"
)

// HealthHandler handles GET /health, the liveness probe for the console itself.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// UpstreamHealthHandler handles GET /api/health. It probes all four backend
// services through their unauthenticated plain-text health endpoints and
// reports each one individually.
type UpstreamHealthHandler struct {
	users         ports.UserGateway
	products      ports.ProductGateway
	orders        ports.OrderGateway
	notifications ports.NotificationGateway
}

func NewUpstreamHealthHandler(users ports.UserGateway, products ports.ProductGateway, orders ports.OrderGateway, notifications ports.NotificationGateway) *UpstreamHealthHandler {
	return &UpstreamHealthHandler{
		users:         users,
		products:      products,
		orders:        orders,
		notifications: notifications,
	}
}

type serviceStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type upstreamHealthResponse struct {
	Status   string                   `json:"status"`
	Services map[string]serviceStatus `json:"services"`
}

func (h *UpstreamHealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	probes := []struct {
		name  string
		check func(context.Context) (string, error)
	}{
		{"user", h.users.Health},
		{"product", h.products.Health},
		{"order", h.orders.Health},
		{"notification", h.notifications.Health},
	}

	services := make(map[string]serviceStatus, len(probes))
	healthy := true
	for _, p := range probes {
		msg, err := p.check(ctx)
		if err != nil {
			services[p.name] = serviceStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		services[p.name] = serviceStatus{Status: "ok", Message: msg}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, upstreamHealthResponse{
		Status:   status,
		Services: services,
	})
}
