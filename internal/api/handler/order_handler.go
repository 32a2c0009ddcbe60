package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AhmetTK4/harmony/internal/api/middleware"
	"github.com/AhmetTK4/harmony/internal/core/domain"
	"github.com/AhmetTK4/harmony/internal/core/ports"
)

// OrderHandler follows the same screen pattern as ProductHandler: mutation,
// then unconditional list re-fetch.
type OrderHandler struct {
	orders ports.OrderGateway
}

func NewOrderHandler(orders ports.OrderGateway) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderRequest struct {
	UserID          string  `json:"userId" validate:"required"`
	ProductID       string  `json:"productId" validate:"required"`
	Quantity        int     `json:"quantity" validate:"gt=0"`
	TotalAmount     float64 `json:"totalAmount" validate:"gt=0"`
	Status          string  `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
	ShippingAddress string  `json:"shippingAddress"`
	Notes           string  `json:"notes"`
}

func (r orderRequest) toDomain() domain.Order {
	status := r.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	return domain.Order{
		UserID:          r.UserID,
		ProductID:       r.ProductID,
		Quantity:        r.Quantity,
		TotalAmount:     r.TotalAmount,
		Status:          status,
		ShippingAddress: r.ShippingAddress,
		Notes:           r.Notes,
	}
}

type orderMutationResponse struct {
	Order  *domain.Order  `json:"order,omitempty"`
	Orders []domain.Order `json:"orders"`
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context(), middleware.TokenFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.GetByID(c.Request().Context(), middleware.TokenFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// ListByUser handles GET /api/orders/user/:userId.
func (h *OrderHandler) ListByUser(c echo.Context) error {
	orders, err := h.orders.ListByUser(c.Request().Context(), middleware.TokenFrom(c), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	created, err := h.orders.Create(ctx, token, req.toDomain())
	if err != nil {
		return err
	}
	orders, err := h.orders.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, orderMutationResponse{Order: created, Orders: orders})
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	updated, err := h.orders.Update(ctx, token, c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	orders, err := h.orders.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderMutationResponse{Order: updated, Orders: orders})
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	if err := h.orders.Delete(ctx, token, c.Param("id")); err != nil {
		return err
	}
	orders, err := h.orders.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderMutationResponse{Orders: orders})
}
