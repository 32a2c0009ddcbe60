package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AhmetTK4/harmony/internal/core/domain"
)

// OrderClient talks to the order service.
type OrderClient struct {
	gw *Gateway
}

func NewOrderClient(gw *Gateway) *OrderClient {
	return &OrderClient{gw: gw}
}

func (c *OrderClient) List(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.gw.do(ctx, ServiceOrder, http.MethodGet, "/orders", token, nil, &orders, "Failed to fetch orders"); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *OrderClient) GetByID(ctx context.Context, token, id string) (*domain.Order, error) {
	var o domain.Order
	if err := c.gw.do(ctx, ServiceOrder, http.MethodGet, "/orders/"+url.PathEscape(id), token, nil, &o, "Failed to fetch order"); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *OrderClient) Create(ctx context.Context, token string, in domain.Order) (*domain.Order, error) {
	var o domain.Order
	if err := c.gw.do(ctx, ServiceOrder, http.MethodPost, "/orders", token, in, &o, "Failed to create order"); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *OrderClient) Update(ctx context.Context, token, id string, in domain.Order) (*domain.Order, error) {
	var o domain.Order
	if err := c.gw.do(ctx, ServiceOrder, http.MethodPut, "/orders/"+url.PathEscape(id), token, in, &o, "Failed to update order"); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *OrderClient) Delete(ctx context.Context, token, id string) error {
	return c.gw.do(ctx, ServiceOrder, http.MethodDelete, "/orders/"+url.PathEscape(id), token, nil, nil, "Failed to delete order")
}

func (c *OrderClient) ListByUser(ctx context.Context, token, userID string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.gw.do(ctx, ServiceOrder, http.MethodGet, "/orders/user/"+url.PathEscape(userID), token, nil, &orders, "Failed to fetch user orders"); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *OrderClient) Health(ctx context.Context) (string, error) {
	return c.gw.text(ctx, ServiceOrder, "/orders/health", "Health check failed")
}
