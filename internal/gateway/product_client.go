package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AhmetTK4/harmony/internal/core/domain"
)

// ProductClient talks to the product service.
type ProductClient struct {
	gw *Gateway
}

func NewProductClient(gw *Gateway) *ProductClient {
	return &ProductClient{gw: gw}
}

func (c *ProductClient) List(ctx context.Context, token string) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.gw.do(ctx, ServiceProduct, http.MethodGet, "/products", token, nil, &products, "Failed to fetch products"); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ProductClient) GetByID(ctx context.Context, token, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.gw.do(ctx, ServiceProduct, http.MethodGet, "/products/"+url.PathEscape(id), token, nil, &p, "Failed to fetch product"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *ProductClient) Create(ctx context.Context, token string, in domain.Product) (*domain.Product, error) {
	var p domain.Product
	if err := c.gw.do(ctx, ServiceProduct, http.MethodPost, "/products", token, in, &p, "Failed to create product"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *ProductClient) Update(ctx context.Context, token, id string, in domain.Product) (*domain.Product, error) {
	var p domain.Product
	if err := c.gw.do(ctx, ServiceProduct, http.MethodPut, "/products/"+url.PathEscape(id), token, in, &p, "Failed to update product"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *ProductClient) Delete(ctx context.Context, token, id string) error {
	return c.gw.do(ctx, ServiceProduct, http.MethodDelete, "/products/"+url.PathEscape(id), token, nil, nil, "Failed to delete product")
}

func (c *ProductClient) ListByCategory(ctx context.Context, token, category string) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.gw.do(ctx, ServiceProduct, http.MethodGet, "/products/category/"+url.PathEscape(category), token, nil, &products, "Failed to fetch products"); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ProductClient) Search(ctx context.Context, token, name string) ([]domain.Product, error) {
	var products []domain.Product
	path := "/products/search?name=" + url.QueryEscape(name)
	if err := c.gw.do(ctx, ServiceProduct, http.MethodGet, path, token, nil, &products, "Failed to fetch products"); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ProductClient) ListInStock(ctx context.Context, token string) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.gw.do(ctx, ServiceProduct, http.MethodGet, "/products/in-stock", token, nil, &products, "Failed to fetch products"); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ProductClient) Health(ctx context.Context) (string, error) {
	return c.gw.text(ctx, ServiceProduct, "/products/health", "Health check failed")
}
