package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/AhmetTK4/harmony/internal/core/domain"
)

// stubProductGateway records the order of upstream calls so tests can assert
// that mutations complete before the list re-fetch starts.
type stubProductGateway struct {
	calls []string

	listProducts []domain.Product
	listErr      error
	createErr    error
	deleteErr    error
	healthMsg    string
	healthErr    error
}

func (s *stubProductGateway) List(ctx context.Context, token string) ([]domain.Product, error) {
	s.calls = append(s.calls, "list")
	return s.listProducts, s.listErr
}

func (s *stubProductGateway) GetByID(ctx context.Context, token, id string) (*domain.Product, error) {
	s.calls = append(s.calls, "get")
	return &domain.Product{ID: id}, nil
}

func (s *stubProductGateway) Create(ctx context.Context, token string, p domain.Product) (*domain.Product, error) {
	s.calls = append(s.calls, "create")
	if s.createErr != nil {
		return nil, s.createErr
	}
	p.ID = "p-new"
	return &p, nil
}

func (s *stubProductGateway) Update(ctx context.Context, token, id string, p domain.Product) (*domain.Product, error) {
	s.calls = append(s.calls, "update")
	p.ID = id
	return &p, nil
}

func (s *stubProductGateway) Delete(ctx context.Context, token, id string) error {
	s.calls = append(s.calls, "delete")
	return s.deleteErr
}

func (s *stubProductGateway) ListByCategory(ctx context.Context, token, category string) ([]domain.Product, error) {
	s.calls = append(s.calls, "listByCategory")
	return s.listProducts, nil
}

func (s *stubProductGateway) Search(ctx context.Context, token, name string) ([]domain.Product, error) {
	s.calls = append(s.calls, "search")
	return s.listProducts, nil
}

func (s *stubProductGateway) ListInStock(ctx context.Context, token string) ([]domain.Product, error) {
	s.calls = append(s.calls, "listInStock")
	return s.listProducts, nil
}

func (s *stubProductGateway) Health(ctx context.Context) (string, error) {
	return s.healthMsg, s.healthErr
}

func newProductContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductHandler_CreateRefetchesListAfterMutation(t *testing.T) {
	gw := &stubProductGateway{listProducts: []domain.Product{{ID: "p-new", Name: "Widget"}}}
	h := NewProductHandler(gw)

	c, rec := newProductContext(t, http.MethodPost, "/api/products",
		`{"name":"Widget","price":9.5,"stockQuantity":3}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	// The list re-fetch must start only after the create completed.
	want := []string{"create", "list"}
	if len(gw.calls) != len(want) || gw.calls[0] != want[0] || gw.calls[1] != want[1] {
		t.Fatalf("expected call order %v, got %v", want, gw.calls)
	}

	var resp productMutationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Product == nil || resp.Product.ID != "p-new" {
		t.Fatalf("expected created product in response, got %+v", resp.Product)
	}
	if len(resp.Products) != 1 {
		t.Fatalf("expected refreshed list in response, got %+v", resp.Products)
	}
}

func TestProductHandler_CreateFailureSkipsRefetch(t *testing.T) {
	gw := &stubProductGateway{createErr: errors.New("Failed to create product")}
	h := NewProductHandler(gw)

	c, _ := newProductContext(t, http.MethodPost, "/api/products",
		`{"name":"Widget","price":9.5,"stockQuantity":3}`)

	if err := h.Create(c); err == nil {
		t.Fatalf("expected create error")
	}
	for _, call := range gw.calls {
		if call == "list" {
			t.Fatalf("failed mutation must not trigger a list re-fetch, calls: %v", gw.calls)
		}
	}
}

func TestProductHandler_CreateRejectsInvalidPayload(t *testing.T) {
	gw := &stubProductGateway{}
	h := NewProductHandler(gw)

	// Negative price fails validation before any upstream call.
	c, _ := newProductContext(t, http.MethodPost, "/api/products",
		`{"name":"Widget","price":-1,"stockQuantity":3}`)

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if len(gw.calls) != 0 {
		t.Fatalf("invalid payload must not reach the upstream, calls: %v", gw.calls)
	}
}

func TestProductHandler_DeleteReturnsRefreshedList(t *testing.T) {
	gw := &stubProductGateway{listProducts: []domain.Product{{ID: "p2"}}}
	h := NewProductHandler(gw)

	c, rec := newProductContext(t, http.MethodDelete, "/api/products/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := []string{"delete", "list"}
	if len(gw.calls) != 2 || gw.calls[0] != want[0] || gw.calls[1] != want[1] {
		t.Fatalf("expected call order %v, got %v", want, gw.calls)
	}
}

func TestProductHandler_ListDispatchesFilters(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"plain", "/api/products", "list"},
		{"category", "/api/products?category=books", "listByCategory"},
		{"search", "/api/products?name=wid", "search"},
		{"inStock", "/api/products?inStock=true", "listInStock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubProductGateway{}
			h := NewProductHandler(gw)

			c, rec := newProductContext(t, http.MethodGet, tt.target, "")
			if err := h.List(c); err != nil {
				t.Fatalf("list: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if len(gw.calls) != 1 || gw.calls[0] != tt.want {
				t.Fatalf("expected single %q call, got %v", tt.want, gw.calls)
			}
		})
	}
}
