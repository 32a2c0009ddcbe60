package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AhmetTK4/harmony/internal/api/middleware"
	"github.com/AhmetTK4/harmony/internal/core/domain"
	"github.com/AhmetTK4/harmony/internal/core/ports"
)

// ProductHandler implements the product screen's fixed pattern: list reads
// pass straight through; every mutation is followed by an unconditional
// re-fetch of the full list, issued only after the mutation's response is
// observed, and the refreshed list is returned to the browser.
type ProductHandler struct {
	products ports.ProductGateway
}

func NewProductHandler(products ports.ProductGateway) *ProductHandler {
	return &ProductHandler{products: products}
}

type productRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gt=0"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
	ImageURL      string  `json:"imageUrl"`
}

func (r productRequest) toDomain() domain.Product {
	return domain.Product{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Category:      r.Category,
		StockQuantity: r.StockQuantity,
		ImageURL:      r.ImageURL,
	}
}

type productMutationResponse struct {
	Product  *domain.Product  `json:"product,omitempty"`
	Products []domain.Product `json:"products"`
}

// List handles GET /api/products. Optional filters mirror the product
// service's extra lookups: ?category=, ?name= (search), ?inStock=true.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Filter by category"
// @Param        name      query  string  false  "Search by name"
// @Param        inStock   query  bool    false  "Only products in stock"
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  map[string]string
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	var (
		products []domain.Product
		err      error
	)
	switch {
	case c.QueryParam("category") != "":
		products, err = h.products.ListByCategory(ctx, token, c.QueryParam("category"))
	case c.QueryParam("name") != "":
		products, err = h.products.Search(ctx, token, c.QueryParam("name"))
	case c.QueryParam("inStock") == "true":
		products, err = h.products.ListInStock(ctx, token)
	default:
		products, err = h.products.List(ctx, token)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListByCategory handles GET /api/products/category/:category.
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.products.ListByCategory(c.Request().Context(), middleware.TokenFrom(c), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Search handles GET /api/products/search?name=.
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.products.Search(c.Request().Context(), middleware.TokenFrom(c), c.QueryParam("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListInStock handles GET /api/products/in-stock.
func (h *ProductHandler) ListInStock(c echo.Context) error {
	products, err := h.products.ListInStock(c.Request().Context(), middleware.TokenFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.GetByID(c.Request().Context(), middleware.TokenFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  productMutationResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	created, err := h.products.Create(ctx, token, req.toDomain())
	if err != nil {
		return err
	}
	products, err := h.products.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, productMutationResponse{Product: created, Products: products})
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	updated, err := h.products.Update(ctx, token, c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	products, err := h.products.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productMutationResponse{Product: updated, Products: products})
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	if err := h.products.Delete(ctx, token, c.Param("id")); err != nil {
		return err
	}
	products, err := h.products.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productMutationResponse{Products: products})
}
