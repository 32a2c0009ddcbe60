package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AhmetTK4/harmony/internal/api/middleware"
	"github.com/AhmetTK4/harmony/internal/core/domain"
	"github.com/AhmetTK4/harmony/internal/core/ports"
)

// UserHandler exposes the user administration screen. Account creation goes
// through the session handler's register flow, not here.
type UserHandler struct {
	users ports.UserGateway
}

func NewUserHandler(users ports.UserGateway) *UserHandler {
	return &UserHandler{users: users}
}

type updateUserRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type userMutationResponse struct {
	User  *domain.User  `json:"user,omitempty"`
	Users []domain.User `json:"users"`
}

// List handles GET /api/users, with the user service's extra lookups as
// optional filters: ?enabled=true, ?q= (search), ?role=.
func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	var (
		users []domain.User
		err   error
	)
	switch {
	case c.QueryParam("enabled") == "true":
		users, err = h.users.ListEnabled(ctx, token)
	case c.QueryParam("q") != "":
		users, err = h.users.Search(ctx, token, c.QueryParam("q"))
	case c.QueryParam("role") != "":
		users, err = h.users.ListByRole(ctx, token, c.QueryParam("role"))
	default:
		users, err = h.users.List(ctx, token)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListEnabled handles GET /api/users/enabled.
func (h *UserHandler) ListEnabled(c echo.Context) error {
	users, err := h.users.ListEnabled(c.Request().Context(), middleware.TokenFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Search handles GET /api/users/search?q=.
func (h *UserHandler) Search(c echo.Context) error {
	users, err := h.users.Search(c.Request().Context(), middleware.TokenFrom(c), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListByRole handles GET /api/users/role/:role.
func (h *UserHandler) ListByRole(c echo.Context) error {
	users, err := h.users.ListByRole(c.Request().Context(), middleware.TokenFrom(c), c.Param("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetByID(c.Request().Context(), middleware.TokenFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetByEmail handles GET /api/users/email/:email.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.users.GetByEmail(c.Request().Context(), middleware.TokenFrom(c), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	updated, err := h.users.Update(ctx, token, c.Param("id"), ports.UpdateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}
	users, err := h.users.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userMutationResponse{User: updated, Users: users})
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	if err := h.users.Delete(ctx, token, c.Param("id")); err != nil {
		return err
	}
	users, err := h.users.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userMutationResponse{Users: users})
}

// Enable handles PUT /api/users/:id/enable.
func (h *UserHandler) Enable(c echo.Context) error {
	return h.toggle(c, h.users.Enable)
}

// Disable handles PUT /api/users/:id/disable.
func (h *UserHandler) Disable(c echo.Context) error {
	return h.toggle(c, h.users.Disable)
}

func (h *UserHandler) toggle(c echo.Context, mutate func(ctx context.Context, token, id string) error) error {
	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	if err := mutate(ctx, token, c.Param("id")); err != nil {
		return err
	}
	users, err := h.users.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userMutationResponse{Users: users})
}
