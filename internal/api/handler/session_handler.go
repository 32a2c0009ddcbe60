package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AhmetTK4/harmony/internal/api/middleware"
	"github.com/AhmetTK4/harmony/internal/core/domain"
	"github.com/AhmetTK4/harmony/internal/core/ports"
)

// SessionHandler exposes the console's login/logout surface. Credentials
// pass through to the user service and are never stored.
type SessionHandler struct {
	auth ports.AuthService
}

func NewSessionHandler(auth ports.AuthService) *SessionHandler {
	return &SessionHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
}

// Login authenticates the session.
//
// @Summary      Log in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := middleware.SessionFrom(c)
	user, err := h.auth.Login(c.Request().Context(), sess, ports.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: user})
}

// Register creates an account, then logs the session in with the same
// credentials.
//
// @Summary      Register a new account
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/session/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := middleware.SessionFrom(c)
	user, err := h.auth.Register(c.Request().Context(), sess, ports.RegisterUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse{Authenticated: true, User: user})
}

// Logout clears the session token.
//
// @Summary      Log out
// @Tags         session
// @Success      204  "cleared"
// @Router       /api/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.auth.Logout(c.Request().Context(), middleware.SessionFrom(c))
	return c.NoContent(http.StatusNoContent)
}

// Show reports the session's authenticated state and the cached profile, if
// one was captured at login.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Show(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	resp := sessionResponse{Authenticated: sess.IsAuthenticated(c.Request().Context())}
	if resp.Authenticated {
		resp.User = h.auth.CurrentUser(sess)
	}
	return c.JSON(http.StatusOK, resp)
}
