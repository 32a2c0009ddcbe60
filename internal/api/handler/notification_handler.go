package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AhmetTK4/harmony/internal/api/middleware"
	"github.com/AhmetTK4/harmony/internal/core/domain"
	"github.com/AhmetTK4/harmony/internal/core/ports"
)

// NotificationHandler follows the same screen pattern as ProductHandler.
// Marking a notification read is a mutation too and triggers the re-fetch.
type NotificationHandler struct {
	notifications ports.NotificationGateway
}

func NewNotificationHandler(notifications ports.NotificationGateway) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type notificationRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=INFO WARNING ERROR SUCCESS"`
	Priority string `json:"priority" validate:"omitempty,oneof=LOW NORMAL HIGH"`
}

func (r notificationRequest) toDomain() domain.Notification {
	n := domain.Notification{
		UserID:   r.UserID,
		Title:    r.Title,
		Message:  r.Message,
		Type:     r.Type,
		Priority: r.Priority,
	}
	if n.Type == "" {
		n.Type = domain.NotificationTypeInfo
	}
	if n.Priority == "" {
		n.Priority = domain.PriorityNormal
	}
	return n
}

type notificationMutationResponse struct {
	Notification  *domain.Notification  `json:"notification,omitempty"`
	Notifications []domain.Notification `json:"notifications"`
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.notifications.List(c.Request().Context(), middleware.TokenFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// Get handles GET /api/notifications/:id.
func (h *NotificationHandler) Get(c echo.Context) error {
	notification, err := h.notifications.GetByID(c.Request().Context(), middleware.TokenFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notification)
}

// ListByUser handles GET /api/notifications/user/:userId.
func (h *NotificationHandler) ListByUser(c echo.Context) error {
	notifications, err := h.notifications.ListByUser(c.Request().Context(), middleware.TokenFrom(c), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// Create handles POST /api/notifications.
func (h *NotificationHandler) Create(c echo.Context) error {
	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	created, err := h.notifications.Create(ctx, token, req.toDomain())
	if err != nil {
		return err
	}
	notifications, err := h.notifications.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, notificationMutationResponse{Notification: created, Notifications: notifications})
}

// Update handles PUT /api/notifications/:id.
func (h *NotificationHandler) Update(c echo.Context) error {
	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	updated, err := h.notifications.Update(ctx, token, c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	notifications, err := h.notifications.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationMutationResponse{Notification: updated, Notifications: notifications})
}

// Delete handles DELETE /api/notifications/:id.
func (h *NotificationHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	if err := h.notifications.Delete(ctx, token, c.Param("id")); err != nil {
		return err
	}
	notifications, err := h.notifications.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationMutationResponse{Notifications: notifications})
}

// MarkAsRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)

	updated, err := h.notifications.MarkAsRead(ctx, token, c.Param("id"))
	if err != nil {
		return err
	}
	notifications, err := h.notifications.List(ctx, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationMutationResponse{Notification: updated, Notifications: notifications})
}
