package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AhmetTK4/harmony/internal/core/domain"
)

// NotificationClient talks to the notification service.
type NotificationClient struct {
	gw *Gateway
}

func NewNotificationClient(gw *Gateway) *NotificationClient {
	return &NotificationClient{gw: gw}
}

func (c *NotificationClient) List(ctx context.Context, token string) ([]domain.Notification, error) {
	var notifications []domain.Notification
	if err := c.gw.do(ctx, ServiceNotification, http.MethodGet, "/notifications", token, nil, &notifications, "Failed to fetch notifications"); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *NotificationClient) GetByID(ctx context.Context, token, id string) (*domain.Notification, error) {
	var n domain.Notification
	if err := c.gw.do(ctx, ServiceNotification, http.MethodGet, "/notifications/"+url.PathEscape(id), token, nil, &n, "Failed to fetch notification"); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *NotificationClient) Create(ctx context.Context, token string, in domain.Notification) (*domain.Notification, error) {
	var n domain.Notification
	if err := c.gw.do(ctx, ServiceNotification, http.MethodPost, "/notifications", token, in, &n, "Failed to create notification"); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *NotificationClient) Update(ctx context.Context, token, id string, in domain.Notification) (*domain.Notification, error) {
	var n domain.Notification
	if err := c.gw.do(ctx, ServiceNotification, http.MethodPut, "/notifications/"+url.PathEscape(id), token, in, &n, "Failed to update notification"); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *NotificationClient) Delete(ctx context.Context, token, id string) error {
	return c.gw.do(ctx, ServiceNotification, http.MethodDelete, "/notifications/"+url.PathEscape(id), token, nil, nil, "Failed to delete notification")
}

func (c *NotificationClient) ListByUser(ctx context.Context, token, userID string) ([]domain.Notification, error) {
	var notifications []domain.Notification
	if err := c.gw.do(ctx, ServiceNotification, http.MethodGet, "/notifications/user/"+url.PathEscape(userID), token, nil, &notifications, "Failed to fetch user notifications"); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *NotificationClient) MarkAsRead(ctx context.Context, token, id string) (*domain.Notification, error) {
	var n domain.Notification
	if err := c.gw.do(ctx, ServiceNotification, http.MethodPut, "/notifications/"+url.PathEscape(id)+"/read", token, nil, &n, "Failed to mark notification as read"); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *NotificationClient) Health(ctx context.Context) (string, error) {
	return c.gw.text(ctx, ServiceNotification, "/notifications/health", "Health check failed")
}
