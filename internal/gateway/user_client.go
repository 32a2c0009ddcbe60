package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AhmetTK4/harmony/internal/core/domain"
	"github.com/AhmetTK4/harmony/internal/core/ports"
)

// UserClient talks to the user service. Register, Login and Health are the
// only operations that never attach a credential.
type UserClient struct {
	gw *Gateway
}

func NewUserClient(gw *Gateway) *UserClient {
	return &UserClient{gw: gw}
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *UserClient) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	var u domain.User
	if err := c.gw.do(ctx, ServiceUser, http.MethodPost, "/users/register", "", in, &u, "Registration failed"); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *UserClient) Login(ctx context.Context, creds ports.Credentials) (string, error) {
	var resp loginResponse
	if err := c.gw.do(ctx, ServiceUser, http.MethodPost, "/users/login", "", creds, &resp, "Login failed"); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *UserClient) List(ctx context.Context, token string) ([]domain.User, error) {
	var users []domain.User
	if err := c.gw.do(ctx, ServiceUser, http.MethodGet, "/users", token, nil, &users, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *UserClient) GetByID(ctx context.Context, token, id string) (*domain.User, error) {
	var u domain.User
	if err := c.gw.do(ctx, ServiceUser, http.MethodGet, "/users/"+url.PathEscape(id), token, nil, &u, "Failed to fetch user"); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *UserClient) GetByEmail(ctx context.Context, token, email string) (*domain.User, error) {
	var u domain.User
	if err := c.gw.do(ctx, ServiceUser, http.MethodGet, "/users/email/"+url.PathEscape(email), token, nil, &u, "Failed to fetch user"); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *UserClient) Update(ctx context.Context, token, id string, in ports.UpdateUserInput) (*domain.User, error) {
	var u domain.User
	if err := c.gw.do(ctx, ServiceUser, http.MethodPut, "/users/"+url.PathEscape(id), token, in, &u, "Failed to update user"); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *UserClient) Delete(ctx context.Context, token, id string) error {
	return c.gw.do(ctx, ServiceUser, http.MethodDelete, "/users/"+url.PathEscape(id), token, nil, nil, "Failed to delete user")
}

func (c *UserClient) Enable(ctx context.Context, token, id string) error {
	return c.gw.do(ctx, ServiceUser, http.MethodPut, "/users/"+url.PathEscape(id)+"/enable", token, nil, nil, "Failed to enable user")
}

func (c *UserClient) Disable(ctx context.Context, token, id string) error {
	return c.gw.do(ctx, ServiceUser, http.MethodPut, "/users/"+url.PathEscape(id)+"/disable", token, nil, nil, "Failed to disable user")
}

func (c *UserClient) ListEnabled(ctx context.Context, token string) ([]domain.User, error) {
	var users []domain.User
	if err := c.gw.do(ctx, ServiceUser, http.MethodGet, "/users/enabled", token, nil, &users, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *UserClient) Search(ctx context.Context, token, query string) ([]domain.User, error) {
	var users []domain.User
	path := "/users/search?q=" + url.QueryEscape(query)
	if err := c.gw.do(ctx, ServiceUser, http.MethodGet, path, token, nil, &users, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *UserClient) ListByRole(ctx context.Context, token, role string) ([]domain.User, error) {
	var users []domain.User
	if err := c.gw.do(ctx, ServiceUser, http.MethodGet, "/users/role/"+url.PathEscape(role), token, nil, &users, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *UserClient) Health(ctx context.Context) (string, error) {
	return c.gw.text(ctx, ServiceUser, "/users/health", "Health check failed")
}
