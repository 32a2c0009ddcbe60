package ports

import (
	"context"

	"github.com/AhmetTK4/harmony/internal/core/domain"
)

// Credentials is the login payload. It is transient: forwarded to the user
// service and never stored console-side.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUserInput is the account-creation payload.
type RegisterUserInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}

// UpdateUserInput is the profile-update payload. Password changes are not
// exposed through the console.
type UpdateUserInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}

// UserGateway covers the user service surface. Register, Login and Health
// never attach a credential; every other call carries the supplied token.
type UserGateway interface {
	Register(ctx context.Context, in RegisterUserInput) (*domain.User, error)
	Login(ctx context.Context, creds Credentials) (string, error)
	List(ctx context.Context, token string) ([]domain.User, error)
	GetByID(ctx context.Context, token, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, token, email string) (*domain.User, error)
	Update(ctx context.Context, token, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, token, id string) error
	Enable(ctx context.Context, token, id string) error
	Disable(ctx context.Context, token, id string) error
	ListEnabled(ctx context.Context, token string) ([]domain.User, error)
	Search(ctx context.Context, token, query string) ([]domain.User, error)
	ListByRole(ctx context.Context, token, role string) ([]domain.User, error)
	Health(ctx context.Context) (string, error)
}

// ProductGateway covers the product service surface.
type ProductGateway interface {
	List(ctx context.Context, token string) ([]domain.Product, error)
	GetByID(ctx context.Context, token, id string) (*domain.Product, error)
	Create(ctx context.Context, token string, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, token, id string, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, token, id string) error
	ListByCategory(ctx context.Context, token, category string) ([]domain.Product, error)
	Search(ctx context.Context, token, name string) ([]domain.Product, error)
	ListInStock(ctx context.Context, token string) ([]domain.Product, error)
	Health(ctx context.Context) (string, error)
}

// OrderGateway covers the order service surface.
type OrderGateway interface {
	List(ctx context.Context, token string) ([]domain.Order, error)
	GetByID(ctx context.Context, token, id string) (*domain.Order, error)
	Create(ctx context.Context, token string, o domain.Order) (*domain.Order, error)
	Update(ctx context.Context, token, id string, o domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, token, id string) error
	ListByUser(ctx context.Context, token, userID string) ([]domain.Order, error)
	Health(ctx context.Context) (string, error)
}

// NotificationGateway covers the notification service surface.
type NotificationGateway interface {
	List(ctx context.Context, token string) ([]domain.Notification, error)
	GetByID(ctx context.Context, token, id string) (*domain.Notification, error)
	Create(ctx context.Context, token string, n domain.Notification) (*domain.Notification, error)
	Update(ctx context.Context, token, id string, n domain.Notification) (*domain.Notification, error)
	Delete(ctx context.Context, token, id string) error
	ListByUser(ctx context.Context, token, userID string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, token, id string) (*domain.Notification, error)
	Health(ctx context.Context) (string, error)
}
