package ports

import (
	"context"

	"github.com/AhmetTK4/harmony/internal/core/domain"
	"github.com/AhmetTK4/harmony/internal/session"
)

// AuthService drives the session lifecycle: anonymous → authenticated on
// login, back to anonymous on logout or failure.
type AuthService interface {
	// Login authenticates against the user service, persists the token on
	// the session and returns the current user's profile when the
	// best-effort lookup finds one (nil profile is not an error).
	Login(ctx context.Context, sess *session.Session, creds Credentials) (*domain.User, error)
	// Register creates the account, then performs an implicit login with
	// the same credentials. A failure at either step leaves the session
	// anonymous.
	Register(ctx context.Context, sess *session.Session, in RegisterUserInput) (*domain.User, error)
	// Logout clears the persisted token and drops the cached profile.
	Logout(ctx context.Context, sess *session.Session)
	// CurrentUser returns the cached profile for the session, if any.
	CurrentUser(sess *session.Session) *domain.User
}
