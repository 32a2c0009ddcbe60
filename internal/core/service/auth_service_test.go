package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/AhmetTK4/harmony/internal/core/domain"
	"github.com/AhmetTK4/harmony/internal/core/ports"
	"github.com/AhmetTK4/harmony/internal/session"
)

// stubUserGateway implements ports.UserGateway with canned responses for the
// operations the auth flow touches.
type stubUserGateway struct {
	loginToken  string
	loginErr    error
	registerErr error
	listUsers   []domain.User
	listErr     error

	registerCalls int
	loginCalls    int
	listCalls     int
}

func (s *stubUserGateway) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	s.registerCalls++
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.User{Email: in.Email}, nil
}

func (s *stubUserGateway) Login(ctx context.Context, creds ports.Credentials) (string, error) {
	s.loginCalls++
	return s.loginToken, s.loginErr
}

func (s *stubUserGateway) List(ctx context.Context, token string) ([]domain.User, error) {
	s.listCalls++
	return s.listUsers, s.listErr
}

func (s *stubUserGateway) GetByID(ctx context.Context, token, id string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserGateway) GetByEmail(ctx context.Context, token, email string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserGateway) Update(ctx context.Context, token, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserGateway) Delete(ctx context.Context, token, id string) error {
	return errors.New("not implemented")
}

func (s *stubUserGateway) Enable(ctx context.Context, token, id string) error {
	return errors.New("not implemented")
}

func (s *stubUserGateway) Disable(ctx context.Context, token, id string) error {
	return errors.New("not implemented")
}

func (s *stubUserGateway) ListEnabled(ctx context.Context, token string) ([]domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserGateway) Search(ctx context.Context, token, query string) ([]domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserGateway) ListByRole(ctx context.Context, token, role string) ([]domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserGateway) Health(ctx context.Context) (string, error) {
	return "", errors.New("not implemented")
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	id, err := session.GenerateID()
	if err != nil {
		t.Fatalf("generate session id: %v", err)
	}
	return session.New(id, session.NewMemoryStore(), zerolog.Nop())
}

func TestAuthService_LoginPersistsTokenAndResolvesProfile(t *testing.T) {
	users := &stubUserGateway{
		loginToken: "tok-123",
		listUsers: []domain.User{
			{ID: "u1", Email: "other@example.com"},
			{ID: "u2", Email: "Jane@Example.com", FirstName: "Jane"},
		},
	}
	svc := NewAuthService(users, time.Hour, zerolog.Nop())
	sess := newTestSession(t)
	ctx := context.Background()

	// The email match is case-insensitive.
	profile, err := svc.Login(ctx, sess, ports.Credentials{Email: "jane@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if profile == nil || profile.ID != "u2" {
		t.Fatalf("expected profile u2, got %+v", profile)
	}
	if got := sess.Token(ctx); got != "tok-123" {
		t.Fatalf("expected persisted token tok-123, got %q", got)
	}
	if cached := svc.CurrentUser(sess); cached == nil || cached.ID != "u2" {
		t.Fatalf("expected cached profile u2, got %+v", cached)
	}
}

func TestAuthService_LoginFailureLeavesSessionAnonymous(t *testing.T) {
	users := &stubUserGateway{loginErr: errors.New("Login failed")}
	svc := NewAuthService(users, time.Hour, zerolog.Nop())
	sess := newTestSession(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, sess, ports.Credentials{Email: "a@b.com", Password: "bad"}); err == nil {
		t.Fatalf("expected login error")
	}
	if sess.IsAuthenticated(ctx) {
		t.Fatalf("failed login must not persist a token")
	}
	if users.listCalls != 0 {
		t.Fatalf("profile lookup must not run after a failed login")
	}
}

func TestAuthService_ProfileLookupMissKeepsSessionAuthenticated(t *testing.T) {
	users := &stubUserGateway{
		loginToken: "tok-456",
		listErr:    errors.New("Failed to fetch users"),
	}
	svc := NewAuthService(users, time.Hour, zerolog.Nop())
	sess := newTestSession(t)
	ctx := context.Background()

	profile, err := svc.Login(ctx, sess, ports.Credentials{Email: "a@b.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login must succeed despite a failed profile lookup, got %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil profile, got %+v", profile)
	}
	if !sess.IsAuthenticated(ctx) {
		t.Fatalf("token must survive a failed profile lookup")
	}
}

func TestAuthService_RegisterPerformsImplicitLogin(t *testing.T) {
	users := &stubUserGateway{
		loginToken: "tok-789",
		listUsers:  []domain.User{{ID: "u9", Email: "new@example.com"}},
	}
	svc := NewAuthService(users, time.Hour, zerolog.Nop())
	sess := newTestSession(t)
	ctx := context.Background()

	profile, err := svc.Register(ctx, sess, ports.RegisterUserInput{
		FirstName: "New", LastName: "User", Email: "new@example.com", Password: "pw",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if profile == nil || profile.ID != "u9" {
		t.Fatalf("expected profile u9, got %+v", profile)
	}
	if users.loginCalls != 1 {
		t.Fatalf("expected exactly one implicit login, got %d", users.loginCalls)
	}
	if got := sess.Token(ctx); got != "tok-789" {
		t.Fatalf("expected persisted token after implicit login, got %q", got)
	}
}

func TestAuthService_RegisterFailureSkipsLogin(t *testing.T) {
	users := &stubUserGateway{registerErr: errors.New("Registration failed")}
	svc := NewAuthService(users, time.Hour, zerolog.Nop())
	sess := newTestSession(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, sess, ports.RegisterUserInput{Email: "x@y.com", Password: "pw"}); err == nil {
		t.Fatalf("expected register error")
	}
	if users.loginCalls != 0 {
		t.Fatalf("failed registration must not attempt a login")
	}
	if sess.IsAuthenticated(ctx) {
		t.Fatalf("session must stay anonymous after a failed registration")
	}
}

func TestAuthService_LogoutClearsTokenAndProfile(t *testing.T) {
	users := &stubUserGateway{
		loginToken: "tok-1",
		listUsers:  []domain.User{{ID: "u1", Email: "a@b.com"}},
	}
	svc := NewAuthService(users, time.Hour, zerolog.Nop())
	sess := newTestSession(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, sess, ports.Credentials{Email: "a@b.com", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.Logout(ctx, sess)

	if sess.IsAuthenticated(ctx) {
		t.Fatalf("logout must clear the persisted token")
	}
	if svc.CurrentUser(sess) != nil {
		t.Fatalf("logout must drop the cached profile")
	}
}

func TestAuthService_SessionTTLFollowsTokenExpiry(t *testing.T) {
	svc := NewAuthService(&stubUserGateway{}, time.Hour, zerolog.Nop())

	exp := time.Now().Add(30 * time.Minute)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@b.com",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	ttl := svc.sessionTTL(token)
	if ttl <= 25*time.Minute || ttl > 30*time.Minute {
		t.Fatalf("expected ttl near 30m, got %v", ttl)
	}
}

func TestAuthService_SessionTTLFallsBackOnOpaqueToken(t *testing.T) {
	svc := NewAuthService(&stubUserGateway{}, 2*time.Hour, zerolog.Nop())

	if ttl := svc.sessionTTL("not-a-jwt"); ttl != 2*time.Hour {
		t.Fatalf("expected default ttl for an unparsable token, got %v", ttl)
	}
}

func TestAuthService_SessionTTLShortensForExpiredToken(t *testing.T) {
	svc := NewAuthService(&stubUserGateway{}, 2*time.Hour, zerolog.Nop())

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	// The session must not outlive the credential: a token already past its
	// expiry gets the minimal bound, not the default lifetime.
	if ttl := svc.sessionTTL(expired); ttl != expiredTokenTTL {
		t.Fatalf("expected %v for an already expired token, got %v", expiredTokenTTL, ttl)
	}
}
