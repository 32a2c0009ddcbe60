package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/AhmetTK4/harmony/internal/api/metrics"
	"github.com/AhmetTK4/harmony/internal/core/domain"
	"github.com/AhmetTK4/harmony/internal/core/ports"
	"github.com/AhmetTK4/harmony/internal/session"
)

// AuthService implements the console's authentication flow. The session
// token is the only durable state; the current-user profile is a transient
// per-session cache that may be absent even when authenticated.
type AuthService struct {
	users      ports.UserGateway
	defaultTTL time.Duration
	log        zerolog.Logger

	mu       sync.Mutex
	profiles map[string]*domain.User // session ID → cached profile
}

func NewAuthService(users ports.UserGateway, defaultTTL time.Duration, log zerolog.Logger) *AuthService {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		defaultTTL: defaultTTL,
		log:        log,
		profiles:   make(map[string]*domain.User),
	}
}

// Login authenticates against the user service and persists the returned
// token on the session. The profile lookup that follows is best-effort:
// there is no "me" endpoint upstream, so the full user list is scanned for
// the login email, and a miss leaves the session authenticated with no
// cached profile.
func (s *AuthService) Login(ctx context.Context, sess *session.Session, creds ports.Credentials) (*domain.User, error) {
	token, err := s.users.Login(ctx, creds)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	sess.SetToken(ctx, token, s.sessionTTL(token))
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	users, err := s.users.List(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Msg("profile lookup after login failed")
		return nil, nil
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, creds.Email) {
			u := users[i]
			s.cacheProfile(sess.ID(), &u)
			return &u, nil
		}
	}
	return nil, nil
}

// Register creates the account, then performs an implicit login with the
// same credentials. A failure at either step leaves the session anonymous.
func (s *AuthService) Register(ctx context.Context, sess *session.Session, in ports.RegisterUserInput) (*domain.User, error) {
	if _, err := s.users.Register(ctx, in); err != nil {
		return nil, err
	}
	return s.Login(ctx, sess, ports.Credentials{Email: in.Email, Password: in.Password})
}

// Logout clears the persisted token and drops the cached profile.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) {
	sess.Clear(ctx)
	s.mu.Lock()
	delete(s.profiles, sess.ID())
	s.mu.Unlock()
}

// CurrentUser returns the cached profile for the session, or nil.
func (s *AuthService) CurrentUser(sess *session.Session) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[sess.ID()]
}

func (s *AuthService) cacheProfile(sessionID string, u *domain.User) {
	s.mu.Lock()
	s.profiles[sessionID] = u
	s.mu.Unlock()
}

// expiredTokenTTL bounds the session when the upstream hands out a token
// whose exp claim already lies in the past. The first authenticated call
// will hit a 401 and clear it anyway.
const expiredTokenTTL = time.Minute

// sessionTTL derives the session lifetime from the token's exp claim. The
// parse is unverified: the token stays opaque as a credential and is
// validated upstream; only its expiry is borrowed so the session does not
// outlive it. Tokens without a usable expiry get the default TTL.
func (s *AuthService) sessionTTL(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return s.defaultTTL
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.defaultTTL
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return expiredTokenTTL
	}
	return ttl
}
