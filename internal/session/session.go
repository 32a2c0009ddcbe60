package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog"
)

// Session binds a browser's session ID to the token store. It is the single
// writer of the token; readers always hit the store so they observe the
// latest persisted value, never a cached copy.
//
// Store failures never surface: a session whose backend is unreachable
// behaves as an always-unauthenticated one.
type Session struct {
	id    string
	store Store
	log   zerolog.Logger
}

func New(id string, store Store, log zerolog.Logger) *Session {
	return &Session{id: id, store: store, log: log}
}

// ID returns the opaque session identifier carried by the browser cookie.
func (s *Session) ID() string {
	return s.id
}

// Token reads the persisted token. Empty when absent, expired, or the store
// is unreachable.
func (s *Session) Token(ctx context.Context) string {
	token, err := s.store.Get(ctx, s.id)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", s.id).Msg("session store read failed, treating as unauthenticated")
		return ""
	}
	return token
}

// IsAuthenticated reports whether a token is currently persisted.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// SetToken persists the token for ttl. Called exactly once per successful
// login, before any authenticated request is issued.
func (s *Session) SetToken(ctx context.Context, token string, ttl time.Duration) {
	if err := s.store.Set(ctx, s.id, token, ttl); err != nil {
		s.log.Warn().Err(err).Str("session_id", s.id).Msg("session store write failed")
	}
}

// Clear removes the persisted token. Used on explicit logout and reactively
// when the gateway observes an authentication failure.
func (s *Session) Clear(ctx context.Context) {
	if err := s.store.Clear(ctx, s.id); err != nil {
		s.log.Warn().Err(err).Str("session_id", s.id).Msg("session store clear failed")
	}
}

// GenerateID returns a new cryptographically random session identifier.
func GenerateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
