// Package session owns the console's per-browser authentication state: one
// durable key per session holding the raw bearer token issued by the user
// service, plus the derived authenticated flag.
package session

import (
	"context"
	"time"
)

// Store persists the raw token string for a session ID. Implementations must
// treat an absent key as ("", nil); only infrastructure failures return an
// error, and callers degrade those to "no token".
type Store interface {
	Get(ctx context.Context, id string) (string, error)
	Set(ctx context.Context, id, token string, ttl time.Duration) error
	Clear(ctx context.Context, id string) error
}
