// Package session implements the client-side session store: a small
// persisted key/value area with per-key expiry that holds the current
// authentication token and the pending-verification email address.
//
// The store is the single source of truth for session identity: every screen
// reads it through the same Store instance, and a value past its TTL is
// never observed as present.
package session

import (
	"context"
	"time"
)

// Persisted keys. The names follow the cookies the web client used, so a
// session database is self-describing.
const (
	KeyToken        = "jwt"
	KeyPendingEmail = "email"
)

// Default lifetimes for the two keys.
const (
	TokenTTL        = 7 * 24 * time.Hour
	PendingEmailTTL = 24 * time.Hour
)

// Store holds the authentication token and the pending-verification email.
// Reads beyond the TTL report absence (empty string, nil error).
type Store interface {
	SetToken(ctx context.Context, token string, ttl time.Duration) error
	Token(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error

	SetPendingEmail(ctx context.Context, email string, ttl time.Duration) error
	PendingEmail(ctx context.Context) (string, error)
	ClearPendingEmail(ctx context.Context) error

	// Clear removes both keys in a single transaction, returning the client
	// to a fully unauthenticated state.
	Clear(ctx context.Context) error
}
