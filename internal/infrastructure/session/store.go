package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound covers both sessions that never existed and sessions revoked
// by logout or expiry.
var ErrNotFound = errors.New("session not found")

// Store is the server-side half of a login session. The cookie alone is not
// enough: logout revokes the record here, killing any copy of the cookie.
type Store interface {
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	// Lookup returns the user id the session is bound to, or ErrNotFound.
	Lookup(ctx context.Context, sessionID string) (uint, error)
	Revoke(ctx context.Context, sessionID string) error
}
