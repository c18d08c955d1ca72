// Package sessions keeps the login sessions that tokens reference through
// their session claim.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnavailable     = errors.New("session backend unavailable")
	ErrInvalidTTL      = errors.New("session ttl must be positive")
)

// Store opens, checks and closes sessions. Implementations are safe for
// concurrent use.
type Store interface {
	// Open starts a session for userID that ends after ttl.
	Open(ctx context.Context, userID string, ttl time.Duration) (domain.Session, error)

	// Active reports whether the session exists and has not ended. Unknown
	// ids are not an error.
	Active(ctx context.Context, id string) (bool, error)

	// Close ends a session early. Closing an unknown session returns
	// ErrSessionNotFound.
	Close(ctx context.Context, id string) error
}
