package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/aussiebroadwan/tokend/internal/tokend/store/sessions"
	"github.com/aussiebroadwan/tokend/pkg/slogx"
)

// DefaultSessionTTL applies when neither the caller nor the config set one.
const DefaultSessionTTL = 24 * time.Hour

var (
	ErrSessionNotFound = sessions.ErrSessionNotFound
	ErrInvalidTTL      = errors.New("session ttl must be positive and within the configured maximum")
)

// SessionService opens and closes the login sessions referenced by tokens.
type SessionService struct {
	Sessions sessions.Store

	// DefaultTTL is used when Open is given zero. MaxTTL, when set, caps
	// what callers may request.
	DefaultTTL time.Duration
	MaxTTL     time.Duration
}

func (s *SessionService) Open(ctx context.Context, userID string, ttl time.Duration) (domain.Session, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Session{}, ErrInvalidUserID
	}
	if ttl == 0 {
		ttl = s.DefaultTTL
	}
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}
	if ttl < 0 || (s.MaxTTL > 0 && ttl > s.MaxTTL) {
		return domain.Session{}, ErrInvalidTTL
	}

	sess, err := s.Sessions.Open(ctx, userID, ttl)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to open session", "error", err, "user_id", userID)
		return domain.Session{}, err
	}

	slogx.FromContext(ctx).Info("session opened", "session_id", sess.ID, "user_id", userID, "ttl", ttl)
	return sess, nil
}

func (s *SessionService) Close(ctx context.Context, id string) error {
	if err := s.Sessions.Close(ctx, id); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("session closed", "session_id", id)
	return nil
}
