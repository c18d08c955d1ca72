package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/aussiebroadwan/tokend/internal/tokend/store"
	"github.com/google/uuid"
)

// DatabaseStore keeps sessions in the registry database. Expired rows stay
// until housekeeping removes them, so expiry is checked on read.
type DatabaseStore struct {
	store store.Store
	now   func() time.Time
}

func NewDatabaseStore(s store.Store) *DatabaseStore {
	return &DatabaseStore{store: s, now: time.Now}
}

func (s *DatabaseStore) Open(ctx context.Context, userID string, ttl time.Duration) (domain.Session, error) {
	if ttl <= 0 {
		return domain.Session{}, ErrInvalidTTL
	}

	now := s.now()
	sess := domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.store.Sessions().CreateSession(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *DatabaseStore) Active(ctx context.Context, id string) (bool, error) {
	sess, err := s.store.Sessions().GetSessionByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return sess.Active(s.now()), nil
}

func (s *DatabaseStore) Close(ctx context.Context, id string) error {
	err := s.store.Sessions().DeleteSession(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrSessionNotFound
	}
	return err
}
