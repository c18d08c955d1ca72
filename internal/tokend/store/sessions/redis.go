package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces session keys as tokend:session:<id>.
const DefaultRedisPrefix = "tokend:session"

// RedisStore keeps each session as a key holding the user id, expiring with
// the session itself.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{redis: client, prefix: prefix, now: time.Now}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + ":" + id
}

func (s *RedisStore) Open(ctx context.Context, userID string, ttl time.Duration) (domain.Session, error) {
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

	if err := s.redis.Set(ctx, s.key(sess.ID), userID, ttl).Err(); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return sess, nil
}

func (s *RedisStore) Active(ctx context.Context, id string) (bool, error) {
	n, err := s.redis.Exists(ctx, s.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return n == 1, nil
}

func (s *RedisStore) Close(ctx context.Context, id string) error {
	n, err := s.redis.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Ping lets readiness checks cover the redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}
