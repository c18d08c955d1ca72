package sessions

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aussiebroadwan/tokend/internal/tokend/store/drivers/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func newTestDatabaseStore(t *testing.T) *DatabaseStore {
	t.Helper()

	db, err := sqlite.NewStore(fmt.Sprintf("file:%s", filepath.Join(t.TempDir(), "sessions.db")))
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations())
	t.Cleanup(func() { _ = db.Close() })
	return NewDatabaseStore(db)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	s := NewRedisStore(client, "")

	sess, err := s.Open(ctx, "u1", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "u1", sess.UserID)
	_, err = uuid.Parse(sess.ID)
	require.NoError(t, err)

	require.True(t, mr.Exists("tokend:session:"+sess.ID))
	require.Equal(t, time.Minute, mr.TTL("tokend:session:"+sess.ID))

	ok, err := s.Active(ctx, sess.ID)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)
	ok, err = s.Active(ctx, sess.ID)
	require.NoError(t, err)
	require.False(t, ok)

	require.ErrorIs(t, s.Close(ctx, sess.ID), ErrSessionNotFound)
	require.NoError(t, s.Ping(ctx))
}

func TestRedisStore_Close(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	s := NewRedisStore(client, "test:sess")

	sess, err := s.Open(ctx, "u1", time.Hour)
	require.NoError(t, err)
	require.NoError(t, s.Close(ctx, sess.ID))

	ok, err := s.Active(ctx, sess.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	s := NewRedisStore(client, "")
	mr.Close()

	_, err := s.Active(ctx, "x")
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = s.Open(ctx, "u", time.Minute)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDatabaseStore(t *testing.T) {
	ctx := context.Background()
	s := newTestDatabaseStore(t)

	now := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return now }

	sess, err := s.Open(ctx, "u1", time.Minute)
	require.NoError(t, err)

	ok, err := s.Active(ctx, sess.ID)
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(time.Minute)
	ok, err = s.Active(ctx, sess.ID)
	require.NoError(t, err)
	require.False(t, ok, "session ends exactly at its expiry")

	ok, err = s.Active(ctx, "unknown")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Close(ctx, sess.ID))
	require.ErrorIs(t, s.Close(ctx, sess.ID), ErrSessionNotFound)
}

func TestOpen_RejectsNonPositiveTTL(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)

	stores := map[string]Store{
		"redis":    NewRedisStore(client, ""),
		"database": newTestDatabaseStore(t),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			_, err := s.Open(ctx, "u", 0)
			require.ErrorIs(t, err, ErrInvalidTTL)
		})
	}
}
