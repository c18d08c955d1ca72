package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/aussiebroadwan/tokend/internal/tokend/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tokend.db")
	s, err := NewStore(fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestApps(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	app := domain.App{ID: "01HZX0000000000000000000AA", Name: "billing", SecretHash: "h1"}
	require.NoError(t, s.Apps().CreateApp(ctx, app))
	require.ErrorIs(t, s.Apps().CreateApp(ctx, app), store.ErrAlreadyExists)

	got, err := s.Apps().GetAppByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, "billing", got.Name)
	require.Equal(t, "h1", got.SecretHash)
	require.False(t, got.CreatedAt.IsZero())

	require.NoError(t, s.Apps().UpdateAppSecretHash(ctx, app.ID, "h2"))
	got, err = s.Apps().GetAppByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, "h2", got.SecretHash)

	require.ErrorIs(t, s.Apps().UpdateAppSecretHash(ctx, "missing", "h"), store.ErrNotFound)

	apps, err := s.Apps().ListApps(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	require.NoError(t, s.Apps().DeleteApp(ctx, app.ID))
	_, err = s.Apps().GetAppByID(ctx, app.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Apps().DeleteApp(ctx, app.ID), store.ErrNotFound)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().GetUserByID(ctx, "42")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Users().UpsertUserSecretHash(ctx, "42", "a"))
	require.NoError(t, s.Users().UpsertUserSecretHash(ctx, "42", "b"))

	u, err := s.Users().GetUserByID(ctx, "42")
	require.NoError(t, err)
	require.Equal(t, "b", u.SecretHash)

	require.NoError(t, s.Users().DeleteUser(ctx, "42"))
	require.ErrorIs(t, s.Users().DeleteUser(ctx, "42"), store.ErrNotFound)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Unix(1_700_000_000, 0)

	live := domain.Session{ID: "live", UserID: "u", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	dead := domain.Session{ID: "dead", UserID: "u", ExpiresAt: now.Add(-time.Second), CreatedAt: now}
	require.NoError(t, s.Sessions().CreateSession(ctx, live))
	require.NoError(t, s.Sessions().CreateSession(ctx, dead))
	require.ErrorIs(t, s.Sessions().CreateSession(ctx, live), store.ErrAlreadyExists)

	got, err := s.Sessions().GetSessionByID(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, "u", got.UserID)
	require.True(t, got.Active(now))
	require.Equal(t, live.ExpiresAt.Unix(), got.ExpiresAt.Unix())

	n, err := s.Sessions().DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	_, err = s.Sessions().GetSessionByID(ctx, "dead")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Sessions().DeleteSession(ctx, "live"))
	require.ErrorIs(t, s.Sessions().DeleteSession(ctx, "live"), store.ErrNotFound)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpsertUserSecretHash(ctx, "rolled-back", "x"); err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	require.EqualError(t, err, "abort")

	_, err = s.Users().GetUserByID(ctx, "rolled-back")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().UpsertUserSecretHash(ctx, "committed", "y")
	}))

	_, err = s.Users().GetUserByID(ctx, "committed")
	require.NoError(t, err)
}
