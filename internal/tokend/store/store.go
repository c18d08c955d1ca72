package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories hang off it so a transaction scoped Store
// can hand out the same repositories.
type Store interface {
	Apps() Apps
	Users() Users
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Apps interface {
	// CreateApp inserts a new app (id is a ULID chosen by the caller).
	CreateApp(ctx context.Context, a domain.App) error

	GetAppByID(ctx context.Context, id string) (domain.App, error)

	// ListApps returns all apps, newest first.
	ListApps(ctx context.Context) ([]domain.App, error)

	// UpdateAppSecretHash replaces the fingerprint and bumps updated_at.
	UpdateAppSecretHash(ctx context.Context, id, secretHash string) error

	DeleteApp(ctx context.Context, id string) error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// UpsertUserSecretHash creates the user on first use.
	UpsertUserSecretHash(ctx context.Context, id, secretHash string) error

	DeleteUser(ctx context.Context, id string) error
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes sessions that ended before now and
	// reports how many went.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
