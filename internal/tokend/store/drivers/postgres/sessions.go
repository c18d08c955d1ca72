package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const (
	createSessionQuery = `
        INSERT INTO sessions (id, user_id, expires_at, created_at)
        VALUES ($1, $2, $3, COALESCE($4, now()))`
	getSessionByIDQuery = `
        SELECT id, user_id, expires_at, created_at
        FROM sessions WHERE id = $1`
	deleteSessionQuery         = `DELETE FROM sessions WHERE id = $1`
	deleteExpiredSessionsQuery = `DELETE FROM sessions WHERE expires_at <= $1`
)

type sessionRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

type sessionsRepo struct {
	db DBTX
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	var created *time.Time
	if !s.CreatedAt.IsZero() {
		created = &s.CreatedAt
	}
	_, err := r.db.Exec(ctx, createSessionQuery, s.ID, s.UserID, s.ExpiresAt, created)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id string) (domain.Session, error) {
	var row sessionRow
	if err := pgxscan.Get(ctx, r.db, &row, getSessionByIDQuery, id); err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return domain.Session{
		ID:        row.ID,
		UserID:    row.UserID,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, deleteSessionQuery, id))
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredSessionsQuery, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
