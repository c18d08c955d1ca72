package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const (
	getUserByIDQuery = `
        SELECT id, secret_hash, created_at, updated_at
        FROM users WHERE id = $1`
	upsertUserSecretHashQuery = `
        INSERT INTO users (id, secret_hash)
        VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET
            secret_hash = EXCLUDED.secret_hash,
            updated_at = now()`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

type userRow struct {
	ID         string    `db:"id"`
	SecretHash string    `db:"secret_hash"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type usersRepo struct {
	db DBTX
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, r.db, &row, getUserByIDQuery, id); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return domain.User{
		ID:         row.ID,
		SecretHash: row.SecretHash,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

func (r *usersRepo) UpsertUserSecretHash(ctx context.Context, id, secretHash string) error {
	_, err := r.db.Exec(ctx, upsertUserSecretHashQuery, id, secretHash)
	return err
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, deleteUserQuery, id))
}
