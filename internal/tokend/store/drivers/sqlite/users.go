package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/aussiebroadwan/tokend/internal/tokend/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) UpsertUserSecretHash(ctx context.Context, id, secretHash string) error {
	now := time.Now().Unix()
	return r.q.UpsertUserSecretHash(ctx, gen.UpsertUserSecretHashParams{
		ID:         id,
		SecretHash: secretHash,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	return affected(r.q.DeleteUser(ctx, id))
}
