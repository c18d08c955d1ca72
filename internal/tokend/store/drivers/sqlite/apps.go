package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/aussiebroadwan/tokend/internal/tokend/store/drivers/sqlite/gen"
)

type appsRepo struct {
	q *gen.Queries
}

func (r *appsRepo) CreateApp(ctx context.Context, a domain.App) error {
	now := time.Now().Unix()
	err := r.q.CreateApp(ctx, gen.CreateAppParams{
		ID:         a.ID,
		Name:       a.Name,
		SecretHash: a.SecretHash,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	return mapConstraint(err)
}

func (r *appsRepo) GetAppByID(ctx context.Context, id string) (domain.App, error) {
	row, err := r.q.GetAppByID(ctx, id)
	if err != nil {
		return domain.App{}, mapNotFound(err)
	}
	return mapApp(row), nil
}

func (r *appsRepo) ListApps(ctx context.Context) ([]domain.App, error) {
	rows, err := r.q.ListApps(ctx)
	if err != nil {
		return nil, err
	}
	apps := make([]domain.App, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, mapApp(row))
	}
	return apps, nil
}

func (r *appsRepo) UpdateAppSecretHash(ctx context.Context, id, secretHash string) error {
	return affected(r.q.UpdateAppSecretHash(ctx, gen.UpdateAppSecretHashParams{
		SecretHash: secretHash,
		UpdatedAt:  time.Now().Unix(),
		ID:         id,
	}))
}

func (r *appsRepo) DeleteApp(ctx context.Context, id string) error {
	return affected(r.q.DeleteApp(ctx, id))
}
