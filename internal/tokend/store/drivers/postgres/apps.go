package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const (
	createAppQuery = `
        INSERT INTO apps (id, name, secret_hash)
        VALUES ($1, $2, $3)`
	getAppByIDQuery = `
        SELECT id, name, secret_hash, created_at, updated_at
        FROM apps WHERE id = $1`
	listAppsQuery = `
        SELECT id, name, secret_hash, created_at, updated_at
        FROM apps ORDER BY created_at DESC, id DESC`
	updateAppSecretHashQuery = `
        UPDATE apps SET secret_hash = $2, updated_at = now() WHERE id = $1`
	deleteAppQuery = `DELETE FROM apps WHERE id = $1`
)

type appRow struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	SecretHash string    `db:"secret_hash"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r appRow) domain() domain.App {
	return domain.App{
		ID:         r.ID,
		Name:       r.Name,
		SecretHash: r.SecretHash,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type appsRepo struct {
	db DBTX
}

func (r *appsRepo) CreateApp(ctx context.Context, a domain.App) error {
	_, err := r.db.Exec(ctx, createAppQuery, a.ID, a.Name, a.SecretHash)
	return mapConstraint(err)
}

func (r *appsRepo) GetAppByID(ctx context.Context, id string) (domain.App, error) {
	var row appRow
	if err := pgxscan.Get(ctx, r.db, &row, getAppByIDQuery, id); err != nil {
		return domain.App{}, mapNotFound(err)
	}
	return row.domain(), nil
}

func (r *appsRepo) ListApps(ctx context.Context) ([]domain.App, error) {
	var rows []appRow
	if err := pgxscan.Select(ctx, r.db, &rows, listAppsQuery); err != nil {
		return nil, err
	}
	apps := make([]domain.App, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, row.domain())
	}
	return apps, nil
}

func (r *appsRepo) UpdateAppSecretHash(ctx context.Context, id, secretHash string) error {
	return affected(r.db.Exec(ctx, updateAppSecretHashQuery, id, secretHash))
}

func (r *appsRepo) DeleteApp(ctx context.Context, id string) error {
	return affected(r.db.Exec(ctx, deleteAppQuery, id))
}
