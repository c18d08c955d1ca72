package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/aussiebroadwan/tokend/internal/tokend/store"
	"github.com/aussiebroadwan/tokend/pkg/cryptox"
	"github.com/aussiebroadwan/tokend/pkg/idx"
	"github.com/aussiebroadwan/tokend/pkg/slogx"
)

const maxNameLength = 128

var (
	ErrAppNotFound   = errors.New("app not found")
	ErrInvalidName   = errors.New("app name must be 1-128 characters")
	ErrInvalidUserID = errors.New("user id must not be empty")
)

// RegistryService manages the apps and users whose secrets tokens embed.
// Secrets are generated here, returned once and stored only as fingerprints.
type RegistryService struct {
	Store store.Store
}

// RegisterApp creates an app with a fresh secret.
func (s *RegistryService) RegisterApp(ctx context.Context, name string) (domain.App, string, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return domain.App{}, "", ErrInvalidName
	}

	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		l.Error("failed to generate app secret", "error", err)
		return domain.App{}, "", err
	}

	app := domain.App{
		ID:         idx.New().String(),
		Name:       name,
		SecretHash: cryptox.FingerprintToken(secret),
	}
	if err := s.Store.Apps().CreateApp(ctx, app); err != nil {
		l.Error("failed to create app", "error", err)
		return domain.App{}, "", err
	}

	created, err := s.Store.Apps().GetAppByID(ctx, app.ID)
	if err != nil {
		return domain.App{}, "", err
	}

	l.Info("app registered", "app_id", app.ID, "name", name)
	return created, secret, nil
}

// RotateAppSecret replaces the secret of an app. Tokens minted with the old
// secret stop decoding once app secret checks are enabled.
func (s *RegistryService) RotateAppSecret(ctx context.Context, appID string) (domain.App, string, error) {
	l := slogx.FromContext(ctx)

	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		l.Error("failed to generate app secret", "error", err)
		return domain.App{}, "", err
	}

	var app domain.App
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Apps().UpdateAppSecretHash(ctx, appID, cryptox.FingerprintToken(secret)); err != nil {
			return err
		}
		app, err = tx.Apps().GetAppByID(ctx, appID)
		return err
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.App{}, "", ErrAppNotFound
	}
	if err != nil {
		l.Error("failed to rotate app secret", "error", err, "app_id", appID)
		return domain.App{}, "", err
	}

	l.Info("app secret rotated", "app_id", appID)
	return app, secret, nil
}

func (s *RegistryService) ListApps(ctx context.Context) ([]domain.App, error) {
	return s.Store.Apps().ListApps(ctx)
}

func (s *RegistryService) DeleteApp(ctx context.Context, appID string) error {
	err := s.Store.Apps().DeleteApp(ctx, appID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAppNotFound
	}
	if err == nil {
		slogx.FromContext(ctx).Info("app deleted", "app_id", appID)
	}
	return err
}

// RotateUserSecret sets a fresh secret for userID, registering the user on
// first use.
func (s *RegistryService) RotateUserSecret(ctx context.Context, userID string) (string, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(userID) == "" {
		return "", ErrInvalidUserID
	}

	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		l.Error("failed to generate user secret", "error", err)
		return "", err
	}

	if err := s.Store.Users().UpsertUserSecretHash(ctx, userID, cryptox.FingerprintToken(secret)); err != nil {
		l.Error("failed to store user secret", "error", err, "user_id", userID)
		return "", err
	}

	l.Info("user secret rotated", "user_id", userID)
	return secret, nil
}
