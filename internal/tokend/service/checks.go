package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/metrics"
	"github.com/aussiebroadwan/tokend/internal/tokend/store"
	"github.com/aussiebroadwan/tokend/internal/tokend/store/sessions"
	"github.com/aussiebroadwan/tokend/pkg/asyncx"
	"github.com/aussiebroadwan/tokend/pkg/cryptox"
	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
)

// Checks answers the questions Decode asks about a token against the
// registry and the session backend. An unknown app, user or session is a
// rejection rather than an error.
type Checks struct {
	Store    store.Store
	Sessions sessions.Store
}

// AppSecret answers through the callback from its own goroutine.
func (c *Checks) AppSecret() oauthtoken.AppSecretCheck {
	return func(ctx context.Context, appID, appSecret string, done asyncx.Done[bool]) *asyncx.Future[bool] {
		go func() {
			ok, err := c.appSecretCurrent(ctx, appID, appSecret)
			done(err, ok)
		}()
		return nil
	}
}

// UserSecret answers through a returned future.
func (c *Checks) UserSecret() oauthtoken.UserSecretCheck {
	return func(ctx context.Context, userID, userSecret string, _ asyncx.Done[bool]) *asyncx.Future[bool] {
		return asyncx.Go(func() (bool, error) {
			return c.userSecretCurrent(ctx, userID, userSecret)
		})
	}
}

// Session answers synchronously.
func (c *Checks) Session() oauthtoken.SessionCheck {
	return oauthtoken.SessionFunc(c.sessionActive)
}

// Apply installs the enabled checks into cfg.
func (c *Checks) Apply(cfg *oauthtoken.Config, appSecret, userSecret, session bool) {
	if appSecret {
		cfg.CheckAppSecret = c.AppSecret()
	}
	if userSecret {
		cfg.CheckUserSecret = c.UserSecret()
	}
	if session {
		cfg.CheckSession = c.Session()
	}
}

func (c *Checks) appSecretCurrent(ctx context.Context, appID, secret string) (bool, error) {
	defer metrics.ObserveCheck(metrics.CheckAppSecret, time.Now())

	app, err := c.Store.Apps().GetAppByID(ctx, appID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return cryptox.MatchesFingerprint(secret, app.SecretHash), nil
}

func (c *Checks) userSecretCurrent(ctx context.Context, userID, secret string) (bool, error) {
	defer metrics.ObserveCheck(metrics.CheckUserSecret, time.Now())

	user, err := c.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return cryptox.MatchesFingerprint(secret, user.SecretHash), nil
}

func (c *Checks) sessionActive(ctx context.Context, id string) (bool, error) {
	defer metrics.ObserveCheck(metrics.CheckSession, time.Now())
	return c.Sessions.Active(ctx, id)
}
