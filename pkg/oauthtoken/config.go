package oauthtoken

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tokend/pkg/asyncx"
)

// DefaultTTL is the access token lifetime in seconds when none is configured.
const DefaultTTL int64 = 3600

// AppSecretCheck decides whether an application secret is still current. It
// may answer through done, through the returned future, or both.
type AppSecretCheck func(ctx context.Context, appID, appSecret string, done asyncx.Done[bool]) *asyncx.Future[bool]

// UserSecretCheck decides whether a user secret is still current.
type UserSecretCheck func(ctx context.Context, userID, userSecret string, done asyncx.Done[bool]) *asyncx.Future[bool]

// SessionCheck decides whether a login session is still open.
type SessionCheck func(ctx context.Context, session string, done asyncx.Done[bool]) *asyncx.Future[bool]

// AppSecretFunc adapts a synchronous predicate to an AppSecretCheck.
func AppSecretFunc(fn func(ctx context.Context, appID, appSecret string) (bool, error)) AppSecretCheck {
	return func(ctx context.Context, appID, appSecret string, done asyncx.Done[bool]) *asyncx.Future[bool] {
		ok, err := fn(ctx, appID, appSecret)
		done(err, ok)
		return nil
	}
}

// UserSecretFunc adapts a synchronous predicate to a UserSecretCheck.
func UserSecretFunc(fn func(ctx context.Context, userID, userSecret string) (bool, error)) UserSecretCheck {
	return func(ctx context.Context, userID, userSecret string, done asyncx.Done[bool]) *asyncx.Future[bool] {
		ok, err := fn(ctx, userID, userSecret)
		done(err, ok)
		return nil
	}
}

// SessionFunc adapts a synchronous predicate to a SessionCheck.
func SessionFunc(fn func(ctx context.Context, session string) (bool, error)) SessionCheck {
	return func(ctx context.Context, session string, done asyncx.Done[bool]) *asyncx.Future[bool] {
		ok, err := fn(ctx, session)
		done(err, ok)
		return nil
	}
}

// Config configures a Service. The zero value is usable.
type Config struct {
	// Salt keys the token digest. Empty is allowed.
	Salt []byte

	// TTL is the default lifetime in seconds. Zero selects DefaultTTL.
	TTL int64

	// Optional checks run by Decode. A nil check is skipped.
	CheckAppSecret  AppSecretCheck
	CheckUserSecret UserSecretCheck
	CheckSession    SessionCheck

	// Now defaults to time.Now.
	Now func() time.Time

	// Logger defaults to the logger carried by each call's context.
	Logger *slog.Logger
}
