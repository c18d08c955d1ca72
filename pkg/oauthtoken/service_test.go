package oauthtoken_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/tokend/pkg/asyncx"
	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
	"github.com/aussiebroadwan/tokend/pkg/tokenx"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const issuedAt int64 = 1477745764

func clock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func fullClaims() tokenx.Claims {
	return tokenx.Claims{
		AppID:      tokenx.String("a"),
		AppSecret:  tokenx.String("old"),
		UserID:     tokenx.String("u"),
		UserSecret: tokenx.String("s"),
		Session:    tokenx.String("sess"),
	}
}

func TestCreate_Defaults(t *testing.T) {
	ctx := context.Background()
	svc := oauthtoken.New(oauthtoken.Config{TTL: 60, Now: clock(issuedAt)})

	pair, err := svc.Create(ctx, tokenx.Claims{UserID: tokenx.String("u")})
	require.NoError(t, err)
	require.Equal(t, "Bearer", pair.TokenType)
	require.Equal(t, int64(60), pair.ExpiresIn)
	require.Equal(t, issuedAt, pair.Issued)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestCreate_DefaultTTLWhenUnconfigured(t *testing.T) {
	svc := oauthtoken.New(oauthtoken.Config{})
	require.Equal(t, oauthtoken.DefaultTTL, svc.DefaultTTL())

	pair, err := svc.Create(context.Background(), tokenx.Claims{UserID: tokenx.String("u")})
	require.NoError(t, err)
	require.Equal(t, int64(3600), pair.ExpiresIn)
}

func TestCreate_MissingUserID(t *testing.T) {
	svc := oauthtoken.New(oauthtoken.Config{})

	_, err := svc.Create(context.Background(), tokenx.Claims{AppID: tokenx.String("a")})
	require.ErrorIs(t, err, tokenx.ErrMissingField)

	var missing *tokenx.MissingFieldError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, tokenx.FieldUserID, missing.Field)
}

func TestCreate_IssuedAndTTL(t *testing.T) {
	tests := []struct {
		name       string
		issued     *int64
		ttl        *int64
		wantIssued int64
		wantTTL    int64
	}{
		{"caller issued honoured", tokenx.Int64(100), nil, 100, 60},
		{"zero issued replaced", tokenx.Int64(0), nil, issuedAt, 60},
		{"explicit ttl", nil, tokenx.Int64(10), issuedAt, 10},
		{"explicit zero ttl", nil, tokenx.Int64(0), issuedAt, 0},
	}

	svc := oauthtoken.New(oauthtoken.Config{TTL: 60, Now: clock(issuedAt)})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := svc.Create(context.Background(), tokenx.Claims{
				UserID: tokenx.String("u"),
				Issued: tt.issued,
				TTL:    tt.ttl,
			})
			require.NoError(t, err)
			require.Equal(t, tt.wantIssued, pair.Issued)
			require.Equal(t, tt.wantTTL, pair.ExpiresIn)
		})
	}
}

func TestCreate_DoesNotMutateInput(t *testing.T) {
	svc := oauthtoken.New(oauthtoken.Config{Now: clock(issuedAt)})

	in := tokenx.Claims{UserID: tokenx.String("u")}
	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, in.Issued)
	require.Nil(t, in.TTL)
}

func TestCreate_RecordsCarryExpectedFields(t *testing.T) {
	svc := oauthtoken.New(oauthtoken.Config{TTL: 60, Now: clock(issuedAt)})

	pair, err := svc.Create(context.Background(), fullClaims())
	require.NoError(t, err)

	access, err := svc.Codec().Decode(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, tokenx.TypeAccess, access.Type)
	require.Equal(t, issuedAt, *access.Issued)
	require.Equal(t, int64(60), *access.TTL)

	refresh, err := svc.Codec().Decode(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, tokenx.TypeRefresh, refresh.Type)
	require.Nil(t, refresh.Issued)
	require.Equal(t, int64(60), *refresh.TTL)

	want := fullClaims()
	for _, got := range []tokenx.Claims{access.Claims, refresh.Claims} {
		require.Equal(t, want.AppID, got.AppID)
		require.Equal(t, want.AppSecret, got.AppSecret)
		require.Equal(t, want.UserID, got.UserID)
		require.Equal(t, want.UserSecret, got.UserSecret)
		require.Equal(t, want.Session, got.Session)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := oauthtoken.New(oauthtoken.Config{Salt: []byte("k"), Now: clock(issuedAt)})

	pair, err := svc.Create(ctx, tokenx.Claims{UserID: tokenx.String("123"), AppID: tokenx.String("app")})
	require.NoError(t, err)

	claims, err := svc.Decode(ctx, pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "123", *claims.UserID)
	require.Equal(t, "app", *claims.AppID)
	require.Nil(t, claims.AppSecret)
	require.Nil(t, claims.UserSecret)
	require.Nil(t, claims.Session)
	require.Equal(t, issuedAt, *claims.Issued)
	require.Equal(t, int64(3600), *claims.TTL)
}

func TestDecode_Expiration(t *testing.T) {
	tests := []struct {
		name    string
		ttl     int64
		now     int64
		wantErr error
	}{
		{"within ttl", 10, issuedAt + 5, nil},
		{"at boundary", 10, issuedAt + 10, nil},
		{"past ttl", 10, issuedAt + 11, oauthtoken.ErrExpiredToken},
		{"zero ttl never expires", 0, issuedAt + 100*365*24*3600, nil},
		{"max ttl right after issue", math.MaxInt64, issuedAt, nil},
		{"max ttl far future", math.MaxInt64, issuedAt + 100*365*24*3600, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			issuer := oauthtoken.New(oauthtoken.Config{Now: clock(issuedAt)})
			pair, err := issuer.Create(ctx, tokenx.Claims{
				UserID: tokenx.String("u"),
				Issued: tokenx.Int64(issuedAt),
				TTL:    tokenx.Int64(tt.ttl),
			})
			require.NoError(t, err)

			verifier := oauthtoken.New(oauthtoken.Config{Now: clock(tt.now)})
			_, err = verifier.Decode(ctx, pair.AccessToken)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDecode_MissingIssued(t *testing.T) {
	svc := oauthtoken.New(oauthtoken.Config{})

	token, err := svc.Codec().Encode(tokenx.Record{
		Type:   tokenx.TypeAccess,
		Claims: tokenx.Claims{UserID: tokenx.String("u"), TTL: tokenx.Int64(0)},
	})
	require.NoError(t, err)

	_, err = svc.Decode(context.Background(), token)
	require.ErrorIs(t, err, oauthtoken.ErrInvalidToken)
}

func TestDecode_CodecErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	issuer := oauthtoken.New(oauthtoken.Config{Salt: []byte("one")})
	pair, err := issuer.Create(ctx, tokenx.Claims{UserID: tokenx.String("u")})
	require.NoError(t, err)

	other := oauthtoken.New(oauthtoken.Config{Salt: []byte("two")})
	_, err = other.Decode(ctx, pair.AccessToken)
	require.ErrorIs(t, err, tokenx.ErrInvalidSignature)

	_, err = other.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, tokenx.ErrInvalidSignature)

	_, err = other.Decode(ctx, "not base58!")
	require.ErrorIs(t, err, tokenx.ErrMalformedToken)
}

func TestDecode_LegacyTokens(t *testing.T) {
	ctx := context.Background()

	svc := oauthtoken.New(oauthtoken.Config{Now: clock(issuedAt + 100)})
	claims, err := svc.Decode(ctx, "G47cFiMRD5SXRoqQsVqY3RyxvoB9fYePSmX614rjgaZfLJ8TxatxdBTDB4qTBeeXzyaaSC6WJPPYm2GxoLysinHmFa5khBbC6LGZ37LNaP")
	require.NoError(t, err)
	require.Equal(t, "user_id", *claims.UserID)
	require.Equal(t, int64(3600), *claims.TTL)

	salted := oauthtoken.New(oauthtoken.Config{Salt: []byte("some_random_string")})
	claims, err = salted.Decode(ctx, "4QpGEkomTJKUHVjgr3ugfAHXoB1VFAtX1QEAHnHFey68n9sBBnHksLb2rQXTn1NePCTe2dVtVrw3fXCKXsJTVkTekJxuDybtxefFYoAsr")
	require.NoError(t, err)
	require.Equal(t, "session", *claims.Session)
	require.Equal(t, int64(0), *claims.TTL)
}

func TestTypeSeparation(t *testing.T) {
	ctx := context.Background()
	svc := oauthtoken.New(oauthtoken.Config{})

	pair, err := svc.Create(ctx, tokenx.Claims{UserID: tokenx.String("u")})
	require.NoError(t, err)

	_, err = svc.Decode(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, oauthtoken.ErrInvalidTokenType)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	require.ErrorIs(t, err, oauthtoken.ErrInvalidTokenType)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	now := issuedAt
	svc := oauthtoken.New(oauthtoken.Config{
		TTL: 60,
		Now: func() time.Time { return time.Unix(now, 0) },
		CheckAppSecret: oauthtoken.AppSecretFunc(func(context.Context, string, string) (bool, error) {
			return false, nil
		}),
	})

	pair, err := svc.Create(ctx, fullClaims())
	require.NoError(t, err)

	now = issuedAt + 1000
	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err, "refresh does not run checks")
	require.Equal(t, issuedAt+1000, refreshed.Issued)
	require.Equal(t, int64(60), refreshed.ExpiresIn)

	_, err = svc.Decode(ctx, refreshed.AccessToken)
	require.ErrorIs(t, err, oauthtoken.ErrAppSecretInvalid)
}

func TestRefresh_KeepsExplicitTTL(t *testing.T) {
	ctx := context.Background()
	svc := oauthtoken.New(oauthtoken.Config{TTL: 60})

	pair, err := svc.Create(ctx, tokenx.Claims{UserID: tokenx.String("u"), TTL: tokenx.Int64(0)})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, int64(0), refreshed.ExpiresIn)
}

func rejectOld() oauthtoken.AppSecretCheck {
	return oauthtoken.AppSecretFunc(func(_ context.Context, _, secret string) (bool, error) {
		return secret != "old", nil
	})
}

func TestDecode_ValidatorGating(t *testing.T) {
	ctx := context.Background()

	issuer := oauthtoken.New(oauthtoken.Config{})
	pair, err := issuer.Create(ctx, fullClaims())
	require.NoError(t, err)

	withCheck := oauthtoken.New(oauthtoken.Config{CheckAppSecret: rejectOld()})
	_, err = withCheck.Decode(ctx, pair.AccessToken)
	require.ErrorIs(t, err, oauthtoken.ErrAppSecretInvalid)

	withoutCheck := oauthtoken.New(oauthtoken.Config{})
	_, err = withoutCheck.Decode(ctx, pair.AccessToken)
	require.NoError(t, err)
}

func TestDecode_CheckSkippedWhenFieldAbsent(t *testing.T) {
	ctx := context.Background()

	var calls atomic.Int32
	deny := func() bool { calls.Add(1); return false }

	svc := oauthtoken.New(oauthtoken.Config{
		CheckAppSecret: oauthtoken.AppSecretFunc(func(context.Context, string, string) (bool, error) {
			return deny(), nil
		}),
		CheckUserSecret: oauthtoken.UserSecretFunc(func(context.Context, string, string) (bool, error) {
			return deny(), nil
		}),
		CheckSession: oauthtoken.SessionFunc(func(context.Context, string) (bool, error) {
			return deny(), nil
		}),
	})

	// app id without app secret, no user secret, no session
	pair, err := svc.Create(ctx, tokenx.Claims{UserID: tokenx.String("u"), AppID: tokenx.String("a")})
	require.NoError(t, err)

	_, err = svc.Decode(ctx, pair.AccessToken)
	require.NoError(t, err)
	require.Zero(t, calls.Load())
}

func TestDecode_CheckOrderShortCircuits(t *testing.T) {
	tests := []struct {
		name      string
		appOK     bool
		userOK    bool
		sessionOK bool
		wantErr   error
		wantCalls []string
	}{
		{"all pass", true, true, true, nil, []string{"app", "user", "session"}},
		{"app rejects", false, true, true, oauthtoken.ErrAppSecretInvalid, []string{"app"}},
		{"user rejects", true, false, true, oauthtoken.ErrUserSecretInvalid, []string{"app", "user"}},
		{"session rejects", true, true, false, oauthtoken.ErrSessionInvalid, []string{"app", "user", "session"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			var calls []string

			svc := oauthtoken.New(oauthtoken.Config{
				CheckAppSecret: oauthtoken.AppSecretFunc(func(context.Context, string, string) (bool, error) {
					calls = append(calls, "app")
					return tt.appOK, nil
				}),
				CheckUserSecret: oauthtoken.UserSecretFunc(func(context.Context, string, string) (bool, error) {
					calls = append(calls, "user")
					return tt.userOK, nil
				}),
				CheckSession: oauthtoken.SessionFunc(func(context.Context, string) (bool, error) {
					calls = append(calls, "session")
					return tt.sessionOK, nil
				}),
			})

			pair, err := svc.Create(ctx, fullClaims())
			require.NoError(t, err)

			claims, err := svc.Decode(ctx, pair.AccessToken)
			require.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "sess", *claims.Session)
		})
	}
}

func TestDecode_CollaboratorStyles(t *testing.T) {
	errStore := errors.New("store unavailable")

	tests := []struct {
		name    string
		check   oauthtoken.UserSecretCheck
		wantErr error
	}{
		{
			name: "callback accepts",
			check: func(_ context.Context, _, _ string, done asyncx.Done[bool]) *asyncx.Future[bool] {
				go done(nil, true)
				return nil
			},
		},
		{
			name: "callback rejects",
			check: func(_ context.Context, _, _ string, done asyncx.Done[bool]) *asyncx.Future[bool] {
				done(nil, false)
				return nil
			},
			wantErr: oauthtoken.ErrUserSecretInvalid,
		},
		{
			name: "future accepts",
			check: func(_ context.Context, _, secret string, _ asyncx.Done[bool]) *asyncx.Future[bool] {
				return asyncx.Go(func() (bool, error) { return secret == "s", nil })
			},
		},
		{
			name: "future rejects",
			check: func(context.Context, string, string, asyncx.Done[bool]) *asyncx.Future[bool] {
				return asyncx.Value(false)
			},
			wantErr: oauthtoken.ErrUserSecretInvalid,
		},
		{
			name: "collaborator error propagates unchanged",
			check: func(context.Context, string, string, asyncx.Done[bool]) *asyncx.Future[bool] {
				return asyncx.Fail[bool](errStore)
			},
			wantErr: errStore,
		},
		{
			name: "collaborator panic",
			check: func(context.Context, string, string, asyncx.Done[bool]) *asyncx.Future[bool] {
				panic("bug")
			},
			wantErr: asyncx.ErrPanic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := oauthtoken.New(oauthtoken.Config{CheckUserSecret: tt.check})

			pair, err := svc.Create(ctx, fullClaims())
			require.NoError(t, err)

			_, err = svc.Decode(ctx, pair.AccessToken)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantErr == errStore {
					require.NotErrorIs(t, err, oauthtoken.ErrUserSecretInvalid)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDecode_HungCollaboratorFollowsContext(t *testing.T) {
	svc := oauthtoken.New(oauthtoken.Config{
		CheckSession: func(context.Context, string, asyncx.Done[bool]) *asyncx.Future[bool] {
			return nil
		},
	})

	pair, err := svc.Create(context.Background(), fullClaims())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = svc.Decode(ctx, pair.AccessToken)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	svc := oauthtoken.New(oauthtoken.Config{
		Salt: []byte("k"),
		CheckUserSecret: oauthtoken.UserSecretFunc(func(_ context.Context, userID, secret string) (bool, error) {
			return secret == "secret-"+userID, nil
		}),
	})

	const n = 64
	tokens := make([]string, n)

	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			id := fmt.Sprintf("user-%d", i)
			pair, err := svc.Create(ctx, tokenx.Claims{
				UserID:     tokenx.String(id),
				UserSecret: tokenx.String("secret-" + id),
			})
			if err != nil {
				return err
			}
			tokens[i] = pair.AccessToken
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := range n {
		g.Go(func() error {
			claims, err := svc.Decode(ctx, tokens[i])
			if err != nil {
				return err
			}
			if want := fmt.Sprintf("user-%d", i); *claims.UserID != want {
				return fmt.Errorf("token %d decoded to %q, want %q", i, *claims.UserID, want)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestExpiresAt(t *testing.T) {
	at, ok := oauthtoken.ExpiresAt(tokenx.Claims{Issued: tokenx.Int64(100), TTL: tokenx.Int64(10)})
	require.True(t, ok)
	require.Equal(t, int64(110), at.Unix())

	_, ok = oauthtoken.ExpiresAt(tokenx.Claims{Issued: tokenx.Int64(100), TTL: tokenx.Int64(0)})
	require.False(t, ok)

	_, ok = oauthtoken.ExpiresAt(tokenx.Claims{TTL: tokenx.Int64(10)})
	require.False(t, ok)

	_, ok = oauthtoken.ExpiresAt(tokenx.Claims{Issued: tokenx.Int64(100), TTL: tokenx.Int64(math.MaxInt64)})
	require.False(t, ok)
}

func TestExpired_LargeTTL(t *testing.T) {
	tests := []struct {
		name   string
		issued int64
		ttl    int64
		now    int64
		want   bool
	}{
		{"max ttl at issue", 100, math.MaxInt64, 100, false},
		{"max ttl with max issued", math.MaxInt64, math.MaxInt64, 100, false},
		{"min ttl", 100, math.MinInt64, 100, true},
		{"min issued negative ttl", math.MinInt64, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tokenx.Claims{Issued: tokenx.Int64(tt.issued), TTL: tokenx.Int64(tt.ttl)}
			require.Equal(t, tt.want, oauthtoken.Expired(c, time.Unix(tt.now, 0)))
		})
	}
}

func TestExpired_MissingTTL(t *testing.T) {
	c := tokenx.Claims{Issued: tokenx.Int64(100)}
	require.False(t, oauthtoken.Expired(c, time.Unix(100, 0)))
	require.True(t, oauthtoken.Expired(c, time.Unix(101, 0)))
}
