// Package oauthtoken issues, decodes and refreshes stateless access and
// refresh token pairs.
package oauthtoken

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/aussiebroadwan/tokend/pkg/asyncx"
	"github.com/aussiebroadwan/tokend/pkg/slogx"
	"github.com/aussiebroadwan/tokend/pkg/tokenx"
)

// TokenTypeBearer is the token_type of every pair.
const TokenTypeBearer = "Bearer"

// TokenPair is the result of Create and Refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	Issued       int64  `json:"issued"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Service is immutable after New and safe for concurrent use.
type Service struct {
	codec *tokenx.Codec
	ttl   int64

	checkAppSecret  AppSecretCheck
	checkUserSecret UserSecretCheck
	checkSession    SessionCheck

	now    func() time.Time
	logger *slog.Logger
}

// New builds a Service from cfg, filling in DefaultTTL and time.Now for
// unset fields.
func New(cfg Config) *Service {
	s := &Service{
		codec:           tokenx.NewCodec(cfg.Salt),
		ttl:             cfg.TTL,
		checkAppSecret:  cfg.CheckAppSecret,
		checkUserSecret: cfg.CheckUserSecret,
		checkSession:    cfg.CheckSession,
		now:             cfg.Now,
		logger:          cfg.Logger,
	}
	if s.ttl == 0 {
		s.ttl = DefaultTTL
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// DefaultTTL returns the lifetime applied when Create is given none.
func (s *Service) DefaultTTL() int64 {
	return s.ttl
}

// Codec exposes the underlying codec for raw inspection.
func (s *Service) Codec() *tokenx.Codec {
	return s.codec
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slogx.FromContext(ctx)
}

// Create mints an access and refresh token pair for claims. A nil or zero
// Issued is replaced by the current time and a nil TTL by the default. The
// refresh token does not carry the issuance time. Create never runs checks.
func (s *Service) Create(ctx context.Context, claims tokenx.Claims) (*TokenPair, error) {
	return s.create(ctx, claims, s.now())
}

func (s *Service) create(_ context.Context, claims tokenx.Claims, now time.Time) (*TokenPair, error) {
	if claims.UserID == nil {
		return nil, &tokenx.MissingFieldError{Field: tokenx.FieldUserID}
	}

	c := claims.Clone()
	if tokenx.Int64Value(c.Issued) == 0 {
		c.Issued = tokenx.Int64(now.Unix())
	}
	if c.TTL == nil {
		c.TTL = tokenx.Int64(s.ttl)
	}

	access, err := s.codec.Encode(tokenx.Record{Type: tokenx.TypeAccess, Claims: c})
	if err != nil {
		return nil, err
	}

	rc := c.Clone()
	rc.Issued = nil
	refresh, err := s.codec.Encode(tokenx.Record{Type: tokenx.TypeRefresh, Claims: rc})
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    TokenTypeBearer,
		Issued:       *c.Issued,
		ExpiresIn:    *c.TTL,
	}, nil
}

// Decode verifies an access token, checks its expiry and runs the configured
// checks in order, stopping at the first rejection.
func (s *Service) Decode(ctx context.Context, token string) (*tokenx.Claims, error) {
	now := s.now()

	rec, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}
	if rec.Type != tokenx.TypeAccess {
		return nil, ErrInvalidTokenType
	}
	if rec.Issued == nil {
		return nil, ErrInvalidToken
	}
	if Expired(rec.Claims, now) {
		return nil, ErrExpiredToken
	}

	claims := rec.Claims
	if err := s.verify(ctx, claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// Refresh exchanges a refresh token for a new pair with a fresh issuance
// time. Checks are not run here; they apply when the new access token is
// decoded.
func (s *Service) Refresh(ctx context.Context, token string) (*TokenPair, error) {
	now := s.now()

	rec, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}
	if rec.Type != tokenx.TypeRefresh {
		return nil, ErrInvalidTokenType
	}
	return s.create(ctx, rec.Claims, now)
}

func (s *Service) verify(ctx context.Context, c tokenx.Claims) error {
	logger := s.log(ctx)

	if s.checkAppSecret != nil && c.AppID != nil && c.AppSecret != nil {
		ok, err := await(ctx, func(done asyncx.Done[bool]) *asyncx.Future[bool] {
			return s.checkAppSecret(ctx, *c.AppID, *c.AppSecret, done)
		})
		if err != nil {
			return err
		}
		if !ok {
			logger.DebugContext(ctx, "token rejected", "check", "app_secret", "app_id", *c.AppID)
			return ErrAppSecretInvalid
		}
	}

	if s.checkUserSecret != nil && c.UserID != nil && c.UserSecret != nil {
		ok, err := await(ctx, func(done asyncx.Done[bool]) *asyncx.Future[bool] {
			return s.checkUserSecret(ctx, *c.UserID, *c.UserSecret, done)
		})
		if err != nil {
			return err
		}
		if !ok {
			logger.DebugContext(ctx, "token rejected", "check", "user_secret", "user_id", *c.UserID)
			return ErrUserSecretInvalid
		}
	}

	if s.checkSession != nil && c.Session != nil {
		ok, err := await(ctx, func(done asyncx.Done[bool]) *asyncx.Future[bool] {
			return s.checkSession(ctx, *c.Session, done)
		})
		if err != nil {
			return err
		}
		if !ok {
			logger.DebugContext(ctx, "token rejected", "check", "session", "user_id", tokenx.StringValue(c.UserID))
			return ErrSessionInvalid
		}
	}

	return nil
}

func await(ctx context.Context, call func(done asyncx.Done[bool]) *asyncx.Future[bool]) (bool, error) {
	return asyncx.Resolve(ctx, call).Await(ctx)
}

// Expired reports whether an access token with claims is past its lifetime
// at now. A TTL of zero never expires. A missing TTL counts as zero length,
// so such a token lives only within its issuance second.
func Expired(c tokenx.Claims, now time.Time) bool {
	if c.TTL != nil && *c.TTL == 0 {
		return false
	}
	return now.Unix() > expiry(tokenx.Int64Value(c.Issued), tokenx.Int64Value(c.TTL))
}

// maxExpiry is the last second time.Unix can represent as a calendar date
// before year 10000.
const maxExpiry int64 = 253402300799

// ExpiresAt returns when claims stop being valid. ok is false for tokens
// that never expire, carry no issuance time, or expire beyond year 9999.
func ExpiresAt(c tokenx.Claims) (t time.Time, ok bool) {
	if c.Issued == nil || (c.TTL != nil && *c.TTL == 0) {
		return time.Time{}, false
	}
	exp := expiry(*c.Issued, tokenx.Int64Value(c.TTL))
	if exp > maxExpiry {
		return time.Time{}, false
	}
	return time.Unix(exp, 0), true
}

// expiry is issued+ttl saturated to the int64 range.
func expiry(issued, ttl int64) int64 {
	switch {
	case ttl > 0 && issued > math.MaxInt64-ttl:
		return math.MaxInt64
	case ttl < 0 && issued < math.MinInt64-ttl:
		return math.MinInt64
	}
	return issued + ttl
}
