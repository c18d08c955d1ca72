package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/tokend/internal/tokend/metrics"
	"github.com/aussiebroadwan/tokend/pkg/authsdk"
	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
	"github.com/aussiebroadwan/tokend/pkg/slogx"
	"github.com/aussiebroadwan/tokend/pkg/tokenx"
)

// TokenService fronts oauthtoken.Service for the HTTP layer, recording
// metrics and logging each outcome.
type TokenService struct {
	Tokens *oauthtoken.Service
}

// IsRejection reports whether err says something about the token itself, as
// opposed to a failure to evaluate it.
func IsRejection(err error) bool {
	for _, target := range []error{
		tokenx.ErrMalformedToken,
		tokenx.ErrInvalidSignature,
		oauthtoken.ErrInvalidToken,
		oauthtoken.ErrInvalidTokenType,
		oauthtoken.ErrExpiredToken,
		oauthtoken.ErrAppSecretInvalid,
		oauthtoken.ErrUserSecretInvalid,
		oauthtoken.ErrSessionInvalid,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (s *TokenService) Create(ctx context.Context, claims tokenx.Claims) (*oauthtoken.TokenPair, error) {
	pair, err := s.Tokens.Create(ctx, claims)
	if err != nil {
		return nil, err
	}

	metrics.TokensIssued.WithLabelValues(metrics.OperationCreate).Inc()
	slogx.FromContext(ctx).Info("token pair issued",
		"user_id", tokenx.StringValue(claims.UserID),
		"app_id", tokenx.StringValue(claims.AppID),
		"expires_in", pair.ExpiresIn,
	)
	return pair, nil
}

func (s *TokenService) Decode(ctx context.Context, token string) (*tokenx.Claims, error) {
	claims, err := s.Tokens.Decode(ctx, token)
	metrics.TokenDecodes.WithLabelValues(metrics.Result(err)).Inc()

	switch {
	case err == nil:
	case IsRejection(err):
		slogx.FromContext(ctx).Debug("access token rejected", "reason", err)
	default:
		slogx.FromContext(ctx).Error("access token could not be checked", "error", err)
	}
	return claims, err
}

func (s *TokenService) Refresh(ctx context.Context, token string) (*oauthtoken.TokenPair, error) {
	pair, err := s.Tokens.Refresh(ctx, token)
	metrics.TokenRefreshes.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		slogx.FromContext(ctx).Debug("refresh rejected", "reason", err)
		return nil, err
	}

	metrics.TokensIssued.WithLabelValues(metrics.OperationRefresh).Inc()
	return pair, nil
}

// Introspect reports an RFC 7662 view of token. Every decode failure yields
// an inactive response.
func (s *TokenService) Introspect(ctx context.Context, token string) authsdk.IntrospectionResponse {
	claims, err := s.Decode(ctx, token)
	if err != nil {
		return authsdk.IntrospectionResponse{Active: false}
	}

	resp := authsdk.IntrospectionResponse{
		Active:    true,
		TokenType: tokenx.TypeAccess.String(),
		Sub:       tokenx.StringValue(claims.UserID),
		ClientID:  tokenx.StringValue(claims.AppID),
		SessionID: tokenx.StringValue(claims.Session),
		Iat:       tokenx.Int64Value(claims.Issued),
	}
	if exp, ok := oauthtoken.ExpiresAt(*claims); ok {
		resp.Exp = exp.Unix()
	}
	return resp
}
