package oauthtoken

import "errors"

var (
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has been expired")

	// Rejections by the configured checks. A check that fails to answer
	// surfaces its own error instead.
	ErrAppSecretInvalid  = errors.New("application session has been expired")
	ErrUserSecretInvalid = errors.New("user session has been expired")
	ErrSessionInvalid    = errors.New("login session has been expired")
)
