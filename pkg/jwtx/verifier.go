package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// HS256Verifier checks operator tokens signed with the shared secret.
type HS256Verifier struct {
	key    []byte
	issuer string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration

	now func() time.Time
}

func NewVerifierHS256(key []byte, issuer string) (*HS256Verifier, error) {
	if len(key) < MinHS256KeySize {
		return nil, ErrWeakKey
	}
	return &HS256Verifier{
		key:    append([]byte(nil), key...),
		issuer: issuer,
		Leeway: 30 * time.Second,
		now:    time.Now,
	}, nil
}

func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	// Time based claims are checked below with our own clock and leeway.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidSig, err)
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(v.now().UTC(), v.Leeway); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
