package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinHS256KeySize is the shortest shared secret accepted for HS256.
const MinHS256KeySize = 32

var ErrWeakKey = errors.New("jwtx: HS256 key shorter than 32 bytes")

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HS256Signer signs operator tokens with a shared secret.
type HS256Signer struct {
	key []byte
}

func NewSignerHS256(key []byte) (*HS256Signer, error) {
	if len(key) < MinHS256KeySize {
		return nil, ErrWeakKey
	}
	return &HS256Signer{key: append([]byte(nil), key...)}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign turns claims into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}
