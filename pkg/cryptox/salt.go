package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SaltSize is the number of random bytes in a generated token salt.
const SaltSize = 32

// LoadOrGenerateSalt reads the token salt stored at path. When the file does
// not exist a random salt is generated and written there with 0600
// permissions, so restarts keep validating previously issued tokens.
//
// The file holds the salt as base64url text; surrounding whitespace is
// ignored.
func LoadOrGenerateSalt(path string) ([]byte, error) {
	path = filepath.Clean(path)

	raw, err := os.ReadFile(path)
	if err == nil {
		return decodeSalt(raw)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cryptox: read salt: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("cryptox: create salt dir: %w", err)
	}

	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("cryptox: generate salt: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(salt)
	if err := os.WriteFile(path, []byte(encoded), 0600); err != nil {
		return nil, fmt.Errorf("cryptox: write salt: %w", err)
	}
	return salt, nil
}

// ReadSalt reads a salt file written by LoadOrGenerateSalt without creating
// one when it is missing.
func ReadSalt(path string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("cryptox: read salt: %w", err)
	}
	return decodeSalt(raw)
}

func decodeSalt(raw []byte) ([]byte, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, errors.New("cryptox: salt file is empty")
	}
	salt, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("cryptox: decode salt: %w", err)
	}
	return salt, nil
}
