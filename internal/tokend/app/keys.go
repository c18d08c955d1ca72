package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/tokend/pkg/cryptox"
	"github.com/aussiebroadwan/tokend/pkg/jwtx"
)

// LoadSalt returns the key of the token digest.
//
// Sources, in order:
//   - TOKEN_SALT: used verbatim, which lets a deployment keep a salt shared
//     with existing token issuers.
//   - TOKEN_SALT_FILE: read from disk, or generated and written there on
//     first start so restarts keep accepting issued tokens.
//
// Changing the salt invalidates every token issued under the old one.
func LoadSalt(cfg Config, logger *slog.Logger) ([]byte, error) {
	if cfg.TokenSalt != "" {
		logger.Info("token salt loaded from environment")
		return []byte(cfg.TokenSalt), nil
	}

	salt, err := cryptox.LoadOrGenerateSalt(cfg.TokenSaltFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load token salt: %w", err)
	}
	logger.Info("token salt loaded", "path", cfg.TokenSaltFile)
	return salt, nil
}

// InitOperatorVerifier builds the verifier for operator JWTs on the
// management endpoints.
func InitOperatorVerifier(cfg Config) (jwtx.Verifier, error) {
	v, err := jwtx.NewVerifierHS256([]byte(cfg.OperatorSecret), cfg.OperatorIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize operator verifier: %w", err)
	}
	return v, nil
}
