package domain

import "time"

// App is a registered application. Tokens minted for an app carry its
// current secret; rotating the secret invalidates those tokens on decode.
type App struct {
	ID         string
	Name       string
	SecretHash string // deterministic fingerprint (base64url SHA-256)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
