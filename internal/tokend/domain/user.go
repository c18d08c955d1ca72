package domain

import "time"

// User holds the fingerprint of the secret embedded in a user's tokens. The
// id is whatever the calling application uses to identify the user.
type User struct {
	ID         string
	SecretHash string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
