package domain

import "time"

// Session is a login session referenced by the session claim of a token.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Active reports whether the session is still open at now.
func (s Session) Active(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
