package authsdk

import "time"

// TokenResponse is returned by token creation and the refresh grant.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`

	// Issued is the issuance time of the access token in unix seconds.
	Issued int64 `json:"issued"`

	// ExpiresIn is the lifetime in seconds; zero never expires.
	ExpiresIn int64 `json:"expires_in"`
}

// IntrospectionResponse is the RFC 7662 view of an access token. Only Active
// is set for a token that does not decode.
type IntrospectionResponse struct {
	Active    bool   `json:"active"`
	TokenType string `json:"token_type,omitempty"`
	Sub       string `json:"sub,omitempty"`
	ClientID  string `json:"client_id,omitempty"`
	SessionID string `json:"sid,omitempty"`
	Iat       int64  `json:"iat,omitempty"`
	Exp       int64  `json:"exp,omitempty"`
}

// TokenClaims mirrors the claims embedded in a token. Absent claims are nil.
type TokenClaims struct {
	AppID      *string `json:"app_id,omitempty"`
	AppSecret  *string `json:"app_secret,omitempty"`
	UserID     *string `json:"user_id,omitempty"`
	UserSecret *string `json:"user_secret,omitempty"`
	Session    *string `json:"session,omitempty"`
	Issued     *int64  `json:"issued,omitempty"`
	TTL        *int64  `json:"ttl,omitempty"`
}

// TokenInfoResponse is returned by GET /v1/tokeninfo.
type TokenInfoResponse struct {
	TokenClaims

	// ExpiresAt is absent for tokens that never expire.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// CreateTokenRequest is the body of POST /v1/tokens. UserID is required.
type CreateTokenRequest TokenClaims

// CreateAppRequest is the body of POST /v1/apps.
type CreateAppRequest struct {
	Name string `json:"name"`
}

// AppResponse describes a registered app. Secret is only set in responses
// that generated it and is never retrievable again.
type AppResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Secret    string    `json:"secret,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSecretResponse is returned when a user secret is set or rotated.
type UserSecretResponse struct {
	UserID string `json:"user_id"`
	Secret string `json:"secret"`
}

// OpenSessionRequest is the body of POST /v1/sessions. A zero TTL selects
// the server default.
type OpenSessionRequest struct {
	UserID     string `json:"user_id"`
	TTLSeconds int64  `json:"ttl_seconds,omitempty"`
}

// SessionResponse describes an open login session.
type SessionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Uptime  string            `json:"uptime,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}
