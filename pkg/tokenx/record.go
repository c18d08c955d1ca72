package tokenx

// TokenType discriminates what a token may be used for.
type TokenType int32

const (
	TypeAccess  TokenType = 0
	TypeRefresh TokenType = 1
)

func (t TokenType) String() string {
	switch t {
	case TypeAccess:
		return "access_token"
	case TypeRefresh:
		return "refresh_token"
	default:
		return "unknown"
	}
}

// Claims is the caller-visible part of a token. A nil field is absent: it was
// never set, and it decodes back as nil rather than as "" or 0.
type Claims struct {
	AppID      *string `json:"app_id"`
	AppSecret  *string `json:"app_secret"`
	UserID     *string `json:"user_id"`
	UserSecret *string `json:"user_secret"`
	Session    *string `json:"session"`

	// Issued is the issuance time in unix seconds.
	Issued *int64 `json:"issued"`

	// TTL is the lifetime in seconds counted from Issued. Zero never expires.
	TTL *int64 `json:"ttl"`
}

// Record is what gets signed: the claims plus the token type.
type Record struct {
	Type TokenType
	Claims
}

// Clone returns a deep copy so callers never share pointers with a record
// that is still in use elsewhere.
func (c Claims) Clone() Claims {
	return Claims{
		AppID:      cloneString(c.AppID),
		AppSecret:  cloneString(c.AppSecret),
		UserID:     cloneString(c.UserID),
		UserSecret: cloneString(c.UserSecret),
		Session:    cloneString(c.Session),
		Issued:     cloneInt64(c.Issued),
		TTL:        cloneInt64(c.TTL),
	}
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Int64Value dereferences p, returning 0 for nil.
func Int64Value(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
