package domain

// Operator scopes carried by the JWTs that authorize the management API.
const (
	ScopeTokensWrite   = "tokens:write"
	ScopeRegistryWrite = "registry:write"
)
