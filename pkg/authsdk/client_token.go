package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Refresh trades a refresh token for a new token pair.
func (c *SDKClient) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	data := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}

	var out TokenResponse
	if err := c.postForm(ctx, "/v1/oauth2/token", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Introspect asks whether token is an active access token (RFC 7662). An
// inactive token is not an error.
func (c *SDKClient) Introspect(ctx context.Context, token string) (*IntrospectionResponse, error) {
	var out IntrospectionResponse
	if err := c.postForm(ctx, "/v1/oauth2/introspect", url.Values{"token": {token}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TokenInfo decodes accessToken by presenting it as a bearer credential.
func (c *SDKClient) TokenInfo(ctx context.Context, accessToken string) (*TokenInfoResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/tokeninfo", nil, nil, accessToken)
	if err != nil {
		return nil, err
	}

	var out TokenInfoResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateToken mints a token pair. Requires the tokens:write scope.
func (c *SDKClient) CreateToken(ctx context.Context, req CreateTokenRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.doOperatorJSON(ctx, http.MethodPost, "/v1/tokens", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
