package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// RegisterApp registers an application and returns its first secret.
// Requires the registry:write scope.
func (c *SDKClient) RegisterApp(ctx context.Context, name string) (*AppResponse, error) {
	var out AppResponse
	err := c.doOperatorJSON(ctx, http.MethodPost, "/v1/apps", CreateAppRequest{Name: name}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RotateAppSecret replaces the app secret, invalidating tokens carrying the
// old one.
func (c *SDKClient) RotateAppSecret(ctx context.Context, appID string) (*AppResponse, error) {
	var out AppResponse
	err := c.doOperatorJSON(ctx, http.MethodPost, "/v1/apps/"+url.PathEscape(appID)+"/secret", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RotateUserSecret sets a fresh secret for userID, creating the user record
// on first use.
func (c *SDKClient) RotateUserSecret(ctx context.Context, userID string) (*UserSecretResponse, error) {
	var out UserSecretResponse
	err := c.doOperatorJSON(ctx, http.MethodPut, "/v1/users/"+url.PathEscape(userID)+"/secret", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenSession opens a login session for a user.
func (c *SDKClient) OpenSession(ctx context.Context, req OpenSessionRequest) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.doOperatorJSON(ctx, http.MethodPost, "/v1/sessions", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CloseSession ends a session. Tokens naming it stop decoding.
func (c *SDKClient) CloseSession(ctx context.Context, sessionID string) error {
	return c.doOperatorJSON(ctx, http.MethodDelete, "/v1/sessions/"+url.PathEscape(sessionID), nil, nil, http.StatusNoContent)
}
