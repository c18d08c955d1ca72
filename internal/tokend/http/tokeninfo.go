package http

import (
	"net/http"

	"github.com/aussiebroadwan/tokend/internal/tokend/service"
	"github.com/aussiebroadwan/tokend/pkg/authsdk"
	"github.com/aussiebroadwan/tokend/pkg/httpx"
	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
)

// TokenInfoHandler serves GET /v1/tokeninfo.
type TokenInfoHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Token Info
//	@Description	Decodes the bearer token of the request and returns its claims. Secrets are never echoed.
//	@Tags			Tokens
//	@Produce		json
//	@Param			Authorization	header		string						true	"Bearer {access_token}"
//	@Success		200				{object}	authsdk.TokenInfoResponse	"claims and expiry"
//	@Failure		401				{object}	authsdk.OAuth2Error			"invalid_token"
//	@Failure		503				{object}	authsdk.OAuth2Error			"temporarily_unavailable"
//	@Router			/v1/tokeninfo [get].
func (h *TokenInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, ok := httpx.BearerToken(r)
	if !ok {
		authsdk.ErrInvalidToken.WriteError(w)
		return
	}

	claims, err := h.TokenService.Decode(r.Context(), token)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	resp := authsdk.TokenInfoResponse{
		TokenClaims: authsdk.TokenClaims{
			AppID:   claims.AppID,
			UserID:  claims.UserID,
			Session: claims.Session,
			Issued:  claims.Issued,
			TTL:     claims.TTL,
		},
	}
	if exp, ok := oauthtoken.ExpiresAt(*claims); ok {
		resp.ExpiresAt = &exp
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
