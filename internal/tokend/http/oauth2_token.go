package http

import (
	"net/http"

	"github.com/aussiebroadwan/tokend/internal/tokend/service"
	"github.com/aussiebroadwan/tokend/pkg/authsdk"
	"github.com/aussiebroadwan/tokend/pkg/httpx"
	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
	"github.com/aussiebroadwan/tokend/pkg/slogx"
)

// TokenHandler serves POST /v1/oauth2/token.
type TokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		OAuth2 Token Endpoint
//	@Description	Exchanges a refresh token for a new access and refresh token pair. The new pair carries the
//	@Description	claims of the refresh token and a fresh issuance time. Secret and session checks are not run
//	@Description	here; they apply when the new access token is decoded.
//	@Tags			OAuth2
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			grant_type		formData	string					true	"Grant type"	Enums(refresh_token)
//	@Param			refresh_token	formData	string					true	"Refresh token"
//	@Success		200				{object}	authsdk.TokenResponse	"access_token, refresh_token, token_type, issued, expires_in"
//	@Failure		400				{object}	authsdk.OAuth2Error		"error, error_description"
//	@Failure		500				{object}	authsdk.OAuth2Error		"error, error_description"
//	@Header			200				{string}	Cache-Control			"no-store"
//	@Header			200				{string}	Pragma					"no-cache"
//	@Router			/v1/oauth2/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	if r.Form.Get("grant_type") != "refresh_token" {
		authsdk.ErrUnsupportedGrantType.WriteError(w)
		return
	}

	refresh := r.Form.Get("refresh_token")
	if refresh == "" {
		authsdk.ErrInvalidRequest.WithDescription("refresh_token is required").WriteError(w)
		return
	}

	pair, err := h.TokenService.Refresh(r.Context(), refresh)
	if err != nil {
		if service.IsRejection(err) {
			authsdk.ErrInvalidGrant.WithDescription(rejectionReason(err)).WriteError(w)
			return
		}
		slogx.FromContext(r.Context()).Error("refresh grant failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(pair))
}

func tokenResponse(p *oauthtoken.TokenPair) authsdk.TokenResponse {
	return authsdk.TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    p.TokenType,
		Issued:       p.Issued,
		ExpiresIn:    p.ExpiresIn,
	}
}
