package http

import (
	"net/http"

	"github.com/aussiebroadwan/tokend/internal/tokend/service"
	"github.com/aussiebroadwan/tokend/pkg/authsdk"
	"github.com/aussiebroadwan/tokend/pkg/httpx"
	"github.com/aussiebroadwan/tokend/pkg/slogx"
	"github.com/aussiebroadwan/tokend/pkg/tokenx"
)

// CreateTokenHandler serves POST /v1/tokens.
type CreateTokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Create Token Pair
//	@Description	Mints an access and refresh token pair for the given claims. Omitted issued or a zero issued
//	@Description	becomes the current time; an omitted ttl becomes the configured default. A ttl of 0 never expires.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Security		OperatorAuth
//	@Param			request	body		authsdk.CreateTokenRequest	true	"Token claims; user_id is required"
//	@Success		201		{object}	authsdk.TokenResponse		"token pair"
//	@Failure		400		{object}	authsdk.OAuth2Error			"invalid_request"
//	@Failure		401		{object}	authsdk.OAuth2Error			"invalid_token"
//	@Failure		403		{object}	authsdk.OAuth2Error			"insufficient_scope"
//	@Router			/v1/tokens [post].
func (h *CreateTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.CreateTokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		authsdk.ErrInvalidRequest.WithDescription("body must be a JSON object of token claims").WriteError(w)
		return
	}

	if req.UserID == nil {
		authsdk.ErrInvalidRequest.WithDescription("user_id is required").WriteError(w)
		return
	}
	if tokenx.Int64Value(req.TTL) < 0 || tokenx.Int64Value(req.Issued) < 0 {
		authsdk.ErrInvalidRequest.WithDescription("issued and ttl must not be negative").WriteError(w)
		return
	}

	pair, err := h.TokenService.Create(r.Context(), tokenx.Claims{
		AppID:      req.AppID,
		AppSecret:  req.AppSecret,
		UserID:     req.UserID,
		UserSecret: req.UserSecret,
		Session:    req.Session,
		Issued:     req.Issued,
		TTL:        req.TTL,
	})
	if err != nil {
		slogx.FromContext(r.Context()).Error("token creation failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tokenResponse(pair))
}
