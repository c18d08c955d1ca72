package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/service"
	"github.com/aussiebroadwan/tokend/pkg/authsdk"
	"github.com/aussiebroadwan/tokend/pkg/httpx"
)

// SessionHandler serves the login session endpoints.
type SessionHandler struct {
	SessionService *service.SessionService
}

// Open godoc
//
//	@Summary		Open Session
//	@Description	Opens a login session. Put its id in the session claim of tokens to tie them to it.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Security		OperatorAuth
//	@Param			request	body		authsdk.OpenSessionRequest	true	"User and optional ttl"
//	@Success		201		{object}	authsdk.SessionResponse
//	@Failure		400		{object}	authsdk.OAuth2Error
//	@Failure		503		{object}	authsdk.OAuth2Error
//	@Router			/v1/sessions [post].
func (h *SessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req authsdk.OpenSessionRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	sess, err := h.SessionService.Open(r.Context(), req.UserID, time.Duration(req.TTLSeconds)*time.Second)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.SessionResponse{
		ID:        sess.ID,
		UserID:    sess.UserID,
		ExpiresAt: sess.ExpiresAt.UTC(),
	})
}

// Close godoc
//
//	@Summary		Close Session
//	@Description	Ends a session early. Access tokens naming it fail session checks from then on.
//	@Tags			Sessions
//	@Security		OperatorAuth
//	@Param			id	path	string	true	"Session ID"
//	@Success		204
//	@Failure		404	{object}	authsdk.OAuth2Error
//	@Router			/v1/sessions/{id} [delete].
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionService.Close(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
