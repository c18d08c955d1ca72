package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tokend/internal/tokend/service"
	"github.com/aussiebroadwan/tokend/internal/tokend/store"
	"github.com/aussiebroadwan/tokend/internal/tokend/store/sessions"
	"github.com/aussiebroadwan/tokend/pkg/authsdk"
	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
	"github.com/aussiebroadwan/tokend/pkg/slogx"
)

// writeServiceError maps registry and session errors onto OAuth2 style
// responses. Unexpected errors are logged and reported as server_error
// carrying the request id.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrAppNotFound), errors.Is(err, service.ErrSessionNotFound):
		authsdk.ErrNotFound.WithDescription(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidUserID),
		errors.Is(err, service.ErrInvalidTTL):
		authsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
	case errors.Is(err, store.ErrAlreadyExists):
		authsdk.ErrConflict.WriteError(w)
	case errors.Is(err, sessions.ErrUnavailable):
		slogx.FromContext(r.Context()).Error("session backend unavailable", "err", err)
		authsdk.ErrTemporarilyUnavailable.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		if reqID := slogx.RequestIDFromContext(r.Context()); reqID != "" {
			authsdk.ErrServerError.WithDescription("internal server error, request id " + reqID).WriteError(w)
			return
		}
		authsdk.ErrServerError.WriteError(w)
	}
}

// writeDecodeError reports why a bearer token was not accepted. Failures to
// evaluate the token are a 503 so clients retry instead of logging out.
func writeDecodeError(w http.ResponseWriter, err error) {
	if service.IsRejection(err) {
		authsdk.ErrInvalidToken.WithDescription(rejectionReason(err)).WriteError(w)
		return
	}
	authsdk.ErrTemporarilyUnavailable.WriteError(w)
}

// rejectionReason hides codec detail such as digest mismatches behind the
// generic invalid token message.
func rejectionReason(err error) string {
	for _, target := range []error{
		oauthtoken.ErrExpiredToken,
		oauthtoken.ErrInvalidTokenType,
		oauthtoken.ErrAppSecretInvalid,
		oauthtoken.ErrUserSecretInvalid,
		oauthtoken.ErrSessionInvalid,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return oauthtoken.ErrInvalidToken.Error()
}
