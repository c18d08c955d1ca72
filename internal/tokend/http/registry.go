package http

import (
	"net/http"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/aussiebroadwan/tokend/internal/tokend/service"
	"github.com/aussiebroadwan/tokend/pkg/authsdk"
	"github.com/aussiebroadwan/tokend/pkg/httpx"
)

// RegistryHandler serves the app and user secret endpoints.
type RegistryHandler struct {
	RegistryService *service.RegistryService
}

func appResponse(a domain.App, secret string) authsdk.AppResponse {
	return authsdk.AppResponse{
		ID:        a.ID,
		Name:      a.Name,
		Secret:    secret,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// CreateApp godoc
//
//	@Summary		Register App
//	@Description	Registers an application and returns its secret. The secret is shown only once.
//	@Tags			Registry
//	@Accept			json
//	@Produce		json
//	@Security		OperatorAuth
//	@Param			request	body		authsdk.CreateAppRequest	true	"App name"
//	@Success		201		{object}	authsdk.AppResponse
//	@Failure		400		{object}	authsdk.OAuth2Error
//	@Router			/v1/apps [post].
func (h *RegistryHandler) CreateApp(w http.ResponseWriter, r *http.Request) {
	var req authsdk.CreateAppRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	app, secret, err := h.RegistryService.RegisterApp(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, appResponse(app, secret))
}

// ListApps godoc
//
//	@Summary	List Apps
//	@Tags		Registry
//	@Produce	json
//	@Security	OperatorAuth
//	@Success	200	{array}	authsdk.AppResponse
//	@Router		/v1/apps [get].
func (h *RegistryHandler) ListApps(w http.ResponseWriter, r *http.Request) {
	apps, err := h.RegistryService.ListApps(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]authsdk.AppResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, appResponse(a, ""))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// RotateAppSecret godoc
//
//	@Summary		Rotate App Secret
//	@Description	Replaces the app secret. Tokens carrying the old secret fail app secret checks.
//	@Tags			Registry
//	@Produce		json
//	@Security		OperatorAuth
//	@Param			id	path		string	true	"App ID"
//	@Success		200	{object}	authsdk.AppResponse
//	@Failure		404	{object}	authsdk.OAuth2Error
//	@Router			/v1/apps/{id}/secret [post].
func (h *RegistryHandler) RotateAppSecret(w http.ResponseWriter, r *http.Request) {
	app, secret, err := h.RegistryService.RotateAppSecret(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, appResponse(app, secret))
}

// DeleteApp godoc
//
//	@Summary	Delete App
//	@Tags		Registry
//	@Security	OperatorAuth
//	@Param		id	path	string	true	"App ID"
//	@Success	204
//	@Failure	404	{object}	authsdk.OAuth2Error
//	@Router		/v1/apps/{id} [delete].
func (h *RegistryHandler) DeleteApp(w http.ResponseWriter, r *http.Request) {
	if err := h.RegistryService.DeleteApp(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RotateUserSecret godoc
//
//	@Summary		Rotate User Secret
//	@Description	Sets a fresh secret for the user, registering the user on first use.
//	@Tags			Registry
//	@Produce		json
//	@Security		OperatorAuth
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	authsdk.UserSecretResponse
//	@Router			/v1/users/{id}/secret [put].
func (h *RegistryHandler) RotateUserSecret(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	secret, err := h.RegistryService.RotateUserSecret(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.UserSecretResponse{UserID: userID, Secret: secret})
}
