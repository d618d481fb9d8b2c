package http

import (
	"errors"
	"net/http"

	"github.com/RaulAli/Vall-Activa-sub001/internal/auth"
	"github.com/RaulAli/Vall-Activa-sub001/internal/config"
	"github.com/RaulAli/Vall-Activa-sub001/internal/dto"
	"github.com/RaulAli/Vall-Activa-sub001/internal/hdl"
	mid "github.com/RaulAli/Vall-Activa-sub001/internal/hdl/http/middleware"
	"github.com/RaulAli/Vall-Activa-sub001/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterAuthRoutes() {
	h.router.Post("/auth/login", h.login)
	h.router.Post("/auth/refresh", h.refresh)
	h.router.Post("/auth/logout", h.logout)
	h.router.With(mid.Auth(h.au, h.ctrl)).Post("/auth/revoke-all", h.revokeAll)
	h.router.With(mid.Auth(h.au, h.ctrl)).Get("/auth/sessions", h.listSessions)
	h.router.With(mid.Auth(h.au, h.ctrl)).Delete("/auth/sessions/{deviceID}", h.revokeDevice)
}

// login godoc
//
//	@Summary		Authenticate using email & password
//	@Description	Verify credentials, open a session, set the refresh cookie
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.EmailAndPasswordRequest	true	"Login credentials"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		401		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req := &dto.EmailAndPasswordRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		zap.L().Error("failed to login", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SetRefreshCookie(w, res.Refresh, int(res.RefreshTTL))
	utils.SuccessResponse(w, http.StatusOK, res)
}

// refresh godoc
//
//	@Summary		Rotate the refresh token
//	@Description	Exchange the refresh cookie for new tokens
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.ErrorResponse
//	@Failure		401	{object}	utils.ErrorResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/auth/refresh [post]
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(config.RefreshCookieName)
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	res, err := h.ctrl.Refresh(r.Context(), cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenBlacklisted),
			errors.Is(err, auth.ErrTokenReuseDetected),
			errors.Is(err, auth.ErrSessionNotFound),
			errors.Is(err, auth.ErrRefreshTokenExpired),
			errors.Is(err, auth.ErrUserInactive):
			utils.ClearRefreshCookie(w)
			utils.ErrResponse(w, http.StatusUnauthorized, err)
		default:
			zap.L().Error("failed to refresh", zap.Error(err))
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SetRefreshCookie(w, res.Refresh, int(res.RefreshTTL))
	utils.SuccessResponse(w, http.StatusOK, res)
}

// logout godoc
//
//	@Summary		Logout this device
//	@Description	Revoke the session behind the refresh cookie; idempotent
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	"Session revoked, cookie cleared"
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(config.RefreshCookieName)
	if err != nil {
		// Nothing to revoke, still a clean logout.
		utils.ClearRefreshCookie(w)
		utils.StatusResponse(w, http.StatusOK)
		return
	}

	if err := h.ctrl.Logout(r.Context(), cookie.Value); err != nil {
		zap.L().Error("failed to logout", zap.Error(err))
		utils.ClearRefreshCookie(w)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.ClearRefreshCookie(w)
	utils.StatusResponse(w, http.StatusOK)
}

// revokeAll godoc
//
//	@Summary		Logout everywhere
//	@Description	Revoke every active session of the caller on all devices
//	@Tags			Authentication
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Success		200	"All sessions revoked, cookie cleared"
//	@Failure		401	{object}	utils.ErrorResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/auth/revoke-all [post]
func (h *Handler) revokeAll(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if err := h.ctrl.RevokeAllDevices(r.Context(), uid); err != nil {
		zap.L().Error("failed to revoke all devices", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.ClearRefreshCookie(w)
	utils.StatusResponse(w, http.StatusOK)
}

// listSessions godoc
//
//	@Summary		List active sessions
//	@Description	All live sessions of the caller across devices
//	@Tags			Authentication
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.ErrorResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/auth/sessions [get]
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	res, err := h.ctrl.ListSessions(r.Context(), uid)
	if err != nil {
		zap.L().Error("failed to list sessions", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// revokeDevice godoc
//
//	@Summary		Logout one device remotely
//	@Description	Revoke the sessions of one of the caller's devices; idempotent
//	@Tags			Authentication
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Param			deviceID		path	string	true	"Device identifier"
//	@Success		200	"Device sessions revoked"
//	@Failure		401	{object}	utils.ErrorResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/auth/sessions/{deviceID} [delete]
func (h *Handler) revokeDevice(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if err := h.ctrl.RevokeDevice(r.Context(), uid, chi.URLParam(r, "deviceID")); err != nil {
		zap.L().Error("failed to revoke device", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}
