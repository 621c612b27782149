// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bienes-raices/internal/app"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/service"
	"github.com/MKhiriev/go-bienes-raices/internal/utils"
	"github.com/MKhiriev/go-bienes-raices/internal/validators"
	"github.com/MKhiriev/go-bienes-raices/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		h.respond(w, r, http.StatusBadRequest, models.MessageResponse{Message: app.MsgInvalidRequest})
		return
	}

	form := &models.FormUser{Name: request.Name, Email: request.Email}

	// the form may confirm the password; the service never sees the copy
	if request.RepeatPassword != "" {
		err := h.validator.Validate(ctx, request,
			validators.FieldName, validators.FieldEmail, validators.FieldPassword, validators.FieldRepeatPassword)
		if err != nil {
			h.respond(w, r, http.StatusBadRequest, models.MessageResponse{Errors: validators.Messages(err), User: form})
			return
		}
	}

	user, err := h.services.AuthService.Register(ctx, request)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidDataProvided):
		h.respond(w, r, statusFromError(err), models.MessageResponse{Errors: validators.Messages(err), User: form})
		return
	case errors.Is(err, service.ErrDuplicateEmail):
		h.respond(w, r, statusFromError(err), models.MessageResponse{Errors: []string{app.MsgDuplicateEmail}, User: form})
		return
	default:
		h.internalError(w, r, err, "*Handler.register")
		return
	}

	h.respond(w, r, http.StatusCreated, models.AccountResponse{
		UserID:  user.UserID,
		Name:    user.Name,
		Email:   user.Email,
		Message: app.MsgAccountCreated,
	})
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	err := h.services.AuthService.ConfirmAccount(r.Context(), chi.URLParam(r, "token"))
	switch {
	case err == nil:
		h.respond(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgAccountConfirmed})
	case errors.Is(err, service.ErrInvalidToken):
		h.respond(w, r, statusFromError(err), models.MessageResponse{Message: app.MsgConfirmFailed})
	default:
		h.internalError(w, r, err, "*Handler.confirm")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		h.respond(w, r, http.StatusBadRequest, models.MessageResponse{Message: app.MsgInvalidRequest})
		return
	}

	session, err := h.services.AuthService.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.respond(w, r, statusFromError(err), models.MessageResponse{
				Errors: validators.Messages(err),
				User:   &models.FormUser{Email: request.Email},
			})
			return
		case errors.Is(err, service.ErrUserNotFound):
			message = app.MsgUserNotFound
		case errors.Is(err, service.ErrNotVerified):
			message = app.MsgNotVerified
		case errors.Is(err, service.ErrBadPassword):
			message = app.MsgBadPassword
		default:
			h.internalError(w, r, err, "*Handler.login")
			return
		}
		h.respond(w, r, statusFromError(err), models.MessageResponse{
			Errors: []string{message},
			User:   &models.FormUser{Email: request.Email},
		})
		return
	}

	h.setSessionCookie(w, session.SignedString)
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", session.SignedString))
	h.respond(w, r, http.StatusOK, models.SessionResponse{UserID: session.UserID, Name: session.Name})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	h.respond(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgLoggedOut})
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ForgotPasswordRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		log.Err(err).Str("func", "*Handler.forgotPassword").Msg("invalid JSON was passed")
		h.respond(w, r, http.StatusBadRequest, models.MessageResponse{Message: app.MsgInvalidRequest})
		return
	}

	err := h.services.AuthService.RequestPasswordReset(ctx, request.Email)
	switch {
	case err == nil:
		h.respond(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgResetSent})
	case errors.Is(err, service.ErrInvalidDataProvided):
		h.respond(w, r, statusFromError(err), models.MessageResponse{Errors: validators.Messages(err)})
	case errors.Is(err, service.ErrUserNotFound):
		h.respond(w, r, statusFromError(err), models.MessageResponse{Errors: []string{app.MsgEmailNotFound}})
	default:
		h.internalError(w, r, err, "*Handler.forgotPassword")
	}
}

func (h *Handler) checkResetToken(w http.ResponseWriter, r *http.Request) {
	_, err := h.services.AuthService.ValidateResetToken(r.Context(), chi.URLParam(r, "token"))
	switch {
	case err == nil:
		h.respond(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgResetTokenValid})
	case errors.Is(err, service.ErrInvalidToken):
		h.respond(w, r, statusFromError(err), models.MessageResponse{Message: app.MsgResetTokenFailed})
	default:
		h.internalError(w, r, err, "*Handler.checkResetToken")
	}
}

func (h *Handler) newPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.NewPasswordRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		log.Err(err).Str("func", "*Handler.newPassword").Msg("invalid JSON was passed")
		h.respond(w, r, http.StatusBadRequest, models.MessageResponse{Message: app.MsgInvalidRequest})
		return
	}

	err := h.services.AuthService.CompletePasswordReset(ctx, chi.URLParam(r, "token"), request.Password)
	switch {
	case err == nil:
		h.respond(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgPasswordSaved})
	case errors.Is(err, service.ErrWeakPassword):
		h.respond(w, r, statusFromError(err), models.MessageResponse{Errors: validators.Messages(err)})
	case errors.Is(err, service.ErrInvalidToken):
		h.respond(w, r, statusFromError(err), models.MessageResponse{Message: app.MsgResetTokenFailed})
	default:
		h.internalError(w, r, err, "*Handler.newPassword")
	}
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	h.respond(w, r, http.StatusOK, models.SessionResponse{UserID: session.UserID, Name: session.Name})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, signed string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(h.sessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
