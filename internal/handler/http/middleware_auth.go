// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/utils"
)

// sessionCookieName is the cookie set by login.
const sessionCookieName = "_token"

// auth is an HTTP middleware that enforces a valid session.
//
// The signed session is taken from the "_token" cookie or, when the cookie is
// absent, from an "Authorization: Bearer" header. It is validated via
// [service.AuthService.ParseSessionToken] and stored in the request context
// with [utils.WithSession]. Requests without a valid session are answered
// with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		signed, err := sessionFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseSessionToken(ctx, signed)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Msg("session rejected")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}

// identify attaches the session to the request context when the visitor
// carries a valid one. Anonymous visitors and rejected sessions pass through
// unchanged.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signed, err := sessionFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseSessionToken(ctx, signed)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.identify").Msg("ignoring invalid session")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}

// sessionFromRequest returns the signed session carried by r.
func sessionFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoSession
	}

	signed, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return signed, nil
}
