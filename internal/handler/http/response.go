// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/utils"
)

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.respond").Msg("failed to write response")
	}
}

// internalError logs err and answers 500 without any detail. The user ID is
// attached when the route runs behind the auth middleware.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	event := logger.FromRequest(r).Err(err).Str("func", fn)
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		event = event.Int64("user_id", userID)
	}
	event.Msg("unexpected error")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
