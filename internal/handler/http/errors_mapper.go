// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bienes-raices/internal/service"
)

var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWeakPassword, http.StatusBadRequest},
	{service.ErrInvalidToken, http.StatusBadRequest},
	{service.ErrDuplicateEmail, http.StatusConflict},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrNotVerified, http.StatusForbidden},
	{service.ErrBadPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrCategoryNotFound, http.StatusNotFound},
	{service.ErrEmptySearchTerm, http.StatusBadRequest},
}

// statusFromError maps the outcome of an account or browsing operation to
// a status code. Unknown errors are internal failures.
func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
