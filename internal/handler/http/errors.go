// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the session middleware. Callers can match against them
// with [errors.Is].
var (
	// ErrNoSession is returned when the request carries neither the session
	// cookie nor an "Authorization" header.
	ErrNoSession = errors.New("no session cookie or `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
