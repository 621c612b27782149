// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, keyed hashing,
// HTTP response writing, HTTP client initialization, JWT session tokens
// and single-use token generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-bienes-raices/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the user identifier in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// SessionCtxKey is the key under which the session middleware stores the
// parsed [models.SessionToken].
var SessionCtxKey = contextKey("session")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithSession returns a copy of ctx carrying session and its user ID.
func WithSession(ctx context.Context, session models.SessionToken) context.Context {
	ctx = context.WithValue(ctx, SessionCtxKey, session)
	return context.WithValue(ctx, UserIDCtxKey, session.UserID)
}

// GetSessionFromContext retrieves the session stored by [WithSession].
func GetSessionFromContext(ctx context.Context) (models.SessionToken, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.SessionToken)
	return session, ok
}
