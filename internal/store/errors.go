// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert fails because another
	// account already uses the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup or update by email matched
	// no account.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTokenNotFound is returned when no account holds the given pending
	// token, or the token is older than the accepted window.
	ErrTokenNotFound = errors.New("pending token was not found")

	// ErrCategoryNotFound is returned when no category has the given ID.
	ErrCategoryNotFound = errors.New("category was not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrUnsupportedDriver is returned when the configured driver has no
	// connection constructor.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
