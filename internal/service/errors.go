// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Outcomes of the account lifecycle. All of them are expected, user
// recoverable conditions.
var (
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	ErrInvalidToken   = errors.New("token is invalid")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotVerified    = errors.New("account is not verified")
	ErrBadPassword    = errors.New("wrong password")
	ErrWeakPassword   = errors.New("password is too weak")
)

var (
	// ErrInvalidDataProvided wraps input rejected by validation. The wrapped
	// chain keeps the per-field messages, see validators.Messages.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrUnknownSeedReference is returned when a sample property names a
	// category, price or owner that does not exist.
	ErrUnknownSeedReference = errors.New("sample data refers to an unknown entry")
)

// Browsing outcomes.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptySearchTerm  = errors.New("search term is empty")
)
