// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the payload of the registration form.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// RepeatPassword must equal Password when the form sends it.
	RepeatPassword string `json:"repeat_password"`
}

// LoginRequest is the payload of the login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest asks for a password-reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// NewPasswordRequest carries the new password for a reset token.
type NewPasswordRequest struct {
	Password string `json:"password"`
}

// SearchRequest is the payload of the search box.
type SearchRequest struct {
	Term string `json:"termino"`
}
