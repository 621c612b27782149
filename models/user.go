// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account of the listing site.
// It carries identity, profile and credential data together with the
// verification flag and the pending single-use token.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier. Lookups are exact,
	// case-sensitive matches on the stored value.
	Email string `json:"email"`

	// PasswordHash is the salted bcrypt hash of the user's password.
	// The plaintext password is never stored.
	PasswordHash string `json:"-"`

	// Verified becomes true once the confirmation link was followed.
	// Unverified users cannot log in.
	Verified bool `json:"verified"`

	// Token is the pending confirmation or password-reset token.
	// Nil when no such operation is outstanding.
	Token *string `json:"-"`

	// TokenIssuedAt records when Token was generated.
	TokenIssuedAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPendingToken reports whether a confirmation or reset is outstanding.
func (u User) HasPendingToken() bool {
	return u.Token != nil && *u.Token != ""
}

// PendingToken returns the pending token or an empty string.
func (u User) PendingToken() string {
	if u.Token == nil {
		return ""
	}
	return *u.Token
}
