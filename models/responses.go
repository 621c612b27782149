// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic body returned by account endpoints.
// Errors carries one human-readable entry per failed check.
type MessageResponse struct {
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`

	// User echoes the submitted profile so a form can be re-rendered
	// with name and email preserved. Passwords are never echoed.
	User *FormUser `json:"user,omitempty"`
}

// FormUser is the subset of a registration form that is safe to echo back.
type FormUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionResponse describes the currently authenticated user.
type SessionResponse struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
}

// AccountResponse is the public view of a freshly registered account.
type AccountResponse struct {
	UserID  int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

// BuildInfoResponse describes the running binary.
type BuildInfoResponse struct {
	AppVersion   string `json:"app_version"`
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// HomeResponse is the landing page. Session is set when the visitor is
// logged in.
type HomeResponse struct {
	HomePage
	Session *SessionResponse `json:"usuario,omitempty"`
}

// CategoryResponse lists the published properties of one category.
type CategoryResponse struct {
	Category   Category         `json:"category"`
	Properties []Property       `json:"properties"`
	Session    *SessionResponse `json:"usuario,omitempty"`
}

// SearchResponse lists the published properties whose title matches Term.
type SearchResponse struct {
	Term       string           `json:"termino"`
	Properties []Property       `json:"properties"`
	Session    *SessionResponse `json:"usuario,omitempty"`
}
