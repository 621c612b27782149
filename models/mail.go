// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MailKind distinguishes the account e-mails the site sends.
type MailKind string

const (
	// MailConfirmation carries the account confirmation link.
	MailConfirmation MailKind = "confirmation"
	// MailPasswordReset carries the password-reset link.
	MailPasswordReset MailKind = "password_reset"
)

// AccountMail is the data a notifier needs to build a token-bearing link.
type AccountMail struct {
	Name  string
	Email string
	Token string
}

// OutgoingMail is a rendered message ready for delivery.
type OutgoingMail struct {
	Kind    MailKind `json:"-"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}
