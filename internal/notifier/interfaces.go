// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notifier delivers the account e-mails that carry confirmation and
// password reset links.
//
// A [Notifier] turns an [models.AccountMail] into an [models.OutgoingMail]
// with a [Composer] and hands it to a [Sender]. Two senders exist: one posts
// to a transactional mail HTTP API, the other only writes the message to the
// log for local development.
package notifier

import (
	"context"

	"github.com/MKhiriev/go-bienes-raices/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier sends the e-mails of the account lifecycle.
type Notifier interface {
	// SendConfirmation sends the link that confirms a new account.
	SendConfirmation(ctx context.Context, mail models.AccountMail) error

	// SendPasswordReset sends the link that opens the new-password form.
	SendPasswordReset(ctx context.Context, mail models.AccountMail) error
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, mail models.OutgoingMail) error
}
