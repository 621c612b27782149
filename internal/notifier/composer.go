// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bienes-raices/models"
)

// Path segments appended to the public URL.
const (
	ConfirmPath        = "confirmar"
	ResetPasswordPath  = "olvide-password"
	confirmationTitle  = "Confirma tu Cuenta en BienesRaices.com"
	passwordResetTitle = "Reestablece tu Password en BienesRaices.com"
)

// Composer renders account e-mails.
type Composer struct {
	publicURL string
	from      string
}

// NewComposer builds links on top of publicURL, e.g.
// "https://bienesraices.example/auth", and signs messages as from.
func NewComposer(publicURL, from string) *Composer {
	return &Composer{
		publicURL: strings.TrimRight(publicURL, "/"),
		from:      from,
	}
}

// ConfirmationLink returns <publicURL>/confirmar/<token>.
func (c *Composer) ConfirmationLink(token string) string {
	return c.link(ConfirmPath, token)
}

// PasswordResetLink returns <publicURL>/olvide-password/<token>.
func (c *Composer) PasswordResetLink(token string) string {
	return c.link(ResetPasswordPath, token)
}

func (c *Composer) link(segment, token string) string {
	return c.publicURL + "/" + segment + "/" + url.PathEscape(token)
}

// Confirmation renders the account confirmation message.
func (c *Composer) Confirmation(mail models.AccountMail) models.OutgoingMail {
	return models.OutgoingMail{
		Kind:    models.MailConfirmation,
		From:    c.from,
		To:      mail.Email,
		Subject: confirmationTitle,
		Text: fmt.Sprintf("Hola %s, comprueba tu cuenta en BienesRaices.com\n\n"+
			"Tu cuenta ya esta lista, solo debes confirmarla en el siguiente enlace: %s\n\n"+
			"Si tu no creaste esta cuenta, puedes ignorar el mensaje",
			mail.Name, c.ConfirmationLink(mail.Token)),
	}
}

// PasswordReset renders the password reset message.
func (c *Composer) PasswordReset(mail models.AccountMail) models.OutgoingMail {
	return models.OutgoingMail{
		Kind:    models.MailPasswordReset,
		From:    c.from,
		To:      mail.Email,
		Subject: passwordResetTitle,
		Text: fmt.Sprintf("Hola %s, has solicitado reestablecer tu password en BienesRaices.com\n\n"+
			"Sigue el siguiente enlace para generar un password nuevo: %s\n\n"+
			"Si tu no solicitaste el cambio de password, puedes ignorar el mensaje",
			mail.Name, c.PasswordResetLink(mail.Token)),
	}
}
