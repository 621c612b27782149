// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"testing"

	"github.com/MKhiriev/go-bienes-raices/models"
	"github.com/stretchr/testify/assert"
)

func TestComposer_Links(t *testing.T) {
	c := NewComposer("https://bienesraices.example/auth/", "from@example.com")

	assert.Equal(t, "https://bienesraices.example/auth/confirmar/abc-123", c.ConfirmationLink("abc-123"))
	assert.Equal(t, "https://bienesraices.example/auth/olvide-password/abc-123", c.PasswordResetLink("abc-123"))
}

func TestComposer_Confirmation(t *testing.T) {
	c := NewComposer("http://localhost:3000/auth", "from@example.com")

	mail := c.Confirmation(models.AccountMail{Name: "Ana", Email: "ana@example.com", Token: "tok"})

	assert.Equal(t, models.MailConfirmation, mail.Kind)
	assert.Equal(t, "from@example.com", mail.From)
	assert.Equal(t, "ana@example.com", mail.To)
	assert.Equal(t, confirmationTitle, mail.Subject)
	assert.Contains(t, mail.Text, "Hola Ana")
	assert.Contains(t, mail.Text, "http://localhost:3000/auth/confirmar/tok")
}

func TestComposer_PasswordReset(t *testing.T) {
	c := NewComposer("http://localhost:3000/auth", "from@example.com")

	mail := c.PasswordReset(models.AccountMail{Name: "Ana", Email: "ana@example.com", Token: "tok"})

	assert.Equal(t, models.MailPasswordReset, mail.Kind)
	assert.Equal(t, passwordResetTitle, mail.Subject)
	assert.Contains(t, mail.Text, "http://localhost:3000/auth/olvide-password/tok")
	assert.NotContains(t, mail.Text, "/confirmar/")
}
