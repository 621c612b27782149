// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"

	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// logSender writes messages to the log instead of delivering them. It is
// the sender used when no mail API is configured. The message text carries
// the live token link, so it is only written at Debug level.
type logSender struct {
	logger *logger.Logger
}

func NewLogSender(log *logger.Logger) Sender {
	return &logSender{logger: log}
}

func (s *logSender) Send(ctx context.Context, mail models.OutgoingMail) error {
	s.logger.Info().
		Str("func", "*logSender.Send").
		Str("kind", string(mail.Kind)).
		Str("to", mail.To).
		Str("subject", mail.Subject).
		Msg("account mail")

	s.logger.Debug().
		Str("func", "*logSender.Send").
		Str("kind", string(mail.Kind)).
		Str("text", mail.Text).
		Msg("account mail text")
	return nil
}
