// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// mailNotifier composes account e-mails and sends them synchronously.
type mailNotifier struct {
	composer *Composer
	sender   Sender
}

// NewMailNotifier returns a [Notifier] rendering with composer and
// delivering through sender.
func NewMailNotifier(composer *Composer, sender Sender) Notifier {
	return &mailNotifier{composer: composer, sender: sender}
}

// New picks the sender from cfg: the mail HTTP API when an address is
// configured, the log otherwise.
func New(cfg config.Notifier, publicURL string, log *logger.Logger) Notifier {
	var sender Sender
	if cfg.Address != "" {
		log.Info().Str("func", "notifier.New").Str("address", cfg.Address).Msg("mail API sender configured")
		sender = NewHTTPSender(cfg)
	} else {
		log.Warn().Str("func", "notifier.New").Msg("no mail API configured, account e-mails are only logged")
		sender = NewLogSender(log)
	}

	return NewMailNotifier(NewComposer(publicURL, cfg.From), sender)
}

func (n *mailNotifier) SendConfirmation(ctx context.Context, mail models.AccountMail) error {
	if err := n.sender.Send(ctx, n.composer.Confirmation(mail)); err != nil {
		return fmt.Errorf("sending confirmation mail: %w", err)
	}
	return nil
}

func (n *mailNotifier) SendPasswordReset(ctx context.Context, mail models.AccountMail) error {
	if err := n.sender.Send(ctx, n.composer.PasswordReset(mail)); err != nil {
		return fmt.Errorf("sending password reset mail: %w", err)
	}
	return nil
}
