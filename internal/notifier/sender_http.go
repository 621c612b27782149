// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/utils"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// sendPath is the endpoint of the mail API that accepts a message.
const sendPath = "/v1/messages"

// ErrMailRejected is returned when the mail API answers with a non-2xx status.
var ErrMailRejected = errors.New("mail API rejected the message")

// httpSender posts messages as JSON to a transactional mail API.
type httpSender struct {
	client *utils.HTTPClient
}

// NewHTTPSender builds a [Sender] for the API at cfg.Address. When an API
// key is configured it is sent as a bearer token.
func NewHTTPSender(cfg config.Notifier) Sender {
	client := utils.NewHTTPClient(cfg.Address, cfg.RequestTimeout)
	client.SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &httpSender{client: client}
}

func (s *httpSender) Send(ctx context.Context, mail models.OutgoingMail) error {
	log := logger.FromContext(ctx)

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(mail).
		Post(sendPath)
	if err != nil {
		log.Err(err).Str("func", "*httpSender.Send").Str("kind", string(mail.Kind)).Msg("error calling mail API")
		return fmt.Errorf("error calling mail API: %w", err)
	}

	if resp.IsError() {
		log.Error().Str("func", "*httpSender.Send").
			Str("kind", string(mail.Kind)).
			Int("status", resp.StatusCode()).
			Msg("mail API returned an error status")
		return fmt.Errorf("%w: status %d", ErrMailRejected, resp.StatusCode())
	}

	log.Debug().Str("func", "*httpSender.Send").Str("kind", string(mail.Kind)).Msg("mail accepted by API")
	return nil
}
