// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/handler/http"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, gatherer, logger),
	}, nil
}
