// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/service"
	"github.com/MKhiriev/go-bienes-raices/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	gatherer  prometheus.Gatherer

	// secureCookies marks the session cookie Secure.
	secureCookies   bool
	sessionDuration time.Duration
	requestTimeout  time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. gatherer feeds /metrics; nil means
// the default Prometheus registry.
func NewHandler(services *service.Services, cfg config.StructuredConfig, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		validator:       validators.NewAccountValidator(),
		gatherer:        gatherer,
		secureCookies:   cfg.App.SecureCookies,
		sessionDuration: cfg.App.TokenDuration,
		requestTimeout:  cfg.Server.RequestTimeout,
		logger:          logger,
	}
}
