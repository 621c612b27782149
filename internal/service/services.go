// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/notifier"
	"github.com/MKhiriev/go-bienes-raices/internal/store"
	"github.com/MKhiriev/go-bienes-raices/models"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. The AuthService is wrapped
// with auditing whose metrics are registered with reg.
func NewServices(storages *store.Storages, n notifier.Notifier, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, reg prometheus.Registerer, logger *logger.Logger) (*Services, error) {
	metrics, err := NewAuditMetrics(reg)
	if err != nil {
		return nil, err
	}

	authService := NewAuditedAuthService(metrics, cfg.App.TokenSignKey, logger).
		Wrap(NewAuthService(storages.UserRepository, n, cfg.App, logger))

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    authService,
		CatalogService: NewCatalogService(storages.CatalogRepository, storages.PropertyRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
