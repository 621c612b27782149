// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-bienes-raices/internal/logger"
)

// contextLogger returns the request logger carried by ctx, or fallback when
// ctx has none. Calls outside a request (the seeder, background jobs) log
// through the service's own logger.
func contextLogger(ctx context.Context, fallback *logger.Logger) *logger.Logger {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled && fallback != nil {
		return fallback
	}
	return log
}
