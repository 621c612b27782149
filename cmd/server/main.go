// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/handler"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/notifier"
	"github.com/MKhiriev/go-bienes-raices/internal/server"
	"github.com/MKhiriev/go-bienes-raices/internal/service"
	"github.com/MKhiriev/go-bienes-raices/internal/store"
	"github.com/MKhiriev/go-bienes-raices/internal/workers"
	"github.com/MKhiriev/go-bienes-raices/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("bienes-raices-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	// mails go out from a background queue unless it is disabled
	var (
		mailer     = notifier.New(cfg.Notifier, cfg.App.PublicURL, log)
		background = workers.NewWorkers()
	)
	if cfg.Notifier.QueueSize > 0 {
		dispatcher := workers.NewMailDispatcher(mailer, cfg.Notifier, log)
		mailer = dispatcher
		background = workers.NewWorkers(dispatcher)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	services, err := service.NewServices(storages, mailer, *cfg, buildInfo, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		stop()
	}

	background.Wait()
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
