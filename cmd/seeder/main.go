// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command seeder loads or removes the sample catalog and accounts.
//
// Usage:
//
//	seeder -i [config flags]   import sample data
//	seeder -e [config flags]   delete sample data
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/service"
	"github.com/MKhiriev/go-bienes-raices/internal/store"
)

const (
	modeImport = "-i"
	modeDelete = "-e"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || (args[0] != modeImport && args[0] != modeDelete) {
		return fmt.Errorf("usage: seeder %s|%s [config flags]", modeImport, modeDelete)
	}
	mode := args[0]

	log := logger.NewConsoleLogger("bienes-raices-seeder")
	cfg, err := config.GetSeederConfig(args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	seeder := service.NewSeedService(storages, cfg.App.BcryptCost, log)

	switch mode {
	case modeImport:
		if err = seeder.Import(ctx, sampleData); err != nil {
			return err
		}
		log.Info().Msg("sample data imported")
	case modeDelete:
		if err = seeder.Clear(ctx, sampleData); err != nil {
			return err
		}
		log.Info().Msg("sample data deleted")
	}

	return nil
}
