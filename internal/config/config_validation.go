// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// Err*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateSeeder(); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: session token settings are incomplete", ErrInvalidAppConfigs)
	}
	if cfg.App.PublicURL == "" || cfg.App.PendingTokenTTL < 0 {
		return fmt.Errorf("%w: public URL or pending token TTL", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.Notifier.QueueSize < 0 {
		return fmt.Errorf("%w: negative queue size", ErrInvalidNotifierConfigs)
	}

	return nil
}

// validateSeeder checks only what the seeder uses: the database and the
// bcrypt cost of sample passwords.
func (cfg *StructuredConfig) validateSeeder() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	return nil
}
