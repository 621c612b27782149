// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-bienes-raices/models"
)

// AuthService is the account lifecycle: registration, e-mail confirmation,
// login and password reset, all driven by single-use tokens.
type AuthService interface {
	// Register creates an unverified account and mails its confirmation
	// link. Fails with ErrDuplicateEmail or ErrInvalidDataProvided.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// ConfirmAccount verifies the holder of token and consumes the token.
	// Fails with ErrInvalidToken.
	ConfirmAccount(ctx context.Context, token string) error

	// Authenticate checks the credentials of a verified account and issues a
	// signed session. Fails with ErrUserNotFound, ErrNotVerified or
	// ErrBadPassword.
	Authenticate(ctx context.Context, email, password string) (models.SessionToken, error)

	// RequestPasswordReset replaces the pending token of the account and
	// mails the reset link. Fails with ErrUserNotFound.
	RequestPasswordReset(ctx context.Context, email string) error

	// ValidateResetToken returns the holder of token without consuming it.
	// Fails with ErrInvalidToken.
	ValidateResetToken(ctx context.Context, token string) (models.User, error)

	// CompletePasswordReset stores newPassword for the holder of token and
	// consumes the token. Fails with ErrWeakPassword or ErrInvalidToken.
	CompletePasswordReset(ctx context.Context, token, newPassword string) error

	// ParseSessionToken validates a signed session issued by Authenticate.
	// Fails with ErrTokenIsExpiredOrInvalid.
	ParseSessionToken(ctx context.Context, signed string) (models.SessionToken, error)
}

// CatalogService serves the public side of the site: the reference data
// listings are filtered by and the published listings themselves.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListPrices(ctx context.Context) ([]models.Price, error)

	// Home returns the filter options and the latest houses and flats.
	Home(ctx context.Context) (models.HomePage, error)

	// PropertiesByCategory returns the category and its published
	// properties. Fails with ErrCategoryNotFound.
	PropertiesByCategory(ctx context.Context, categoryID int64) (models.Category, []models.Property, error)

	// Search returns the published properties whose title contains term.
	// A blank term fails with ErrEmptySearchTerm.
	Search(ctx context.Context, term string) ([]models.Property, error)
}

// SeedService loads and removes sample data.
type SeedService interface {
	Import(ctx context.Context, data SeedData) error
	Clear(ctx context.Context, data SeedData) error
}

// AppInfoService reports what is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper decorates an AuthService with additional behavior
// such as auditing.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
