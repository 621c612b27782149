// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bienes-raices/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
//
// Methods that take issuedAfter only match a pending token issued at or after
// that instant; the zero time disables the check.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with exactly this email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByToken returns the account holding this pending token or
	// [ErrTokenNotFound]. It never clears the token.
	FindUserByToken(ctx context.Context, token string, issuedAfter time.Time) (models.User, error)

	// Save writes every mutable field of user back by UserID.
	Save(ctx context.Context, user models.User) (models.User, error)

	// ConfirmByToken marks the token holder verified and clears the token in
	// one statement. Returns [ErrTokenNotFound] when no row matched.
	ConfirmByToken(ctx context.Context, token string, issuedAfter time.Time) (models.User, error)

	// ReplaceTokenByEmail stores a fresh pending token for the account with
	// this email. Returns [ErrNoUserWasFound] when no row matched.
	ReplaceTokenByEmail(ctx context.Context, email, token string, issuedAt time.Time) (models.User, error)

	// ResetPasswordByToken overwrites the password hash of the token holder
	// and clears the token in one statement. Returns [ErrTokenNotFound] when
	// no row matched.
	ResetPasswordByToken(ctx context.Context, token, passwordHash string, issuedAfter time.Time) (models.User, error)

	// DeleteUsersByEmail removes the accounts with the given emails and
	// returns how many rows were deleted.
	DeleteUsersByEmail(ctx context.Context, emails []string) (int64, error)
}

// CatalogRepository persists the reference data listings are filtered by.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListPrices(ctx context.Context) ([]models.Price, error)

	// FindCategory returns the category with this ID or [ErrCategoryNotFound].
	FindCategory(ctx context.Context, id int64) (models.Category, error)

	// Import inserts the given names, skipping those that already exist.
	Import(ctx context.Context, categories, prices []string) error

	// Clear removes all categories and prices.
	Clear(ctx context.Context) error
}

// ErrorClassificator inspects driver errors.
// PropertyRepository reads published listings and loads sample ones.
type PropertyRepository interface {
	// ListPublishedByCategory returns the published properties of the
	// category, newest first. A zero limit returns all of them.
	ListPublishedByCategory(ctx context.Context, categoryID int64, limit uint64) ([]models.Property, error)

	// SearchPublished returns the published properties whose title contains
	// term, ignoring case.
	SearchPublished(ctx context.Context, term string) ([]models.Property, error)

	// CreateProperty inserts p unless its owner already has a property with
	// the same title. It reports whether a row was inserted.
	CreateProperty(ctx context.Context, p models.Property) (bool, error)

	// Clear removes every property.
	Clear(ctx context.Context) error
}

type ErrorClassificator interface {
	// Classify tells whether a failed operation may succeed when retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a UNIQUE constraint failure.
	IsUniqueViolation(err error) bool
}
