// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It works against the "users" table of either supported dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser persists a new user record and returns it with server-assigned
// fields (UserID, CreatedAt, UpdatedAt).
//
// A UNIQUE violation on email is reported as [ErrEmailAlreadyExists]; any
// other driver error is wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertUserQuery(user, r.now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.queryUser(ctx, query, args)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Info().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the account whose email equals email exactly.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := r.db.selectUserQuery(sq.Eq{"email": email})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.queryUser(ctx, query, args)
	return user, r.mapError(ctx, "*userRepository.FindUserByEmail", err, ErrNoUserWasFound)
}

// FindUserByToken retrieves the holder of a pending token. An empty token
// never matches.
func (r *userRepository) FindUserByToken(ctx context.Context, token string, issuedAfter time.Time) (models.User, error) {
	if token == "" {
		return models.User{}, ErrTokenNotFound
	}

	query, args, err := r.db.selectUserQuery(tokenPredicate(token, issuedAfter))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.queryUser(ctx, query, args)
	return user, r.mapError(ctx, "*userRepository.FindUserByToken", err, ErrTokenNotFound)
}

// Save writes every mutable field of user back to its row.
func (r *userRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := r.db.saveUserQuery(user, r.now())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := r.queryUser(ctx, query, args)
	if err != nil && r.db.isUniqueViolation(err) {
		return models.User{}, ErrEmailAlreadyExists
	}
	return saved, r.mapError(ctx, "*userRepository.Save", err, ErrNoUserWasFound)
}

// ConfirmByToken verifies the token holder and clears the token.
func (r *userRepository) ConfirmByToken(ctx context.Context, token string, issuedAfter time.Time) (models.User, error) {
	if token == "" {
		return models.User{}, ErrTokenNotFound
	}

	query, args, err := r.db.confirmByTokenQuery(token, issuedAfter, r.now())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.queryUser(ctx, query, args)
	return user, r.mapError(ctx, "*userRepository.ConfirmByToken", err, ErrTokenNotFound)
}

// ReplaceTokenByEmail stores a fresh pending token. The verified flag is
// left untouched.
func (r *userRepository) ReplaceTokenByEmail(ctx context.Context, email, token string, issuedAt time.Time) (models.User, error) {
	query, args, err := r.db.replaceTokenByEmailQuery(email, token, issuedAt, r.now())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.queryUser(ctx, query, args)
	return user, r.mapError(ctx, "*userRepository.ReplaceTokenByEmail", err, ErrNoUserWasFound)
}

// ResetPasswordByToken stores passwordHash for the token holder and clears
// the token.
func (r *userRepository) ResetPasswordByToken(ctx context.Context, token, passwordHash string, issuedAfter time.Time) (models.User, error) {
	if token == "" {
		return models.User{}, ErrTokenNotFound
	}

	query, args, err := r.db.resetPasswordByTokenQuery(token, passwordHash, issuedAfter, r.now())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.queryUser(ctx, query, args)
	return user, r.mapError(ctx, "*userRepository.ResetPasswordByToken", err, ErrTokenNotFound)
}

// DeleteUsersByEmail removes the listed accounts.
func (r *userRepository) DeleteUsersByEmail(ctx context.Context, emails []string) (int64, error) {
	if len(emails) == 0 {
		return 0, nil
	}

	query, args, err := r.db.deleteUsersByEmailQuery(emails)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUsersByEmail").Msg("error deleting users")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}

// queryUser runs a single-row statement returning userColumns.
func (r *userRepository) queryUser(ctx context.Context, query string, args []any) (models.User, error) {
	var user models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		var err error
		user, err = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	return user, err
}

// mapError turns sql.ErrNoRows into notFound and wraps anything else.
func (r *userRepository) mapError(ctx context.Context, fn string, err, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("unexpected DB error")
	return fmt.Errorf("unexpected DB error: %w", err)
}
