// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/notifier"
	"github.com/MKhiriev/go-bienes-raices/internal/store"
	"github.com/MKhiriev/go-bienes-raices/internal/utils"
	"github.com/MKhiriev/go-bienes-raices/internal/validators"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// authService is the concrete implementation of AuthService.
//
// Every lookup-then-mutate step is delegated to one conditional statement of
// the UserRepository, so a token can be consumed at most once even under
// concurrent requests.
type authService struct {
	userRepository store.UserRepository
	notifier       notifier.Notifier
	validator      validators.Validator
	tokens         utils.TokenGenerator

	// bcryptCost is the work factor of new password hashes.
	bcryptCost int

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	// pendingTokenTTL bounds the age of confirmation and reset tokens.
	// Zero disables the check.
	pendingTokenTTL time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService over userRepository, mailing
// links through n. Security parameters come from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, n notifier.Notifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		notifier:        n,
		validator:       validators.NewAccountValidator(),
		tokens:          utils.NewUUIDGenerator(),
		bcryptCost:      cfg.BcryptCost,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		pendingTokenTTL: cfg.PendingTokenTTL,
		now:             time.Now,
		logger:          logger,
	}
}

// Register validates request, rejects taken emails and stores a new
// unverified account holding a fresh pending token. The confirmation mail is
// best effort: a delivery failure is logged and the account is kept.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := contextLogger(ctx, a.logger)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		return models.User{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hashPassword(request.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token := a.tokens.Generate()
	issuedAt := a.now().UTC()
	created, err := a.userRepository.CreateUser(ctx, models.User{
		Name:          request.Name,
		Email:         request.Email,
		PasswordHash:  hash,
		Verified:      false,
		Token:         &token,
		TokenIssuedAt: &issuedAt,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	mail := models.AccountMail{Name: created.Name, Email: created.Email, Token: token}
	if err = a.notifier.SendConfirmation(ctx, mail); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Register").Int64("user_id", created.UserID).Msg("confirmation mail was not sent")
	}

	return created, nil
}

// ConfirmAccount marks the token holder verified and clears the token.
func (a *authService) ConfirmAccount(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	_, err := a.userRepository.ConfirmByToken(ctx, token, a.issuedAfter())
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("account confirmation failed: %w", err)
	}

	return nil
}

// Authenticate checks credentials and issues a session. Unverified accounts
// are rejected before the password is compared.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.SessionToken, error) {
	if err := a.validator.Validate(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.SessionToken{}, ErrUserNotFound
		}
		return models.SessionToken{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.Verified {
		return models.SessionToken{}, ErrNotVerified
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.SessionToken{}, ErrBadPassword
		}
		return models.SessionToken{}, fmt.Errorf("password comparison failed: %w", err)
	}

	session, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Name, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return session, nil
}

// RequestPasswordReset stores a fresh token for the account with email and
// mails the reset link. The verified flag is left as it is.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	log := contextLogger(ctx, a.logger)

	if err := a.validator.Validate(ctx, models.ForgotPasswordRequest{Email: email}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token := a.tokens.Generate()
	user, err := a.userRepository.ReplaceTokenByEmail(ctx, email, token, a.now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("password reset request failed: %w", err)
	}

	mail := models.AccountMail{Name: user.Name, Email: user.Email, Token: token}
	if err = a.notifier.SendPasswordReset(ctx, mail); err != nil {
		log.Warn().Err(err).Str("func", "*authService.RequestPasswordReset").Int64("user_id", user.UserID).Msg("password reset mail was not sent")
	}

	return nil
}

// ValidateResetToken looks the token holder up without consuming the token.
func (a *authService) ValidateResetToken(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrInvalidToken
	}

	user, err := a.userRepository.FindUserByToken(ctx, token, a.issuedAfter())
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return models.User{}, ErrInvalidToken
		}
		return models.User{}, fmt.Errorf("token lookup failed: %w", err)
	}

	return user, nil
}

// CompletePasswordReset rejects short passwords before touching the store,
// then replaces the hash and clears the token in one step.
func (a *authService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	if err := a.validator.Validate(ctx, models.NewPasswordRequest{Password: newPassword}); err != nil {
		return fmt.Errorf("%w: %w", ErrWeakPassword, err)
	}

	if token == "" {
		return ErrInvalidToken
	}

	hash, err := a.hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWeakPassword, err)
	}

	_, err = a.userRepository.ResetPasswordByToken(ctx, token, hash, a.issuedAfter())
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("password reset failed: %w", err)
	}

	return nil
}

// ParseSessionToken validates signature, issuer and expiry of signed.
// Any failure is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseSessionToken(ctx context.Context, signed string) (models.SessionToken, error) {
	session, err := utils.ValidateAndParseJWTToken(signed, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		contextLogger(ctx, a.logger).Debug().Err(err).Str("func", "*authService.ParseSessionToken").Msg("session rejected")
		return models.SessionToken{}, ErrTokenIsExpiredOrInvalid
	}

	return session, nil
}

// hashPassword salts and hashes password with bcrypt. bcrypt rejects
// passwords longer than 72 bytes.
func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// issuedAfter is the oldest pending token still accepted, or the zero time
// when tokens never expire.
func (a *authService) issuedAfter() time.Time {
	if a.pendingTokenTTL <= 0 {
		return time.Time{}
	}
	return a.now().UTC().Add(-a.pendingTokenTTL)
}
