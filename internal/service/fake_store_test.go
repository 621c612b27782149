// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-bienes-raices/internal/store"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// memUserRepository is an in-memory store.UserRepository with the same
// conditional semantics as the SQL commands.
type memUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: map[int64]models.User{}}
}

func (r *memUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	user.UserID = r.nextID
	r.users[user.UserID] = user
	return user, nil
}

func (r *memUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (r *memUserRepository) FindUserByToken(ctx context.Context, token string, issuedAfter time.Time) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byToken(token, issuedAfter)
	if !ok {
		return models.User{}, store.ErrTokenNotFound
	}
	return u, nil
}

func (r *memUserRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserID]; !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	r.users[user.UserID] = user
	return user, nil
}

func (r *memUserRepository) ConfirmByToken(ctx context.Context, token string, issuedAfter time.Time) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byToken(token, issuedAfter)
	if !ok {
		return models.User{}, store.ErrTokenNotFound
	}
	u.Verified = true
	u.Token, u.TokenIssuedAt = nil, nil
	r.users[u.UserID] = u
	return u, nil
}

func (r *memUserRepository) ReplaceTokenByEmail(ctx context.Context, email, token string, issuedAt time.Time) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.users {
		if u.Email == email {
			u.Token, u.TokenIssuedAt = &token, &issuedAt
			r.users[id] = u
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (r *memUserRepository) ResetPasswordByToken(ctx context.Context, token, passwordHash string, issuedAfter time.Time) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byToken(token, issuedAfter)
	if !ok {
		return models.User{}, store.ErrTokenNotFound
	}
	u.PasswordHash = passwordHash
	u.Token, u.TokenIssuedAt = nil, nil
	r.users[u.UserID] = u
	return u, nil
}

func (r *memUserRepository) DeleteUsersByEmail(ctx context.Context, emails []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for _, email := range emails {
		for id, u := range r.users {
			if u.Email == email {
				delete(r.users, id)
				deleted++
			}
		}
	}
	return deleted, nil
}

// countByEmail is used by tests to inspect the store directly.
func (r *memUserRepository) countByEmail(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, u := range r.users {
		if u.Email == email {
			n++
		}
	}
	return n
}

func (r *memUserRepository) byToken(token string, issuedAfter time.Time) (models.User, bool) {
	for _, u := range r.users {
		if u.PendingToken() != token {
			continue
		}
		if !issuedAfter.IsZero() && (u.TokenIssuedAt == nil || u.TokenIssuedAt.Before(issuedAfter)) {
			continue
		}
		return u, true
	}
	return models.User{}, false
}

// outbox is a notifier.Notifier that keeps every mail it is given.
type outbox struct {
	mu            sync.Mutex
	confirmations []models.AccountMail
	resets        []models.AccountMail
	err           error
}

func (o *outbox) SendConfirmation(ctx context.Context, mail models.AccountMail) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.confirmations = append(o.confirmations, mail)
	return o.err
}

func (o *outbox) SendPasswordReset(ctx context.Context, mail models.AccountMail) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resets = append(o.resets, mail)
	return o.err
}

func (o *outbox) lastConfirmation() models.AccountMail {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.confirmations) == 0 {
		return models.AccountMail{}
	}
	return o.confirmations[len(o.confirmations)-1]
}

func (o *outbox) lastReset() models.AccountMail {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.resets) == 0 {
		return models.AccountMail{}
	}
	return o.resets[len(o.resets)-1]
}
