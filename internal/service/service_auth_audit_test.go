// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/utils"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// stubAuthService returns err from every operation.
type stubAuthService struct {
	err  error
	user models.User
}

func (s *stubAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) ConfirmAccount(ctx context.Context, token string) error {
	return s.err
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (models.SessionToken, error) {
	return models.SessionToken{UserID: s.user.UserID}, s.err
}

func (s *stubAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return s.err
}

func (s *stubAuthService) ValidateResetToken(ctx context.Context, token string) (models.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	return s.err
}

func (s *stubAuthService) ParseSessionToken(ctx context.Context, signed string) (models.SessionToken, error) {
	return models.SessionToken{}, s.err
}

func newAudited(t *testing.T, inner AuthService, log *logger.Logger) (AuthService, *AuditMetrics) {
	t.Helper()

	metrics, err := NewAuditMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	return NewAuditedAuthService(metrics, "fp-key", log).Wrap(inner), metrics
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeOK},
		{ErrDuplicateEmail, "duplicate_email"},
		{ErrInvalidToken, "invalid_token"},
		{ErrUserNotFound, "user_not_found"},
		{ErrNotVerified, "not_verified"},
		{ErrBadPassword, "bad_password"},
		{fmt.Errorf("%w: too short", ErrWeakPassword), "weak_password"},
		{fmt.Errorf("%w: bad email", ErrInvalidDataProvided), "invalid_data"},
		{ErrTokenIsExpiredOrInvalid, "invalid_session"},
		{errors.New("connection reset"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}

func TestNewAuditMetrics_DoubleRegistrationReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := NewAuditMetrics(reg)
	require.NoError(t, err)

	second, err := NewAuditMetrics(reg)
	require.NoError(t, err)

	assert.Same(t, first.Events, second.Events)
	assert.Same(t, first.Duration, second.Duration)

	second.Events.WithLabelValues(OpRegister, OutcomeOK).Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(first.Events.WithLabelValues(OpRegister, OutcomeOK)))
}

func TestNewAuditMetrics_ConflictingCollectorFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "bienes_raices",
		Name:      "account_events_total",
		Help:      "Account lifecycle operations by outcome.",
	}, []string{"operation", "outcome"})))

	_, err := NewAuditMetrics(reg)
	assert.Error(t, err)
}

func TestNewAuditMetrics_NilRegisterer(t *testing.T) {
	m, err := NewAuditMetrics(nil)

	require.NoError(t, err)
	assert.NotNil(t, m.Events)
}

func TestAuditedAuthService_CountsOutcomes(t *testing.T) {
	inner := &stubAuthService{}
	svc, metrics := newAudited(t, inner, logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.ConfirmAccount(ctx, "t"))

	inner.err = ErrInvalidToken
	assert.ErrorIs(t, svc.ConfirmAccount(ctx, "t"), ErrInvalidToken)
	assert.ErrorIs(t, svc.ConfirmAccount(ctx, "t"), ErrInvalidToken)

	inner.err = ErrBadPassword
	_, err := svc.Authenticate(ctx, "ana@x.com", "wrong")
	assert.ErrorIs(t, err, ErrBadPassword)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Events.WithLabelValues(OpConfirmAccount, OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Events.WithLabelValues(OpConfirmAccount, "invalid_token")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Events.WithLabelValues(OpAuthenticate, "bad_password")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.Duration))
}

func TestAuditedAuthService_PassesResultsThrough(t *testing.T) {
	inner := &stubAuthService{user: models.User{UserID: 42, Name: "Ana"}}
	svc, _ := newAudited(t, inner, logger.Nop())

	user, err := svc.Register(context.Background(), models.RegisterRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)

	found, err := svc.ValidateResetToken(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)
}

func TestAuditedAuthService_LogsFingerprintNotToken(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	svc, _ := newAudited(t, &stubAuthService{err: ErrInvalidToken}, log)

	_ = svc.ConfirmAccount(context.Background(), "3f1c9d2e-secret-token")

	out := buf.String()
	assert.NotContains(t, out, "3f1c9d2e-secret-token")
	assert.Contains(t, out, utils.TokenFingerprint("3f1c9d2e-secret-token", "fp-key"))
	assert.Contains(t, out, `"outcome":"invalid_token"`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestAuditedAuthService_InternalErrorsLoggedAtError(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	svc, _ := newAudited(t, &stubAuthService{err: errors.New("db gone")}, log)

	_ = svc.RequestPasswordReset(context.Background(), "ana@x.com")

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"outcome":"error"`)
}
