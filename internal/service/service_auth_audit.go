// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/utils"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// Operation labels of the audit events.
const (
	OpRegister              = "register"
	OpConfirmAccount        = "confirm_account"
	OpAuthenticate          = "authenticate"
	OpRequestPasswordReset  = "request_password_reset"
	OpValidateResetToken    = "validate_reset_token"
	OpCompletePasswordReset = "complete_password_reset"
	OpParseSessionToken     = "parse_session_token"
)

// OutcomeOK labels a successful operation. Failed operations are labelled by
// [Outcome].
const OutcomeOK = "ok"

// outcomes maps the expected failures to their audit label. Anything else is
// an internal error.
var outcomes = []struct {
	err   error
	label string
}{
	{ErrDuplicateEmail, "duplicate_email"},
	{ErrInvalidToken, "invalid_token"},
	{ErrUserNotFound, "user_not_found"},
	{ErrNotVerified, "not_verified"},
	{ErrBadPassword, "bad_password"},
	{ErrWeakPassword, "weak_password"},
	{ErrInvalidDataProvided, "invalid_data"},
	{ErrTokenIsExpiredOrInvalid, "invalid_session"},
}

// Outcome returns the audit label of err.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	for _, o := range outcomes {
		if errors.Is(err, o.err) {
			return o.label
		}
	}
	return "error"
}

// AuditMetrics are the collectors updated by the audited AuthService.
type AuditMetrics struct {
	Events   *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewAuditMetrics creates the collectors and registers them with reg. A nil
// reg leaves them unregistered. When reg already holds collectors with the
// same descriptors those are reused, so several services built over one
// registry share their counters.
func NewAuditMetrics(reg prometheus.Registerer) (*AuditMetrics, error) {
	m := &AuditMetrics{
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bienes_raices",
			Name:      "account_events_total",
			Help:      "Account lifecycle operations by outcome.",
		}, []string{"operation", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bienes_raices",
			Name:      "account_operation_duration_seconds",
			Help:      "Duration of account lifecycle operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	if reg == nil {
		return m, nil
	}

	events, err := registerOrReuse(reg, m.Events)
	if err != nil {
		return nil, err
	}
	duration, err := registerOrReuse(reg, m.Duration)
	if err != nil {
		return nil, err
	}

	return &AuditMetrics{Events: events, Duration: duration}, nil
}

// registerOrReuse registers c, or returns the collector reg already holds
// under the same descriptor.
func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var already prometheus.AlreadyRegisteredError
	if !errors.As(err, &already) {
		return c, err
	}
	existing, ok := already.ExistingCollector.(C)
	if !ok {
		return c, fmt.Errorf("collector registered with another type: %w", err)
	}
	return existing, nil
}

// auditedAuthService records one audit event per call of the wrapped
// service: a log entry and the metrics in AuditMetrics. Tokens are logged
// only as keyed fingerprints.
type auditedAuthService struct {
	inner          AuthService
	metrics        *AuditMetrics
	fingerprintKey string
	logger         *logger.Logger
}

// NewAuditedAuthService returns an [AuthServiceWrapper] that audits every
// operation. fingerprintKey keys the token fingerprints written to the log.
func NewAuditedAuthService(metrics *AuditMetrics, fingerprintKey string, log *logger.Logger) AuthServiceWrapper {
	return &auditedAuthService{
		metrics:        metrics,
		fingerprintKey: fingerprintKey,
		logger:         log,
	}
}

func (s *auditedAuthService) Wrap(inner AuthService) AuthService {
	s.inner = inner
	return s
}

func (s *auditedAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	start := time.Now()
	user, err := s.inner.Register(ctx, request)
	s.record(ctx, OpRegister, start, err, withUserID(user.UserID))
	return user, err
}

func (s *auditedAuthService) ConfirmAccount(ctx context.Context, token string) error {
	start := time.Now()
	err := s.inner.ConfirmAccount(ctx, token)
	s.record(ctx, OpConfirmAccount, start, err, s.withToken(token))
	return err
}

func (s *auditedAuthService) Authenticate(ctx context.Context, email, password string) (models.SessionToken, error) {
	start := time.Now()
	session, err := s.inner.Authenticate(ctx, email, password)
	s.record(ctx, OpAuthenticate, start, err, withUserID(session.UserID))
	return session, err
}

func (s *auditedAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	start := time.Now()
	err := s.inner.RequestPasswordReset(ctx, email)
	s.record(ctx, OpRequestPasswordReset, start, err, nil)
	return err
}

func (s *auditedAuthService) ValidateResetToken(ctx context.Context, token string) (models.User, error) {
	start := time.Now()
	user, err := s.inner.ValidateResetToken(ctx, token)
	s.record(ctx, OpValidateResetToken, start, err, s.withToken(token))
	return user, err
}

func (s *auditedAuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	start := time.Now()
	err := s.inner.CompletePasswordReset(ctx, token, newPassword)
	s.record(ctx, OpCompletePasswordReset, start, err, s.withToken(token))
	return err
}

func (s *auditedAuthService) ParseSessionToken(ctx context.Context, signed string) (models.SessionToken, error) {
	start := time.Now()
	session, err := s.inner.ParseSessionToken(ctx, signed)
	s.record(ctx, OpParseSessionToken, start, err, nil)
	return session, err
}

func withUserID(userID int64) func(*zerolog.Event) *zerolog.Event {
	return func(e *zerolog.Event) *zerolog.Event {
		if userID == 0 {
			return e
		}
		return e.Int64("user_id", userID)
	}
}

func (s *auditedAuthService) withToken(token string) func(*zerolog.Event) *zerolog.Event {
	return func(e *zerolog.Event) *zerolog.Event {
		return e.Str("token_fp", utils.TokenFingerprint(token, s.fingerprintKey))
	}
}

// record updates the metrics and writes the audit entry. Expected outcomes
// are logged at Info, internal errors at Error. Session checks happen on
// every protected request and are logged at Debug.
func (s *auditedAuthService) record(ctx context.Context, op string, start time.Time, err error, fields func(*zerolog.Event) *zerolog.Event) {
	outcome := Outcome(err)

	if s.metrics != nil {
		s.metrics.Events.WithLabelValues(op, outcome).Inc()
		s.metrics.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}

	log := contextLogger(ctx, s.logger)

	var event *zerolog.Event
	switch {
	case outcome == "error":
		event = log.Error().Err(err)
	case op == OpParseSessionToken:
		event = log.Debug()
	default:
		event = log.Info()
	}

	if fields != nil {
		event = fields(event)
	}

	event.Str("func", "*auditedAuthService.record").
		Str("operation", op).
		Str("outcome", outcome).
		Msg("account event")
}
