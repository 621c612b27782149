// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/notifier"
	"github.com/MKhiriev/go-bienes-raices/models"
	"github.com/sethvargo/go-retry"
)

const (
	defaultRetryDelay = 500 * time.Millisecond
	drainTimeout      = 5 * time.Second
)

// ErrMailQueueFull is returned when a mail cannot be queued without blocking.
var ErrMailQueueFull = errors.New("mail queue is full")

type mailJob struct {
	ctx  context.Context
	kind models.MailKind
	mail models.AccountMail
}

// MailDispatcher is a [notifier.Notifier] that queues account mails and
// delivers them through another Notifier from its own goroutine.
//
// Failed deliveries are retried with exponential backoff and finally logged
// at Warn level; callers never see delivery errors.
type MailDispatcher struct {
	next       notifier.Notifier
	queue      chan mailJob
	maxRetries uint64
	retryDelay time.Duration
	logger     *logger.Logger
}

// NewMailDispatcher creates a dispatcher in front of next. Queue capacity and
// retry count come from cfg.
func NewMailDispatcher(next notifier.Notifier, cfg config.Notifier, log *logger.Logger) *MailDispatcher {
	return &MailDispatcher{
		next:       next,
		queue:      make(chan mailJob, cfg.QueueSize),
		maxRetries: cfg.MaxRetries,
		retryDelay: defaultRetryDelay,
		logger:     log,
	}
}

func (d *MailDispatcher) SendConfirmation(ctx context.Context, mail models.AccountMail) error {
	return d.enqueue(ctx, models.MailConfirmation, mail)
}

func (d *MailDispatcher) SendPasswordReset(ctx context.Context, mail models.AccountMail) error {
	return d.enqueue(ctx, models.MailPasswordReset, mail)
}

// enqueue keeps the request-scoped values of ctx (logger, trace id) but not
// its cancellation, since the request usually finishes first.
func (d *MailDispatcher) enqueue(ctx context.Context, kind models.MailKind, mail models.AccountMail) error {
	job := mailJob{ctx: context.WithoutCancel(ctx), kind: kind, mail: mail}

	select {
	case d.queue <- job:
		return nil
	default:
		logger.FromContext(ctx).Warn().
			Str("func", "*MailDispatcher.enqueue").
			Str("kind", string(kind)).
			Msg("mail queue is full, dropping mail")
		return ErrMailQueueFull
	}
}

// Run delivers queued mails until ctx is cancelled. Mails still queued at
// that point get a single delivery attempt each.
func (d *MailDispatcher) Run(ctx context.Context) {
	d.logger.Info().Str("func", "*MailDispatcher.Run").Msg("mail dispatcher started")
	defer d.logger.Info().Str("func", "*MailDispatcher.Run").Msg("mail dispatcher stopped")

	for {
		// cancellation wins over queued jobs
		if ctx.Err() != nil {
			d.drain()
			return
		}

		select {
		case job := <-d.queue:
			d.deliver(ctx, job, d.maxRetries)
		case <-ctx.Done():
			d.drain()
			return
		}
	}
}

func (d *MailDispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case job := <-d.queue:
			d.deliver(ctx, job, 0)
		default:
			return
		}
	}
}

// deliver sends job, retrying up to retries times while runCtx is alive.
func (d *MailDispatcher) deliver(runCtx context.Context, job mailJob, retries uint64) {
	log := logger.FromContext(job.ctx)

	ctx, cancel := context.WithCancel(job.ctx)
	defer cancel()
	stop := context.AfterFunc(runCtx, cancel)
	defer stop()

	backoff := retry.WithMaxRetries(retries, retry.NewExponential(d.retryDelay))
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := d.send(ctx, job); err != nil {
			log.Debug().Err(err).Str("func", "*MailDispatcher.deliver").Int("attempt", attempt).Msg("mail delivery attempt failed")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*MailDispatcher.deliver").
			Str("kind", string(job.kind)).
			Int("attempts", attempt).
			Msg("mail could not be delivered")
	}
}

func (d *MailDispatcher) send(ctx context.Context, job mailJob) error {
	switch job.kind {
	case models.MailPasswordReset:
		return d.next.SendPasswordReset(ctx, job.mail)
	default:
		return d.next.SendConfirmation(ctx, job.mail)
	}
}
