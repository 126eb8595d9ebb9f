package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRelayNotConfigured = errs.New("outbox: relay missing dependencies")

type Producer interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

type JobStore interface {
	ClaimDue(ctx context.Context, limit int32) ([]query.NotificationJob, error)
	MarkSent(ctx context.Context, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string, retryAt *time.Time) error
}

// Relay drains queued notification jobs to a broker. Claimed rows stay locked until
// the batch transaction ends, so concurrent relays never send the same job.
type Relay struct {
	pool     uow.TxBeginner
	newStore func(db query.DBTX) JobStore
	producer Producer
	clock    clock.Clock
	logger   *slog.Logger

	interval    time.Duration
	batchSize   int32
	maxAttempts int32
	backoff     []time.Duration
}

func NewRelay(pool uow.TxBeginner, producer Producer, cfg config.RelayConfig, clk clock.Clock, logger *slog.Logger) *Relay {
	q := query.New()
	return &Relay{
		pool: pool,
		newStore: func(db query.DBTX) JobStore {
			return repository.NewNotificationRepository(q, db)
		},
		producer:    producer,
		clock:       clk,
		logger:      logger,
		interval:    cfg.Interval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxTries,
		backoff:     []time.Duration{time.Second, 5 * time.Second, 30 * time.Second, 2 * time.Minute},
	}
}

func (r *Relay) Run(ctx context.Context) error {
	if r.pool == nil || r.producer == nil {
		return ErrRelayNotConfigured
	}
	ticker := time.NewTicker(r.tick())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := r.ProcessOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				r.logger.ErrorContext(ctx, "outbox relay batch failed", "error", err.Error())
			}
		}
	}
}

// ProcessOnce ships one batch and returns how many jobs were sent.
func (r *Relay) ProcessOnce(ctx context.Context) (int, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, errs.Wrap(err, "outbox: begin failed")
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.WarnContext(ctx, "outbox rollback failed", "error", rbErr.Error())
		}
	}()

	store := r.newStore(tx)
	jobs, err := store.ClaimDue(ctx, r.limit())
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		headers := map[string]string{
			"content-type": "application/json",
			"job-kind":     job.Kind,
		}
		if pubErr := r.producer.Publish(ctx, job.Topic, job.ID.String(), job.Payload, headers); pubErr != nil {
			retryAt := r.nextRetry(job.Attempts)
			r.logger.WarnContext(ctx, "outbox publish failed",
				"job_id", job.ID.String(),
				"topic", job.Topic,
				"attempt", job.Attempts+1,
				"error", pubErr.Error())
			if err := store.MarkFailed(ctx, job.ID, pubErr.Error(), retryAt); err != nil {
				return sent, err
			}
			continue
		}
		if err := store.MarkSent(ctx, job.ID); err != nil {
			return sent, err
		}
		sent++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Wrap(err, "outbox: commit failed")
	}
	return sent, nil
}

// nextRetry returns nil once the job has used up its attempts.
func (r *Relay) nextRetry(attempts int32) *time.Time {
	if r.maxAttempts > 0 && attempts+1 >= r.maxAttempts {
		return nil
	}
	delay := 5 * time.Second
	if len(r.backoff) > 0 {
		idx := int(attempts)
		if idx >= len(r.backoff) {
			idx = len(r.backoff) - 1
		}
		delay = r.backoff[idx]
	}
	at := r.clock.Now().Add(delay)
	return &at
}

func (r *Relay) tick() time.Duration {
	if r.interval <= 0 {
		return 500 * time.Millisecond
	}
	return r.interval
}

func (r *Relay) limit() int32 {
	if r.batchSize <= 0 {
		return 50
	}
	return r.batchSize
}
