//go:build unit

package outbox

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	outboxmock "hotel-booking/tests/mock/outbox"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakePool struct {
	tx *fakeTx
}

func (p *fakePool) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return p.tx, nil
}

var relayNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestRelay(t *testing.T, tx *fakeTx, store JobStore, producer Producer) *Relay {
	t.Helper()
	r := NewRelay(&fakePool{tx: tx}, producer, config.RelayConfig{BatchSize: 10, MaxTries: 5},
		clock.NewMockClock(relayNow), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.newStore = func(query.DBTX) JobStore { return store }
	return r
}

func TestRelay_ProcessOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("sent and failed jobs in one batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := outboxmock.NewMockJobStore(ctrl)
		producer := outboxmock.NewMockProducer(ctrl)
		tx := &fakeTx{}
		ok := query.NotificationJob{ID: uuid.New(), Kind: "email", Topic: "booking.confirmed", Payload: []byte(`{}`)}
		bad := query.NotificationJob{ID: uuid.New(), Kind: "email", Topic: "booking.cancelled", Payload: []byte(`{}`), Attempts: 1}

		store.EXPECT().ClaimDue(ctx, int32(10)).Return([]query.NotificationJob{ok, bad}, nil)
		producer.EXPECT().Publish(ctx, ok.Topic, ok.ID.String(), ok.Payload, gomock.Any()).Return(nil)
		store.EXPECT().MarkSent(ctx, ok.ID).Return(nil)
		producer.EXPECT().Publish(ctx, bad.Topic, bad.ID.String(), bad.Payload, gomock.Any()).Return(errors.New("broker down"))
		store.EXPECT().MarkFailed(ctx, bad.ID, "broker down", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, retryAt *time.Time) error {
				require.NotNil(t, retryAt)
				assert.Equal(t, relayNow.Add(5*time.Second), *retryAt)
				return nil
			})

		sent, err := newTestRelay(t, tx, store, producer).ProcessOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.True(t, tx.committed)
	})

	t.Run("last attempt parks the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := outboxmock.NewMockJobStore(ctrl)
		producer := outboxmock.NewMockProducer(ctrl)
		job := query.NotificationJob{ID: uuid.New(), Topic: "booking.modified", Attempts: 4}

		store.EXPECT().ClaimDue(ctx, int32(10)).Return([]query.NotificationJob{job}, nil)
		producer.EXPECT().Publish(ctx, job.Topic, job.ID.String(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
		store.EXPECT().MarkFailed(ctx, job.ID, "timeout", (*time.Time)(nil)).Return(nil)

		sent, err := newTestRelay(t, &fakeTx{}, store, producer).ProcessOnce(ctx)

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("claim failure rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := outboxmock.NewMockJobStore(ctrl)
		producer := outboxmock.NewMockProducer(ctrl)
		tx := &fakeTx{}
		store.EXPECT().ClaimDue(ctx, int32(10)).Return(nil, errors.New("db down"))

		_, err := newTestRelay(t, tx, store, producer).ProcessOnce(ctx)

		require.Error(t, err)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})
}

func TestRelay_BackoffCapsAtLastStep(t *testing.T) {
	r := NewRelay(nil, nil, config.RelayConfig{}, clock.NewMockClock(relayNow), slog.New(slog.NewTextHandler(io.Discard, nil)))

	at := r.nextRetry(10)

	require.NotNil(t, at)
	assert.Equal(t, relayNow.Add(2*time.Minute), *at)
	assert.Equal(t, int32(50), r.limit())
}

func TestRelay_RunRequiresDependencies(t *testing.T) {
	r := NewRelay(nil, nil, config.RelayConfig{}, clock.NewMockClock(relayNow), slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.ErrorIs(t, r.Run(context.Background()), ErrRelayNotConfigured)
}
