//go:build unit

package uow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
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
	txs      []*fakeTx
	beginErr error
}

func (p *fakePool) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	tx := &fakeTx{}
	p.txs = append(p.txs, tx)
	return tx, nil
}

func newTestUoW(pool TxBeginner, retries int) *PostgresUoW {
	u := NewPostgresUoW(pool, query.New(), config.BookingConfig{TxMaxRetries: retries}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	u.baseDelay = time.Millisecond
	return u
}

func TestPostgresUoW_Within(t *testing.T) {
	ctx := context.Background()
	serializationFailure := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	t.Run("commits on success", func(t *testing.T) {
		pool := &fakePool{}

		err := newTestUoW(pool, 3).Within(ctx, func(_ context.Context, tx shared.Tx) error {
			assert.NotNil(t, tx.Bookings())
			assert.Same(t, tx.Bookings(), tx.Bookings())
			return nil
		})

		require.NoError(t, err)
		require.Len(t, pool.txs, 1)
		assert.True(t, pool.txs[0].committed)
	})

	t.Run("retries a serialization failure", func(t *testing.T) {
		pool := &fakePool{}
		calls := 0

		err := newTestUoW(pool, 3).Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			if calls == 1 {
				return serializationFailure
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		require.Len(t, pool.txs, 2)
		assert.True(t, pool.txs[0].rolledBack)
		assert.True(t, pool.txs[1].committed)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		pool := &fakePool{}

		err := newTestUoW(pool, 2).Within(ctx, func(context.Context, shared.Tx) error {
			return serializationFailure
		})

		require.Error(t, err)
		assert.Len(t, pool.txs, 3)
		assert.True(t, errs.Is(err, errs.ErrConcurrencyConflict))
	})

	t.Run("domain errors are not retried", func(t *testing.T) {
		pool := &fakePool{}
		domainErr := errors.New("no room available")

		err := newTestUoW(pool, 3).Within(ctx, func(context.Context, shared.Tx) error {
			return domainErr
		})

		assert.ErrorIs(t, err, domainErr)
		require.Len(t, pool.txs, 1)
		assert.True(t, pool.txs[0].rolledBack)
	})

	t.Run("begin failure", func(t *testing.T) {
		pool := &fakePool{beginErr: errors.New("pool closed")}

		err := newTestUoW(pool, 3).Within(ctx, func(context.Context, shared.Tx) error { return nil })

		require.Error(t, err)
		assert.True(t, errs.Is(err, errTransactionBegin))
	})
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 4 {
		wait := calculateBackoff(attempt, base)
		minWait := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, minWait)
		assert.Less(t, wait, minWait+minWait/5+1)
	}
}
