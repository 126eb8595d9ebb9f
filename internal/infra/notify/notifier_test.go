//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/shared/money"
	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/infra/storage/memory"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic   string
	key     string
	payload []byte
	headers map[string]string
}

type recordingPublisher struct {
	messages []published
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, key string, payload []byte, headers map[string]string) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, published{topic: topic, key: key, payload: payload, headers: headers})
	return nil
}

func decode(t *testing.T, payload []byte) notify.BookingEvent {
	t.Helper()
	var evt notify.BookingEvent
	require.NoError(t, json.Unmarshal(payload, &evt))
	return evt
}

func TestEventNotifier(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 2, 8, 30, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	b, err := builder.NewBookingBuilder().WithTotalPrice(12000).BuildDomain()
	require.NoError(t, err)

	t.Run("confirmation", func(t *testing.T) {
		pub := &recordingPublisher{}
		n := notify.NewEventNotifier(pub, "hotel.", clk)

		require.NoError(t, n.SendBookingConfirmation(ctx, b))

		require.Len(t, pub.messages, 1)
		msg := pub.messages[0]
		assert.Equal(t, "hotel.booking.confirmed", msg.topic)
		assert.Equal(t, b.ID().String(), msg.key)
		assert.Equal(t, notify.EventBookingConfirmed, msg.headers["event-type"])

		evt := decode(t, msg.payload)
		assert.Equal(t, b.Number(), evt.BookingNumber)
		assert.Equal(t, "2025-01-10", evt.CheckIn)
		assert.Equal(t, "2025-01-12", evt.CheckOut)
		assert.Equal(t, "120.00", evt.TotalPrice)
		assert.Equal(t, []string{}, evt.Extras)
		assert.True(t, now.Equal(evt.OccurredAt))
		assert.Nil(t, evt.Cancellation)
	})

	t.Run("modification carries the batch timestamp", func(t *testing.T) {
		pub := &recordingPublisher{}
		n := notify.NewEventNotifier(pub, "", clk)
		batchAt := now.Add(-time.Minute)

		require.NoError(t, n.SendBookingModification(ctx, b, batchAt))

		require.Len(t, pub.messages, 1)
		assert.Equal(t, notify.EventBookingModified, pub.messages[0].topic)
		assert.True(t, batchAt.Equal(decode(t, pub.messages[0].payload).OccurredAt))
	})

	t.Run("cancellation includes fee and refund", func(t *testing.T) {
		pub := &recordingPublisher{}
		n := notify.NewEventNotifier(pub, "", clk)
		c, err := booking.NewCancellation(b, money.NewMoney(2400), "plans changed", uuid.New(), now)
		require.NoError(t, err)

		require.NoError(t, n.SendBookingCancellation(ctx, b, c))

		evt := decode(t, pub.messages[0].payload)
		require.NotNil(t, evt.Cancellation)
		assert.Equal(t, "24.00", evt.Cancellation.Fee)
		assert.Equal(t, "96.00", evt.Cancellation.Refunded)
		assert.Equal(t, "plans changed", evt.Cancellation.Reason)
	})

	t.Run("publisher failure is wrapped", func(t *testing.T) {
		cause := errors.New("broker unavailable")
		n := notify.NewEventNotifier(&recordingPublisher{err: cause}, "", clk)

		err := n.SendBookingConfirmation(ctx, b)

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), notify.EventBookingConfirmed)
	})
}

func TestOutboxPublisher_QueuesJob(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 2, 8, 30, 0, 0, time.UTC)
	store := memory.NewStore()
	pub := notify.NewOutboxPublisher(store, "", clock.NewMockClock(now))

	require.NoError(t, pub.Publish(ctx, "booking.confirmed", "key", []byte(`{}`), nil))

	jobs := store.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "email", jobs[0].Kind)
	assert.Equal(t, "booking.confirmed", jobs[0].Topic)
	assert.Equal(t, now, jobs[0].RunAt)
}
