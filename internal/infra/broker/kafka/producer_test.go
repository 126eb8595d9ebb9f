//go:build unit

package kafka_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/infra/broker/kafka"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent   []*sarama.ProducerMessage
	err    error
	closed bool
}

func (f *fakeSender) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	f.sent = append(f.sent, msg)
	return 0, int64(len(f.sent)), nil
}

func (f *fakeSender) Close() error {
	f.closed = true
	return nil
}

func TestProducer_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("message fields", func(t *testing.T) {
		sender := &fakeSender{}
		p := kafka.NewProducerWithSender(sender)

		err := p.Publish(ctx, "booking.confirmed", "booking-1", []byte(`{"a":1}`), map[string]string{"event-type": "booking.confirmed"})

		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		msg := sender.sent[0]
		assert.Equal(t, "booking.confirmed", msg.Topic)
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "booking-1", string(key))
		value, err := msg.Value.Encode()
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(value))
		require.Len(t, msg.Headers, 1)
		assert.Equal(t, "event-type", string(msg.Headers[0].Key))
	})

	t.Run("send error", func(t *testing.T) {
		cause := errors.New("leader not available")
		p := kafka.NewProducerWithSender(&fakeSender{err: cause})

		assert.ErrorIs(t, p.Publish(ctx, "t", "k", nil, nil), cause)
	})

	t.Run("cancelled context", func(t *testing.T) {
		sender := &fakeSender{}
		p := kafka.NewProducerWithSender(sender)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, p.Publish(cctx, "t", "k", nil, nil), context.Canceled)
		assert.Empty(t, sender.sent)
	})

	t.Run("close", func(t *testing.T) {
		sender := &fakeSender{}
		require.NoError(t, kafka.NewProducerWithSender(sender).Close())
		assert.True(t, sender.closed)
	})
}
