package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

// Publisher is implemented by the outbox writer and the broker producers.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

type EventNotifier struct {
	publisher   Publisher
	topicPrefix string
	clock       clock.Clock
}

var _ shared.Notifier = (*EventNotifier)(nil)

func NewEventNotifier(publisher Publisher, topicPrefix string, clk clock.Clock) *EventNotifier {
	return &EventNotifier{
		publisher:   publisher,
		topicPrefix: topicPrefix,
		clock:       clk,
	}
}

func (n *EventNotifier) SendBookingConfirmation(ctx context.Context, b *booking.Booking) error {
	return n.publish(ctx, newBookingEvent(EventBookingConfirmed, b, n.clock.Now()))
}

// SendBookingModification is sent once per update; batchAt is the shared timestamp
// of the modification rows written by that update.
func (n *EventNotifier) SendBookingModification(ctx context.Context, b *booking.Booking, batchAt time.Time) error {
	return n.publish(ctx, newBookingEvent(EventBookingModified, b, batchAt))
}

func (n *EventNotifier) SendBookingCancellation(ctx context.Context, b *booking.Booking, c *booking.Cancellation) error {
	evt := newBookingEvent(EventBookingCancelled, b, c.CancelledAt())
	evt.Cancellation = &CancellationInfo{
		Fee:      c.Fee().String(),
		Refunded: c.Refunded().String(),
		Reason:   c.Reason(),
	}
	return n.publish(ctx, evt)
}

func (n *EventNotifier) publish(ctx context.Context, evt BookingEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}
	headers := map[string]string{
		"content-type": "application/json",
		"event-type":   evt.Type,
	}
	if err := n.publisher.Publish(ctx, n.TopicFor(evt.Type), evt.BookingID.String(), payload, headers); err != nil {
		return errs.Wrapf(err, "failed to publish %s", evt.Type)
	}
	return nil
}

func (n *EventNotifier) TopicFor(eventType string) string {
	return n.topicPrefix + eventType
}

// LogPublisher only logs; used when no transport is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, key string, payload []byte, _ map[string]string) error {
	p.logger.InfoContext(ctx, "booking notification",
		"topic", topic,
		"key", key,
		"payload", string(payload))
	return nil
}
