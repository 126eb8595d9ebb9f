package notify

import (
	"context"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"
)

// OutboxPublisher queues messages as notification jobs; the relay ships them later.
type OutboxPublisher struct {
	uow   shared.UnitOfWork
	kind  string
	clock clock.Clock
}

func NewOutboxPublisher(uow shared.UnitOfWork, kind string, clk clock.Clock) *OutboxPublisher {
	if kind == "" {
		kind = "email"
	}
	return &OutboxPublisher{
		uow:   uow,
		kind:  kind,
		clock: clk,
	}
}

func (p *OutboxPublisher) Publish(ctx context.Context, topic string, _ string, payload []byte, _ map[string]string) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, p.kind, topic, payload, p.clock.Now())
	})
}
