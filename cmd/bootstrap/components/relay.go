package components

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"hotel-booking/internal/infra/broker/amqp"
	"hotel-booking/internal/infra/broker/kafka"
	"hotel-booking/internal/infra/outbox"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var RelayModule = fx.Module("relay",
	fx.Provide(
		NewRelayProducer,
		NewRelay,
	),
	fx.Invoke(startRelay),
)

func NewRelayProducer(lc fx.Lifecycle, cfg config.Config) (outbox.Producer, error) {
	if strings.ToLower(cfg.Relay.Broker) == "amqp" {
		publisher, err := amqp.NewPublisher(cfg.AMQP)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.StopHook(publisher.Close))
		return publisher, nil
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(producer.Close))
	return producer, nil
}

func NewRelay(pool uow.TxBeginner, producer outbox.Producer, cfg config.Config, clk clock.Clock, logger *slog.Logger) *outbox.Relay {
	return outbox.NewRelay(pool, producer, cfg.Relay, clk, logger)
}

func startRelay(lc fx.Lifecycle, relay *outbox.Relay, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("outbox relay stopped", "error", err.Error())
				}
			}()
			logger.Info("outbox relay started")
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info("outbox relay stopped")
			return nil
		},
	})
}
