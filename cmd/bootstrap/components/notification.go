package components

import (
	"context"
	"log/slog"
	"strings"

	"hotel-booking/internal/infra/broker/amqp"
	"hotel-booking/internal/infra/broker/kafka"
	"hotel-booking/internal/infra/lock"
	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewPublisher,
		fx.Annotate(
			NewNotifier,
			fx.As(new(shared.Notifier)),
		),
		NewAssignmentLock,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) (notify.Publisher, error) {
	switch strings.ToLower(cfg.Notify.Transport) {
	case "kafka":
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.StopHook(producer.Close))
		return producer, nil
	case "amqp":
		publisher, err := amqp.NewPublisher(cfg.AMQP)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.StopHook(publisher.Close))
		return publisher, nil
	case "log":
		return notify.NewLogPublisher(logger), nil
	default:
		return notify.NewOutboxPublisher(uow, cfg.Notify.JobKind, clk), nil
	}
}

func NewNotifier(publisher notify.Publisher, cfg config.Config, clk clock.Clock) *notify.EventNotifier {
	return notify.NewEventNotifier(publisher, cfg.Notify.TopicPrefix, clk)
}

func NewAssignmentLock(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.AssignmentLock, error) {
	if cfg.App.LockDriver != "redis" {
		return shared.NewNoopLock(), nil
	}
	client, err := lock.NewRedisClient(cfg.Redis, false)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("using redis assignment lock", "addr", cfg.Redis.Addr)
	return lock.NewRedisLock(client, cfg.Booking.LockTTL), nil
}
