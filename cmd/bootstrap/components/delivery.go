package components

import (
	"context"
	"log/slog"

	"laborlink/internal/delivery"
	"laborlink/internal/housekeeping"
	"laborlink/internal/pkg/clock"
	"laborlink/internal/pkg/config"
	"laborlink/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var DeliveryModule = fx.Module("delivery",
	fx.Provide(
		NewEmailSender,
		NewRealtimePublisher,
		NewPushGateway,
		NewBackoffPolicy,
		delivery.NewTask,
		NewDispatcher,
	),
	fx.Invoke(StartHousekeeping),
)

func NewEmailSender(cfg config.Config) delivery.EmailSender {
	return delivery.NewSMTPSender(cfg.SMTP)
}

func NewRealtimePublisher(rdb *redis.Client) delivery.Publisher {
	return delivery.NewRedisPublisher(rdb)
}

func NewPushGateway(cfg config.Config) delivery.PushGateway {
	return delivery.NewHTTPPushGateway(cfg.Push)
}

func NewBackoffPolicy(cfg config.Config) delivery.BackoffPolicy {
	return delivery.BackoffPolicy{
		MaxAttempts: cfg.Delivery.MaxAttempts,
		BaseDelay:   cfg.Delivery.BaseBackoff,
		CallTimeout: cfg.Delivery.CallTimeout,
	}
}

func NewDispatcher(lc fx.Lifecycle, task *delivery.Task, cfg config.Config, logger *slog.Logger) commands.Dispatcher {
	d := delivery.NewWorkerDispatcher(task, cfg.Delivery.Workers, cfg.Delivery.QueueSize, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			d.Stop()
			return nil
		},
	})

	return d
}

func StartHousekeeping(lc fx.Lifecycle, purger housekeeping.NotificationPurger, cfg config.Config, clk clock.Clock, logger *slog.Logger) {
	cleaner := housekeeping.NewCleaner(purger, cfg.Housekeeping, clk, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return cleaner.Start()
		},
		OnStop: func(_ context.Context) error {
			cleaner.Stop()
			return nil
		},
	})
}
