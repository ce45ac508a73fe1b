package broker

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/recerqa/recerqa-ai/internal/config"
)

// Module provides the order event publisher.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) (Publisher, error) {
	if p.Config.KafkaBrokers == "" {
		p.Logger.Info("kafka brokers not configured, order events stay in outbox")
		return NopPublisher{}, nil
	}
	return NewKafkaPublisher(p.Config.KafkaBrokers, p.Config.KafkaTopic, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, publisher Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
}
