package di

import (
	"go.uber.org/fx"

	"github.com/recerqa/recerqa-ai/internal/adapter/broker"
	"github.com/recerqa/recerqa-ai/internal/adapter/llm"
	"github.com/recerqa/recerqa-ai/internal/app"
	"github.com/recerqa/recerqa-ai/internal/config"
	"github.com/recerqa/recerqa-ai/internal/logger"
	"github.com/recerqa/recerqa-ai/internal/metrics"
	"github.com/recerqa/recerqa-ai/internal/server/http/handlers"
	"github.com/recerqa/recerqa-ai/internal/server/http/middleware"
	"github.com/recerqa/recerqa-ai/internal/server/http/router"
	"github.com/recerqa/recerqa-ai/internal/storage/cache"
	"github.com/recerqa/recerqa-ai/internal/storage/postgres"
	"github.com/recerqa/recerqa-ai/internal/usecase"
	"github.com/recerqa/recerqa-ai/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		postgres.Module,
		cache.Module,
		llm.Module,
		broker.Module,
		usecase.Module,
		fx.Provide(
			func(c llm.Client) usecase.TextGenerator { return c },
			func(c cache.Cache) usecase.ProductCache { return c },
			func(m *metrics.Metrics) usecase.OutcomeRecorder { return m },
			func(m *metrics.Metrics) middleware.HTTPObserver { return m },
			func(m *metrics.Metrics) worker.PublishObserver { return m },
			func(p broker.Publisher) app.EventPublisher { return p },
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(f *app.ProcurementFacade) handlers.ProcurementFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
