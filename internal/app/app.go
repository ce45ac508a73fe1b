package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/recerqa/recerqa-ai/internal/config"
	"github.com/recerqa/recerqa-ai/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewProcurementFacade,
		fx.Annotate(claimLease, fx.ResultTags(`name:"event_claim_lease"`)),
		newHTTPServer,
		newEventRelay,
	),
	fx.Invoke(registerLifecycle),
)

func claimLease(cfg *config.Config) time.Duration {
	return cfg.EventClaimLease
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

type workerParams struct {
	fx.In

	Facade   *ProcurementFacade
	Observer worker.PublishObserver `optional:"true"`
	Config   *config.Config
	Logger   *slog.Logger
}

func newEventRelay(p workerParams) *worker.EventRelay {
	return worker.NewEventRelay(
		p.Facade,
		p.Observer,
		p.Config.EventPollInterval,
		p.Config.EventBatchSize,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Relay      *worker.EventRelay
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	relayEnabled := p.Config.KafkaBrokers != ""

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting recerqa",
				slog.String("addr", p.Server.Addr),
				slog.Bool("event_relay", relayEnabled),
			)
			if relayEnabled {
				// The start context expires once startup finishes.
				p.Relay.Start(context.WithoutCancel(ctx))
			}
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			if relayEnabled {
				p.Relay.Stop()
			}
			p.Logger.Info("recerqa stopped")
			return nil
		},
	})
}
