package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/recerqa/recerqa-ai/internal/config"
)

// Module provides the catalog cache.
var Module = fx.Options(
	fx.Provide(newCache),
	fx.Invoke(registerLifecycle),
)

type cacheParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// newCache falls back to NopCache when Redis is not configured or not
// reachable, catalog lookups then go straight to Postgres.
func newCache(p cacheParams) Cache {
	if p.Config.RedisAddr == "" {
		return NopCache{}
	}
	c, err := New(p.Ctx, p.Config.RedisAddr, p.Config.CatalogCacheTTL, p.Logger)
	if err != nil {
		p.Logger.Warn("catalog cache disabled", slog.String("addr", p.Config.RedisAddr), slog.String("error", err.Error()))
		return NopCache{}
	}
	return c
}

func registerLifecycle(lc fx.Lifecycle, c Cache) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})
}
