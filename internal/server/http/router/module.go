package router

import (
	"go.uber.org/fx"

	"github.com/recerqa/recerqa-ai/internal/config"
	"github.com/recerqa/recerqa-ai/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	newRateLimiter,
	fx.Annotate(trustedProxies, fx.ResultTags(`name:"trusted_proxies"`)),
	Setup,
)

func newRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.ChatRateLimit, cfg.ChatRateBurst)
}

func trustedProxies(cfg *config.Config) []string {
	return cfg.TrustedProxies
}
