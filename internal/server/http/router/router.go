package router

import (
	"fmt"
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/recerqa/recerqa-ai/internal/server/http/handlers"
	"github.com/recerqa/recerqa-ai/internal/server/http/middleware"
)

// Params lists router dependencies.
type Params struct {
	fx.In

	Facade   handlers.ProcurementFacade
	Logger   *slog.Logger
	Observer middleware.HTTPObserver
	Gatherer prometheus.Gatherer
	Limiter  *middleware.RateLimiter

	// TrustedProxies may set X-Forwarded-For. Empty means the peer address is the client IP.
	TrustedProxies []string `name:"trusted_proxies" optional:"true"`
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	if err := engine.SetTrustedProxies(p.TrustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Observer))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	chatHandler := handlers.NewChatHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)
	catalogHandler := handlers.NewCatalogHandler(p.Facade)
	negotiationHandler := handlers.NewNegotiationHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	chat := api.Group("")
	chat.Use(middleware.RateLimit(p.Limiter))
	chat.POST("/chat-order", chatHandler.Chat)
	chat.POST("/voice-order", chatHandler.Voice)

	api.GET("/orders", orderHandler.List)
	api.GET("/dashboard", orderHandler.Dashboard)
	api.GET("/products", catalogHandler.List)
	api.POST("/suggest", catalogHandler.Suggest)
	api.POST("/negotiate", negotiationHandler.Draft)

	return engine, nil
}
