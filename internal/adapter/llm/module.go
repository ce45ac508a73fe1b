package llm

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/recerqa/recerqa-ai/internal/config"
)

// Module exposes the configured text generation client to fx graph.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Invoke(registerLifecycle),
)

type clientParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.LLMProvider == config.ProviderGemini {
		return NewGeminiClient(p.Ctx, p.Config.LLMAPIKey, p.Config.LLMModel, p.Config.LLMTimeout, p.Logger)
	}
	return NewHTTPClient(p.Config.LLMBaseURL, p.Config.LLMAPIKey, p.Config.LLMModel, p.Config.LLMTimeout, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, client Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
