package usecase

import "go.uber.org/fx"

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	fx.Annotate(NewRegexIntentExtractor, fx.As(new(IntentExtractor))),
	NewCatalogUseCase,
	NewOrderUseCase,
	NewConversationUseCase,
	NewChatUseCase,
	NewNegotiationUseCase,
	NewSuggestionUseCase,
)
