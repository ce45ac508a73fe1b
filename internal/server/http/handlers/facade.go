package handlers

import (
	"context"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

// ChatFacade runs customer messages through the order intent pipeline.
type ChatFacade interface {
	Chat(ctx context.Context, customerID, message string) (*model.ChatReply, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, customerID string) ([]model.Order, error)
	Dashboard(ctx context.Context, customerID string) (*model.OrderSummary, error)
}

// CatalogFacade provides catalog listing and suggestions.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Suggest(ctx context.Context, query string) ([]model.Product, error)
}

// NegotiationFacade drafts supplier negotiation text.
type NegotiationFacade interface {
	Negotiate(ctx context.Context, req model.NegotiationRequest) (string, error)
}

// HealthFacade reports readiness of backing services.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// ProcurementFacade aggregates the full set of operations used across handlers.
type ProcurementFacade interface {
	ChatFacade
	OrderFacade
	CatalogFacade
	NegotiationFacade
	HealthFacade
}
