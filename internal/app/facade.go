package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/fx"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
	"github.com/recerqa/recerqa-ai/internal/domain/repository"
	"github.com/recerqa/recerqa-ai/internal/usecase"
)

// EventPublisher hands order events to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, event model.OrderEvent) error
}

// HealthChecker reports database connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// FacadeParams lists dependencies of ProcurementFacade.
type FacadeParams struct {
	fx.In

	Chat        *usecase.ChatUseCase
	Orders      *usecase.OrderUseCase
	Catalog     *usecase.CatalogUseCase
	Negotiation *usecase.NegotiationUseCase
	Suggestions *usecase.SuggestionUseCase
	Events      repository.EventRepository
	Publisher   EventPublisher
	Health      HealthChecker
	ClaimLease  time.Duration `name:"event_claim_lease"`
}

// ProcurementFacade is the single entry point used by HTTP handlers and the
// event relay.
type ProcurementFacade struct {
	chat        *usecase.ChatUseCase
	orders      *usecase.OrderUseCase
	catalog     *usecase.CatalogUseCase
	negotiation *usecase.NegotiationUseCase
	suggestions *usecase.SuggestionUseCase
	events      repository.EventRepository
	publisher   EventPublisher
	health      HealthChecker
	claimLease  time.Duration
}

func NewProcurementFacade(p FacadeParams) *ProcurementFacade {
	return &ProcurementFacade{
		chat:        p.Chat,
		orders:      p.Orders,
		catalog:     p.Catalog,
		negotiation: p.Negotiation,
		suggestions: p.Suggestions,
		events:      p.Events,
		publisher:   p.Publisher,
		health:      p.Health,
		claimLease:  p.ClaimLease,
	}
}

func (f *ProcurementFacade) Chat(ctx context.Context, customerID, message string) (*model.ChatReply, error) {
	return f.chat.Handle(ctx, customerID, message)
}

func (f *ProcurementFacade) Orders(ctx context.Context, customerID string) ([]model.Order, error) {
	return f.orders.ListByCustomer(ctx, customerID)
}

func (f *ProcurementFacade) Dashboard(ctx context.Context, customerID string) (*model.OrderSummary, error) {
	summary, err := f.orders.Summary(ctx, customerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &model.OrderSummary{}, nil
		}
		return nil, err
	}
	return summary, nil
}

func (f *ProcurementFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *ProcurementFacade) Suggest(ctx context.Context, query string) ([]model.Product, error) {
	return f.suggestions.Suggest(ctx, query)
}

func (f *ProcurementFacade) Negotiate(ctx context.Context, req model.NegotiationRequest) (string, error) {
	return f.negotiation.Draft(ctx, req)
}

func (f *ProcurementFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

func (f *ProcurementFacade) PendingEvents(ctx context.Context, limit int) ([]model.OrderEvent, error) {
	return f.events.ClaimBatch(ctx, limit, f.claimLease)
}

func (f *ProcurementFacade) PublishEvent(ctx context.Context, event model.OrderEvent) error {
	return f.publisher.Publish(ctx, event)
}

func (f *ProcurementFacade) MarkEventPublished(ctx context.Context, id int64) error {
	return f.events.MarkPublished(ctx, id)
}
