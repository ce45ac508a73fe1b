package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

// ChatFacadeStub provides controllable behaviour for chat endpoints.
type ChatFacadeStub struct {
	ChatFn func(context.Context, string, string) (*model.ChatReply, error)

	mu    sync.Mutex
	Calls []ChatCall
}

// ChatCall stores arguments of a Chat invocation.
type ChatCall struct {
	CustomerID string
	Message    string
}

// Chat records the call and delegates to ChatFn or echoes a conversation reply.
func (s *ChatFacadeStub) Chat(ctx context.Context, customerID, message string) (*model.ChatReply, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, ChatCall{CustomerID: customerID, Message: message})
	s.mu.Unlock()

	if s.ChatFn != nil {
		return s.ChatFn(ctx, customerID, message)
	}
	return &model.ChatReply{Outcome: model.ChatOutcomeConversation, Text: "ok"}, nil
}

// LastCall returns the most recent Chat arguments.
func (s *ChatFacadeStub) LastCall() (ChatCall, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Calls) == 0 {
		return ChatCall{}, false
	}
	return s.Calls[len(s.Calls)-1], true
}

// OrderFacadeStub provides controllable behaviour for order and dashboard endpoints.
type OrderFacadeStub struct {
	OrdersFn    func(context.Context, string) ([]model.Order, error)
	DashboardFn func(context.Context, string) (*model.OrderSummary, error)
}

// Orders returns predefined orders for given customer.
func (s OrderFacadeStub) Orders(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, customerID)
	}
	return []model.Order{{
		ID:         1,
		CustomerID: customerID,
		Status:     model.OrderStatusPending,
		CreatedAt:  time.Unix(0, 0).UTC(),
		Lines:      []model.OrderLine{{ID: 1, OrderID: 1, ProductID: 1, ProductName: "ボルト", Quantity: 5, UnitPrice: 120}},
	}}, nil
}

// Dashboard returns configured summary or default data.
func (s OrderFacadeStub) Dashboard(ctx context.Context, customerID string) (*model.OrderSummary, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, customerID)
	}
	return &model.OrderSummary{TotalOrders: 1, PendingOrders: 1, TotalQuantity: 5, TotalAmount: 600}, nil
}

// CatalogFacadeStub simulates catalog listing and suggestions.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
	SuggestFn  func(context.Context, string) ([]model.Product, error)
}

// Products returns configured catalog.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "ボルト", UnitPrice: 120}}, nil
}

// Suggest returns configured suggestions.
func (s CatalogFacadeStub) Suggest(ctx context.Context, query string) ([]model.Product, error) {
	if s.SuggestFn != nil {
		return s.SuggestFn(ctx, query)
	}
	return []model.Product{{ID: 1, Name: "ボルト", UnitPrice: 120}}, nil
}

// NegotiationFacadeStub returns canned negotiation drafts.
type NegotiationFacadeStub struct {
	NegotiateFn func(context.Context, model.NegotiationRequest) (string, error)
}

// Negotiate delegates to NegotiateFn or returns fixed text.
func (s NegotiationFacadeStub) Negotiate(ctx context.Context, req model.NegotiationRequest) (string, error) {
	if s.NegotiateFn != nil {
		return s.NegotiateFn(ctx, req)
	}
	return "draft", nil
}

// HealthFacadeStub reports configured health.
type HealthFacadeStub struct {
	Err error
}

// Health returns configured error.
func (s HealthFacadeStub) Health(ctx context.Context) error {
	return s.Err
}

// EventFacadeStub mimics relay interactions with the procurement facade.
type EventFacadeStub struct {
	Batches   [][]model.OrderEvent
	PendingFn func(context.Context, int) ([]model.OrderEvent, error)
	PublishFn func(context.Context, model.OrderEvent) error
	MarkFn    func(context.Context, int64) error

	mu        sync.Mutex
	Published []model.OrderEvent
	Marked    []int64
	calls     int32
}

// Lock exposes internal mutex for external synchronization.
func (s *EventFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *EventFacadeStub) Unlock() { s.mu.Unlock() }

// PendingEvents returns batches from configured queue.
func (s *EventFacadeStub) PendingEvents(ctx context.Context, limit int) ([]model.OrderEvent, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.calls, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	return nil, nil
}

// PublishEvent records event unless PublishFn fails it.
func (s *EventFacadeStub) PublishEvent(ctx context.Context, event model.OrderEvent) error {
	if s.PublishFn != nil {
		if err := s.PublishFn(ctx, event); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Published = append(s.Published, event)
	return nil
}

// MarkEventPublished records marked ids.
func (s *EventFacadeStub) MarkEventPublished(ctx context.Context, id int64) error {
	if s.MarkFn != nil {
		return s.MarkFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Marked = append(s.Marked, id)
	return nil
}

// PublishObserverStub counts publish attempts.
type PublishObserverStub struct {
	successes int32
	failures  int32
}

// EventPublished counts attempt by result.
func (s *PublishObserverStub) EventPublished(err error) {
	if err != nil {
		atomic.AddInt32(&s.failures, 1)
		return
	}
	atomic.AddInt32(&s.successes, 1)
}

// Successes returns number of successful publishes.
func (s *PublishObserverStub) Successes() int { return int(atomic.LoadInt32(&s.successes)) }

// Failures returns number of failed publishes.
func (s *PublishObserverStub) Failures() int { return int(atomic.LoadInt32(&s.failures)) }
