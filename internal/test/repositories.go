package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

// ProductRepositoryStub serves products from memory.
type ProductRepositoryStub struct {
	Products []model.Product
	Err      error
	Lookups  int
}

// GetByName returns the product with exactly matching name.
func (s *ProductRepositoryStub) GetByName(ctx context.Context, name string) (*model.Product, error) {
	s.Lookups++
	if s.Err != nil {
		return nil, s.Err
	}
	var found []model.Product
	for _, p := range s.Products {
		if p.Name == name {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return nil, domainErrors.ErrNotFound
	case 1:
		return &found[0], nil
	default:
		return nil, domainErrors.ErrAmbiguousProduct
	}
}

// List returns every stored product.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Product(nil), s.Products...), nil
}

// OrderRepositoryStub keeps created orders in memory.
type OrderRepositoryStub struct {
	CreateFn  func(context.Context, model.Order) (*model.Order, error)
	ListFn    func(context.Context, string) ([]model.Order, error)
	SummaryFn func(context.Context, string) (*model.OrderSummary, error)
	Err       error

	mu      sync.Mutex
	Orders  []model.Order
	Next    int64
	NextRow int64
}

// Create stores order assigning order and line identifiers.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Next++
	order.ID = s.Next
	order.CreatedAt = time.Now()
	lines := make([]model.OrderLine, len(order.Lines))
	for i, l := range order.Lines {
		s.NextRow++
		l.ID = s.NextRow
		l.OrderID = order.ID
		lines[i] = l
	}
	order.Lines = lines
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// ListByCustomer returns stored orders of customer, newest first.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, customerID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.Order
	for i := len(s.Orders) - 1; i >= 0; i-- {
		if s.Orders[i].CustomerID == customerID {
			result = append(result, s.Orders[i])
		}
	}
	return result, nil
}

// Summary aggregates stored orders of customer.
func (s *OrderRepositoryStub) Summary(ctx context.Context, customerID string) (*model.OrderSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, customerID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := &model.OrderSummary{}
	for _, o := range s.Orders {
		if o.CustomerID != customerID {
			continue
		}
		summary.TotalOrders++
		if o.Status == model.OrderStatusPending {
			summary.PendingOrders++
		}
		for _, l := range o.Lines {
			summary.TotalQuantity += int64(l.Quantity)
		}
		summary.TotalAmount += o.Total()
	}
	return summary, nil
}

// Count returns number of stored orders.
func (s *OrderRepositoryStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Orders)
}

// EventRepositoryStub hands out configured event batches.
type EventRepositoryStub struct {
	ClaimFn   func(context.Context, int, time.Duration) ([]model.OrderEvent, error)
	PublishFn func(context.Context, int64) error

	mu        sync.Mutex
	Batches   [][]model.OrderEvent
	Published []int64
	calls     int
}

// ClaimBatch returns next configured batch or nothing.
func (s *EventRepositoryStub) ClaimBatch(ctx context.Context, limit int, lease time.Duration) ([]model.OrderEvent, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, limit, lease)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls < len(s.Batches) {
		batch := s.Batches[s.calls]
		s.calls++
		return batch, nil
	}
	return nil, nil
}

// MarkPublished records published event ids.
func (s *EventRepositoryStub) MarkPublished(ctx context.Context, id int64) error {
	if s.PublishFn != nil {
		return s.PublishFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Published = append(s.Published, id)
	return nil
}

// PublishedIDs returns a copy of recorded ids.
func (s *EventRepositoryStub) PublishedIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.Published...)
}
