package repository

import (
	"context"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create stores the order, its lines and an order.created event atomically.
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	Summary(ctx context.Context, customerID string) (*model.OrderSummary, error)
}
