package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
	"github.com/recerqa/recerqa-ai/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place creates a pending order with a single line for product. Every call
// creates a new order, identical requests are not merged.
func (u *OrderUseCase) Place(ctx context.Context, customerID string, product model.Product, quantity int) (*model.Order, error) {
	if err := ValidateCustomerID(customerID); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domainErrors.ErrInvalidRequest)
	}

	order := model.Order{
		CustomerID: customerID,
		Status:     model.OrderStatusPending,
		Lines: []model.OrderLine{{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			UnitPrice:   product.UnitPrice,
		}},
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

// ListByCustomer returns orders with their lines, newest first.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	if err := ValidateCustomerID(customerID); err != nil {
		return nil, err
	}
	return u.orders.ListByCustomer(ctx, customerID)
}

// Summary aggregates customer orders for the dashboard.
func (u *OrderUseCase) Summary(ctx context.Context, customerID string) (*model.OrderSummary, error) {
	if err := ValidateCustomerID(customerID); err != nil {
		return nil, err
	}
	return u.orders.Summary(ctx, customerID)
}
