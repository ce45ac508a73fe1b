package model

import "time"

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
)

// Order describes a customer purchase request.
type Order struct {
	ID         int64
	CustomerID string
	Status     OrderStatus
	CreatedAt  time.Time
	Lines      []OrderLine
}

// OrderLine is one product/quantity pair within an order.
type OrderLine struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// Total sums line amounts.
func (o Order) Total() float64 {
	var total float64
	for _, l := range o.Lines {
		total += float64(l.Quantity) * l.UnitPrice
	}
	return total
}

// OrderSummary aggregates a customer's orders for the dashboard.
type OrderSummary struct {
	TotalOrders   int64
	PendingOrders int64
	TotalQuantity int64
	TotalAmount   float64
}
