package dto

import "time"

// OrderLineResponse is one line of an order.
type OrderLineResponse struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// OrderResponse represents an order with its lines.
type OrderResponse struct {
	ID        int64               `json:"id"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	Total     float64             `json:"total"`
	Lines     []OrderLineResponse `json:"lines"`
}

// DashboardResponse summarises customer orders.
type DashboardResponse struct {
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalAmount   float64 `json:"totalAmount"`
}
