package model

import "time"

// OrderEventCreated is emitted once per placed order.
const OrderEventCreated = "order.created"

// OrderEvent is an outbox row waiting to be published to the broker.
type OrderEvent struct {
	ID        int64
	OrderID   int64
	Type      string
	Payload   []byte
	CreatedAt time.Time
}
