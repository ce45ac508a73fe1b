package model

// ChatOutcome describes which branch of the chat pipeline produced a reply.
type ChatOutcome string

const (
	ChatOutcomeOrderPlaced     ChatOutcome = "order_placed"
	ChatOutcomeProductNotFound ChatOutcome = "product_not_found"
	ChatOutcomeConversation    ChatOutcome = "conversation"
	ChatOutcomeStoreError      ChatOutcome = "store_error"
	ChatOutcomeGenerationError ChatOutcome = "generation_error"
)

// ChatReply is returned to the customer for a chat message.
type ChatReply struct {
	Outcome ChatOutcome
	Text    string
	OrderID int64
}

// NegotiationRequest carries the terms a buyer wants to propose to a supplier.
type NegotiationRequest struct {
	ProductName  string
	Quantity     int
	CurrentPrice float64
	TargetPrice  float64
	DeliveryDate string
	Notes        string
}
