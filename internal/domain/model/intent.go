package model

// IntentKind classifies a chat message.
type IntentKind string

const (
	IntentConversation IntentKind = "conversation"
	IntentOrder        IntentKind = "order"
)

// Intent is the result of classifying a chat message. ProductName and Quantity
// are only set for IntentOrder.
type Intent struct {
	Kind        IntentKind
	ProductName string
	Quantity    int
}

// Conversation returns an intent without structured fields.
func Conversation() Intent {
	return Intent{Kind: IntentConversation}
}
