package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	if string(OrderStatusPending) != "Pending" {
		t.Fatalf("expected Pending, got %s", OrderStatusPending)
	}
}

func TestOrderTotal(t *testing.T) {
	cases := []struct {
		name  string
		order Order
		want  float64
	}{
		{"empty", Order{}, 0},
		{"single line", Order{Lines: []OrderLine{{Quantity: 5, UnitPrice: 120}}}, 600},
		{"two lines", Order{Lines: []OrderLine{{Quantity: 2, UnitPrice: 10.5}, {Quantity: 1, UnitPrice: 4}}}, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.order.Total(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestConversationIntent(t *testing.T) {
	intent := Conversation()
	if intent.Kind != IntentConversation || intent.ProductName != "" || intent.Quantity != 0 {
		t.Fatalf("unexpected intent: %+v", intent)
	}
}
