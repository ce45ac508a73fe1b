package dto

// NegotiateRequest is the body of POST /api/negotiate.
type NegotiateRequest struct {
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	CurrentPrice float64 `json:"currentPrice"`
	TargetPrice  float64 `json:"targetPrice"`
	DeliveryDate string  `json:"deliveryDate"`
	Notes        string  `json:"notes"`
}

// NegotiateResponse carries the drafted negotiation text.
type NegotiateResponse struct {
	Text string `json:"text"`
}
