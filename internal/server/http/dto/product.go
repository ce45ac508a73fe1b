package dto

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}

// SuggestRequest is the body of POST /api/suggest.
type SuggestRequest struct {
	Query string `json:"query" binding:"required"`
}

// SuggestResponse lists suggested catalog products.
type SuggestResponse struct {
	Products []ProductResponse `json:"products"`
}
