package request

// CreateHoldingRequest represents the request body for adding a stock to the
// portfolio. Ticker, name, and shares are required; currency defaults to USD.
type CreateHoldingRequest struct {
	Ticker        string  `json:"ticker"`
	Name          string  `json:"name"`
	Shares        float64 `json:"shares"`
	PurchasePrice float64 `json:"purchasePrice"`
	CurrentPrice  float64 `json:"currentPrice"`
	Currency      string  `json:"currency,omitempty"`
}

// UpdateHoldingRequest represents the request body for editing a holding.
// All fields are optional (use pointers). Only provided fields will be updated.
type UpdateHoldingRequest struct {
	Name          *string  `json:"name,omitempty"`
	Shares        *float64 `json:"shares,omitempty"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty"`
	CurrentPrice  *float64 `json:"currentPrice,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
}
