package model

// Holding represents a dividend-paying stock position in the portfolio.
// Ticker is the unique key within a portfolio.
type Holding struct {
	Ticker        string  `json:"ticker"`
	Name          string  `json:"name"`
	Shares        float64 `json:"shares"`
	PurchasePrice float64 `json:"purchasePrice"` // Average purchase price per share
	CurrentPrice  float64 `json:"currentPrice"`  // Current market price per share
	Currency      string  `json:"currency"`
}

// TotalValue returns the current market value of the position.
func (h Holding) TotalValue() float64 {
	return h.Shares * h.CurrentPrice
}

// TotalCost returns the cost basis of the position.
func (h Holding) TotalCost() float64 {
	return h.Shares * h.PurchasePrice
}

// UnrealizedGain returns the unrealized gain or loss (value minus cost basis).
func (h Holding) UnrealizedGain() float64 {
	return h.TotalValue() - h.TotalCost()
}

// UnrealizedGainPct returns the unrealized gain as a percentage of cost basis.
// Returns 0 when the cost basis is 0.
func (h Holding) UnrealizedGainPct() float64 {
	cost := h.TotalCost()
	if cost == 0 {
		return 0
	}
	return h.UnrealizedGain() / cost * 100
}
