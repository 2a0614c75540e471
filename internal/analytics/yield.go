package analytics

import "github.com/dstam/dividend-tracker/internal/model"

// DividendYield returns the dividend yield of a holding as a percentage:
// annual dividend per share divided by current price. Returns 0 when the
// current price is 0.
func DividendYield(h model.Holding, annualDividendPerShare float64) float64 {
	if h.CurrentPrice == 0 {
		return 0
	}
	return annualDividendPerShare / h.CurrentPrice * 100
}

// PortfolioDividendYield returns the value-weighted average dividend yield of
// the portfolio as a percentage. Each holding with a payment schedule
// contributes its yield weighted by its fraction of total portfolio value.
// Returns 0 for an empty portfolio (total value 0).
func PortfolioDividendYield(p *model.Portfolio) float64 {
	totalValue := p.TotalValue()
	if totalValue == 0 {
		return 0
	}

	var weighted float64
	for _, h := range p.Holdings {
		sched, ok := p.Schedule(h.Ticker)
		if !ok {
			continue
		}
		holdingYield := DividendYield(h, sched.AnnualDividendPerShare())
		weighted += holdingYield * (h.TotalValue() / totalValue)
	}
	return weighted
}

// YieldOnCost returns the holding's annual dividend income relative to its
// original cost basis, as a percentage. Returns 0 when the cost basis is 0.
func YieldOnCost(h model.Holding, annualDividendPerShare float64) float64 {
	if h.PurchasePrice == 0 {
		return 0
	}
	return annualDividendPerShare / h.PurchasePrice * 100
}
