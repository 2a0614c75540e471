package analytics

import (
	"math"

	"github.com/Rhymond/go-money"

	"github.com/dstam/dividend-tracker/internal/model"
)

// HoldingSummary is the per-holding row of a portfolio summary.
type HoldingSummary struct {
	Ticker            string  `json:"ticker"`
	Name              string  `json:"name"`
	Shares            float64 `json:"shares"`
	CurrentPrice      float64 `json:"currentPrice"`
	TotalValue        float64 `json:"totalValue"`
	AnnualIncome      float64 `json:"annualIncome"` // schedule-derived
	DividendYield     float64 `json:"dividendYield"`
	UnrealizedGain    float64 `json:"unrealizedGain"`
	UnrealizedGainPct float64 `json:"unrealizedGainPct"`
}

// Summary is the composed portfolio report consumed by the presentation
// layer. The formatted fields carry currency symbol and grouping.
type Summary struct {
	Name                  string           `json:"name"`
	Currency              string           `json:"currency"`
	TotalValue            float64          `json:"totalValue"`
	AnnualIncome          float64          `json:"annualIncome"` // schedule-derived
	YearToDateIncome      float64          `json:"yearToDateIncome"`
	PortfolioYield        float64          `json:"portfolioYield"`
	HoldingCount          int              `json:"holdingCount"`
	EventCount            int              `json:"eventCount"`
	Holdings              []HoldingSummary `json:"holdings"`
	FormattedTotalValue   string           `json:"formattedTotalValue"`
	FormattedAnnualIncome string           `json:"formattedAnnualIncome"`
}

// BuildSummary composes a portfolio report from the aggregation, yield, and
// schedule-derived income functions. Pure composition; no new arithmetic
// beyond calling them.
func BuildSummary(p *model.Portfolio) Summary {
	currency := p.Currency()

	holdings := make([]HoldingSummary, 0, len(p.Holdings))
	for _, h := range p.Holdings {
		var annualPerShare float64
		if sched, ok := p.Schedule(h.Ticker); ok {
			annualPerShare = sched.AnnualDividendPerShare()
		}
		holdings = append(holdings, HoldingSummary{
			Ticker:            h.Ticker,
			Name:              h.Name,
			Shares:            h.Shares,
			CurrentPrice:      h.CurrentPrice,
			TotalValue:        h.TotalValue(),
			AnnualIncome:      annualPerShare * h.Shares,
			DividendYield:     DividendYield(h, annualPerShare),
			UnrealizedGain:    h.UnrealizedGain(),
			UnrealizedGainPct: h.UnrealizedGainPct(),
		})
	}

	totalValue := p.TotalValue()
	annualIncome := AnnualDividendIncome(p)

	return Summary{
		Name:                  p.Name,
		Currency:              currency,
		TotalValue:            totalValue,
		AnnualIncome:          annualIncome,
		YearToDateIncome:      YearToDateIncome(p),
		PortfolioYield:        PortfolioDividendYield(p),
		HoldingCount:          len(p.Holdings),
		EventCount:            len(p.Events),
		Holdings:              holdings,
		FormattedTotalValue:   FormatAmount(currency, totalValue),
		FormattedAnnualIncome: FormatAmount(currency, annualIncome),
	}
}

// FormatAmount renders an amount as a currency string with the currency's
// symbol, grouping, and fraction digits. Unknown currency codes are rendered
// as USD.
func FormatAmount(code string, amount float64) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	units := int64(math.Round(amount * math.Pow10(cur.Fraction)))
	return money.New(units, cur.Code).Display()
}
