// Package sampledata builds the demo portfolio used to seed an empty
// database: four US dividend payers with quarterly schedules and two years
// of paid payment history.
package sampledata

import (
	"time"

	"github.com/google/uuid"

	"github.com/dstam/dividend-tracker/internal/model"
)

type seedStock struct {
	holding        model.Holding
	typicalAmount  float64
	monthsToNext   int
	historyAmounts []float64 // oldest first, one per past quarter
}

// Portfolio returns a fully populated sample portfolio. Dates are generated
// relative to today so the seed stays meaningful: histories end in the most
// recent quarter and next payment dates fall within the next quarter.
func Portfolio(name string) *model.Portfolio {
	today := time.Now().UTC()
	p := model.NewPortfolio(name)

	stocks := []seedStock{
		{
			holding: model.Holding{
				Ticker: "AAPL", Name: "Apple Inc.",
				Shares: 100, PurchasePrice: 150.00, CurrentPrice: 175.00, Currency: "USD",
			},
			typicalAmount:  0.24,
			monthsToNext:   2,
			historyAmounts: []float64{0.22, 0.22, 0.23, 0.23, 0.24, 0.24, 0.24, 0.24},
		},
		{
			holding: model.Holding{
				Ticker: "MSFT", Name: "Microsoft Corporation",
				Shares: 50, PurchasePrice: 300.00, CurrentPrice: 350.00, Currency: "USD",
			},
			typicalAmount:  0.75,
			monthsToNext:   2,
			historyAmounts: []float64{0.68, 0.68, 0.68, 0.75, 0.75, 0.75, 0.75, 0.75},
		},
		{
			holding: model.Holding{
				Ticker: "KO", Name: "The Coca-Cola Company",
				Shares: 200, PurchasePrice: 55.00, CurrentPrice: 60.00, Currency: "USD",
			},
			typicalAmount:  0.46,
			monthsToNext:   1,
			historyAmounts: []float64{0.44, 0.44, 0.44, 0.44, 0.46, 0.46, 0.46, 0.46},
		},
		{
			holding: model.Holding{
				Ticker: "JNJ", Name: "Johnson & Johnson",
				Shares: 75, PurchasePrice: 160.00, CurrentPrice: 165.00, Currency: "USD",
			},
			typicalAmount:  1.19,
			monthsToNext:   3,
			historyAmounts: []float64{1.13, 1.13, 1.13, 1.13, 1.19, 1.19, 1.19, 1.19},
		},
	}

	for _, s := range stocks {
		p.AddHolding(s.holding)

		lastEx := today.AddDate(0, s.monthsToNext-3, 0)
		next := today.AddDate(0, s.monthsToNext, 0)
		p.SetSchedule(model.PaymentSchedule{
			Ticker:             s.holding.Ticker,
			Frequency:          model.FrequencyQuarterly,
			TypicalAmount:      s.typicalAmount,
			LastExDividendDate: &lastEx,
			NextPaymentDate:    &next,
		})

		// One paid event per past quarter, oldest first.
		for i, amount := range s.historyAmounts {
			monthsAgo := (len(s.historyAmounts) - i) * 3
			p.AddEvent(model.DividendEvent{
				ID:             uuid.New().String(),
				Ticker:         s.holding.Ticker,
				PaymentDate:    today.AddDate(0, -monthsAgo, 0),
				AmountPerShare: amount,
				SharesOwned:    s.holding.Shares,
				Status:         model.StatusPaid,
				CreatedAt:      today,
			})
		}
	}

	return p
}
