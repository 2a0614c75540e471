package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/dstam/dividend-tracker/internal/model"
)

// fixedToday pins "today" for the duration of a test.
func fixedToday(t *testing.T, today time.Time) {
	t.Helper()
	timeNow = func() time.Time { return today }
	t.Cleanup(func() { timeNow = time.Now })
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// samplePortfolio builds the reference portfolio used across the analytics
// tests: two quarterly payers with two years of paid history relative to the
// given day.
func samplePortfolio(today time.Time) *model.Portfolio {
	p := model.NewPortfolio("Test Portfolio")

	p.AddHolding(model.Holding{
		Ticker: "AAPL", Name: "Apple Inc.",
		Shares: 100, PurchasePrice: 150, CurrentPrice: 175, Currency: "USD",
	})
	p.AddHolding(model.Holding{
		Ticker: "KO", Name: "The Coca-Cola Company",
		Shares: 200, PurchasePrice: 55, CurrentPrice: 60, Currency: "USD",
	})

	next := today.AddDate(0, 0, 20)
	p.SetSchedule(model.PaymentSchedule{
		Ticker: "AAPL", Frequency: model.FrequencyQuarterly, TypicalAmount: 0.24,
		NextPaymentDate: &next,
	})
	koNext := today.AddDate(0, 0, 45)
	p.SetSchedule(model.PaymentSchedule{
		Ticker: "KO", Frequency: model.FrequencyQuarterly, TypicalAmount: 0.46,
		NextPaymentDate: &koNext,
	})

	// Eight paid quarters per ticker, oldest first.
	for q := 8; q >= 1; q-- {
		date := today.AddDate(0, -3*q, 0)
		p.AddEvent(model.DividendEvent{
			ID: "aapl-" + date.Format("2006-01"), Ticker: "AAPL",
			PaymentDate: date, AmountPerShare: 0.24, SharesOwned: 100,
			Status: model.StatusPaid,
		})
		p.AddEvent(model.DividendEvent{
			ID: "ko-" + date.Format("2006-01"), Ticker: "KO",
			PaymentDate: date, AmountPerShare: 0.46, SharesOwned: 200,
			Status: model.StatusPaid,
		})
	}

	return p
}
