package analytics

import (
	"sort"
	"time"

	"github.com/dstam/dividend-tracker/internal/model"
)

// UpcomingDividend is one expected payment within the lookahead window,
// derived from a holding's payment schedule.
type UpcomingDividend struct {
	Ticker          string    `json:"ticker"`
	Name            string    `json:"name"`
	PaymentDate     time.Time `json:"paymentDate"`
	AmountPerShare  float64   `json:"amountPerShare"`
	EstimatedAmount float64   `json:"estimatedAmount"` // typical amount x current shares
}

// UpcomingDividends returns the expected payments within the next daysAhead
// days, ordered by payment date. Upcoming payments are schedule-driven: a
// holding appears when its schedule's next payment date falls after today and
// within the window; no future events need to be pre-seeded in the log.
func UpcomingDividends(p *model.Portfolio, daysAhead int) []UpcomingDividend {
	today := timeNow()
	cutoff := today.AddDate(0, 0, daysAhead)

	var upcoming []UpcomingDividend
	for _, h := range p.Holdings {
		sched, ok := p.Schedule(h.Ticker)
		if !ok || sched.NextPaymentDate == nil {
			continue
		}
		next := *sched.NextPaymentDate
		if !next.After(today) || next.After(cutoff) {
			continue
		}
		upcoming = append(upcoming, UpcomingDividend{
			Ticker:          h.Ticker,
			Name:            h.Name,
			PaymentDate:     next,
			AmountPerShare:  sched.TypicalAmount,
			EstimatedAmount: sched.TypicalAmount * h.Shares,
		})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].PaymentDate.Before(upcoming[j].PaymentDate)
	})
	return upcoming
}

// HistoryEntry is one received payment in a ticker's dividend history.
type HistoryEntry struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"` // total amount of the payment
}

// DividendHistory returns the paid dividend payments for a ticker in
// chronological order.
func DividendHistory(p *model.Portfolio, ticker string) []HistoryEntry {
	today := timeNow()

	var history []HistoryEntry
	for _, ev := range p.EventsFor(ticker) {
		if ev.IsPaidAsOf(today) {
			history = append(history, HistoryEntry{Date: ev.PaymentDate, Amount: ev.TotalAmount()})
		}
	}

	sort.Slice(history, func(i, j int) bool { return history[i].Date.Before(history[j].Date) })
	return history
}
