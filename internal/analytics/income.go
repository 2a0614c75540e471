// Package analytics implements the dividend calculation layer: income
// aggregation over date ranges, dividend yields, forward projections,
// historical growth rates, and the composed portfolio summary.
//
// Every function here is a pure function of an in-memory Portfolio snapshot
// and its parameters. Nothing suspends, blocks, or performs I/O; callers are
// responsible for handing in a consistent snapshot.
package analytics

import (
	"sort"
	"time"

	"github.com/dstam/dividend-tracker/internal/model"
)

// timeNow is swapped out in tests to pin "today".
var timeNow = time.Now

// TotalDividendIncome sums the total amount of all paid dividend events with
// start <= payment date <= end. A zero start means unbounded past; a zero end
// defaults to today. Events are counted as paid per DividendEvent.IsPaidAsOf.
func TotalDividendIncome(p *model.Portfolio, start, end time.Time) float64 {
	today := timeNow()
	if end.IsZero() {
		end = today
	}

	var total float64
	for _, ev := range p.Events {
		if !start.IsZero() && ev.PaymentDate.Before(start) {
			continue
		}
		if ev.PaymentDate.After(end) {
			continue
		}
		if ev.IsPaidAsOf(today) {
			total += ev.TotalAmount()
		}
	}
	return total
}

// MonthlyIncome returns dividend income received in a specific calendar month.
func MonthlyIncome(p *model.Portfolio, year int, month time.Month) float64 {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the following month is the last day of this one.
	last := time.Date(year, month+1, 0, 23, 59, 59, 0, time.UTC)
	return TotalDividendIncome(p, first, last)
}

// YearlyIncome returns dividend income received in a specific calendar year.
func YearlyIncome(p *model.Portfolio, year int) float64 {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return TotalDividendIncome(p, start, end)
}

// LifetimeIncome returns all dividend income received since inception.
func LifetimeIncome(p *model.Portfolio) float64 {
	return TotalDividendIncome(p, time.Time{}, time.Time{})
}

// YearToDateIncome returns dividend income received from January 1 of the
// current year through today.
func YearToDateIncome(p *model.Portfolio) float64 {
	start := time.Date(timeNow().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return TotalDividendIncome(p, start, time.Time{})
}

// AnnualDividendIncome returns the schedule-derived expected income over a
// full year: for every holding with a payment schedule, typical amount times
// annual payment count times the holding's current share count. This is
// expected income, not received income, and is the figure portfolio yield is
// built from.
func AnnualDividendIncome(p *model.Portfolio) float64 {
	var total float64
	for _, h := range p.Holdings {
		if sched, ok := p.Schedule(h.Ticker); ok {
			total += sched.AnnualDividendPerShare() * h.Shares
		}
	}
	return total
}

// MonthlyBreakdown returns the received income for every month of the given
// year, ordered January through December. Months without qualifying events
// report zero.
func MonthlyBreakdown(p *model.Portfolio, year int) []float64 {
	breakdown := make([]float64, 12)
	for m := time.January; m <= time.December; m++ {
		breakdown[m-1] = MonthlyIncome(p, year, m)
	}
	return breakdown
}

// YearTotal is one year's received dividend income.
type YearTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// AnnualSummaryByYear groups paid events by payment year and returns the
// per-year totals in ascending year order.
func AnnualSummaryByYear(p *model.Portfolio) []YearTotal {
	today := timeNow()
	totals := make(map[int]float64)
	for _, ev := range p.Events {
		if ev.IsPaidAsOf(today) {
			totals[ev.PaymentDate.Year()] += ev.TotalAmount()
		}
	}

	summary := make([]YearTotal, 0, len(totals))
	for year, total := range totals {
		summary = append(summary, YearTotal{Year: year, Total: total})
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Year < summary[j].Year })
	return summary
}
