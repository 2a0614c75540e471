package analytics

import (
	"math"
	"sort"

	"github.com/dstam/dividend-tracker/internal/model"
)

// DividendGrowthRate estimates the historical dividend growth rate for a
// ticker as a CAGR percentage over per-year totals of amount per share,
// considering at most the last `years` years of paid events.
//
// The boolean result is false when fewer than two qualifying years exist, or
// when the earliest year's amount is zero. Insufficient data is an absent
// result, not an error.
func DividendGrowthRate(p *model.Portfolio, ticker string, years int) (float64, bool) {
	today := timeNow()

	yearlyTotals := make(map[int]float64)
	for _, ev := range p.EventsFor(ticker) {
		if ev.IsPaidAsOf(today) {
			yearlyTotals[ev.PaymentDate.Year()] += ev.AmountPerShare
		}
	}
	if years < 2 || len(yearlyTotals) < 2 {
		return 0, false
	}

	sortedYears := make([]int, 0, len(yearlyTotals))
	for year := range yearlyTotals {
		sortedYears = append(sortedYears, year)
	}
	sort.Ints(sortedYears)

	if years > len(sortedYears) {
		years = len(sortedYears)
	}
	relevant := sortedYears[len(sortedYears)-years:]
	if len(relevant) < 2 {
		return 0, false
	}

	start := yearlyTotals[relevant[0]]
	end := yearlyTotals[relevant[len(relevant)-1]]
	if start == 0 {
		return 0, false
	}

	numYears := float64(len(relevant) - 1)
	rate := (math.Pow(end/start, 1/numYears) - 1) * 100
	return rate, true
}
