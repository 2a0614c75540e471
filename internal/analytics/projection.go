package analytics

import (
	"iter"
	"math"
	"time"

	"github.com/dstam/dividend-tracker/internal/model"
)

// ProjectIncome projects monthly dividend income forward, with optional
// compounding growth. It yields one (month-end date, projected income) pair
// per month offset 0..months-1, starting from the current month.
//
// The base monthly income is the schedule-derived annual income spread evenly
// over twelve months; the monthly growth factor is (1+rate/100)^(1/12),
// compounded per offset. This assumes dividends accrue evenly across the year
// regardless of actual payment months; it is an approximation, not a
// payment-date simulator.
//
// The returned sequence is lazy, finite, and restartable.
func ProjectIncome(p *model.Portfolio, months int, annualGrowthRatePercent float64) iter.Seq2[time.Time, float64] {
	baseMonthly := AnnualDividendIncome(p) / 12
	monthlyGrowth := math.Pow(1+annualGrowthRatePercent/100, 1.0/12)
	now := timeNow()

	return func(yield func(time.Time, float64) bool) {
		for m := 0; m < months; m++ {
			monthEnd := time.Date(now.Year(), now.Month()+time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC)
			income := baseMonthly * math.Pow(monthlyGrowth, float64(m))
			if !yield(monthEnd, income) {
				return
			}
		}
	}
}

// EstimateFutureIncome returns the expected dividend income over the next
// monthsAhead months, without compounding: for every scheduled holding,
// typical amount times shares times the payments falling in the period,
// assuming an even spread across the year.
func EstimateFutureIncome(p *model.Portfolio, monthsAhead int) float64 {
	var total float64
	for _, h := range p.Holdings {
		sched, ok := p.Schedule(h.Ticker)
		if !ok {
			continue
		}
		paymentsInPeriod := float64(monthsAhead) / 12 * float64(sched.Frequency.AnnualFrequency())
		total += sched.TypicalAmount * h.Shares * paymentsInPeriod
	}
	return total
}

// GrowthScenario holds the projected annual income at one, three, and five
// years under a single assumed growth rate.
type GrowthScenario struct {
	RatePercent float64 `json:"ratePercent"`
	Year1       float64 `json:"year1"`
	Year3       float64 `json:"year3"`
	Year5       float64 `json:"year5"`
}

// GrowthScenarios extrapolates the current schedule-derived annual income
// over one, three, and five years for each assumed growth rate, via simple
// annual compounding.
func GrowthScenarios(p *model.Portfolio, ratesPercent []float64) []GrowthScenario {
	current := AnnualDividendIncome(p)

	scenarios := make([]GrowthScenario, 0, len(ratesPercent))
	for _, rate := range ratesPercent {
		factor := 1 + rate/100
		scenarios = append(scenarios, GrowthScenario{
			RatePercent: rate,
			Year1:       current * factor,
			Year3:       current * math.Pow(factor, 3),
			Year5:       current * math.Pow(factor, 5),
		})
	}
	return scenarios
}
