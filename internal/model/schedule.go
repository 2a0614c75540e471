package model

import (
	"strings"
	"time"
)

// Frequency describes how often a stock pays its dividend.
type Frequency string

// Known payment frequencies.
const (
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiAnnual Frequency = "semi-annual"
	FrequencyAnnual     Frequency = "annual"
)

// AnnualFrequency returns the number of payments per year for the frequency.
// Unknown frequencies fall back to quarterly (4), the documented default.
func (f Frequency) AnnualFrequency() int {
	switch Frequency(strings.ToLower(string(f))) {
	case FrequencyMonthly:
		return 12
	case FrequencyQuarterly:
		return 4
	case FrequencySemiAnnual:
		return 2
	case FrequencyAnnual:
		return 1
	default:
		return 4
	}
}

// FrequencyFromAnnualCount maps an annual payment count back to a Frequency.
// Counts that match no known frequency fall back to quarterly.
func FrequencyFromAnnualCount(count int) Frequency {
	switch count {
	case 12:
		return FrequencyMonthly
	case 4:
		return FrequencyQuarterly
	case 2:
		return FrequencySemiAnnual
	case 1:
		return FrequencyAnnual
	default:
		return FrequencyQuarterly
	}
}

// PaymentSchedule describes the expected dividend cadence for a single
// ticker. A portfolio holds at most one active schedule per ticker.
type PaymentSchedule struct {
	Ticker             string     `json:"ticker"`
	Frequency          Frequency  `json:"frequency"`
	TypicalAmount      float64    `json:"typicalAmount"` // Typical dividend per share per payment
	LastExDividendDate *time.Time `json:"lastExDividendDate,omitempty"`
	NextPaymentDate    *time.Time `json:"nextPaymentDate,omitempty"`
}

// AnnualDividendPerShare returns the schedule-derived expected dividend per
// share over a full year.
func (s PaymentSchedule) AnnualDividendPerShare() float64 {
	return s.TypicalAmount * float64(s.Frequency.AnnualFrequency())
}
