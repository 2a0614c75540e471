package model

import "time"

// PaymentStatus describes the lifecycle state of a dividend payment.
type PaymentStatus string

// Known payment statuses.
const (
	StatusPaid      PaymentStatus = "paid"
	StatusPending   PaymentStatus = "pending"
	StatusAnnounced PaymentStatus = "announced"
)

// DividendEvent represents a single recorded dividend payment.
// SharesOwned is a snapshot of the share count on the payment's ex-dividend
// date, kept independent of the holding's live share count so historical
// totals remain correct after later trades.
type DividendEvent struct {
	ID             string        `json:"id"`
	Ticker         string        `json:"ticker"`
	PaymentDate    time.Time     `json:"paymentDate"`
	AmountPerShare float64       `json:"amountPerShare"`
	SharesOwned    float64       `json:"sharesOwned"`
	Status         PaymentStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// TotalAmount returns the full payment: amount per share times the shares
// snapshot stored on the event.
func (d DividendEvent) TotalAmount() float64 {
	return d.AmountPerShare * d.SharesOwned
}

// IsPaidAsOf reports whether the event counts as paid on the given day.
// An event is paid when its status says so, or when its payment date has
// already passed.
func (d DividendEvent) IsPaidAsOf(today time.Time) bool {
	return d.Status == StatusPaid || d.PaymentDate.Before(truncateToDay(today))
}

// IsUpcomingAsOf reports whether the event is still ahead of the given day.
func (d DividendEvent) IsUpcomingAsOf(today time.Time) bool {
	return d.PaymentDate.After(truncateToDay(today)) && d.Status != StatusPaid
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
