package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dstam/dividend-tracker/internal/model"
)

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Simple creation with defaults
//	holding := testutil.NewHolding("AAPL").Build(t, db)
//
//	// Customized holding
//	holding := testutil.NewHolding("KO").
//	    WithShares(200).
//	    WithPrices(55, 60).
//	    Build(t, db)
type HoldingBuilder struct {
	Ticker        string
	Name          string
	Shares        float64
	PurchasePrice float64
	CurrentPrice  float64
	Currency      string
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding(ticker string) *HoldingBuilder {
	return &HoldingBuilder{
		Ticker:        ticker,
		Name:          ticker + " Test Corp",
		Shares:        100,
		PurchasePrice: 150,
		CurrentPrice:  175,
		Currency:      "USD",
	}
}

// WithName sets a custom company name.
func (b *HoldingBuilder) WithName(name string) *HoldingBuilder {
	b.Name = name
	return b
}

// WithShares sets a custom share count.
func (b *HoldingBuilder) WithShares(shares float64) *HoldingBuilder {
	b.Shares = shares
	return b
}

// WithPrices sets custom purchase and current prices.
func (b *HoldingBuilder) WithPrices(purchase, current float64) *HoldingBuilder {
	b.PurchasePrice = purchase
	b.CurrentPrice = current
	return b
}

// WithCurrency sets a custom currency tag.
func (b *HoldingBuilder) WithCurrency(currency string) *HoldingBuilder {
	b.Currency = currency
	return b
}

// Model returns the holding as an in-memory record without touching the database.
func (b *HoldingBuilder) Model() model.Holding {
	return model.Holding{
		Ticker:        b.Ticker,
		Name:          b.Name,
		Shares:        b.Shares,
		PurchasePrice: b.PurchasePrice,
		CurrentPrice:  b.CurrentPrice,
		Currency:      b.Currency,
	}
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	query := `
		INSERT INTO holding (ticker, name, shares, purchase_price, current_price, currency)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.Ticker, b.Name, b.Shares, b.PurchasePrice, b.CurrentPrice, b.Currency)
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return b.Model()
}

// DividendEventBuilder provides a fluent interface for creating test
// dividend events.
type DividendEventBuilder struct {
	ID             string
	Ticker         string
	PaymentDate    time.Time
	AmountPerShare float64
	SharesOwned    float64
	Status         model.PaymentStatus
	CreatedAt      time.Time
}

// NewDividendEvent creates a DividendEventBuilder with sensible defaults:
// a paid payment of 0.24 per share on 100 shares, dated 30 days ago.
func NewDividendEvent(ticker string) *DividendEventBuilder {
	now := time.Now().UTC()
	return &DividendEventBuilder{
		ID:             uuid.New().String(),
		Ticker:         ticker,
		PaymentDate:    now.AddDate(0, 0, -30),
		AmountPerShare: 0.24,
		SharesOwned:    100,
		Status:         model.StatusPaid,
		CreatedAt:      now,
	}
}

// WithPaymentDate sets a custom payment date.
func (b *DividendEventBuilder) WithPaymentDate(date time.Time) *DividendEventBuilder {
	b.PaymentDate = date
	return b
}

// WithAmountPerShare sets a custom per-share amount.
func (b *DividendEventBuilder) WithAmountPerShare(amount float64) *DividendEventBuilder {
	b.AmountPerShare = amount
	return b
}

// WithSharesOwned sets a custom shares snapshot.
func (b *DividendEventBuilder) WithSharesOwned(shares float64) *DividendEventBuilder {
	b.SharesOwned = shares
	return b
}

// WithStatus sets a custom payment status.
func (b *DividendEventBuilder) WithStatus(status model.PaymentStatus) *DividendEventBuilder {
	b.Status = status
	return b
}

// Model returns the event as an in-memory record without touching the database.
func (b *DividendEventBuilder) Model() model.DividendEvent {
	return model.DividendEvent{
		ID:             b.ID,
		Ticker:         b.Ticker,
		PaymentDate:    b.PaymentDate,
		AmountPerShare: b.AmountPerShare,
		SharesOwned:    b.SharesOwned,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
}

// Build creates the dividend event in the database and returns it.
func (b *DividendEventBuilder) Build(t *testing.T, db *sql.DB) model.DividendEvent {
	t.Helper()

	query := `
		INSERT INTO dividend_event (id, ticker, payment_date, amount_per_share, shares_owned, payment_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.Ticker,
		b.PaymentDate.Format("2006-01-02"),
		b.AmountPerShare,
		b.SharesOwned,
		string(b.Status),
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test dividend event: %v", err)
	}

	return b.Model()
}

// ScheduleBuilder provides a fluent interface for creating test payment
// schedules.
type ScheduleBuilder struct {
	Ticker             string
	Frequency          model.Frequency
	TypicalAmount      float64
	LastExDividendDate *time.Time
	NextPaymentDate    *time.Time
}

// NewSchedule creates a ScheduleBuilder with sensible defaults: quarterly
// 0.24 per share with a next payment 30 days out.
func NewSchedule(ticker string) *ScheduleBuilder {
	next := time.Now().UTC().AddDate(0, 0, 30)
	lastEx := time.Now().UTC().AddDate(0, 0, -60)
	return &ScheduleBuilder{
		Ticker:             ticker,
		Frequency:          model.FrequencyQuarterly,
		TypicalAmount:      0.24,
		LastExDividendDate: &lastEx,
		NextPaymentDate:    &next,
	}
}

// WithFrequency sets a custom payment frequency.
func (b *ScheduleBuilder) WithFrequency(freq model.Frequency) *ScheduleBuilder {
	b.Frequency = freq
	return b
}

// WithTypicalAmount sets a custom per-payment amount.
func (b *ScheduleBuilder) WithTypicalAmount(amount float64) *ScheduleBuilder {
	b.TypicalAmount = amount
	return b
}

// WithNextPaymentDate sets a custom next payment date.
func (b *ScheduleBuilder) WithNextPaymentDate(date time.Time) *ScheduleBuilder {
	b.NextPaymentDate = &date
	return b
}

// WithoutDates clears both optional dates.
func (b *ScheduleBuilder) WithoutDates() *ScheduleBuilder {
	b.LastExDividendDate = nil
	b.NextPaymentDate = nil
	return b
}

// Model returns the schedule as an in-memory record without touching the database.
func (b *ScheduleBuilder) Model() model.PaymentSchedule {
	return model.PaymentSchedule{
		Ticker:             b.Ticker,
		Frequency:          b.Frequency,
		TypicalAmount:      b.TypicalAmount,
		LastExDividendDate: b.LastExDividendDate,
		NextPaymentDate:    b.NextPaymentDate,
	}
}

// Build creates the payment schedule in the database and returns it.
func (b *ScheduleBuilder) Build(t *testing.T, db *sql.DB) model.PaymentSchedule {
	t.Helper()

	query := `
		INSERT INTO payment_schedule (ticker, frequency, typical_amount, last_ex_dividend_date, next_payment_date)
		VALUES (?, ?, ?, ?, ?)
	`

	var lastEx, next any
	if b.LastExDividendDate != nil {
		lastEx = b.LastExDividendDate.Format("2006-01-02")
	}
	if b.NextPaymentDate != nil {
		next = b.NextPaymentDate.Format("2006-01-02")
	}

	_, err := db.Exec(query, b.Ticker, string(b.Frequency), b.TypicalAmount, lastEx, next)
	if err != nil {
		t.Fatalf("Failed to create test payment schedule: %v", err)
	}

	return b.Model()
}
