package model

// Portfolio is an in-memory snapshot of a dividend portfolio: an ordered,
// ticker-unique collection of holdings, an append-only dividend event log,
// and at most one payment schedule per ticker.
//
// The snapshot is assembled by the host (storage layer or seed data) and
// passed to the analytics functions; nothing in this package performs I/O.
type Portfolio struct {
	Name      string                     `json:"name"`
	Holdings  []Holding                  `json:"holdings"`
	Events    []DividendEvent            `json:"events"`
	Schedules map[string]PaymentSchedule `json:"schedules"`
}

// NewPortfolio creates an empty portfolio with the given name.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{
		Name:      name,
		Schedules: make(map[string]PaymentSchedule),
	}
}

// AddHolding appends a holding to the portfolio. Ticker uniqueness is the
// caller's responsibility; the storage layer enforces it at its boundary.
func (p *Portfolio) AddHolding(h Holding) {
	p.Holdings = append(p.Holdings, h)
}

// AddEvent appends a dividend event to the log.
func (p *Portfolio) AddEvent(e DividendEvent) {
	p.Events = append(p.Events, e)
}

// SetSchedule stores the payment schedule for its ticker, replacing any
// previous schedule.
func (p *Portfolio) SetSchedule(s PaymentSchedule) {
	if p.Schedules == nil {
		p.Schedules = make(map[string]PaymentSchedule)
	}
	p.Schedules[s.Ticker] = s
}

// Holding returns the holding for the given ticker, if present.
func (p *Portfolio) Holding(ticker string) (Holding, bool) {
	for _, h := range p.Holdings {
		if h.Ticker == ticker {
			return h, true
		}
	}
	return Holding{}, false
}

// Schedule returns the payment schedule for the given ticker, if present.
func (p *Portfolio) Schedule(ticker string) (PaymentSchedule, bool) {
	s, ok := p.Schedules[ticker]
	return s, ok
}

// EventsFor returns all dividend events recorded for the given ticker, in
// log order.
func (p *Portfolio) EventsFor(ticker string) []DividendEvent {
	var events []DividendEvent
	for _, e := range p.Events {
		if e.Ticker == ticker {
			events = append(events, e)
		}
	}
	return events
}

// TotalValue returns the summed market value of all holdings.
func (p *Portfolio) TotalValue() float64 {
	var total float64
	for _, h := range p.Holdings {
		total += h.TotalValue()
	}
	return total
}

// Currency returns the portfolio's currency tag: the currency of the first
// holding carrying one, defaulting to USD for an empty portfolio.
func (p *Portfolio) Currency() string {
	for _, h := range p.Holdings {
		if h.Currency != "" {
			return h.Currency
		}
	}
	return "USD"
}
