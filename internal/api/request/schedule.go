package request

// UpsertScheduleRequest represents the request body for setting a ticker's
// payment schedule. Dates are optional YYYY-MM-DD strings.
type UpsertScheduleRequest struct {
	Frequency          string  `json:"frequency"`
	TypicalAmount      float64 `json:"typicalAmount"`
	LastExDividendDate string  `json:"lastExDividendDate,omitempty"`
	NextPaymentDate    string  `json:"nextPaymentDate,omitempty"`
}
