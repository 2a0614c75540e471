package request

// RecordDividendRequest represents the request body for recording a dividend
// payment. SharesOwned is the share count on the payment date; when omitted
// (zero) the holding's current share count is snapshotted instead.
type RecordDividendRequest struct {
	Ticker         string  `json:"ticker"`
	PaymentDate    string  `json:"paymentDate"`
	AmountPerShare float64 `json:"amountPerShare"`
	SharesOwned    float64 `json:"sharesOwned,omitempty"`
	Status         string  `json:"status,omitempty"`
}
