package validation

import (
	"strings"
	"time"

	"github.com/dstam/dividend-tracker/internal/api/request"
	"github.com/dstam/dividend-tracker/internal/model"
)

// ValidateRecordDividend validates a dividend recording request.
//
// Required fields:
//   - ticker: well-formed ticker symbol
//   - paymentDate: YYYY-MM-DD
//   - amountPerShare: non-negative
//
// Optional fields (validated if provided):
//   - sharesOwned: non-negative
//   - status: one of paid, pending, announced
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateRecordDividend(req request.RecordDividendRequest) error {
	errors := make(map[string]string)

	if err := ValidateTicker(req.Ticker); err != nil {
		errors["ticker"] = err.Error()
	}

	if strings.TrimSpace(req.PaymentDate) == "" {
		errors["paymentDate"] = "date is required"
	}
	_, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		errors["paymentDate"] = err.Error()
	}

	if req.AmountPerShare < 0 {
		errors["amountPerShare"] = "amountPerShare must be non-negative"
	}

	// optionals

	if req.SharesOwned < 0 {
		errors["sharesOwned"] = "sharesOwned must be non-negative"
	}

	if req.Status != "" {
		switch model.PaymentStatus(req.Status) {
		case model.StatusPaid, model.StatusPending, model.StatusAnnounced:
		default:
			errors["status"] = "status must be one of paid, pending, announced"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
