package validation

import (
	"time"

	"github.com/dstam/dividend-tracker/internal/api/request"
	"github.com/dstam/dividend-tracker/internal/model"
)

// ValidateUpsertSchedule validates a payment schedule request.
//
// Required fields:
//   - frequency: one of monthly, quarterly, semi-annual, annual
//   - typicalAmount: non-negative
//
// Optional date fields must be in YYYY-MM-DD format if provided.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateUpsertSchedule(req request.UpsertScheduleRequest) error {
	errors := make(map[string]string)

	switch model.Frequency(req.Frequency) {
	case model.FrequencyMonthly, model.FrequencyQuarterly, model.FrequencySemiAnnual, model.FrequencyAnnual:
	default:
		errors["frequency"] = "frequency must be one of monthly, quarterly, semi-annual, annual"
	}

	if req.TypicalAmount < 0 {
		errors["typicalAmount"] = "typicalAmount must be non-negative"
	}

	// optionals

	if req.LastExDividendDate != "" {
		if _, err := time.Parse("2006-01-02", req.LastExDividendDate); err != nil {
			errors["lastExDividendDate"] = err.Error()
		}
	}

	if req.NextPaymentDate != "" {
		if _, err := time.Parse("2006-01-02", req.NextPaymentDate); err != nil {
			errors["nextPaymentDate"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
