package validation

import (
	"strings"

	"github.com/dstam/dividend-tracker/internal/api/request"
)

// ValidateCreateHolding validates a holding creation request.
//
// Required fields:
//   - ticker: 1-10 uppercase letters/digits/dots/hyphens
//   - name: non-empty
//
// Numeric fields (shares, purchasePrice, currentPrice) must be non-negative.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	if err := ValidateTicker(req.Ticker); err != nil {
		errors["ticker"] = err.Error()
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.Shares < 0 {
		errors["shares"] = "shares must be non-negative"
	}

	if req.PurchasePrice < 0 {
		errors["purchasePrice"] = "purchasePrice must be non-negative"
	}

	if req.CurrentPrice < 0 {
		errors["currentPrice"] = "currentPrice must be non-negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateHolding validates a holding update request.
// All fields are optional, but if provided, they must meet the same
// constraints as create.
func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	if req.Shares != nil && *req.Shares < 0 {
		errors["shares"] = "shares must be non-negative"
	}

	if req.PurchasePrice != nil && *req.PurchasePrice < 0 {
		errors["purchasePrice"] = "purchasePrice must be non-negative"
	}

	if req.CurrentPrice != nil && *req.CurrentPrice < 0 {
		errors["currentPrice"] = "currentPrice must be non-negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
