// Package apperrors defines the sentinel errors shared across the
// repository, service, and HTTP layers.
package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrHoldingNotFound indicates that no holding with the given ticker exists.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrScheduleNotFound indicates that no payment schedule exists for the given ticker.
	ErrScheduleNotFound = errors.New("payment schedule not found")

	// ErrDividendNotFound indicates that a dividend event with the given ID does not exist.
	ErrDividendNotFound = errors.New("dividend event not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrDuplicateTicker indicates that a holding with the same ticker already exists.
	ErrDuplicateTicker = errors.New("ticker already exists in portfolio")

	// ErrNegativeShares indicates that a share count field has an invalid negative value.
	ErrNegativeShares = errors.New("shares cannot be negative")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidTicker indicates that a ticker parameter is empty or malformed.
	ErrInvalidTicker = errors.New("invalid ticker")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveHoldings  = errors.New("failed to retrieve holdings")
	ErrFailedToRetrieveDividends = errors.New("failed to retrieve dividend events")
	ErrFailedToRetrieveSchedules = errors.New("failed to retrieve payment schedules")
	ErrFailedToLoadPortfolio     = errors.New("failed to load portfolio")
	ErrFailedToImportPortfolio   = errors.New("failed to import portfolio")
	ErrFailedToExportPortfolio   = errors.New("failed to export portfolio")
	ErrFailedToGetVersionInfo    = errors.New("failed to get version information")
)
