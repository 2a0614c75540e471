package validation

import (
	"fmt"
	"regexp"
	"time"
)

// Common validation errors
var (
	ErrInvalidTicker = fmt.Errorf("invalid ticker format")
	ErrInvalidDate   = fmt.Errorf("invalid date format")
)

// tickerPattern matches exchange ticker symbols: 1-10 uppercase letters,
// digits, dots, or hyphens (e.g. AAPL, BRK.B).
var tickerPattern = regexp.MustCompile(`^[A-Z0-9.\-]{1,10}$`)

// ValidateTicker checks if a string is a well-formed ticker symbol.
func ValidateTicker(ticker string) error {
	if !tickerPattern.MatchString(ticker) {
		return fmt.Errorf("%w: %q", ErrInvalidTicker, ticker)
	}
	return nil
}

// ParseDate parses a required date field in YYYY-MM-DD format.
func ParseDate(str string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, str)
	}
	return t.UTC(), nil
}
