package testutil

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dstam/dividend-tracker/internal/repository"
	"github.com/dstam/dividend-tracker/internal/service"
)

// NewTestPortfolioService wires a PortfolioService over the given test
// database with a muted logger.
func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		repository.NewHoldingRepository(db),
		repository.NewDividendRepository(db),
		repository.NewScheduleRepository(db),
		"Test Portfolio",
		zerolog.Nop(),
	)
}

// NewTestSystemService wires a SystemService over the given test database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}
