// Package repository provides data access over the SQLite store: holdings,
// the dividend event log, and per-ticker payment schedules.
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dstam/dividend-tracker/internal/apperrors"
	"github.com/dstam/dividend-tracker/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetHoldings retrieves all holdings ordered by ticker.
// Returns an empty slice when the portfolio holds nothing.
func (s *HoldingRepository) GetHoldings() ([]model.Holding, error) {
	query := `
		SELECT ticker, name, shares, purchase_price, current_price, currency
		FROM holding
		ORDER BY ticker ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		var h model.Holding

		err := rows.Scan(
			&h.Ticker,
			&h.Name,
			&h.Shares,
			&h.PurchasePrice,
			&h.CurrentPrice,
			&h.Currency,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetHolding retrieves a single holding by ticker.
// Returns apperrors.ErrHoldingNotFound when the ticker is unknown.
func (s *HoldingRepository) GetHolding(ticker string) (model.Holding, error) {
	query := `
		SELECT ticker, name, shares, purchase_price, current_price, currency
		FROM holding
		WHERE ticker = ?
	`

	var h model.Holding
	err := s.db.QueryRow(query, ticker).Scan(
		&h.Ticker,
		&h.Name,
		&h.Shares,
		&h.PurchasePrice,
		&h.CurrentPrice,
		&h.Currency,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Holding{}, fmt.Errorf("%w: %s", apperrors.ErrHoldingNotFound, ticker)
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to query holding table: %w", err)
	}

	return h, nil
}

// InsertHolding inserts a new holding.
// Returns apperrors.ErrDuplicateTicker when the ticker already exists.
func (s *HoldingRepository) InsertHolding(h model.Holding) error {
	exists, err := s.exists(h.Ticker)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateTicker, h.Ticker)
	}

	query := `
		INSERT INTO holding (ticker, name, shares, purchase_price, current_price, currency)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.Exec(query, h.Ticker, h.Name, h.Shares, h.PurchasePrice, h.CurrentPrice, h.Currency)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}

	return nil
}

// UpdateHolding updates an existing holding.
// Returns apperrors.ErrHoldingNotFound when the ticker is unknown.
func (s *HoldingRepository) UpdateHolding(h model.Holding) error {
	query := `
		UPDATE holding
		SET name = ?, shares = ?, purchase_price = ?, current_price = ?, currency = ?
		WHERE ticker = ?
	`

	result, err := s.db.Exec(query, h.Name, h.Shares, h.PurchasePrice, h.CurrentPrice, h.Currency, h.Ticker)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrHoldingNotFound, h.Ticker)
	}

	return nil
}

// DeleteHolding removes a holding by ticker. The dividend event log is left
// untouched so historical income stays correct.
// Returns apperrors.ErrHoldingNotFound when the ticker is unknown.
func (s *HoldingRepository) DeleteHolding(ticker string) error {
	result, err := s.db.Exec(`DELETE FROM holding WHERE ticker = ?`, ticker)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrHoldingNotFound, ticker)
	}

	return nil
}

func (s *HoldingRepository) exists(ticker string) (bool, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM holding WHERE ticker = ?`, ticker).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check holding existence: %w", err)
	}
	return count > 0, nil
}
