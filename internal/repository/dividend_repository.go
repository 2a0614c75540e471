package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dstam/dividend-tracker/internal/apperrors"
	"github.com/dstam/dividend-tracker/internal/model"
)

// DividendRepository provides data access methods for the dividend_event table.
// The table is an append-only payment log; rows are never updated in place.
type DividendRepository struct {
	db *sql.DB
}

// NewDividendRepository creates a new DividendRepository with the provided database connection.
func NewDividendRepository(db *sql.DB) *DividendRepository {
	return &DividendRepository{db: db}
}

// GetEvents retrieves all dividend events ordered by payment date ascending.
func (s *DividendRepository) GetEvents() ([]model.DividendEvent, error) {
	query := `
		SELECT id, ticker, payment_date, amount_per_share, shares_owned, payment_status, created_at
		FROM dividend_event
		ORDER BY payment_date ASC
	`
	return s.queryEvents(query)
}

// GetEventsForTicker retrieves the dividend events for a single ticker
// ordered by payment date ascending.
func (s *DividendRepository) GetEventsForTicker(ticker string) ([]model.DividendEvent, error) {
	query := `
		SELECT id, ticker, payment_date, amount_per_share, shares_owned, payment_status, created_at
		FROM dividend_event
		WHERE ticker = ?
		ORDER BY payment_date ASC
	`
	return s.queryEvents(query, ticker)
}

// GetEvent retrieves a single dividend event by ID.
// Returns apperrors.ErrDividendNotFound when the ID is unknown.
func (s *DividendRepository) GetEvent(id string) (model.DividendEvent, error) {
	query := `
		SELECT id, ticker, payment_date, amount_per_share, shares_owned, payment_status, created_at
		FROM dividend_event
		WHERE id = ?
	`

	var paymentDateStr, createdAtStr string
	var ev model.DividendEvent

	err := s.db.QueryRow(query, id).Scan(
		&ev.ID,
		&ev.Ticker,
		&paymentDateStr,
		&ev.AmountPerShare,
		&ev.SharesOwned,
		&ev.Status,
		&createdAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DividendEvent{}, fmt.Errorf("%w: %s", apperrors.ErrDividendNotFound, id)
	}
	if err != nil {
		return model.DividendEvent{}, fmt.Errorf("failed to query dividend_event table: %w", err)
	}

	if ev.PaymentDate, err = ParseTime(paymentDateStr); err != nil {
		return model.DividendEvent{}, err
	}
	if ev.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.DividendEvent{}, err
	}

	return ev, nil
}

// InsertEvent appends a dividend event to the log.
func (s *DividendRepository) InsertEvent(ev model.DividendEvent) error {
	query := `
		INSERT INTO dividend_event (id, ticker, payment_date, amount_per_share, shares_owned, payment_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		ev.ID,
		ev.Ticker,
		ev.PaymentDate.Format("2006-01-02"),
		ev.AmountPerShare,
		ev.SharesOwned,
		string(ev.Status),
		ev.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert dividend event: %w", err)
	}

	return nil
}

// DeleteEvent removes a dividend event by ID.
// Returns apperrors.ErrDividendNotFound when the ID is unknown.
func (s *DividendRepository) DeleteEvent(id string) error {
	result, err := s.db.Exec(`DELETE FROM dividend_event WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dividend event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrDividendNotFound, id)
	}

	return nil
}

func (s *DividendRepository) queryEvents(query string, args ...any) ([]model.DividendEvent, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividend_event table: %w", err)
	}
	defer rows.Close()

	events := []model.DividendEvent{}

	for rows.Next() {
		var paymentDateStr, createdAtStr string
		var ev model.DividendEvent

		err := rows.Scan(
			&ev.ID,
			&ev.Ticker,
			&paymentDateStr,
			&ev.AmountPerShare,
			&ev.SharesOwned,
			&ev.Status,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dividend_event table results: %w", err)
		}

		if ev.PaymentDate, err = ParseTime(paymentDateStr); err != nil {
			return nil, err
		}
		if ev.CreatedAt, err = ParseTime(createdAtStr); err != nil {
			return nil, err
		}

		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividend_event table: %w", err)
	}

	return events, nil
}
