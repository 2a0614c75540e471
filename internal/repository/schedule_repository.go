package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dstam/dividend-tracker/internal/apperrors"
	"github.com/dstam/dividend-tracker/internal/model"
)

// ScheduleRepository provides data access methods for the payment_schedule
// table. Each ticker holds at most one schedule row.
type ScheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new ScheduleRepository with the provided database connection.
func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetSchedules retrieves all payment schedules keyed by ticker.
func (s *ScheduleRepository) GetSchedules() (map[string]model.PaymentSchedule, error) {
	query := `
		SELECT ticker, frequency, typical_amount, last_ex_dividend_date, next_payment_date
		FROM payment_schedule
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment_schedule table: %w", err)
	}
	defer rows.Close()

	schedules := make(map[string]model.PaymentSchedule)

	for rows.Next() {
		sched, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, err
		}
		schedules[sched.Ticker] = sched
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment_schedule table: %w", err)
	}

	return schedules, nil
}

// GetSchedule retrieves the payment schedule for a single ticker.
// Returns apperrors.ErrScheduleNotFound when no schedule exists.
func (s *ScheduleRepository) GetSchedule(ticker string) (model.PaymentSchedule, error) {
	query := `
		SELECT ticker, frequency, typical_amount, last_ex_dividend_date, next_payment_date
		FROM payment_schedule
		WHERE ticker = ?
	`

	sched, err := scanSchedule(s.db.QueryRow(query, ticker).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PaymentSchedule{}, fmt.Errorf("%w: %s", apperrors.ErrScheduleNotFound, ticker)
	}
	if err != nil {
		return model.PaymentSchedule{}, err
	}

	return sched, nil
}

// UpsertSchedule inserts or replaces the payment schedule for its ticker.
func (s *ScheduleRepository) UpsertSchedule(sched model.PaymentSchedule) error {
	query := `
		INSERT INTO payment_schedule (ticker, frequency, typical_amount, last_ex_dividend_date, next_payment_date)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (ticker) DO UPDATE SET
			frequency = excluded.frequency,
			typical_amount = excluded.typical_amount,
			last_ex_dividend_date = excluded.last_ex_dividend_date,
			next_payment_date = excluded.next_payment_date
	`

	_, err := s.db.Exec(query,
		sched.Ticker,
		string(sched.Frequency),
		sched.TypicalAmount,
		formatNullableTime(sched.LastExDividendDate),
		formatNullableTime(sched.NextPaymentDate),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert payment schedule: %w", err)
	}

	return nil
}

// DeleteSchedule removes the payment schedule for a ticker. Missing schedules
// are not an error here; callers deleting a holding do not care whether one
// existed.
func (s *ScheduleRepository) DeleteSchedule(ticker string) error {
	if _, err := s.db.Exec(`DELETE FROM payment_schedule WHERE ticker = ?`, ticker); err != nil {
		return fmt.Errorf("failed to delete payment schedule: %w", err)
	}
	return nil
}

func scanSchedule(scan func(dest ...any) error) (model.PaymentSchedule, error) {
	var sched model.PaymentSchedule
	var lastExStr, nextStr sql.NullString

	err := scan(
		&sched.Ticker,
		&sched.Frequency,
		&sched.TypicalAmount,
		&lastExStr,
		&nextStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PaymentSchedule{}, err
		}
		return model.PaymentSchedule{}, fmt.Errorf("failed to scan payment_schedule table results: %w", err)
	}

	if sched.LastExDividendDate, err = parseNullableTime(lastExStr); err != nil {
		return model.PaymentSchedule{}, err
	}
	if sched.NextPaymentDate, err = parseNullableTime(nextStr); err != nil {
		return model.PaymentSchedule{}, err
	}

	return sched, nil
}
