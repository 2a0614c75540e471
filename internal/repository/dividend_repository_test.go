package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dstam/dividend-tracker/internal/apperrors"
	"github.com/dstam/dividend-tracker/internal/model"
	"github.com/dstam/dividend-tracker/internal/repository"
	"github.com/dstam/dividend-tracker/internal/testutil"
)

func TestDividendRepository(t *testing.T) {
	t.Run("GetEvents returns all events ordered by payment date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		base := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		testutil.NewDividendEvent("AAPL").WithPaymentDate(base.AddDate(0, 3, 0)).Build(t, db)
		testutil.NewDividendEvent("KO").WithPaymentDate(base).Build(t, db)
		testutil.NewDividendEvent("AAPL").WithPaymentDate(base.AddDate(0, 6, 0)).Build(t, db)

		events, err := repo.GetEvents()
		if err != nil {
			t.Fatalf("GetEvents failed: %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("Expected 3 events, got %d", len(events))
		}
		for i := 1; i < len(events); i++ {
			if events[i].PaymentDate.Before(events[i-1].PaymentDate) {
				t.Errorf("Events out of order at %d", i)
			}
		}
	})

	t.Run("GetEventsForTicker filters by ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		testutil.NewDividendEvent("AAPL").Build(t, db)
		testutil.NewDividendEvent("AAPL").Build(t, db)
		testutil.NewDividendEvent("KO").Build(t, db)

		events, err := repo.GetEventsForTicker("AAPL")
		if err != nil {
			t.Fatalf("GetEventsForTicker failed: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("Expected 2 events, got %d", len(events))
		}
		for _, ev := range events {
			if ev.Ticker != "AAPL" {
				t.Errorf("Unexpected ticker %s", ev.Ticker)
			}
		}
	})

	t.Run("GetEvents returns empty slice when log is empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		events, err := repo.GetEvents()
		if err != nil {
			t.Fatalf("GetEvents failed: %v", err)
		}
		if events == nil || len(events) != 0 {
			t.Errorf("Expected empty slice, got %v", events)
		}
	})

	t.Run("InsertEvent then GetEvent round trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		ev := model.DividendEvent{
			ID:             "ev-1",
			Ticker:         "AAPL",
			PaymentDate:    time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC),
			AmountPerShare: 0.26,
			SharesOwned:    100,
			Status:         model.StatusPaid,
			CreatedAt:      time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC),
		}
		if err := repo.InsertEvent(ev); err != nil {
			t.Fatalf("InsertEvent failed: %v", err)
		}

		got, err := repo.GetEvent("ev-1")
		if err != nil {
			t.Fatalf("GetEvent failed: %v", err)
		}
		if got.Ticker != "AAPL" || got.AmountPerShare != 0.26 || got.Status != model.StatusPaid {
			t.Errorf("Unexpected event: %+v", got)
		}
		if !got.PaymentDate.Equal(ev.PaymentDate) {
			t.Errorf("Payment date changed: %v", got.PaymentDate)
		}
		if !got.CreatedAt.Equal(ev.CreatedAt) {
			t.Errorf("Created at changed: %v", got.CreatedAt)
		}
	})

	t.Run("GetEvent returns ErrDividendNotFound for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		if _, err := repo.GetEvent("nope"); !errors.Is(err, apperrors.ErrDividendNotFound) {
			t.Errorf("Expected ErrDividendNotFound, got %v", err)
		}
	})

	t.Run("DeleteEvent removes the row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		ev := testutil.NewDividendEvent("AAPL").Build(t, db)

		if err := repo.DeleteEvent(ev.ID); err != nil {
			t.Fatalf("DeleteEvent failed: %v", err)
		}
		if _, err := repo.GetEvent(ev.ID); !errors.Is(err, apperrors.ErrDividendNotFound) {
			t.Errorf("Expected event gone, got %v", err)
		}
	})

	t.Run("DeleteEvent returns ErrDividendNotFound for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewDividendRepository(db)

		if err := repo.DeleteEvent("nope"); !errors.Is(err, apperrors.ErrDividendNotFound) {
			t.Errorf("Expected ErrDividendNotFound, got %v", err)
		}
	})
}
