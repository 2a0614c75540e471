package jobs_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dstam/dividend-tracker/internal/jobs"
	"github.com/dstam/dividend-tracker/internal/repository"
	"github.com/dstam/dividend-tracker/internal/testutil"
)

func TestScheduleRoller_Run(t *testing.T) {
	t.Run("rolls a stale quarterly schedule forward", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewScheduleRepository(db)

		// Next payment slipped seven months into the past. Anchoring on the
		// first of the month keeps AddDate arithmetic free of day overflow.
		now := time.Now().UTC()
		stale := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -7, 0)
		lastEx := stale.AddDate(0, -1, 0)
		testutil.NewSchedule("AAPL").
			WithNextPaymentDate(stale).
			Build(t, db)
		sched, err := repo.GetSchedule("AAPL")
		if err != nil {
			t.Fatalf("GetSchedule failed: %v", err)
		}
		sched.LastExDividendDate = &lastEx
		if err := repo.UpsertSchedule(sched); err != nil {
			t.Fatalf("UpsertSchedule failed: %v", err)
		}

		roller := jobs.NewScheduleRoller(repo, zerolog.Nop())
		if err := roller.Run(); err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		got, err := repo.GetSchedule("AAPL")
		if err != nil {
			t.Fatalf("GetSchedule failed: %v", err)
		}
		if got.NextPaymentDate == nil || !got.NextPaymentDate.After(time.Now().UTC()) {
			t.Errorf("Expected next payment in the future, got %v", got.NextPaymentDate)
		}
		// Three quarterly periods bring a seven-month-old date into the future.
		wantNext := stale.AddDate(0, 9, 0)
		if !got.NextPaymentDate.Equal(wantNext) {
			t.Errorf("Expected next payment %v, got %v", wantNext, got.NextPaymentDate)
		}
		if got.LastExDividendDate == nil || !got.LastExDividendDate.Equal(lastEx.AddDate(0, 9, 0)) {
			t.Errorf("Expected last ex-dividend date shifted by the same periods, got %v", got.LastExDividendDate)
		}
	})

	t.Run("leaves future schedules untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewScheduleRepository(db)

		future := time.Now().UTC().AddDate(0, 0, 20).Truncate(24 * time.Hour)
		testutil.NewSchedule("AAPL").WithNextPaymentDate(future).Build(t, db)

		roller := jobs.NewScheduleRoller(repo, zerolog.Nop())
		if err := roller.Run(); err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		got, err := repo.GetSchedule("AAPL")
		if err != nil {
			t.Fatalf("GetSchedule failed: %v", err)
		}
		if !got.NextPaymentDate.Equal(future) {
			t.Errorf("Expected next payment unchanged at %v, got %v", future, got.NextPaymentDate)
		}
	})

	t.Run("skips schedules without a next payment date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewScheduleRepository(db)

		testutil.NewSchedule("AAPL").WithoutDates().Build(t, db)

		roller := jobs.NewScheduleRoller(repo, zerolog.Nop())
		if err := roller.Run(); err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		got, err := repo.GetSchedule("AAPL")
		if err != nil {
			t.Fatalf("GetSchedule failed: %v", err)
		}
		if got.NextPaymentDate != nil {
			t.Errorf("Expected no next payment date, got %v", got.NextPaymentDate)
		}
	})
}
