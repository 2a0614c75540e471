package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dstam/dividend-tracker/internal/api/request"
	"github.com/dstam/dividend-tracker/internal/apperrors"
	"github.com/dstam/dividend-tracker/internal/csvio"
	"github.com/dstam/dividend-tracker/internal/model"
	"github.com/dstam/dividend-tracker/internal/sampledata"
	"github.com/dstam/dividend-tracker/internal/testutil"
)

func TestSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	testutil.NewHolding("AAPL").Build(t, db)
	testutil.NewHolding("KO").WithShares(200).WithPrices(55, 60).Build(t, db)
	testutil.NewDividendEvent("AAPL").Build(t, db)
	testutil.NewSchedule("AAPL").Build(t, db)

	p, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if p.Name != "Test Portfolio" {
		t.Errorf("Expected portfolio name, got %q", p.Name)
	}
	if len(p.Holdings) != 2 || len(p.Events) != 1 || len(p.Schedules) != 1 {
		t.Errorf("Unexpected snapshot shape: %d holdings, %d events, %d schedules",
			len(p.Holdings), len(p.Events), len(p.Schedules))
	}
	if _, ok := p.Schedule("AAPL"); !ok {
		t.Error("Expected AAPL schedule in snapshot")
	}
}

func TestAddHolding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	h, err := svc.AddHolding(request.CreateHoldingRequest{
		Ticker: "AAPL", Name: "Apple Inc", Shares: 100, PurchasePrice: 150, CurrentPrice: 175,
	})
	if err != nil {
		t.Fatalf("AddHolding failed: %v", err)
	}
	if h.Currency != "USD" {
		t.Errorf("Expected USD default currency, got %q", h.Currency)
	}

	t.Run("duplicate ticker rejected", func(t *testing.T) {
		_, err := svc.AddHolding(request.CreateHoldingRequest{Ticker: "AAPL", Name: "Apple Again", Shares: 1})
		if !errors.Is(err, apperrors.ErrDuplicateTicker) {
			t.Errorf("Expected ErrDuplicateTicker, got %v", err)
		}
	})
}

func TestUpdateHolding_PartialFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	testutil.NewHolding("AAPL").WithShares(100).WithPrices(150, 175).Build(t, db)

	newShares := 160.0
	h, err := svc.UpdateHolding("AAPL", request.UpdateHoldingRequest{Shares: &newShares})
	if err != nil {
		t.Fatalf("UpdateHolding failed: %v", err)
	}
	if h.Shares != 160 {
		t.Errorf("Expected 160 shares, got %v", h.Shares)
	}
	if h.PurchasePrice != 150 || h.CurrentPrice != 175 {
		t.Errorf("Omitted fields changed: %+v", h)
	}

	t.Run("unknown ticker", func(t *testing.T) {
		_, err := svc.UpdateHolding("ZZZ", request.UpdateHoldingRequest{Shares: &newShares})
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound, got %v", err)
		}
	})
}

func TestDeleteHolding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	testutil.NewHolding("AAPL").Build(t, db)
	testutil.NewSchedule("AAPL").Build(t, db)
	ev := testutil.NewDividendEvent("AAPL").Build(t, db)

	if err := svc.DeleteHolding("AAPL"); err != nil {
		t.Fatalf("DeleteHolding failed: %v", err)
	}

	p, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(p.Holdings) != 0 {
		t.Error("Expected holding removed")
	}
	if len(p.Schedules) != 0 {
		t.Error("Expected schedule removed with the holding")
	}
	// The payment log keeps history for income reports.
	if len(p.Events) != 1 || p.Events[0].ID != ev.ID {
		t.Error("Expected dividend events to survive the delete")
	}
}

func TestRecordDividend(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	testutil.NewHolding("AAPL").WithShares(120).Build(t, db)

	t.Run("defaults shares to the holding and status to pending", func(t *testing.T) {
		ev, err := svc.RecordDividend(request.RecordDividendRequest{
			Ticker: "AAPL", PaymentDate: "2026-09-15", AmountPerShare: 0.26,
		})
		if err != nil {
			t.Fatalf("RecordDividend failed: %v", err)
		}
		if ev.SharesOwned != 120 {
			t.Errorf("Expected shares snapshot 120, got %v", ev.SharesOwned)
		}
		if ev.Status != model.StatusPending {
			t.Errorf("Expected pending status, got %s", ev.Status)
		}
		if ev.ID == "" {
			t.Error("Expected a generated ID")
		}
		if !ev.PaymentDate.Equal(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Unexpected payment date %v", ev.PaymentDate)
		}
	})

	t.Run("explicit shares and status are kept", func(t *testing.T) {
		ev, err := svc.RecordDividend(request.RecordDividendRequest{
			Ticker: "AAPL", PaymentDate: "2026-06-15", AmountPerShare: 0.26,
			SharesOwned: 80, Status: "paid",
		})
		if err != nil {
			t.Fatalf("RecordDividend failed: %v", err)
		}
		if ev.SharesOwned != 80 || ev.Status != model.StatusPaid {
			t.Errorf("Unexpected event: %+v", ev)
		}
	})

	t.Run("unknown ticker rejected", func(t *testing.T) {
		_, err := svc.RecordDividend(request.RecordDividendRequest{
			Ticker: "ZZZ", PaymentDate: "2026-09-15", AmountPerShare: 0.26,
		})
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound, got %v", err)
		}
	})
}

func TestSetSchedule(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	testutil.NewHolding("AAPL").Build(t, db)

	sched, err := svc.SetSchedule("AAPL", request.UpsertScheduleRequest{
		Frequency: "quarterly", TypicalAmount: 0.26, NextPaymentDate: "2026-11-12",
	})
	if err != nil {
		t.Fatalf("SetSchedule failed: %v", err)
	}
	if sched.Frequency != model.FrequencyQuarterly || sched.TypicalAmount != 0.26 {
		t.Errorf("Unexpected schedule: %+v", sched)
	}
	if sched.NextPaymentDate == nil {
		t.Fatal("Expected next payment date")
	}

	t.Run("unknown ticker rejected", func(t *testing.T) {
		_, err := svc.SetSchedule("ZZZ", request.UpsertScheduleRequest{Frequency: "quarterly", TypicalAmount: 1})
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound, got %v", err)
		}
	})
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	testutil.NewHolding("AAPL").Build(t, db)
	testutil.NewSchedule("AAPL").Build(t, db)
	testutil.NewHolding("NODIV").WithShares(50).WithPrices(20, 22).Build(t, db)

	rows, err := svc.ExportRows(ctx)
	if err != nil {
		t.Fatalf("ExportRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	// Import into a fresh store.
	db2 := testutil.SetupTestDB(t)
	svc2 := testutil.NewTestPortfolioService(t, db2)

	n, err := svc2.ImportRows(ctx, rows)
	if err != nil {
		t.Fatalf("ImportRows failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 imported rows, got %d", n)
	}

	p, err := svc2.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(p.Holdings) != 2 {
		t.Errorf("Expected 2 holdings, got %d", len(p.Holdings))
	}
	if _, ok := p.Schedule("AAPL"); !ok {
		t.Error("Expected AAPL schedule imported")
	}
	if _, ok := p.Schedule("NODIV"); ok {
		t.Error("Expected no schedule for the zero-dividend row")
	}
}

func TestImportRows_UpdatesInPlace(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	testutil.NewHolding("AAPL").WithShares(100).WithPrices(150, 175).WithCurrency("USD").Build(t, db)
	testutil.NewDividendEvent("AAPL").Build(t, db)

	rows := []csvio.Row{{Symbol: "AAPL", Name: "Apple Inc", Qty: 160, AvgPrice: 155, FYDiv: 1.04, Freq: 4}}
	if _, err := svc.ImportRows(ctx, rows); err != nil {
		t.Fatalf("ImportRows failed: %v", err)
	}

	p, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(p.Holdings) != 1 {
		t.Fatalf("Expected the holding updated, not duplicated: %d", len(p.Holdings))
	}
	h := p.Holdings[0]
	if h.Shares != 160 || h.PurchasePrice != 155 {
		t.Errorf("Expected row values applied, got %+v", h)
	}
	// The row shape carries no market price; the live one must survive.
	if h.CurrentPrice != 175 {
		t.Errorf("Expected current price preserved at 175, got %v", h.CurrentPrice)
	}
	if len(p.Events) != 1 {
		t.Error("Expected the event log untouched by import")
	}
}

func TestImportRows_LookupErrorStopsImport(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	// A row the lookup cannot scan. The import must surface that error
	// instead of treating the ticker as new and tripping over the
	// uniqueness constraint.
	if _, err := db.Exec(
		`INSERT INTO holding (ticker, name, shares, purchase_price, current_price, currency)
		 VALUES ('BAD', 'Broken Row', 'abc', 10, 10, 'USD')`,
	); err != nil {
		t.Fatalf("Failed to insert row: %v", err)
	}

	rows := []csvio.Row{{Symbol: "BAD", Name: "Broken Row", Qty: 10, AvgPrice: 10}}
	imported, err := svc.ImportRows(ctx, rows)
	if err == nil {
		t.Fatal("Expected an error from the failed lookup")
	}
	if errors.Is(err, apperrors.ErrDuplicateTicker) {
		t.Errorf("Expected the lookup error surfaced, got a duplicate insert error: %v", err)
	}
	if imported != 0 {
		t.Errorf("Expected 0 rows imported, got %d", imported)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	sample := sampledata.Portfolio("Sample")

	seeded, err := svc.Seed(ctx, sample)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if !seeded {
		t.Fatal("Expected seeding into an empty store")
	}

	p, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(p.Holdings) != len(sample.Holdings) {
		t.Errorf("Expected %d holdings, got %d", len(sample.Holdings), len(p.Holdings))
	}

	t.Run("seeding is skipped when holdings exist", func(t *testing.T) {
		seeded, err := svc.Seed(ctx, sample)
		if err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		if seeded {
			t.Error("Expected no re-seed on a populated store")
		}
	})
}
