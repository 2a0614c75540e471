package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dstam/dividend-tracker/internal/analytics"
	"github.com/dstam/dividend-tracker/internal/api/handlers"
	"github.com/dstam/dividend-tracker/internal/csvio"
	"github.com/dstam/dividend-tracker/internal/testutil"
)

func setupPortfolioHandler(t *testing.T) (*handlers.PortfolioHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ps := testutil.NewTestPortfolioService(t, db)
	return handlers.NewPortfolioHandler(ps), db
}

func TestPortfolioHandler_Summary(t *testing.T) {
	handler, db := setupPortfolioHandler(t)

	testutil.NewHolding("AAPL").Build(t, db)
	testutil.NewSchedule("AAPL").Build(t, db)
	testutil.NewDividendEvent("AAPL").Build(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/summary", nil)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response analytics.Summary
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.HoldingCount != 1 || response.EventCount != 1 {
		t.Errorf("Unexpected counts: %+v", response)
	}
	if response.TotalValue != 100*175 {
		t.Errorf("Expected total value 17500, got %v", response.TotalValue)
	}
	if response.AnnualIncome != 96 {
		t.Errorf("Expected annual income 96, got %v", response.AnnualIncome)
	}
	if !strings.HasPrefix(response.FormattedTotalValue, "$") {
		t.Errorf("Expected formatted value with currency symbol, got %q", response.FormattedTotalValue)
	}
}

func TestPortfolioHandler_Projections(t *testing.T) {
	t.Run("returns the requested number of months", func(t *testing.T) {
		handler, db := setupPortfolioHandler(t)

		testutil.NewHolding("AAPL").Build(t, db)
		testutil.NewSchedule("AAPL").Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/projections",
			map[string]string{"months": "6", "growthRate": "5"})
		w := httptest.NewRecorder()

		handler.Projections(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response []handlers.ProjectionPoint
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 6 {
			t.Fatalf("Expected 6 points, got %d", len(response))
		}
		for i := 1; i < len(response); i++ {
			if response[i].Income <= response[i-1].Income {
				t.Errorf("Expected growing income at point %d", i)
			}
		}
	})

	t.Run("returns 400 for malformed parameters", func(t *testing.T) {
		handler, _ := setupPortfolioHandler(t)

		for _, params := range []map[string]string{
			{"months": "-1"},
			{"months": "abc"},
			{"growthRate": "abc"},
		} {
			req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/projections", params)
			w := httptest.NewRecorder()

			handler.Projections(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Params %v: expected status 400, got %d", params, w.Code)
			}
		}
	})
}

func TestPortfolioHandler_Scenarios(t *testing.T) {
	t.Run("uses the default rates without parameters", func(t *testing.T) {
		handler, db := setupPortfolioHandler(t)

		testutil.NewHolding("AAPL").Build(t, db)
		testutil.NewSchedule("AAPL").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/scenarios", nil)
		w := httptest.NewRecorder()

		handler.Scenarios(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response []analytics.GrowthScenario
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 4 {
			t.Fatalf("Expected 4 default scenarios, got %d", len(response))
		}
		if response[0].RatePercent != 0 || response[3].RatePercent != 7 {
			t.Errorf("Unexpected rates: %+v", response)
		}
	})

	t.Run("parses a custom rates list", func(t *testing.T) {
		handler, _ := setupPortfolioHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/scenarios",
			map[string]string{"rates": "2.5, 10"})
		w := httptest.NewRecorder()

		handler.Scenarios(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response []analytics.GrowthScenario
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 2 || response[0].RatePercent != 2.5 || response[1].RatePercent != 10 {
			t.Errorf("Unexpected scenarios: %+v", response)
		}
	})

	t.Run("returns 400 for malformed rates", func(t *testing.T) {
		handler, _ := setupPortfolioHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/scenarios",
			map[string]string{"rates": "3,fast"})
		w := httptest.NewRecorder()

		handler.Scenarios(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestPortfolioHandler_Export(t *testing.T) {
	handler, db := setupPortfolioHandler(t)

	testutil.NewHolding("AAPL").Build(t, db)
	testutil.NewSchedule("AAPL").Build(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/export", nil)
	w := httptest.NewRecorder()

	handler.Export(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "portfolio.csv") {
		t.Errorf("Expected attachment disposition, got %q", cd)
	}

	rows, err := csvio.Read(w.Body)
	if err != nil {
		t.Fatalf("Export body is not valid CSV: %v", err)
	}
	if len(rows) != 1 || rows[0].Symbol != "AAPL" {
		t.Errorf("Unexpected rows: %+v", rows)
	}
}

func TestPortfolioHandler_Import(t *testing.T) {
	t.Run("imports holdings and schedules", func(t *testing.T) {
		handler, db := setupPortfolioHandler(t)

		body := bytes.NewBufferString(
			"symbol,name,qty,avg_price,fy_div,freq,last_div,next_div\n" +
				"AAPL,Apple Inc,100,150,0.96,4,2026-05-08,2026-08-13\n" +
				"NODIV,No Dividend Corp,50,20,0,4,,\n")
		req := httptest.NewRequest(http.MethodPost, "/api/portfolio/import", body)
		w := httptest.NewRecorder()

		handler.Import(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response map[string]int
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response["imported"] != 2 {
			t.Errorf("Expected 2 imported rows, got %d", response["imported"])
		}

		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM holding`).Scan(&count); err != nil {
			t.Fatalf("Count query failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Expected 2 holdings persisted, got %d", count)
		}
	})

	t.Run("returns 400 for a malformed CSV body", func(t *testing.T) {
		handler, _ := setupPortfolioHandler(t)

		body := bytes.NewBufferString("not,a,portfolio\n1,2,3\n")
		req := httptest.NewRequest(http.MethodPost, "/api/portfolio/import", body)
		w := httptest.NewRecorder()

		handler.Import(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
