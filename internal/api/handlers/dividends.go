package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dstam/dividend-tracker/internal/analytics"
	"github.com/dstam/dividend-tracker/internal/api/request"
	"github.com/dstam/dividend-tracker/internal/api/response"
	"github.com/dstam/dividend-tracker/internal/apperrors"
	"github.com/dstam/dividend-tracker/internal/service"
	"github.com/dstam/dividend-tracker/internal/validation"
)

// DividendHandler handles HTTP requests for the dividend endpoints: the
// event log, income aggregation queries, and schedule-driven upcoming
// payments.
type DividendHandler struct {
	portfolioService *service.PortfolioService
}

// NewDividendHandler creates a new DividendHandler with the provided service dependency.
func NewDividendHandler(portfolioService *service.PortfolioService) *DividendHandler {
	return &DividendHandler{
		portfolioService: portfolioService,
	}
}

// IncomeResponse carries an aggregated income figure with its range.
type IncomeResponse struct {
	Year   int     `json:"year,omitempty"`
	Month  int     `json:"month,omitempty"`
	Income float64 `json:"income"`
}

// Dividends handles GET requests for the event log or aggregated income.
// Without parameters it returns the full event log; with year (and
// optionally month) it returns the aggregated income for that period.
//
// Endpoint: GET /api/dividends[?year=2025[&month=6]]
// Response: 200 OK with array of DividendEvent, or IncomeResponse when aggregating
// Error: 400 Bad Request on malformed parameters
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) Dividends(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", 0)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameter", err.Error())
		return
	}
	month, err := queryInt(r, "month", 0)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameter", err.Error())
		return
	}
	if month < 0 || month > 12 {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameter", "month must be 1-12")
		return
	}

	snapshot, err := h.portfolioService.Snapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDividends.Error(), err.Error())
		return
	}

	switch {
	case year != 0 && month != 0:
		income := analytics.MonthlyIncome(snapshot, year, time.Month(month))
		response.RespondJSON(w, http.StatusOK, IncomeResponse{Year: year, Month: month, Income: income})
	case year != 0:
		income := analytics.YearlyIncome(snapshot, year)
		response.RespondJSON(w, http.StatusOK, IncomeResponse{Year: year, Income: income})
	default:
		response.RespondJSON(w, http.StatusOK, snapshot.Events)
	}
}

// RecordDividend handles POST requests to append a payment to the event log.
//
// Endpoint: POST /api/dividends
// Request Body: RecordDividendRequest
// Response: 201 Created with DividendEvent
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the ticker is not held
// Error: 500 Internal Server Error if creation fails
func (h *DividendHandler) RecordDividend(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RecordDividendRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRecordDividend(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	event, err := h.portfolioService.RecordDividend(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to record dividend", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, event)
}

// DeleteDividend handles DELETE requests to remove an event from the log.
//
// Endpoint: DELETE /api/dividends/{id}
// Response: 204 No Content
// Error: 404 Not Found if the event does not exist
// Error: 500 Internal Server Error if the delete fails
func (h *DividendHandler) DeleteDividend(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.portfolioService.DeleteDividend(id); err != nil {
		if errors.Is(err, apperrors.ErrDividendNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDividendNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete dividend", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Upcoming handles GET requests for schedule-driven upcoming payments.
//
// Endpoint: GET /api/dividends/upcoming?days=30
// Response: 200 OK with array of UpcomingDividend ordered by payment date
// Error: 400 Bad Request on malformed parameters
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 30)
	if err != nil || days < 0 {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameter", "days must be a non-negative integer")
		return
	}

	snapshot, err := h.portfolioService.Snapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoadPortfolio.Error(), err.Error())
		return
	}

	upcoming := analytics.UpcomingDividends(snapshot, days)
	if upcoming == nil {
		upcoming = []analytics.UpcomingDividend{}
	}
	response.RespondJSON(w, http.StatusOK, upcoming)
}

// MonthlyBreakdownResponse carries the per-month income of one year.
type MonthlyBreakdownResponse struct {
	Year   int       `json:"year"`
	Months []float64 `json:"months"` // January..December
}

// Breakdown handles GET requests for a year's month-by-month income.
//
// Endpoint: GET /api/dividends/breakdown?year=2025
// Response: 200 OK with MonthlyBreakdownResponse
// Error: 400 Bad Request when year is missing or malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", 0)
	if err != nil || year == 0 {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameter", "year is required")
		return
	}

	snapshot, err := h.portfolioService.Snapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoadPortfolio.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, MonthlyBreakdownResponse{
		Year:   year,
		Months: analytics.MonthlyBreakdown(snapshot, year),
	})
}

// ByYear handles GET requests for lifetime income grouped by year.
//
// Endpoint: GET /api/dividends/by-year
// Response: 200 OK with array of YearTotal in ascending year order
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) ByYear(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.portfolioService.Snapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoadPortfolio.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, analytics.AnnualSummaryByYear(snapshot))
}
