package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dstam/dividend-tracker/internal/analytics"
	"github.com/dstam/dividend-tracker/internal/api/request"
	"github.com/dstam/dividend-tracker/internal/api/response"
	"github.com/dstam/dividend-tracker/internal/apperrors"
	"github.com/dstam/dividend-tracker/internal/model"
	"github.com/dstam/dividend-tracker/internal/service"
	"github.com/dstam/dividend-tracker/internal/validation"
)

// StockHandler handles HTTP requests for the holdings endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the portfolioService and the analytics functions.
type StockHandler struct {
	portfolioService *service.PortfolioService
}

// NewStockHandler creates a new StockHandler with the provided service dependency.
func NewStockHandler(portfolioService *service.PortfolioService) *StockHandler {
	return &StockHandler{
		portfolioService: portfolioService,
	}
}

// StockDetail is the response shape for a single stock: the holding, its
// schedule if any, and its derived analytics.
type StockDetail struct {
	Holding       model.Holding            `json:"holding"`
	Schedule      *model.PaymentSchedule   `json:"schedule,omitempty"`
	AnnualIncome  float64                  `json:"annualIncome"`
	DividendYield float64                  `json:"dividendYield"`
	YieldOnCost   float64                  `json:"yieldOnCost"`
	GrowthRate    *float64                 `json:"growthRate,omitempty"` // nil when insufficient data
	History       []analytics.HistoryEntry `json:"history"`
}

// Stocks handles GET requests to list all holdings with their derived values.
//
// Endpoint: GET /api/stocks
// Response: 200 OK with array of HoldingSummary
// Error: 500 Internal Server Error if retrieval fails
func (h *StockHandler) Stocks(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.portfolioService.Snapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, analytics.BuildSummary(snapshot).Holdings)
}

// Stock handles GET requests for a single stock's detail.
//
// Endpoint: GET /api/stocks/{ticker}?years=3
// Response: 200 OK with StockDetail
// Error: 404 Not Found if the ticker is not held
// Error: 500 Internal Server Error if retrieval fails
func (h *StockHandler) Stock(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	years, err := queryInt(r, "years", 3)
	if err != nil || years < 1 {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameter", "years must be a positive integer")
		return
	}

	snapshot, err := h.portfolioService.Snapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoadPortfolio.Error(), err.Error())
		return
	}

	holding, ok := snapshot.Holding(ticker)
	if !ok {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), ticker)
		return
	}

	detail := StockDetail{
		Holding: holding,
		History: analytics.DividendHistory(snapshot, ticker),
	}
	if sched, ok := snapshot.Schedule(ticker); ok {
		detail.Schedule = &sched
		annualPerShare := sched.AnnualDividendPerShare()
		detail.AnnualIncome = annualPerShare * holding.Shares
		detail.DividendYield = analytics.DividendYield(holding, annualPerShare)
		detail.YieldOnCost = analytics.YieldOnCost(holding, annualPerShare)
	}
	if rate, ok := analytics.DividendGrowthRate(snapshot, ticker, years); ok {
		detail.GrowthRate = &rate
	}

	response.RespondJSON(w, http.StatusOK, detail)
}

// CreateStock handles POST requests to add a stock to the portfolio.
//
// Endpoint: POST /api/stocks
// Request Body: CreateHoldingRequest
// Response: 201 Created with Holding
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the ticker already exists
// Error: 500 Internal Server Error if creation fails
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.portfolioService.AddHolding(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateTicker) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateTicker.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to add holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, holding)
}

// UpdateStock handles PUT requests to edit a holding.
//
// Endpoint: PUT /api/stocks/{ticker}
// Request Body: UpdateHoldingRequest (all fields optional)
// Response: 200 OK with updated Holding
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the ticker is not held
// Error: 500 Internal Server Error if the update fails
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	req, err := parseJSON[request.UpdateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.portfolioService.UpdateHolding(ticker, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// DeleteStock handles DELETE requests to remove a holding and its schedule.
// The dividend event log is preserved.
//
// Endpoint: DELETE /api/stocks/{ticker}
// Response: 204 No Content
// Error: 404 Not Found if the ticker is not held
// Error: 500 Internal Server Error if the delete fails
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	if err := h.portfolioService.DeleteHolding(ticker); err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// UpsertSchedule handles PUT requests to set a stock's payment schedule.
//
// Endpoint: PUT /api/stocks/{ticker}/schedule
// Request Body: UpsertScheduleRequest
// Response: 200 OK with PaymentSchedule
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the ticker is not held
// Error: 500 Internal Server Error if the upsert fails
func (h *StockHandler) UpsertSchedule(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	req, err := parseJSON[request.UpsertScheduleRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpsertSchedule(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	sched, err := h.portfolioService.SetSchedule(ticker, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to set schedule", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, sched)
}
