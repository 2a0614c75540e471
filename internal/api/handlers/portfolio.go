package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dstam/dividend-tracker/internal/analytics"
	"github.com/dstam/dividend-tracker/internal/api/response"
	"github.com/dstam/dividend-tracker/internal/apperrors"
	"github.com/dstam/dividend-tracker/internal/csvio"
	"github.com/dstam/dividend-tracker/internal/service"
)

// defaultScenarioRates are the growth rates used when the scenarios endpoint
// receives no rates parameter.
var defaultScenarioRates = []float64{0, 3, 5, 7}

// PortfolioHandler handles HTTP requests for the portfolio-level endpoints:
// summary, projections, growth scenarios, and the tabular CSV exchange.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Summary handles GET requests for the composed portfolio report.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with analytics.Summary
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.portfolioService.Snapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoadPortfolio.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, analytics.BuildSummary(snapshot))
}

// ProjectionPoint is one month of the income projection.
type ProjectionPoint struct {
	MonthEnd time.Time `json:"monthEnd"`
	Income   float64   `json:"income"`
}

// Projections handles GET requests for the month-by-month income projection.
//
// Endpoint: GET /api/portfolio/projections?months=12&growthRate=0
// Response: 200 OK with array of ProjectionPoint
// Error: 400 Bad Request on malformed parameters
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Projections(w http.ResponseWriter, r *http.Request) {
	months, err := queryInt(r, "months", 12)
	if err != nil || months < 0 {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameter", "months must be a non-negative integer")
		return
	}
	growthRate, err := queryFloat(r, "growthRate", 0)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameter", err.Error())
		return
	}

	snapshot, err := h.portfolioService.Snapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoadPortfolio.Error(), err.Error())
		return
	}

	points := make([]ProjectionPoint, 0, months)
	for monthEnd, income := range analytics.ProjectIncome(snapshot, months, growthRate) {
		points = append(points, ProjectionPoint{MonthEnd: monthEnd, Income: income})
	}

	response.RespondJSON(w, http.StatusOK, points)
}

// Scenarios handles GET requests for the growth-scenario table.
//
// Endpoint: GET /api/portfolio/scenarios?rates=0,3,5,7
// Response: 200 OK with array of GrowthScenario
// Error: 400 Bad Request on malformed rates
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	rates := defaultScenarioRates
	if param := r.URL.Query().Get("rates"); param != "" {
		rates = nil
		for _, part := range strings.Split(param, ",") {
			rate, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				response.RespondError(w, http.StatusBadRequest, "invalid query parameter", "rates must be a comma-separated list of numbers")
				return
			}
			rates = append(rates, rate)
		}
	}

	snapshot, err := h.portfolioService.Snapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoadPortfolio.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, analytics.GrowthScenarios(snapshot, rates))
}

// Export handles GET requests for the portfolio in the tabular CSV shape.
//
// Endpoint: GET /api/portfolio/export
// Response: 200 OK, text/csv body with one row per holding
// Error: 500 Internal Server Error if the export fails
func (h *PortfolioHandler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.portfolioService.ExportRows(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExportPortfolio.Error(), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := csvio.Write(w, rows); err != nil {
		// Headers are already sent; nothing left to do but log via middleware.
		return
	}
}

// Import handles POST requests loading holdings and schedules from a
// tabular CSV body. Existing tickers are updated, new ones inserted; the
// dividend event log is never touched.
//
// Endpoint: POST /api/portfolio/import (body: text/csv)
// Response: 200 OK with {"imported": n}
// Error: 400 Bad Request when the CSV is malformed
// Error: 500 Internal Server Error if persistence fails
func (h *PortfolioHandler) Import(w http.ResponseWriter, r *http.Request) {
	rows, err := csvio.Read(r.Body)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid CSV body", err.Error())
		return
	}

	imported, err := h.portfolioService.ImportRows(r.Context(), rows)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToImportPortfolio.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]int{"imported": imported})
}
