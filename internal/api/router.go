package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/dstam/dividend-tracker/internal/api/handlers"
	custommiddleware "github.com/dstam/dividend-tracker/internal/api/middleware"
	"github.com/dstam/dividend-tracker/internal/config"
	"github.com/dstam/dividend-tracker/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	portfolioService *service.PortfolioService,
	cfg *config.Config,
	log zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/projections", portfolioHandler.Projections)
			r.Get("/scenarios", portfolioHandler.Scenarios)
			r.Get("/export", portfolioHandler.Export)
			r.Post("/import", portfolioHandler.Import)
		})

		r.Route("/stocks", func(r chi.Router) {
			stockHandler := handlers.NewStockHandler(portfolioService)
			r.Get("/", stockHandler.Stocks)
			r.Post("/", stockHandler.CreateStock)

			r.Route("/{ticker}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateTickerMiddleware)
				r.Get("/", stockHandler.Stock)
				r.Put("/", stockHandler.UpdateStock)
				r.Delete("/", stockHandler.DeleteStock)
				r.Put("/schedule", stockHandler.UpsertSchedule)
			})
		})

		r.Route("/dividends", func(r chi.Router) {
			dividendHandler := handlers.NewDividendHandler(portfolioService)
			r.Get("/", dividendHandler.Dividends)
			r.Post("/", dividendHandler.RecordDividend)
			r.Get("/upcoming", dividendHandler.Upcoming)
			r.Get("/breakdown", dividendHandler.Breakdown)
			r.Get("/by-year", dividendHandler.ByYear)
			r.Delete("/{id}", dividendHandler.DeleteDividend)
		})
	})

	return r
}
