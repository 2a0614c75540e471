package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/dstam/dividend-tracker/internal/api"
	"github.com/dstam/dividend-tracker/internal/config"
	"github.com/dstam/dividend-tracker/internal/database"
	"github.com/dstam/dividend-tracker/internal/jobs"
	"github.com/dstam/dividend-tracker/internal/repository"
	"github.com/dstam/dividend-tracker/internal/sampledata"
	"github.com/dstam/dividend-tracker/internal/service"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	log.Info().Str("path", cfg.Database.Path).Msg("connected to database")

	// Create repositories
	holdingRepo := repository.NewHoldingRepository(db)
	dividendRepo := repository.NewDividendRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	portfolioService := service.NewPortfolioService(
		holdingRepo,
		dividendRepo,
		scheduleRepo,
		cfg.Portfolio.Name,
		log,
	)

	if cfg.Portfolio.SeedSample {
		seeded, err := portfolioService.Seed(context.Background(), sampledata.Portfolio(cfg.Portfolio.Name))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed sample data")
		}
		if seeded {
			log.Info().Msg("seeded sample portfolio")
		}
	}

	// Background jobs
	if cfg.Jobs.ScheduleRoll {
		runner := cron.New()
		roller := jobs.NewScheduleRoller(scheduleRepo, log)
		if err := roller.Register(runner, cfg.Jobs.ScheduleRollSpec); err != nil {
			log.Fatal().Err(err).Msg("failed to register schedule roll-forward job")
		}
		// Catch up immediately: schedules may have gone stale while the server was down.
		if err := roller.Run(); err != nil {
			log.Error().Err(err).Msg("initial schedule roll-forward failed")
		}
		runner.Start()
		defer runner.Stop()
	}

	// Create router
	router := api.NewRouter(systemService, portfolioService, cfg, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
