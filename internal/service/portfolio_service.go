// Package service holds the business logic between the HTTP layer and the
// repositories: portfolio mutation, snapshot assembly, and seeding.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dstam/dividend-tracker/internal/api/request"
	"github.com/dstam/dividend-tracker/internal/apperrors"
	"github.com/dstam/dividend-tracker/internal/csvio"
	"github.com/dstam/dividend-tracker/internal/model"
	"github.com/dstam/dividend-tracker/internal/repository"
)

// PortfolioService handles portfolio mutation and snapshot assembly.
// Analytics run on the snapshots it produces, never on the database directly.
type PortfolioService struct {
	holdingRepo  *repository.HoldingRepository
	dividendRepo *repository.DividendRepository
	scheduleRepo *repository.ScheduleRepository
	name         string
	log          zerolog.Logger
}

// NewPortfolioService creates a new PortfolioService with the provided
// repository dependencies. The name becomes the portfolio name on every
// snapshot.
func NewPortfolioService(
	holdingRepo *repository.HoldingRepository,
	dividendRepo *repository.DividendRepository,
	scheduleRepo *repository.ScheduleRepository,
	name string,
	log zerolog.Logger,
) *PortfolioService {
	return &PortfolioService{
		holdingRepo:  holdingRepo,
		dividendRepo: dividendRepo,
		scheduleRepo: scheduleRepo,
		name:         name,
		log:          log,
	}
}

// Snapshot assembles a consistent in-memory portfolio from the store.
// Holdings, events, and schedules load concurrently.
func (s *PortfolioService) Snapshot(ctx context.Context) (*model.Portfolio, error) {
	var (
		holdings  []model.Holding
		events    []model.DividendEvent
		schedules map[string]model.PaymentSchedule
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		holdings, err = s.holdingRepo.GetHoldings()
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.dividendRepo.GetEvents()
		return err
	})
	g.Go(func() error {
		var err error
		schedules, err = s.scheduleRepo.GetSchedules()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}

	return &model.Portfolio{
		Name:      s.name,
		Holdings:  holdings,
		Events:    events,
		Schedules: schedules,
	}, nil
}

// GetHolding retrieves a single holding by ticker.
func (s *PortfolioService) GetHolding(ticker string) (model.Holding, error) {
	return s.holdingRepo.GetHolding(ticker)
}

// AddHolding adds a stock to the portfolio.
// Returns apperrors.ErrDuplicateTicker when the ticker already exists.
func (s *PortfolioService) AddHolding(req request.CreateHoldingRequest) (model.Holding, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	holding := model.Holding{
		Ticker:        req.Ticker,
		Name:          req.Name,
		Shares:        req.Shares,
		PurchasePrice: req.PurchasePrice,
		CurrentPrice:  req.CurrentPrice,
		Currency:      currency,
	}

	if err := s.holdingRepo.InsertHolding(holding); err != nil {
		return model.Holding{}, err
	}

	s.log.Info().Str("ticker", holding.Ticker).Float64("shares", holding.Shares).Msg("holding added")
	return holding, nil
}

// UpdateHolding updates an existing holding with the provided fields.
// Only provided fields in the request are updated; omitted fields remain
// unchanged. Returns apperrors.ErrHoldingNotFound for unknown tickers.
func (s *PortfolioService) UpdateHolding(ticker string, req request.UpdateHoldingRequest) (model.Holding, error) {
	holding, err := s.holdingRepo.GetHolding(ticker)
	if err != nil {
		return model.Holding{}, err
	}

	if req.Name != nil {
		holding.Name = *req.Name
	}
	if req.Shares != nil {
		holding.Shares = *req.Shares
	}
	if req.PurchasePrice != nil {
		holding.PurchasePrice = *req.PurchasePrice
	}
	if req.CurrentPrice != nil {
		holding.CurrentPrice = *req.CurrentPrice
	}
	if req.Currency != nil {
		holding.Currency = *req.Currency
	}

	if err := s.holdingRepo.UpdateHolding(holding); err != nil {
		return model.Holding{}, err
	}

	return holding, nil
}

// DeleteHolding removes a holding and its payment schedule. Recorded
// dividend events survive so historical income reports stay correct.
// Returns apperrors.ErrHoldingNotFound for unknown tickers.
func (s *PortfolioService) DeleteHolding(ticker string) error {
	if err := s.holdingRepo.DeleteHolding(ticker); err != nil {
		return err
	}
	if err := s.scheduleRepo.DeleteSchedule(ticker); err != nil {
		return err
	}

	s.log.Info().Str("ticker", ticker).Msg("holding removed")
	return nil
}

// RecordDividend appends a dividend payment to the event log. The ticker
// must refer to a current holding; when the request omits the shares
// snapshot, the holding's current share count is recorded. Status defaults
// to pending.
func (s *PortfolioService) RecordDividend(req request.RecordDividendRequest) (model.DividendEvent, error) {
	holding, err := s.holdingRepo.GetHolding(req.Ticker)
	if err != nil {
		return model.DividendEvent{}, err
	}

	paymentDate, err := repository.ParseTime(req.PaymentDate)
	if err != nil {
		return model.DividendEvent{}, err
	}

	shares := req.SharesOwned
	if shares == 0 {
		shares = holding.Shares
	}

	status := model.PaymentStatus(req.Status)
	if status == "" {
		status = model.StatusPending
	}

	event := model.DividendEvent{
		ID:             uuid.New().String(),
		Ticker:         holding.Ticker,
		PaymentDate:    paymentDate,
		AmountPerShare: req.AmountPerShare,
		SharesOwned:    shares,
		Status:         status,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.dividendRepo.InsertEvent(event); err != nil {
		return model.DividendEvent{}, err
	}

	s.log.Info().
		Str("ticker", event.Ticker).
		Str("date", event.PaymentDate.Format("2006-01-02")).
		Float64("total", event.TotalAmount()).
		Msg("dividend recorded")
	return event, nil
}

// DeleteDividend removes a dividend event by ID.
// Returns apperrors.ErrDividendNotFound for unknown IDs.
func (s *PortfolioService) DeleteDividend(id string) error {
	return s.dividendRepo.DeleteEvent(id)
}

// SetSchedule stores the payment schedule for a ticker, replacing any
// previous one. The ticker must refer to a current holding.
func (s *PortfolioService) SetSchedule(ticker string, req request.UpsertScheduleRequest) (model.PaymentSchedule, error) {
	holding, err := s.holdingRepo.GetHolding(ticker)
	if err != nil {
		return model.PaymentSchedule{}, err
	}

	sched := model.PaymentSchedule{
		Ticker:        holding.Ticker,
		Frequency:     model.Frequency(req.Frequency),
		TypicalAmount: req.TypicalAmount,
	}
	if req.LastExDividendDate != "" {
		t, err := repository.ParseTime(req.LastExDividendDate)
		if err != nil {
			return model.PaymentSchedule{}, err
		}
		sched.LastExDividendDate = &t
	}
	if req.NextPaymentDate != "" {
		t, err := repository.ParseTime(req.NextPaymentDate)
		if err != nil {
			return model.PaymentSchedule{}, err
		}
		sched.NextPaymentDate = &t
	}

	if err := s.scheduleRepo.UpsertSchedule(sched); err != nil {
		return model.PaymentSchedule{}, err
	}

	return sched, nil
}

// ExportRows flattens the current portfolio into the tabular exchange shape.
func (s *PortfolioService) ExportRows(ctx context.Context) ([]csvio.Row, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return csvio.FromPortfolio(snapshot), nil
}

// ImportRows loads holdings and schedules from tabular rows. Rows for
// tickers already in the portfolio update them in place; new tickers are
// inserted. The dividend event log is never touched by an import.
func (s *PortfolioService) ImportRows(ctx context.Context, rows []csvio.Row) (int, error) {
	imported := 0
	for _, row := range rows {
		holding := row.Holding()

		existing, err := s.holdingRepo.GetHolding(holding.Ticker)
		switch {
		case err == nil:
			// Keep the live market price and currency; the row shape does not carry them.
			holding.CurrentPrice = existing.CurrentPrice
			holding.Currency = existing.Currency
			if err := s.holdingRepo.UpdateHolding(holding); err != nil {
				return imported, err
			}
		case errors.Is(err, apperrors.ErrHoldingNotFound):
			if err := s.holdingRepo.InsertHolding(holding); err != nil {
				return imported, err
			}
		default:
			return imported, err
		}

		if sched, ok := row.Schedule(); ok {
			if err := s.scheduleRepo.UpsertSchedule(sched); err != nil {
				return imported, err
			}
		}

		imported++
	}

	s.log.Info().Int("rows", imported).Msg("portfolio imported")
	return imported, nil
}

// Seed inserts the given portfolio when the store holds no holdings yet.
// Returns true when seeding happened.
func (s *PortfolioService) Seed(ctx context.Context, p *model.Portfolio) (bool, error) {
	existing, err := s.holdingRepo.GetHoldings()
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, h := range p.Holdings {
		if err := s.holdingRepo.InsertHolding(h); err != nil {
			return false, err
		}
	}
	for _, ev := range p.Events {
		if err := s.dividendRepo.InsertEvent(ev); err != nil {
			return false, err
		}
	}
	for _, sched := range p.Schedules {
		if err := s.scheduleRepo.UpsertSchedule(sched); err != nil {
			return false, err
		}
	}

	s.log.Info().Int("holdings", len(p.Holdings)).Int("events", len(p.Events)).Msg("sample portfolio seeded")
	return true, nil
}
