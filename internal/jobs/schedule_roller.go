// Package jobs holds the background maintenance jobs run by the server.
package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/dstam/dividend-tracker/internal/repository"
)

// ScheduleRoller advances stale payment schedules. Upcoming dividends are
// schedule-driven, so a schedule whose next payment date has passed would
// silently drop its ticker from the upcoming list; the roller moves the date
// forward by whole frequency periods until it lies in the future, and shifts
// the last ex-dividend date by the same amount.
type ScheduleRoller struct {
	scheduleRepo *repository.ScheduleRepository
	log          zerolog.Logger
}

// NewScheduleRoller creates a ScheduleRoller with the provided repository dependency.
func NewScheduleRoller(scheduleRepo *repository.ScheduleRepository, log zerolog.Logger) *ScheduleRoller {
	return &ScheduleRoller{
		scheduleRepo: scheduleRepo,
		log:          log,
	}
}

// Register adds the roller to the cron runner under the given spec.
func (j *ScheduleRoller) Register(c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, func() {
		if err := j.Run(); err != nil {
			j.log.Error().Err(err).Msg("schedule roll-forward failed")
		}
	})
	return err
}

// Run rolls every stale schedule forward and persists the changes.
func (j *ScheduleRoller) Run() error {
	schedules, err := j.scheduleRepo.GetSchedules()
	if err != nil {
		return err
	}

	today := time.Now().UTC()
	rolled := 0

	for _, sched := range schedules {
		if sched.NextPaymentDate == nil || sched.NextPaymentDate.After(today) {
			continue
		}

		monthsPerPeriod := 12 / sched.Frequency.AnnualFrequency()
		next := *sched.NextPaymentDate
		periods := 0
		for !next.After(today) {
			next = next.AddDate(0, monthsPerPeriod, 0)
			periods++
		}
		sched.NextPaymentDate = &next

		if sched.LastExDividendDate != nil {
			lastEx := sched.LastExDividendDate.AddDate(0, periods*monthsPerPeriod, 0)
			sched.LastExDividendDate = &lastEx
		}

		if err := j.scheduleRepo.UpsertSchedule(sched); err != nil {
			return err
		}
		rolled++
	}

	if rolled > 0 {
		j.log.Info().Int("schedules", rolled).Msg("payment schedules rolled forward")
	}
	return nil
}
