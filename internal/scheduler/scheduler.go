// Package scheduler triggers the regeneration sequence once at process
// start and once per day at a fixed local wall-clock time. The daily
// trigger is a recurring-timer registration, not a parsed cron
// expression.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nlamendino/dealday/internal/pipeline"
)

// runTimeout bounds one full regeneration sequence.
const runTimeout = 4 * time.Minute

// Runner abstracts the regeneration pipeline.
type Runner interface {
	RunAll(ctx context.Context) (pipeline.Counts, error)
}

// DailySchedule fires once per calendar day at a fixed wall-clock time
// in the given location.
type DailySchedule struct {
	Hour     int
	Minute   int
	Location *time.Location
}

// Next implements cron.Schedule.
func (s DailySchedule) Next(t time.Time) time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	next := time.Date(t.Year(), t.Month(), t.Day(), s.Hour, s.Minute, 0, 0, loc)
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Scheduler owns the daily regeneration timer.
type Scheduler struct {
	cron   *cron.Cron
	runner Runner
}

// New registers the daily run at the given local time.
func New(runner Runner, hour, minute int) *Scheduler {
	s := &Scheduler{
		cron:   cron.New(),
		runner: runner,
	}
	s.cron.Schedule(DailySchedule{Hour: hour, Minute: minute, Location: time.Local}, cron.FuncJob(s.run))
	return s
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := s.runner.RunAll(ctx); err != nil {
		slog.Error("Scheduled regeneration failed", "error", err)
	}
}

// Start runs the startup regeneration synchronously, then begins the
// daily schedule. A failed startup run is logged, not fatal: the
// process still serves whatever was loaded from disk.
func (s *Scheduler) Start(ctx context.Context) {
	if _, err := s.runner.RunAll(ctx); err != nil {
		slog.Error("Startup regeneration failed", "error", err)
	}
	s.cron.Start()
}

// Stop cancels the daily timer and waits for an in-flight scheduled
// run to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
