package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nlamendino/dealday/internal/pipeline"
)

func TestDailySchedule_Next(t *testing.T) {
	loc := time.UTC
	sched := DailySchedule{Hour: 8, Minute: 0, Location: loc}

	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{
			"before fire time, same day",
			time.Date(2026, 3, 1, 6, 30, 0, 0, loc),
			time.Date(2026, 3, 1, 8, 0, 0, 0, loc),
		},
		{
			"after fire time, next day",
			time.Date(2026, 3, 1, 9, 0, 0, 0, loc),
			time.Date(2026, 3, 2, 8, 0, 0, 0, loc),
		},
		{
			"exactly at fire time, next day",
			time.Date(2026, 3, 1, 8, 0, 0, 0, loc),
			time.Date(2026, 3, 2, 8, 0, 0, 0, loc),
		},
		{
			"month boundary",
			time.Date(2026, 3, 31, 12, 0, 0, 0, loc),
			time.Date(2026, 4, 1, 8, 0, 0, 0, loc),
		},
		{
			"year boundary",
			time.Date(2026, 12, 31, 23, 59, 0, 0, loc),
			time.Date(2027, 1, 1, 8, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sched.Next(tt.from); !got.Equal(tt.want) {
				t.Errorf("Next(%s) = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestDailySchedule_NextAlwaysAdvances(t *testing.T) {
	sched := DailySchedule{Hour: 8, Minute: 0, Location: time.UTC}
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		next := sched.Next(now)
		if !next.After(now) {
			t.Fatalf("Next(%s) = %s does not advance", now, next)
		}
		now = next
	}
}

type fakeRunner struct {
	calls atomic.Int32
}

func (f *fakeRunner) RunAll(context.Context) (pipeline.Counts, error) {
	f.calls.Add(1)
	return pipeline.Counts{Deals: 12, Articles: 3, News: 5, Videos: 5}, nil
}

func TestStart_RunsOnceAtStartup(t *testing.T) {
	runner := &fakeRunner{}
	s := New(runner, 8, 0)

	s.Start(context.Background())
	defer s.Stop()

	if got := runner.calls.Load(); got != 1 {
		t.Errorf("Expected exactly 1 startup run, got %d", got)
	}
}

func TestStop_IsIdempotentAfterStart(t *testing.T) {
	runner := &fakeRunner{}
	s := New(runner, 8, 0)
	s.Start(context.Background())
	s.Stop()
	// The daily job must not fire after Stop; nothing to assert beyond
	// the call count staying at the startup run.
	if got := runner.calls.Load(); got != 1 {
		t.Errorf("Expected 1 run after stop, got %d", got)
	}
}
