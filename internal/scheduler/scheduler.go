// Package scheduler triggers report runs on an interval or a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jekabolt/merchant-report/internal/dependency"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
	"github.com/jekabolt/merchant-report/log"
)

const (
	ModeInterval = "interval"
	ModeCron     = "cron"
)

// Config holds configuration for the scheduler.
type Config struct {
	Mode       string        `mapstructure:"mode"`
	Interval   time.Duration `mapstructure:"interval"`
	Cron       string        `mapstructure:"cron"`
	RunOnStart bool          `mapstructure:"run_on_start"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeCron,
		Interval:   time.Minute,
		Cron:       "0 0 * * *",
		RunOnStart: false,
	}
}

// Schedule parses the configured schedule, evaluated in UTC.
func (c Config) Schedule() (cron.Schedule, error) {
	switch c.Mode {
	case ModeInterval:
		if c.Interval < time.Second {
			return nil, fmt.Errorf("%w: scheduler interval must be at least 1s, got %s", gerr.InvalidConfig, c.Interval)
		}
		return cron.Every(c.Interval), nil
	case ModeCron:
		s, err := cron.ParseStandard(c.Cron)
		if err != nil {
			return nil, fmt.Errorf("%w: bad cron spec %q: %w", gerr.InvalidConfig, c.Cron, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: unknown scheduler mode %q", gerr.InvalidConfig, c.Mode)
}

// Scheduler runs the report on schedule. A run is skipped while the previous
// one is still in flight.
type Scheduler struct {
	runner   dependency.Runner
	c        Config
	schedule cron.Schedule
	cron     *cron.Cron
	job      cron.Job
	ctx      context.Context
	stop     context.CancelFunc
	// startRuns tracks runs triggered by Start outside the cron loop.
	startRuns sync.WaitGroup
}

// New creates a new scheduler.
func New(c Config, runner dependency.Runner) (*Scheduler, error) {
	schedule, err := c.Schedule()
	if err != nil {
		return nil, err
	}
	logger := log.CronLogger(slog.Default())
	s := &Scheduler{
		runner:   runner,
		c:        c,
		schedule: schedule,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(logger),
		),
	}
	s.job = cron.NewChain(
		cron.Recover(logger),
		cron.SkipIfStillRunning(logger),
	).Then(cron.FuncJob(s.run))
	s.cron.Schedule(schedule, s.job)
	return s, nil
}

// Start starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.stop != nil {
		return fmt.Errorf("scheduler already started")
	}
	s.ctx, s.stop = context.WithCancel(ctx)
	s.cron.Start()

	slog.Default().InfoContext(ctx, "scheduler started",
		slog.String("mode", s.c.Mode),
		slog.Time("next", s.schedule.Next(time.Now().UTC())),
	)

	if s.c.RunOnStart {
		s.startRuns.Add(1)
		go func() {
			defer s.startRuns.Done()
			s.job.Run()
		}()
	}
	return nil
}

// Stop stops the scheduler and waits for a run in flight to finish.
func (s *Scheduler) Stop() error {
	if s.stop == nil {
		return fmt.Errorf("scheduler already stopped or not started")
	}
	s.stop()
	s.stop = nil
	<-s.cron.Stop().Done()
	s.startRuns.Wait()
	return nil
}

func (s *Scheduler) run() {
	ctx := s.ctx
	res, err := s.runner.Run(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "report run failed",
			slog.String("err", err.Error()),
		)
		return
	}
	if res == nil {
		return
	}
	if res.NoData {
		slog.Default().WarnContext(ctx, "report run produced no data")
		return
	}
	for _, d := range res.Deliveries {
		if d.Err != nil {
			slog.Default().WarnContext(ctx, "report run finished with delivery errors",
				slog.String("channel", d.Channel),
			)
		}
	}
}
