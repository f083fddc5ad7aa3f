package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jekabolt/merchant-report/config"
	"github.com/jekabolt/merchant-report/internal/aggregator"
	"github.com/jekabolt/merchant-report/internal/delivery"
	"github.com/jekabolt/merchant-report/internal/dependency"
	"github.com/jekabolt/merchant-report/internal/entity"
	"github.com/jekabolt/merchant-report/internal/job"
	"github.com/jekabolt/merchant-report/internal/mail"
	"github.com/jekabolt/merchant-report/internal/memstore"
	"github.com/jekabolt/merchant-report/internal/pdf"
	"github.com/jekabolt/merchant-report/internal/scheduler"
	"github.com/jekabolt/merchant-report/internal/slack"
	"github.com/jekabolt/merchant-report/internal/snapshot"
	"github.com/jekabolt/merchant-report/internal/store"
	"github.com/jekabolt/merchant-report/internal/warehouse"
	"github.com/jekabolt/merchant-report/internal/window"
)

// App is the main application
type App struct {
	c *config.Config
	// clock overrides the run clock, nil means the system clock.
	clock window.Clock
	db    dependency.Repository
	wh    *warehouse.Warehouse
	job   *job.Job
	sch   *scheduler.Scheduler
	done  chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start assembles the report job and schedules it.
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting merchant report")

	if err := a.build(ctx); err != nil {
		return err
	}

	var err error
	a.sch, err = scheduler.New(a.c.Scheduler, a.job)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create scheduler",
			slog.String("err", err.Error()),
		)
		return err
	}
	if err := a.sch.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "failed to start scheduler",
			slog.String("err", err.Error()),
		)
		return err
	}
	return nil
}

// RunOnce assembles the report job, runs it a single time and releases
// every resource.
func (a *App) RunOnce(ctx context.Context) (*entity.RunResult, error) {
	if err := a.build(ctx); err != nil {
		return nil, err
	}
	defer a.Stop(ctx)
	return a.job.Run(ctx)
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.sch != nil {
		if err := a.sch.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "failed to stop scheduler",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.wh != nil {
		if err := a.wh.Close(); err != nil {
			slog.Default().ErrorContext(ctx, "failed to close bigquery client",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}

func (a *App) build(ctx context.Context) error {
	var err error
	a.db, err = a.repository(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't open metrics source",
			slog.String("source", a.c.Source),
			slog.String("err", err.Error()),
		)
		return err
	}

	agg, err := aggregator.New(a.db, a.db, a.c.Aggregator)
	if err != nil {
		return err
	}
	writer, err := pdf.New(a.c.PDF)
	if err != nil {
		return err
	}

	deps := job.Deps{
		Clock:      a.clock,
		Windows:    a.c.Window,
		Aggregator: agg,
		Families:   agg.Families(),
		Snapshot:   snapshot.New(a.c.Snapshot, agg.Families()),
		Writer:     writer,
		Dispatcher: delivery.New(a.channels(ctx)...),
	}

	if a.c.Warehouse.Enabled() {
		a.wh, err = warehouse.New(ctx, a.c.Warehouse, agg.Families())
		if err != nil {
			return fmt.Errorf("can't create warehouse: %w", err)
		}
		deps.Warehouse = a.wh
	}
	if a.c.Bucket.Enabled() {
		b, err := a.c.Bucket.New()
		if err != nil {
			return err
		}
		deps.Files = b
	}

	a.job, err = job.New(a.c.Report, deps)
	return err
}

func (a *App) repository(ctx context.Context) (dependency.Repository, error) {
	switch a.c.Source {
	case config.SourceFixtures:
		ms, err := memstore.LoadFile(a.c.FixturesPath)
		if err != nil {
			return nil, err
		}
		return ms, nil
	case config.SourcePostgres:
		ps, err := store.New(ctx, a.c.DB)
		if err != nil {
			return nil, err
		}
		return ps, nil
	}
	return nil, fmt.Errorf("unknown source %q", a.c.Source)
}

// channels returns the delivery channels that are configured. A channel
// that fails to initialise is logged and left out.
func (a *App) channels(ctx context.Context) []dependency.DeliveryChannel {
	var chs []dependency.DeliveryChannel
	if a.c.Mailer.Enabled() {
		m, err := mail.New(&a.c.Mailer)
		if err != nil {
			slog.Default().ErrorContext(ctx, "failed to create mailer",
				slog.String("err", err.Error()),
			)
		} else {
			chs = append(chs, delivery.MailChannel(m))
		}
	}
	if a.c.Slack.Enabled() {
		n, err := slack.New(&a.c.Slack)
		if err != nil {
			slog.Default().ErrorContext(ctx, "failed to create slack notifier",
				slog.String("err", err.Error()),
			)
		} else {
			chs = append(chs, delivery.SlackChannel(n))
		}
	}
	if len(chs) == 0 {
		slog.Default().WarnContext(ctx, "no delivery channel configured, reports are only written locally")
	}
	return chs
}
