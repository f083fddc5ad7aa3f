// Package job runs one end to end merchant metrics report.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jekabolt/merchant-report/internal/delivery"
	"github.com/jekabolt/merchant-report/internal/dependency"
	"github.com/jekabolt/merchant-report/internal/entity"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
	"github.com/jekabolt/merchant-report/internal/report"
	"github.com/jekabolt/merchant-report/internal/window"
)

// Config holds configuration for a report run.
type Config struct {
	Recipients []string `mapstructure:"recipients"`
	// Subject is a format string receiving the run date.
	Subject string `mapstructure:"subject"`
	Body    string `mapstructure:"body"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Subject: "Daily Merchant Metrics Report - %s",
		Body:    "Please find attached the daily merchant metrics report.",
	}
}

// Deps are the components a run is assembled from. Warehouse and Files are
// optional.
type Deps struct {
	Clock      window.Clock
	Windows    window.Config
	Aggregator dependency.Aggregator
	Families   []entity.Family
	Snapshot   dependency.Snapshot
	Writer     dependency.ArtifactWriter
	Warehouse  dependency.Warehouse
	Files      dependency.FileStore
	Dispatcher *delivery.Dispatcher
}

type Job struct {
	c Config
	d Deps
}

func New(c Config, d Deps) (*Job, error) {
	dc := DefaultConfig()
	if c.Subject == "" {
		c.Subject = dc.Subject
	}
	if c.Body == "" {
		c.Body = dc.Body
	}
	if d.Windows == (window.Config{}) {
		d.Windows = window.DefaultConfig()
	}
	if d.Clock == nil {
		d.Clock = window.SystemClock
	}
	if d.Dispatcher == nil {
		d.Dispatcher = delivery.New()
	}
	if d.Aggregator == nil || d.Snapshot == nil || d.Writer == nil {
		return nil, fmt.Errorf("%w: aggregator, snapshot and writer are required", gerr.InvalidConfig)
	}
	if err := d.Windows.Validate(); err != nil {
		return nil, err
	}
	return &Job{c: c, d: d}, nil
}

// Run computes, renders and delivers one report. Only window, aggregation,
// snapshot and rendering failures fail the run; warehouse, upload and
// delivery failures are logged and recorded in the result.
func (j *Job) Run(ctx context.Context) (*entity.RunResult, error) {
	at := j.d.Clock()
	ws, err := window.Calculate(at, j.d.Windows)
	if err != nil {
		return nil, err
	}
	res := &entity.RunResult{RunDate: at, Windows: ws}

	slog.Default().InfoContext(ctx, "report run started",
		slog.Time("at", at),
		slog.Time("now_cutoff", ws.Now),
		slog.Time("week_cutoff", ws.Week),
		slog.Time("wow_cutoff", ws.WoW),
	)

	rows, err := j.d.Aggregator.Aggregate(ctx, ws, entity.AllMerchants())
	if err != nil {
		return res, fmt.Errorf("can't aggregate metrics: %w", err)
	}
	res.Merchants = len(rows)

	snap, err := j.d.Snapshot.WriteSnapshot(ctx, at, rows)
	if err != nil {
		return res, fmt.Errorf("can't write snapshot: %w", err)
	}
	res.Artifacts = append(res.Artifacts, snap)

	if !anyFacts(rows) {
		slog.Default().WarnContext(ctx, "no metrics for the reporting period, skipping report",
			slog.String("reason", gerr.NoData.Error()),
			slog.Int("merchants", len(rows)),
		)
		res.NoData = true
		return res, nil
	}

	if j.d.Warehouse != nil {
		if err := j.d.Warehouse.Save(ctx, ws, rows); err != nil {
			slog.Default().ErrorContext(ctx, "can't save metrics to warehouse",
				slog.String("err", err.Error()),
			)
		}
	}

	docs, err := j.d.Writer.Write(ctx, at, report.ShapeAll(rows, j.d.Families))
	if err != nil {
		return res, fmt.Errorf("can't write report: %w", err)
	}
	res.Artifacts = append(docs, res.Artifacts...)

	j.upload(ctx, at, res.Artifacts)

	res.Deliveries = j.d.Dispatcher.Dispatch(ctx, &entity.Delivery{
		RunDate:    at,
		Recipients: j.c.Recipients,
		Subject:    j.subject(at),
		Body:       j.c.Body,
		Artifacts:  res.Artifacts,
	})

	slog.Default().InfoContext(ctx, "report run finished",
		slog.Int("merchants", res.Merchants),
		slog.Int("artifacts", len(res.Artifacts)),
	)
	return res, nil
}

// anyFacts reports whether at least one merchant has a contributing fact.
// Directory merchants without facts still produce zero rows.
func anyFacts(rows []entity.MetricRow) bool {
	for _, r := range rows {
		if r.HasFacts() {
			return true
		}
	}
	return false
}

func (j *Job) subject(at time.Time) string {
	if !strings.Contains(j.c.Subject, "%s") {
		return j.c.Subject
	}
	return fmt.Sprintf(j.c.Subject, at.UTC().Format(time.DateOnly))
}

// upload sets the URL of every artifact the file store accepts.
func (j *Job) upload(ctx context.Context, at time.Time, arts []entity.Artifact) {
	if j.d.Files == nil {
		return
	}
	for i := range arts {
		url, err := j.d.Files.UploadArtifact(ctx, at, arts[i])
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't upload artifact, delivering local path",
				slog.String("path", arts[i].Path),
				slog.String("err", err.Error()),
			)
			continue
		}
		arts[i].URL = url
	}
}
