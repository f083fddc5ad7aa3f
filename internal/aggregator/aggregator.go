// Package aggregator computes per-merchant metric rows for a set of windows.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jekabolt/merchant-report/internal/dependency"
	"github.com/jekabolt/merchant-report/internal/entity"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
)

const (
	StrategyBatch       = "batch"
	StrategyPerMerchant = "per_merchant"
)

// Config holds configuration for the aggregator.
type Config struct {
	Strategy     string   `mapstructure:"strategy"`
	Concurrency  int      `mapstructure:"concurrency"`
	Families     []string `mapstructure:"families"`
	VIPMinOrders int      `mapstructure:"vip_min_orders"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Strategy:     StrategyBatch,
		Concurrency:  4,
		VIPMinOrders: 2,
	}
}

func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyBatch, StrategyPerMerchant:
	default:
		return fmt.Errorf("%w: unknown aggregation strategy %q", gerr.InvalidConfig, c.Strategy)
	}
	if c.VIPMinOrders < 1 {
		return fmt.Errorf("%w: vip_min_orders must be positive", gerr.InvalidConfig)
	}
	if _, err := entity.FamiliesByName(c.Families); err != nil {
		return fmt.Errorf("%w: %w", gerr.InvalidConfig, err)
	}
	return nil
}

type Aggregator struct {
	src      dependency.MetricsSource
	dir      dependency.MerchantDirectory
	c        Config
	families []entity.Family
	opts     entity.AggregateOptions
}

// New creates an aggregator reading facts from src and names from dir.
func New(src dependency.MetricsSource, dir dependency.MerchantDirectory, c Config) (*Aggregator, error) {
	if c.Strategy == "" {
		c.Strategy = StrategyBatch
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	if c.VIPMinOrders == 0 {
		c.VIPMinOrders = 2
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	fs, _ := entity.FamiliesByName(c.Families)

	opts := entity.AggregateOptions{VIPMinOrders: c.VIPMinOrders}
	for _, f := range fs {
		if f.Name == "workflow_dist" {
			opts.WorkflowDist = true
		}
	}

	return &Aggregator{
		src:      src,
		dir:      dir,
		c:        c,
		families: fs,
		opts:     opts,
	}, nil
}

// Families returns the metric families enabled for reports.
func (a *Aggregator) Families() []entity.Family {
	return a.families
}

// Aggregate computes one row per merchant of the scope, ordered by merchant
// id. A source failure aborts the whole pass.
func (a *Aggregator) Aggregate(ctx context.Context, ws entity.Windows, scope entity.Scope) ([]entity.MetricRow, error) {
	var (
		counts []entity.MerchantCounts
		err    error
	)
	if scope.All() && a.c.Strategy == StrategyPerMerchant {
		counts, err = a.perMerchant(ctx, ws)
	} else {
		counts, err = a.src.WindowCounts(ctx, ws, scope, a.opts)
	}
	if err != nil {
		return nil, wrapQueryFailed(err)
	}

	sort.Slice(counts, func(i, j int) bool { return counts[i].MerchantID < counts[j].MerchantID })

	rows := make([]entity.MetricRow, 0, len(counts))
	for _, mc := range counts {
		row := entity.MetricRow{
			MerchantID:   mc.MerchantID,
			MerchantName: a.merchantName(ctx, mc.MerchantID),
			Windows:      entity.Derive(mc),
		}
		if !row.HasFacts() {
			slog.Default().InfoContext(ctx, "merchant has no facts in any window",
				slog.Int64("merchant_id", mc.MerchantID),
			)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (a *Aggregator) perMerchant(ctx context.Context, ws entity.Windows) ([]entity.MerchantCounts, error) {
	ids, err := a.src.MerchantIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't list merchants: %w", err)
	}

	results := make([][]entity.MerchantCounts, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.c.Concurrency)
	for i, id := range ids {
		g.Go(func() error {
			mc, err := a.src.WindowCounts(gctx, ws, entity.MerchantScope(id), a.opts)
			if err != nil {
				return fmt.Errorf("merchant %d: %w", id, err)
			}
			results[i] = mc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]entity.MerchantCounts, 0, len(ids))
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (a *Aggregator) merchantName(ctx context.Context, id int64) string {
	name, err := a.dir.MerchantName(ctx, id)
	if err != nil {
		slog.Default().WarnContext(ctx, "can't get merchant name",
			slog.Int64("merchant_id", id),
			slog.String("err", err.Error()),
		)
		return entity.UnknownMerchant
	}
	if name == "" {
		return entity.UnknownMerchant
	}
	return name
}

func wrapQueryFailed(err error) error {
	if errors.Is(err, gerr.QueryFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", gerr.QueryFailed, err)
}
