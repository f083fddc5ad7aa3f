// Package warehouse appends metric rows to a BigQuery table.
package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/jekabolt/merchant-report/internal/entity"
)

type Config struct {
	ProjectID       string `mapstructure:"project_id"`
	Dataset         string `mapstructure:"dataset"`
	Table           string `mapstructure:"table"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// Enabled reports whether a destination table is configured.
func (c Config) Enabled() bool {
	return c.ProjectID != "" && c.Dataset != "" && c.Table != ""
}

type inserter interface {
	Put(ctx context.Context, src any) error
}

type Warehouse struct {
	client   *bigquery.Client
	ins      inserter
	families []entity.Family
	table    string
}

// New connects to BigQuery and prepares an inserter for the configured table.
func New(ctx context.Context, c Config, fs []entity.Family) (*Warehouse, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("bigquery project, dataset and table are required")
	}
	var opts []option.ClientOption
	if c.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.CredentialsFile))
	}
	client, err := bigquery.NewClient(ctx, c.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("can't create bigquery client: %w", err)
	}
	w := newWithInserter(client.Dataset(c.Dataset).Table(c.Table).Inserter(), fs)
	w.client = client
	w.table = fmt.Sprintf("%s.%s.%s", c.ProjectID, c.Dataset, c.Table)
	return w, nil
}

func newWithInserter(ins inserter, fs []entity.Family) *Warehouse {
	if len(fs) == 0 {
		fs = entity.DefaultFamilies()
	}
	return &Warehouse{ins: ins, families: fs}
}

func (w *Warehouse) Close() error {
	if w.client == nil {
		return nil
	}
	return w.client.Close()
}

// Save appends one row per merchant, tagged with the run instant and cutoffs.
func (w *Warehouse) Save(ctx context.Context, ws entity.Windows, rows []entity.MetricRow) error {
	if len(rows) == 0 {
		return nil
	}
	batch := make([]*metricRow, 0, len(rows))
	for _, r := range rows {
		batch = append(batch, &metricRow{ws: ws, row: r, families: w.families})
	}
	if err := w.ins.Put(ctx, batch); err != nil {
		return fmt.Errorf("can't insert metric rows into %s: %w", w.table, err)
	}
	slog.Default().InfoContext(ctx, "metric rows saved to warehouse",
		slog.String("table", w.table),
		slog.Int("rows", len(batch)),
	)
	return nil
}

// metricRow implements bigquery.ValueSaver.
type metricRow struct {
	ws       entity.Windows
	row      entity.MetricRow
	families []entity.Family
}

func (m *metricRow) Save() (map[string]bigquery.Value, string, error) {
	out := map[string]bigquery.Value{
		"run_at":        m.ws.At,
		"run_date":      m.ws.At.UTC().Format(time.DateOnly),
		"now_cutoff":    m.ws.Now,
		"week_cutoff":   m.ws.Week,
		"wow_cutoff":    m.ws.WoW,
		"merchant_id":   m.row.MerchantID,
		"merchant_name": m.row.MerchantName,
	}
	for _, c := range m.row.Columns(m.families) {
		v, err := toValue(c.Value)
		if err != nil {
			return nil, "", fmt.Errorf("column %s: %w", c.Name, err)
		}
		out[c.Name] = v
	}
	insertID := fmt.Sprintf("%d-%d", m.ws.At.UnixMilli(), m.row.MerchantID)
	return out, insertID, nil
}

func toValue(v any) (bigquery.Value, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case decimal.Decimal:
		return t.Rat(), nil
	case map[string]int64:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	}
	return v, nil
}
