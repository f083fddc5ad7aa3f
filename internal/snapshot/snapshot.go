// Package snapshot writes the flat aggregation result as a CSV file.
package snapshot

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jekabolt/merchant-report/internal/entity"
)

type Config struct {
	OutputDir string `mapstructure:"output_dir"`
}

type Writer struct {
	c        Config
	families []entity.Family
}

// New creates a CSV snapshot writer for the given families.
func New(c Config, fs []entity.Family) *Writer {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if len(fs) == 0 {
		fs = entity.DefaultFamilies()
	}
	return &Writer{c: c, families: fs}
}

// Header is the CSV header: merchant_id, merchant_name and one column per
// family and window.
func (w *Writer) Header() []string {
	out := []string{"merchant_id", "merchant_name"}
	for _, c := range (entity.MetricRow{}).Columns(w.families) {
		out = append(out, c.Name)
	}
	return out
}

// WriteSnapshot writes one line per row to daily_merchant_metrics_<date>.csv.
// The header is written even when rows is empty.
func (w *Writer) WriteSnapshot(ctx context.Context, runDate time.Time, rows []entity.MetricRow) (entity.Artifact, error) {
	if err := os.MkdirAll(w.c.OutputDir, 0o755); err != nil {
		return entity.Artifact{}, fmt.Errorf("can't create output dir: %w", err)
	}
	path := filepath.Join(w.c.OutputDir, fmt.Sprintf("daily_merchant_metrics_%s.csv", runDate.UTC().Format("2006-01-02")))

	f, err := os.Create(path)
	if err != nil {
		return entity.Artifact{}, fmt.Errorf("can't create snapshot %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(w.Header()); err != nil {
		return entity.Artifact{}, fmt.Errorf("can't write snapshot header: %w", err)
	}
	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return entity.Artifact{}, err
		}
		record := []string{strconv.FormatInt(r.MerchantID, 10), r.MerchantName}
		for _, c := range r.Columns(w.families) {
			record = append(record, formatCell(c.Value))
		}
		if err := cw.Write(record); err != nil {
			return entity.Artifact{}, fmt.Errorf("can't write snapshot row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return entity.Artifact{}, fmt.Errorf("can't flush snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return entity.Artifact{}, fmt.Errorf("can't close snapshot: %w", err)
	}

	slog.Default().InfoContext(ctx, "snapshot written",
		slog.String("path", path),
		slog.Int("rows", len(rows)),
	)
	return entity.Artifact{Path: path, ContentType: entity.ContentTypeCSV}, nil
}

func formatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(t, 10)
	case decimal.Decimal:
		return t.String()
	case map[string]int64:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
	return fmt.Sprint(v)
}
