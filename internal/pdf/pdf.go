// Package pdf lays report sections out as PDF documents.
package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jekabolt/merchant-report/internal/entity"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
)

const (
	LayoutCombined    = "combined"
	LayoutPerMerchant = "per_merchant"

	dateLayout = "2006-01-02"
)

// Config holds configuration for the PDF writer.
type Config struct {
	Layout    string `mapstructure:"layout"`
	OutputDir string `mapstructure:"output_dir"`
	Title     string `mapstructure:"title"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Layout:    LayoutCombined,
		OutputDir: ".",
		Title:     "Daily Merchant Metrics Report",
	}
}

func (c Config) Validate() error {
	switch c.Layout {
	case LayoutCombined, LayoutPerMerchant:
		return nil
	}
	return fmt.Errorf("%w: unknown pdf layout %q", gerr.InvalidConfig, c.Layout)
}

var (
	headers = []string{"Metric", "Now", "7 Days", "WoW Delta", "Global"}
	widths  = []float64{60, 30, 30, 30, 30}
)

const (
	margin     = 15.0
	rowHeight  = 8.0
	titleSize  = 16.0
	headerSize = 11.0
	bodySize   = 10.0
)

type Writer struct {
	c Config
}

// New creates a PDF writer.
func New(c Config) (*Writer, error) {
	if c.Layout == "" {
		c.Layout = LayoutCombined
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Title == "" {
		c.Title = DefaultConfig().Title
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Writer{c: c}, nil
}

// Write renders the sections and returns the produced files.
func (w *Writer) Write(ctx context.Context, runDate time.Time, sections []entity.ReportSection) ([]entity.Artifact, error) {
	if err := os.MkdirAll(w.c.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create output dir: %w", err)
	}
	date := runDate.UTC().Format(dateLayout)

	if w.c.Layout == LayoutCombined {
		doc, err := w.combined(ctx, runDate, sections)
		if err != nil {
			return nil, err
		}
		a, err := save(doc, filepath.Join(w.c.OutputDir, fmt.Sprintf("merchant_metrics_%s.pdf", date)))
		if err != nil {
			return nil, err
		}
		return []entity.Artifact{a}, nil
	}

	out := make([]entity.Artifact, 0, len(sections))
	for _, s := range sections {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		doc := w.single(runDate, s)
		a, err := save(doc, filepath.Join(w.c.OutputDir, fmt.Sprintf("live_monitor_report_%d_%s.pdf", s.MerchantID, date)))
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, nil
}

func save(doc *fpdf.Fpdf, path string) (entity.Artifact, error) {
	if err := doc.OutputFileAndClose(path); err != nil {
		return entity.Artifact{}, fmt.Errorf("can't write pdf %s: %w", path, err)
	}
	slog.Default().Debug("pdf written",
		slog.String("path", path),
	)
	return entity.Artifact{Path: path, ContentType: entity.ContentTypePDF}, nil
}

func newDoc() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(false, margin)
	return doc
}

// combined is a title page followed by one section per merchant, each
// starting on a new page.
func (w *Writer) combined(ctx context.Context, runDate time.Time, sections []entity.ReportSection) (*fpdf.Fpdf, error) {
	doc := newDoc()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont("Helvetica", "B", titleSize+4)
	doc.CellFormat(0, 14, tr(w.c.Title), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", headerSize)
	doc.CellFormat(0, rowHeight, "Run date: "+runDate.UTC().Format(dateLayout), "", 1, "C", false, 0, "")
	doc.CellFormat(0, rowHeight, fmt.Sprintf("Merchants: %d", len(sections)), "", 1, "C", false, 0, "")

	for _, s := range sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc.AddPage()
		section(doc, tr, s)
	}
	return doc, doc.Error()
}

func (w *Writer) single(runDate time.Time, s entity.ReportSection) *fpdf.Fpdf {
	doc := newDoc()
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()
	doc.SetFont("Helvetica", "", bodySize)
	doc.CellFormat(0, rowHeight, "Run date: "+runDate.UTC().Format(dateLayout), "", 1, "R", false, 0, "")
	section(doc, tr, s)
	return doc
}

func section(doc *fpdf.Fpdf, tr func(string) string, s entity.ReportSection) {
	doc.SetFont("Helvetica", "B", titleSize)
	doc.CellFormat(0, 12, tr(fmt.Sprintf("Merchant %s (ID %d)", s.MerchantLabel, s.MerchantID)), "", 1, "L", false, 0, "")
	doc.Ln(2)
	header(doc)

	_, pageHeight := doc.GetPageSize()
	doc.SetFont("Helvetica", "", bodySize)
	for _, r := range s.Rows {
		if doc.GetY()+rowHeight > pageHeight-margin {
			doc.AddPage()
			header(doc)
			doc.SetFont("Helvetica", "", bodySize)
		}
		cells := []string{r.Label, r.Now, r.Week, r.WoWDelta, r.Global}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			doc.CellFormat(widths[i], rowHeight, tr(c), "1", 0, align, false, 0, "")
		}
		doc.Ln(-1)
	}
}

func header(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", headerSize)
	doc.SetFillColor(220, 220, 220)
	for i, h := range headers {
		doc.CellFormat(widths[i], rowHeight, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)
}
