// Package report turns metric rows into display-ready report sections.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jekabolt/merchant-report/internal/entity"
)

const notAvailable = "N/A"

type kind int

const (
	kindText kind = iota
	kindCount
	kindValue
	kindRate
)

// familyKind picks the formatting of a family by name, count first.
func familyKind(family string) kind {
	switch {
	case strings.Contains(family, "count"):
		return kindCount
	case strings.Contains(family, "value"):
		return kindValue
	case strings.Contains(family, "rate"):
		return kindRate
	}
	return kindText
}

var printer = message.NewPrinter(language.English)

// windowSuffixes are checked in this order when splitting a column name.
var windowSuffixes = []entity.Window{entity.WindowGlobal, entity.WindowNow, entity.WindowWoW, entity.Window7d}

func splitColumn(name string) (string, entity.Window, bool) {
	for _, w := range windowSuffixes {
		suffix := "_" + string(w)
		if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
			return strings.TrimSuffix(name, suffix), w, true
		}
	}
	return "", "", false
}

// ShapeColumns groups flat <family>_<window> columns into one row per family,
// in order of first occurrence. Columns without a window suffix are skipped.
func ShapeColumns(cols []entity.Column) []entity.ReportRow {
	var order []string
	values := map[string]map[entity.Window]any{}
	for _, c := range cols {
		family, w, ok := splitColumn(c.Name)
		if !ok {
			continue
		}
		if _, seen := values[family]; !seen {
			order = append(order, family)
			values[family] = map[entity.Window]any{}
		}
		values[family][w] = c.Value
	}

	rows := make([]entity.ReportRow, 0, len(order))
	for _, family := range order {
		v := values[family]
		rows = append(rows, entity.ReportRow{
			Label:    Label(family),
			Now:      FormatValue(family, v[entity.WindowNow]),
			Week:     FormatValue(family, v[entity.Window7d]),
			WoWDelta: Delta(family, v[entity.WindowNow], v[entity.WindowWoW]),
			Global:   FormatValue(family, v[entity.WindowGlobal]),
		})
	}
	return rows
}

// Shape builds the report section of one merchant.
func Shape(row entity.MetricRow, fs []entity.Family) entity.ReportSection {
	return entity.ReportSection{
		MerchantID:    row.MerchantID,
		MerchantLabel: row.MerchantName,
		Rows:          ShapeColumns(row.Columns(fs)),
	}
}

// ShapeAll shapes every row, keeping their order.
func ShapeAll(rows []entity.MetricRow, fs []entity.Family) []entity.ReportSection {
	out := make([]entity.ReportSection, 0, len(rows))
	for _, r := range rows {
		out = append(out, Shape(r, fs))
	}
	return out
}

// Label is the display name of a family: order_count becomes Order Count.
func Label(family string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(family, "_", " "))
}

// FormatValue renders a value according to its family.
func FormatValue(family string, v any) string {
	if v == nil {
		return notAvailable
	}
	if m, ok := v.(map[string]int64); ok {
		return formatDist(m)
	}

	f, ok := toFloat(v)
	if !ok {
		return fmt.Sprint(v)
	}
	switch familyKind(family) {
	case kindCount:
		return printer.Sprintf("%d", int64(math.Round(f)))
	case kindValue:
		return printer.Sprintf("$%.2f", f)
	case kindRate:
		return fmt.Sprintf("%.2f%%", f*100)
	}
	return fmt.Sprint(v)
}

// Delta renders wow minus now with an explicit sign, N/A unless both values
// are numeric. Rate deltas are in percentage points.
func Delta(family string, now, wow any) string {
	n, ok := toFloat(now)
	if !ok {
		return notAvailable
	}
	w, ok := toFloat(wow)
	if !ok {
		return notAvailable
	}
	d := w - n

	switch familyKind(family) {
	case kindCount:
		return signedInt(int64(math.Round(d)))
	case kindRate:
		return fmt.Sprintf("%+.2f%%", d*100)
	}
	if isInt(now) && isInt(wow) {
		return signedInt(int64(math.Round(d)))
	}
	return fmt.Sprintf("%+.2f", d)
}

func signedInt(c int64) string {
	if c < 0 {
		return "-" + printer.Sprintf("%d", -c)
	}
	return "+" + printer.Sprintf("%d", c)
}

func isInt(v any) bool {
	switch v.(type) {
	case int, int64:
		return true
	}
	return false
}

func formatDist(m map[string]int64) string {
	if len(m) == 0 {
		return notAvailable
	}
	parts := make([]string, 0, len(m))
	for _, k := range entity.SortedWorkflows(m) {
		parts = append(parts, fmt.Sprintf("%s: %d", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case decimal.Decimal:
		return t.InexactFloat64(), true
	case decimal.NullDecimal:
		if !t.Valid {
			return 0, false
		}
		return t.Decimal.InexactFloat64(), true
	}
	return 0, false
}
