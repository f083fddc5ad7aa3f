package entity

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Window names a time bucket used to aggregate facts.
type Window string

const (
	WindowNow    Window = "now"
	Window7d     Window = "7d"
	WindowWoW    Window = "wow"
	WindowGlobal Window = "global"
)

// AllWindows is the display and column order of windows.
var AllWindows = []Window{WindowNow, Window7d, WindowWoW, WindowGlobal}

// Windows holds the cutoffs derived from a reference instant.
type Windows struct {
	At   time.Time
	Now  time.Time
	Week time.Time
	WoW  time.Time
}

// Contains reports whether ts falls into window w.
// now and 7d are half-open from their cutoff, wow is bounded on both sides
// and global is unbounded.
func (ws Windows) Contains(w Window, ts time.Time) bool {
	switch w {
	case WindowNow:
		return !ts.Before(ws.Now)
	case Window7d:
		return !ts.Before(ws.Week)
	case WindowWoW:
		return !ts.Before(ws.WoW) && ts.Before(ws.Week)
	case WindowGlobal:
		return true
	}
	return false
}

// Scope selects the merchants an aggregation pass covers.
type Scope struct {
	MerchantID int64
	all        bool
}

// AllMerchants is the scope of a grouped pass over every merchant.
func AllMerchants() Scope {
	return Scope{all: true}
}

// MerchantScope is the scope of a single merchant pass.
func MerchantScope(id int64) Scope {
	return Scope{MerchantID: id}
}

func (s Scope) All() bool {
	return s.all
}

// AggregateOptions carries policy knobs the data source needs.
type AggregateOptions struct {
	// VIPMinOrders is the number of orders in a window from which a customer
	// counts as repeat (VIP).
	VIPMinOrders int
	// WorkflowDist enables the review workflow distribution query.
	WorkflowDist bool
}

// WindowCounts are the raw aggregates of one merchant in one window.
type WindowCounts struct {
	OrderCount      int64
	OrderValue      decimal.Decimal
	OrderLineCount  int64
	ReturnCount     int64
	ReturnValue     decimal.Decimal
	ReviewCount     int64
	ApproveCount    int64
	DeclineCount    int64
	UniqueCustomers int64
	RepeatCustomers int64
	WorkflowDist    map[string]int64
}

// IsZero reports whether no fact contributed to the counts.
func (wc WindowCounts) IsZero() bool {
	return wc.OrderCount == 0 &&
		wc.OrderValue.IsZero() &&
		wc.OrderLineCount == 0 &&
		wc.ReturnCount == 0 &&
		wc.ReturnValue.IsZero() &&
		wc.ApproveCount == 0 &&
		wc.DeclineCount == 0 &&
		len(wc.WorkflowDist) == 0
}

// MerchantCounts are the raw aggregates of one merchant across all windows.
type MerchantCounts struct {
	MerchantID int64
	Windows    map[Window]WindowCounts
}

// WindowMetrics are raw counts plus the derived ratios.
type WindowMetrics struct {
	WindowCounts
	ReturnRate decimal.NullDecimal
	ReviewRate decimal.NullDecimal
	VIPRate    decimal.NullDecimal
}

// MetricRow is the computed result for one merchant.
type MetricRow struct {
	MerchantID   int64
	MerchantName string
	Windows      map[Window]WindowMetrics
}

// HasFacts reports whether any window has at least one contributing fact.
func (mr MetricRow) HasFacts() bool {
	for _, wm := range mr.Windows {
		if !wm.IsZero() {
			return true
		}
	}
	return false
}

// Get returns the metrics of window w, zero valued if absent.
func (mr MetricRow) Get(w Window) WindowMetrics {
	return mr.Windows[w]
}

// Derive computes ratios for every window of the counts.
// A ratio is null when its denominator is zero.
func Derive(mc MerchantCounts) map[Window]WindowMetrics {
	out := make(map[Window]WindowMetrics, len(AllWindows))
	for _, w := range AllWindows {
		wc := mc.Windows[w]
		out[w] = WindowMetrics{
			WindowCounts: wc,
			ReturnRate:   ratio(wc.ReturnValue, wc.OrderValue),
			ReviewRate:   ratio(decimal.NewFromInt(wc.ReviewCount), decimal.NewFromInt(wc.OrderCount)),
			VIPRate:      ratio(decimal.NewFromInt(wc.RepeatCustomers), decimal.NewFromInt(wc.UniqueCustomers)),
		}
	}
	return out
}

func ratio(num, den decimal.Decimal) decimal.NullDecimal {
	if den.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: num.Div(den), Valid: true}
}

// SortedWorkflows returns workflow names of a distribution in stable order.
func SortedWorkflows(dist map[string]int64) []string {
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
