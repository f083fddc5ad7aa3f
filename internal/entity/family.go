package entity

import (
	"fmt"
)

// Family is a metric reported once per window.
type Family struct {
	Name string
	// Optional families are only reported when enabled in configuration.
	Optional bool
	value    func(WindowMetrics) any
}

var families = []Family{
	{Name: "order_count", value: func(m WindowMetrics) any { return m.OrderCount }},
	{Name: "order_line_count", value: func(m WindowMetrics) any { return m.OrderLineCount }},
	{Name: "return_count", value: func(m WindowMetrics) any { return m.ReturnCount }},
	{Name: "order_value", value: func(m WindowMetrics) any { return m.OrderValue }},
	{Name: "return_value", value: func(m WindowMetrics) any { return m.ReturnValue }},
	{Name: "return_rate", value: func(m WindowMetrics) any { return nullable(m.ReturnRate.Valid, m.ReturnRate.Decimal) }},
	{Name: "review_count", value: func(m WindowMetrics) any { return m.ReviewCount }},
	{Name: "review_rate", value: func(m WindowMetrics) any { return nullable(m.ReviewRate.Valid, m.ReviewRate.Decimal) }},
	{Name: "approve_count", value: func(m WindowMetrics) any { return m.ApproveCount }},
	{Name: "decline_count", value: func(m WindowMetrics) any { return m.DeclineCount }},
	{Name: "unique_customers", value: func(m WindowMetrics) any { return m.UniqueCustomers }},
	{Name: "vip_rate", Optional: true, value: func(m WindowMetrics) any { return nullable(m.VIPRate.Valid, m.VIPRate.Decimal) }},
	{Name: "workflow_dist", Optional: true, value: func(m WindowMetrics) any {
		if m.WorkflowDist == nil {
			return nil
		}
		return m.WorkflowDist
	}},
}

func nullable(valid bool, v any) any {
	if !valid {
		return nil
	}
	return v
}

// DefaultFamilies returns all non optional families in report order.
func DefaultFamilies() []Family {
	out := make([]Family, 0, len(families))
	for _, f := range families {
		if !f.Optional {
			out = append(out, f)
		}
	}
	return out
}

// FamiliesByName resolves names to families, keeping report order of the
// registry regardless of the order of names. Empty names gives the defaults.
func FamiliesByName(names []string) ([]Family, error) {
	if len(names) == 0 {
		return DefaultFamilies(), nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := FamilyByName(n); !ok {
			return nil, fmt.Errorf("unknown metric family %q", n)
		}
		want[n] = true
	}
	out := make([]Family, 0, len(want))
	for _, f := range families {
		if want[f.Name] {
			out = append(out, f)
		}
	}
	return out, nil
}

// FamilyByName looks a family up in the registry.
func FamilyByName(name string) (Family, bool) {
	for _, f := range families {
		if f.Name == name {
			return f, true
		}
	}
	return Family{}, false
}

// Column is a single flat metric value, named <family>_<window>.
type Column struct {
	Name  string
	Value any
}

// Columns flattens a row into the wide layout: family by family, each in
// window order now, 7d, wow, global. Values are int64, decimal.Decimal,
// map[string]int64 or nil for no data.
func (mr MetricRow) Columns(fs []Family) []Column {
	cols := make([]Column, 0, len(fs)*len(AllWindows))
	for _, f := range fs {
		for _, w := range AllWindows {
			cols = append(cols, Column{
				Name:  f.Name + "_" + string(w),
				Value: f.value(mr.Get(w)),
			})
		}
	}
	return cols
}
