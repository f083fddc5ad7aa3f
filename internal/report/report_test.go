package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jekabolt/merchant-report/internal/entity"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		family string
		value  any
		want   string
	}{
		{"order_value", 1500.0, "$1,500.00"},
		{"order_value", decimal.RequireFromString("1000.5"), "$1,000.50"},
		{"return_count", 7, "7"},
		{"order_count", int64(1234567), "1,234,567"},
		{"return_rate", 0.044, "4.40%"},
		{"review_rate", decimal.RequireFromString("0.2"), "20.00%"},
		{"return_rate", nil, "N/A"},
		{"unique_customers", int64(5), "5"},
		{"workflow_dist", map[string]int64{"velocity": 2, "manual": 1}, "manual: 1, velocity: 2"},
		{"workflow_dist", map[string]int64{}, "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.family, tt.value))
		})
	}
}

func TestDelta(t *testing.T) {
	assert.Equal(t, "+30", Delta("order_count", 120, 150))
	assert.Equal(t, "-1,200", Delta("order_count", int64(1500), int64(300)))
	assert.Equal(t, "+0", Delta("order_count", 3, 3))
	assert.Equal(t, "N/A", Delta("order_count", nil, 150))
	assert.Equal(t, "N/A", Delta("order_count", 120, nil))
	assert.Equal(t, "-250.50", Delta("order_value", decimal.RequireFromString("1000.50"), decimal.NewFromInt(750)))
	assert.Equal(t, "+5.00%", Delta("return_rate", 0.05, 0.10))
	assert.Equal(t, "+2", Delta("unique_customers", int64(3), int64(5)))
	assert.Equal(t, "-1,000", Delta("unique_customers", int64(1500), int64(500)))
	assert.Equal(t, "+0.50", Delta("unique_customers", 1.5, 2.0))
	assert.Equal(t, "N/A", Delta("workflow_dist", map[string]int64{"a": 1}, map[string]int64{"a": 2}))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Order Count", Label("order_count"))
	assert.Equal(t, "Unique Customers", Label("unique_customers"))
}

func TestShapeColumns(t *testing.T) {
	cols := []entity.Column{
		{Name: "order_value_now", Value: 1500.0},
		{Name: "order_count_now", Value: 120},
		{Name: "order_value_7d", Value: 2500.0},
		{Name: "order_count_wow", Value: 150},
		{Name: "merchant_name", Value: "Acme"},
		{Name: "order_count_global", Value: 9000},
	}

	rows := ShapeColumns(cols)
	require.Len(t, rows, 2)

	assert.Equal(t, entity.ReportRow{
		Label:    "Order Value",
		Now:      "$1,500.00",
		Week:     "$2,500.00",
		WoWDelta: "N/A",
		Global:   "N/A",
	}, rows[0])
	assert.Equal(t, entity.ReportRow{
		Label:    "Order Count",
		Now:      "120",
		Week:     "N/A",
		WoWDelta: "+30",
		Global:   "9,000",
	}, rows[1])
}

func TestShape(t *testing.T) {
	mc := entity.MerchantCounts{
		MerchantID: 101,
		Windows: map[entity.Window]entity.WindowCounts{
			entity.WindowNow: {OrderCount: 10, OrderValue: decimal.NewFromInt(1000), ReviewCount: 2},
			entity.Window7d:  {OrderCount: 10, OrderValue: decimal.NewFromInt(1000), ReturnCount: 1, ReturnValue: decimal.NewFromInt(50)},
		},
	}
	row := entity.MetricRow{MerchantID: 101, MerchantName: "Acme", Windows: entity.Derive(mc)}
	fs, err := entity.FamiliesByName([]string{"order_count", "return_rate", "review_rate"})
	require.NoError(t, err)

	s := Shape(row, fs)
	assert.Equal(t, int64(101), s.MerchantID)
	assert.Equal(t, "Acme", s.MerchantLabel)
	require.Len(t, s.Rows, 3)

	assert.Equal(t, "Order Count", s.Rows[0].Label)
	assert.Equal(t, "10", s.Rows[0].Now)
	assert.Equal(t, "-10", s.Rows[0].WoWDelta)
	assert.Equal(t, "0", s.Rows[0].Global)

	assert.Equal(t, "Return Rate", s.Rows[1].Label)
	assert.Equal(t, "0.00%", s.Rows[1].Now)
	assert.Equal(t, "5.00%", s.Rows[1].Week)
	assert.Equal(t, "N/A", s.Rows[1].Global)

	assert.Equal(t, "Review Rate", s.Rows[2].Label)
	assert.Equal(t, "20.00%", s.Rows[2].Now)
	assert.Equal(t, "N/A", s.Rows[2].WoWDelta)
}
