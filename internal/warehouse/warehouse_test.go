package warehouse

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jekabolt/merchant-report/internal/entity"
)

type fakeInserter struct {
	got []*metricRow
	err error
}

func (f *fakeInserter) Put(ctx context.Context, src any) error {
	f.got = append(f.got, src.([]*metricRow)...)
	return f.err
}

func testWindows() entity.Windows {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return entity.Windows{At: at, Now: at.Add(-24 * time.Hour), Week: at.Add(-168 * time.Hour), WoW: at.Add(-192 * time.Hour)}
}

func TestSave(t *testing.T) {
	ins := &fakeInserter{}
	fs, err := entity.FamiliesByName([]string{"order_value", "return_rate", "workflow_dist"})
	require.NoError(t, err)
	w := newWithInserter(ins, fs)

	mc := entity.MerchantCounts{MerchantID: 101, Windows: map[entity.Window]entity.WindowCounts{
		entity.WindowNow: {OrderCount: 2, OrderValue: decimal.RequireFromString("150.25"), WorkflowDist: map[string]int64{"manual": 1}},
	}}
	rows := []entity.MetricRow{{MerchantID: 101, MerchantName: "Acme", Windows: entity.Derive(mc)}}

	require.NoError(t, w.Save(context.Background(), testWindows(), rows))
	require.Len(t, ins.got, 1)

	vals, insertID, err := ins.got[0].Save()
	require.NoError(t, err)
	assert.Equal(t, "1710504000000-101", insertID)
	assert.Equal(t, int64(101), vals["merchant_id"])
	assert.Equal(t, "Acme", vals["merchant_name"])
	assert.Equal(t, "2024-03-15", vals["run_date"])
	assert.Equal(t, 0, big.NewRat(601, 4).Cmp(vals["order_value_now"].(*big.Rat)))
	assert.Nil(t, vals["return_rate_7d"])
	assert.Equal(t, `{"manual":1}`, vals["workflow_dist_now"])
	assert.Nil(t, vals["workflow_dist_7d"])
}

func TestSaveEmptyIsNoop(t *testing.T) {
	ins := &fakeInserter{err: assert.AnError}
	w := newWithInserter(ins, nil)
	assert.NoError(t, w.Save(context.Background(), testWindows(), nil))
	assert.Empty(t, ins.got)
}

func TestSaveError(t *testing.T) {
	ins := &fakeInserter{err: assert.AnError}
	w := newWithInserter(ins, nil)
	err := w.Save(context.Background(), testWindows(), []entity.MetricRow{{MerchantID: 1}})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.False(t, Config{ProjectID: "p", Dataset: "d"}.Enabled())
	assert.True(t, Config{ProjectID: "p", Dataset: "d", Table: "t"}.Enabled())
}
