package store

import (
	"context"
	"database/sql/driver"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jekabolt/merchant-report/internal/entity"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return newWithDB(sqlx.NewDb(db, "postgres"), Config{QueryTimeout: time.Second}), mock
}

func testWindows() entity.Windows {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return entity.Windows{
		At:   at,
		Now:  at.Add(-24 * time.Hour),
		Week: at.Add(-7 * 24 * time.Hour),
		WoW:  at.Add(-8 * 24 * time.Hour),
	}
}

// countsRow builds a result row where every window of a column carries the
// value from vals, keyed by column name without the window suffix.
func countsRow(merchantID int64, vals map[string]any) []driver.Value {
	row := []driver.Value{merchantID}
	for _, rc := range resultColumns {
		for range windowFilters {
			v, ok := vals[rc.name]
			if !ok {
				v = int64(0)
			}
			row = append(row, v)
		}
	}
	return row
}

func TestWindowCountsQueryShape(t *testing.T) {
	q := windowCountsAll
	assert.Contains(t, q, "COUNT(*) FILTER (WHERE p.timestamp >= :nowCutoff) AS order_count_now")
	assert.Contains(t, q, "SUM(p.amount) FILTER (WHERE p.timestamp >= :weekCutoff) AS order_value_7d")
	assert.Contains(t, q, "COUNT(*) FILTER (WHERE p.decision = 'REVIEW' AND p.timestamp >= :wowCutoff AND p.timestamp < :weekCutoff) AS review_count_wow")
	assert.Contains(t, q, "COUNT(DISTINCT rr.return_id) AS return_count_global")
	assert.Contains(t, q, "COUNT(*) FILTER (WHERE cnt_7d >= :vipMinOrders) AS repeat_customers_7d")
	assert.Contains(t, q, "COALESCE(oa.decline_count_now, 0) AS decline_count_now")
	assert.Contains(t, q, "WHERE p.customer_id IS NOT NULL AND p.customer_id <> ''")
	assert.NotContains(t, q, "::")
	assert.NotContains(t, q, ":merchantId")

	assert.Contains(t, windowCountsSingle, "CAST(:merchantId AS BIGINT)")

	// both scopes share everything after the scope CTE
	tail := func(s string) string {
		_, after, _ := strings.Cut(s, "purchase_agg AS (")
		return after
	}
	assert.Equal(t, tail(windowCountsAll), tail(windowCountsSingle))
}

func TestWindowCountsColumns(t *testing.T) {
	cols := WindowCountsColumns()
	assert.Equal(t, "merchant_id", cols[0])
	assert.Equal(t, 1+len(resultColumns)*len(windowFilters), len(cols))
	assert.Equal(t, "order_count_now", cols[1])
	assert.Equal(t, "order_count_global", cols[4])
}

func TestWindowParams(t *testing.T) {
	ws := testWindows()

	p := windowParams(ws, entity.AllMerchants(), entity.AggregateOptions{})
	assert.Equal(t, ws.Now.UnixMilli(), p["nowCutoff"])
	assert.Equal(t, ws.Week.UnixMilli(), p["weekCutoff"])
	assert.Equal(t, ws.WoW.UnixMilli(), p["wowCutoff"])
	assert.Equal(t, defaultVIPMinOrders, p["vipMinOrders"])
	assert.NotContains(t, p, "merchantId")

	p = windowParams(ws, entity.MerchantScope(7), entity.AggregateOptions{VIPMinOrders: 3})
	assert.Equal(t, int64(7), p["merchantId"])
	assert.Equal(t, 3, p["vipMinOrders"])
}

func TestWindowCounts(t *testing.T) {
	ps, mock := newMockStore(t)

	rows := sqlmock.NewRows(WindowCountsColumns()).
		AddRow(countsRow(101, map[string]any{
			"order_count":  int64(10),
			"order_value":  "1000.00",
			"review_count": int64(2),
			"return_count": int64(1),
			"return_value": "50.00",
		})...).
		AddRow(countsRow(202, nil)...)
	mock.ExpectQuery("WITH scope AS").WillReturnRows(rows)

	got, err := ps.WindowCounts(context.Background(), testWindows(), entity.AllMerchants(), entity.AggregateOptions{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(101), got[0].MerchantID)
	for _, w := range entity.AllWindows {
		wc := got[0].Windows[w]
		assert.Equal(t, int64(10), wc.OrderCount)
		assert.True(t, decimal.NewFromInt(1000).Equal(wc.OrderValue))
		assert.Equal(t, int64(2), wc.ReviewCount)
		assert.True(t, decimal.NewFromInt(50).Equal(wc.ReturnValue))
	}

	assert.Equal(t, int64(202), got[1].MerchantID)
	for _, w := range entity.AllWindows {
		assert.True(t, got[1].Windows[w].IsZero())
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWindowCountsWorkflowDist(t *testing.T) {
	ps, mock := newMockStore(t)

	mock.ExpectQuery("WITH scope AS").
		WillReturnRows(sqlmock.NewRows(WindowCountsColumns()).AddRow(countsRow(101, map[string]any{"review_count": int64(3)})...))
	mock.ExpectQuery("p.triggered_workflow IS NOT NULL").
		WillReturnRows(sqlmock.NewRows([]string{"merchant_id", "triggered_workflow", "cnt_now", "cnt_7d", "cnt_wow", "cnt_global"}).
			AddRow(int64(101), "manual", int64(0), int64(2), int64(1), int64(2)).
			AddRow(int64(101), "velocity", int64(1), int64(1), int64(0), int64(1)).
			AddRow(int64(999), "orphan", int64(1), int64(1), int64(1), int64(1)))

	got, err := ps.WindowCounts(context.Background(), testWindows(), entity.MerchantScope(101), entity.AggregateOptions{WorkflowDist: true})
	require.NoError(t, err)
	require.Len(t, got, 1)

	w := got[0].Windows
	assert.Equal(t, map[string]int64{"velocity": 1}, w[entity.WindowNow].WorkflowDist)
	assert.Equal(t, map[string]int64{"manual": 2, "velocity": 1}, w[entity.Window7d].WorkflowDist)
	assert.Equal(t, map[string]int64{"manual": 1}, w[entity.WindowWoW].WorkflowDist)
	assert.Equal(t, map[string]int64{"manual": 2, "velocity": 1}, w[entity.WindowGlobal].WorkflowDist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWindowCountsQueryFailed(t *testing.T) {
	ps, mock := newMockStore(t)

	mock.ExpectQuery("WITH scope AS").WillReturnError(assert.AnError)

	_, err := ps.WindowCounts(context.Background(), testWindows(), entity.AllMerchants(), entity.AggregateOptions{})
	assert.ErrorIs(t, err, gerr.QueryFailed)
	assert.ErrorIs(t, err, assert.AnError)
}
