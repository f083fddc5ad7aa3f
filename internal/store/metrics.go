package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jekabolt/merchant-report/internal/entity"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
)

const defaultVIPMinOrders = 2

// allMerchantsScope is every merchant id present in the facts or the directory.
const allMerchantsScope = `
	SELECT merchant_id FROM purchase
	UNION SELECT merchant_id FROM return_request
	UNION SELECT merchant_id FROM merchant`

const singleMerchantScope = `
	SELECT CAST(:merchantId AS BIGINT) AS merchant_id`

// windowFilter is the membership predicate of a window on a timestamp column,
// empty for the unbounded global window.
type windowFilter struct {
	window entity.Window
	cond   string
}

var windowFilters = []windowFilter{
	{window: entity.WindowNow, cond: "%[1]s >= :nowCutoff"},
	{window: entity.Window7d, cond: "%[1]s >= :weekCutoff"},
	{window: entity.WindowWoW, cond: "%[1]s >= :wowCutoff AND %[1]s < :weekCutoff"},
	{window: entity.WindowGlobal},
}

// windowed renders fn(arg) once per window as <name>_<window>, restricted to
// the rows matching extra and the window predicate on tsCol.
func windowed(name, fn, arg, tsCol, extra string) []string {
	out := make([]string, 0, len(windowFilters))
	for _, wf := range windowFilters {
		var conds []string
		if extra != "" {
			conds = append(conds, extra)
		}
		if wf.cond != "" {
			conds = append(conds, fmt.Sprintf(wf.cond, tsCol))
		}
		expr := fmt.Sprintf("%s(%s)", fn, arg)
		if len(conds) > 0 {
			expr += " FILTER (WHERE " + strings.Join(conds, " AND ") + ")"
		}
		out = append(out, fmt.Sprintf("%s AS %s_%s", expr, name, wf.window))
	}
	return out
}

// perCustomer renders COUNT(*) over customer_agg rows whose per-window order
// count satisfies cond.
func perCustomer(name, cond string) []string {
	out := make([]string, 0, len(windowFilters))
	for _, wf := range windowFilters {
		out = append(out, fmt.Sprintf("COUNT(*) FILTER (WHERE cnt_%s %s) AS %s_%s", wf.window, cond, name, wf.window))
	}
	return out
}

// resultColumn maps a CTE column onto a field of entity.WindowCounts.
type resultColumn struct {
	cte   string
	name  string
	field func(*entity.WindowCounts) any
}

var resultColumns = []resultColumn{
	{cte: "pa", name: "order_count", field: func(c *entity.WindowCounts) any { return &c.OrderCount }},
	{cte: "pa", name: "order_value", field: func(c *entity.WindowCounts) any { return &c.OrderValue }},
	{cte: "pa", name: "review_count", field: func(c *entity.WindowCounts) any { return &c.ReviewCount }},
	{cte: "ola", name: "order_line_count", field: func(c *entity.WindowCounts) any { return &c.OrderLineCount }},
	{cte: "ra", name: "return_count", field: func(c *entity.WindowCounts) any { return &c.ReturnCount }},
	{cte: "ra", name: "return_value", field: func(c *entity.WindowCounts) any { return &c.ReturnValue }},
	{cte: "oa", name: "approve_count", field: func(c *entity.WindowCounts) any { return &c.ApproveCount }},
	{cte: "oa", name: "decline_count", field: func(c *entity.WindowCounts) any { return &c.DeclineCount }},
	{cte: "cs", name: "unique_customers", field: func(c *entity.WindowCounts) any { return &c.UniqueCustomers }},
	{cte: "cs", name: "repeat_customers", field: func(c *entity.WindowCounts) any { return &c.RepeatCustomers }},
}

// WindowCountsColumns is the column list of the window counts query.
func WindowCountsColumns() []string {
	cols := []string{"merchant_id"}
	for _, rc := range resultColumns {
		for _, wf := range windowFilters {
			cols = append(cols, fmt.Sprintf("%s_%s", rc.name, wf.window))
		}
	}
	return cols
}

func list(parts ...[]string) string {
	var all []string
	for _, p := range parts {
		all = append(all, p...)
	}
	return strings.Join(all, ",\n\t\t")
}

func windowCountsQuery(scope string) string {
	var sel []string
	for _, rc := range resultColumns {
		for _, wf := range windowFilters {
			col := fmt.Sprintf("%s_%s", rc.name, wf.window)
			sel = append(sel, fmt.Sprintf("COALESCE(%s.%s, 0) AS %s", rc.cte, col, col))
		}
	}

	return `
WITH scope AS (` + scope + `
),
purchase_agg AS (
	SELECT
		p.merchant_id,
		` + list(
		windowed("order_count", "COUNT", "*", "p.timestamp", ""),
		windowed("order_value", "SUM", "p.amount", "p.timestamp", ""),
		windowed("review_count", "COUNT", "*", "p.timestamp", "p.decision = 'REVIEW'"),
	) + `
	FROM purchase p
	WHERE p.merchant_id IN (SELECT merchant_id FROM scope)
	GROUP BY p.merchant_id
),
customer_agg AS (
	SELECT
		p.merchant_id,
		p.customer_id,
		` + list(windowed("cnt", "COUNT", "*", "p.timestamp", "")) + `
	FROM purchase p
	WHERE p.customer_id IS NOT NULL AND p.customer_id <> ''
		AND p.merchant_id IN (SELECT merchant_id FROM scope)
	GROUP BY p.merchant_id, p.customer_id
),
customer_stats AS (
	SELECT
		merchant_id,
		` + list(
		perCustomer("unique_customers", "> 0"),
		perCustomer("repeat_customers", ">= :vipMinOrders"),
	) + `
	FROM customer_agg
	GROUP BY merchant_id
),
order_line_agg AS (
	SELECT
		p.merchant_id,
		` + list(windowed("order_line_count", "COUNT", "DISTINCT ci.id", "p.timestamp", "")) + `
	FROM purchase p
	JOIN cart_item ci ON ci.purchase_order = p.order_id
	WHERE p.merchant_id IN (SELECT merchant_id FROM scope)
	GROUP BY p.merchant_id
),
return_agg AS (
	SELECT
		rr.merchant_id,
		` + list(
		windowed("return_count", "COUNT", "DISTINCT rr.return_id", "rr.initiated_at", ""),
		windowed("return_value", "SUM", "rd.amount * rd.quantity", "rr.initiated_at", ""),
	) + `
	FROM return_request rr
	JOIN return_details rd ON rd.return_id = rr.return_id
	WHERE rr.merchant_id IN (SELECT merchant_id FROM scope)
	GROUP BY rr.merchant_id
),
outcome_agg AS (
	SELECT
		rr.merchant_id,
		` + list(
		windowed("approve_count", "COUNT", "*", "rr.updated_at", "rr.review_status = 'approved'"),
		windowed("decline_count", "COUNT", "*", "rr.updated_at", "rr.review_status = 'declined'"),
	) + `
	FROM return_request rr
	WHERE rr.merchant_id IN (SELECT merchant_id FROM scope)
	GROUP BY rr.merchant_id
)
SELECT
	s.merchant_id,
	` + strings.Join(sel, ",\n\t") + `
FROM scope s
LEFT JOIN purchase_agg pa ON pa.merchant_id = s.merchant_id
LEFT JOIN customer_stats cs ON cs.merchant_id = s.merchant_id
LEFT JOIN order_line_agg ola ON ola.merchant_id = s.merchant_id
LEFT JOIN return_agg ra ON ra.merchant_id = s.merchant_id
LEFT JOIN outcome_agg oa ON oa.merchant_id = s.merchant_id
ORDER BY s.merchant_id`
}

func workflowDistQuery(scope string) string {
	return `
WITH scope AS (` + scope + `
)
SELECT
	p.merchant_id,
	p.triggered_workflow,
	` + list(windowed("cnt", "COUNT", "*", "p.timestamp", "")) + `
FROM purchase p
WHERE p.decision = 'REVIEW'
	AND p.triggered_workflow IS NOT NULL
	AND p.merchant_id IN (SELECT merchant_id FROM scope)
GROUP BY p.merchant_id, p.triggered_workflow
ORDER BY p.merchant_id, p.triggered_workflow`
}

var (
	windowCountsAll    = windowCountsQuery(allMerchantsScope)
	windowCountsSingle = windowCountsQuery(singleMerchantScope)
	workflowDistAll    = workflowDistQuery(allMerchantsScope)
	workflowDistSingle = workflowDistQuery(singleMerchantScope)
)

func windowParams(ws entity.Windows, scope entity.Scope, opts entity.AggregateOptions) map[string]any {
	vipMin := opts.VIPMinOrders
	if vipMin <= 0 {
		vipMin = defaultVIPMinOrders
	}
	params := map[string]any{
		"nowCutoff":    ws.Now.UnixMilli(),
		"weekCutoff":   ws.Week.UnixMilli(),
		"wowCutoff":    ws.WoW.UnixMilli(),
		"vipMinOrders": vipMin,
	}
	if !scope.All() {
		params["merchantId"] = scope.MerchantID
	}
	return params
}

// WindowCounts runs the aggregation pass for the scope. The grouped pass and
// the single merchant pass share the same SQL apart from the scope CTE.
func (ps *PostgresStore) WindowCounts(ctx context.Context, ws entity.Windows, scope entity.Scope, opts entity.AggregateOptions) ([]entity.MerchantCounts, error) {
	ctx, cancel := ps.withTimeout(ctx)
	defer cancel()

	query, distQuery := windowCountsAll, workflowDistAll
	if !scope.All() {
		query, distQuery = windowCountsSingle, workflowDistSingle
	}
	params := windowParams(ws, scope, opts)

	var out []entity.MerchantCounts
	byMerchant := map[int64]int{}
	err := QueryRowsNamed(ctx, ps.db, query, params, func(rows *sqlx.Rows) error {
		mc, err := scanWindowCounts(rows)
		if err != nil {
			return err
		}
		byMerchant[mc.MerchantID] = len(out)
		out = append(out, mc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: window counts: %w", gerr.QueryFailed, err)
	}

	if !opts.WorkflowDist {
		return out, nil
	}

	err = QueryRowsNamed(ctx, ps.db, distQuery, params, func(rows *sqlx.Rows) error {
		var (
			merchantID int64
			workflow   string
			cnt        = make([]int64, len(windowFilters))
		)
		dest := []any{&merchantID, &workflow}
		for i := range cnt {
			dest = append(dest, &cnt[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return err
		}
		i, ok := byMerchant[merchantID]
		if !ok {
			return nil
		}
		for j, wf := range windowFilters {
			if cnt[j] == 0 {
				continue
			}
			wc := out[i].Windows[wf.window]
			if wc.WorkflowDist == nil {
				wc.WorkflowDist = map[string]int64{}
			}
			wc.WorkflowDist[workflow] = cnt[j]
			out[i].Windows[wf.window] = wc
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: workflow distribution: %w", gerr.QueryFailed, err)
	}
	return out, nil
}

func scanWindowCounts(rows *sqlx.Rows) (entity.MerchantCounts, error) {
	counts := make(map[entity.Window]*entity.WindowCounts, len(windowFilters))
	for _, wf := range windowFilters {
		counts[wf.window] = &entity.WindowCounts{}
	}

	mc := entity.MerchantCounts{}
	dest := []any{&mc.MerchantID}
	for _, rc := range resultColumns {
		for _, wf := range windowFilters {
			dest = append(dest, rc.field(counts[wf.window]))
		}
	}
	if err := rows.Scan(dest...); err != nil {
		return mc, err
	}

	mc.Windows = make(map[entity.Window]entity.WindowCounts, len(counts))
	for w, c := range counts {
		mc.Windows[w] = *c
	}
	return mc, nil
}
