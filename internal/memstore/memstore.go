// Package memstore is an in-memory fact set implementing the metrics source
// and the merchant directory. It backs fixture runs and tests.
package memstore

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/jekabolt/merchant-report/internal/entity"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const defaultVIPMinOrders = 2

type Store struct {
	facts entity.Facts
	names map[int64]string
}

// New wraps a fact set. Facts are treated as read-only.
func New(facts entity.Facts) *Store {
	names := make(map[int64]string, len(facts.Merchants))
	for _, m := range facts.Merchants {
		names[m.ID] = m.Name
	}
	return &Store{
		facts: facts,
		names: names,
	}
}

// LoadFile reads a YAML fixture file into a store.
func LoadFile(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read fixtures %s: %w", path, err)
	}
	var facts entity.Facts
	if err := yaml.Unmarshal(b, &facts); err != nil {
		return nil, fmt.Errorf("can't parse fixtures %s: %w", path, err)
	}
	return New(facts), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) Close() {}

// MerchantName implements dependency.MerchantDirectory.
func (s *Store) MerchantName(ctx context.Context, id int64) (string, error) {
	name, ok := s.names[id]
	if !ok || name == "" {
		return entity.UnknownMerchant, nil
	}
	return name, nil
}

// MerchantIDs implements dependency.MetricsSource.
func (s *Store) MerchantIDs(ctx context.Context) ([]int64, error) {
	seen := map[int64]struct{}{}
	for _, p := range s.facts.Purchases {
		seen[p.MerchantID] = struct{}{}
	}
	for _, rr := range s.facts.ReturnRequests {
		seen[rr.MerchantID] = struct{}{}
	}
	for _, m := range s.facts.Merchants {
		seen[m.ID] = struct{}{}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// WindowCounts implements dependency.MetricsSource.
func (s *Store) WindowCounts(ctx context.Context, ws entity.Windows, scope entity.Scope, opts entity.AggregateOptions) ([]entity.MerchantCounts, error) {
	ids := []int64{scope.MerchantID}
	if scope.All() {
		var err error
		ids, err = s.MerchantIDs(ctx)
		if err != nil {
			return nil, err
		}
	}

	out := make([]entity.MerchantCounts, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, s.merchantCounts(id, ws, opts))
	}
	return out, nil
}

func (s *Store) merchantCounts(merchantID int64, ws entity.Windows, opts entity.AggregateOptions) entity.MerchantCounts {
	vipMin := opts.VIPMinOrders
	if vipMin <= 0 {
		vipMin = defaultVIPMinOrders
	}

	counts := make(map[entity.Window]*entity.WindowCounts, len(entity.AllWindows))
	customers := make(map[entity.Window]map[string]int, len(entity.AllWindows))
	lines := make(map[entity.Window]map[string]struct{}, len(entity.AllWindows))
	returns := make(map[entity.Window]map[string]struct{}, len(entity.AllWindows))
	for _, w := range entity.AllWindows {
		counts[w] = &entity.WindowCounts{}
		customers[w] = map[string]int{}
		lines[w] = map[string]struct{}{}
		returns[w] = map[string]struct{}{}
	}

	orders := map[string][]entity.Purchase{}
	for _, p := range s.facts.Purchases {
		if p.MerchantID != merchantID {
			continue
		}
		orders[p.OrderID] = append(orders[p.OrderID], p)
		for _, w := range entity.AllWindows {
			if !ws.Contains(w, p.Timestamp) {
				continue
			}
			wc := counts[w]
			wc.OrderCount++
			wc.OrderValue = wc.OrderValue.Add(p.Amount)
			if p.CustomerID != "" {
				customers[w][p.CustomerID]++
			}
			if p.Decision != entity.DecisionReview {
				continue
			}
			wc.ReviewCount++
			if opts.WorkflowDist && p.TriggeredWorkflow != "" {
				if wc.WorkflowDist == nil {
					wc.WorkflowDist = map[string]int64{}
				}
				wc.WorkflowDist[p.TriggeredWorkflow]++
			}
		}
	}

	for _, ci := range s.facts.CartItems {
		for _, p := range orders[ci.PurchaseOrder] {
			for _, w := range entity.AllWindows {
				if ws.Contains(w, p.Timestamp) {
					lines[w][ci.ID] = struct{}{}
				}
			}
		}
	}

	detailValue := map[string]decimal.Decimal{}
	for _, rd := range s.facts.ReturnDetails {
		v := rd.Amount.Mul(decimal.NewFromInt(rd.Quantity))
		detailValue[rd.ReturnID] = detailValue[rd.ReturnID].Add(v)
	}
	hasDetail := map[string]bool{}
	for _, rd := range s.facts.ReturnDetails {
		hasDetail[rd.ReturnID] = true
	}

	for _, rr := range s.facts.ReturnRequests {
		if rr.MerchantID != merchantID {
			continue
		}
		for _, w := range entity.AllWindows {
			wc := counts[w]
			// volume is bucketed by initiation, outcome by last update
			if hasDetail[rr.ReturnID] && ws.Contains(w, rr.InitiatedAt) {
				returns[w][rr.ReturnID] = struct{}{}
				wc.ReturnValue = wc.ReturnValue.Add(detailValue[rr.ReturnID])
			}
			if ws.Contains(w, rr.UpdatedAt) {
				switch rr.ReviewStatus {
				case entity.ReviewStatusApproved:
					wc.ApproveCount++
				case entity.ReviewStatusDeclined:
					wc.DeclineCount++
				}
			}
		}
	}

	mc := entity.MerchantCounts{
		MerchantID: merchantID,
		Windows:    make(map[entity.Window]entity.WindowCounts, len(entity.AllWindows)),
	}
	for _, w := range entity.AllWindows {
		wc := counts[w]
		wc.OrderLineCount = int64(len(lines[w]))
		wc.ReturnCount = int64(len(returns[w]))
		wc.UniqueCustomers = int64(len(customers[w]))
		for _, n := range customers[w] {
			if n >= vipMin {
				wc.RepeatCustomers++
			}
		}
		mc.Windows[w] = *wc
	}
	return mc
}
