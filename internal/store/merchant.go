package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jekabolt/merchant-report/internal/entity"
)

const merchantIDsQuery = `
SELECT merchant_id FROM (` + allMerchantsScope + `) s
ORDER BY merchant_id`

// MerchantIDs lists every merchant with facts or a directory entry.
func (ps *PostgresStore) MerchantIDs(ctx context.Context) ([]int64, error) {
	ctx, cancel := ps.withTimeout(ctx)
	defer cancel()

	ms, err := QueryListNamed[entity.Merchant](ctx, ps.db, merchantIDsQuery, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list merchants: %w", err)
	}
	ids := make([]int64, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// MerchantName returns the directory name of a merchant or
// entity.UnknownMerchant when there is none.
func (ps *PostgresStore) MerchantName(ctx context.Context, id int64) (string, error) {
	ctx, cancel := ps.withTimeout(ctx)
	defer cancel()

	query := `SELECT merchant_id, name FROM merchant WHERE merchant_id = :merchantId`
	m, err := QueryNamedOne[entity.Merchant](ctx, ps.db, query, map[string]any{
		"merchantId": id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return entity.UnknownMerchant, nil
	}
	if err != nil {
		return "", fmt.Errorf("can't get merchant %d: %w", id, err)
	}
	if m.Name == "" {
		return entity.UnknownMerchant, nil
	}
	return m.Name, nil
}
