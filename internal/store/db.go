package store

import (
	"context"
	"fmt"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/jmoiron/sqlx"

	"github.com/jekabolt/merchant-report/internal/dependency"
)

// bindNamed turns a query with :named parameters into a positional query for
// the connection's driver.
func bindNamed(conn dependency.DB, query string, params map[string]any) (string, []any, error) {
	queryNamed := namedParameterQuery.NewNamedParameterQuery(query)
	queryNamed.SetValuesFromMap(params)
	query, args, err := sqlx.In(queryNamed.GetParsedQuery(), queryNamed.GetParsedParameters()...)
	if err != nil {
		return "", nil, fmt.Errorf("sqlx in: %w", err)
	}
	return conn.Rebind(query), args, nil
}

// QueryRowsNamed runs a named query and hands every row to scan.
func QueryRowsNamed(
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
	scan func(*sqlx.Rows) error,
) error {
	query, args, err := bindNamed(conn, query, params)
	if err != nil {
		return err
	}

	rows, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	return nil
}

func QueryListNamed[T any](
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) ([]T, error) {
	var target []T
	err := QueryRowsNamed(ctx, conn, query, params, func(rows *sqlx.Rows) error {
		var t T
		if err := rows.StructScan(&t); err != nil {
			return fmt.Errorf("struct scan: %w", err)
		}
		target = append(target, t)
		return nil
	})
	return target, err
}

func QueryNamedOne[T any](ctx context.Context, conn dependency.DB, query string, params map[string]any) (T, error) {
	var target T
	query, args, err := bindNamed(conn, query, params)
	if err != nil {
		return target, err
	}

	row := conn.QueryRowxContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return target, fmt.Errorf("query row: %w", err)
	}

	if err := row.StructScan(&target); err != nil {
		return target, fmt.Errorf("struct scan: %w", err)
	}
	return target, nil
}
