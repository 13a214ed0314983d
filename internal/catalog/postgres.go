package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// LoadPostgres runs query against the database at dsn and returns one record
// per row, keyed by column name.
func LoadPostgres(ctx context.Context, dsn, query string) ([]Record, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("catalog: connect: %w", err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog: query products: %w", err)
	}

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]Record, error) {
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("catalog: read products: %w", err)
	}
	return records, nil
}
