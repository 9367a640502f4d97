package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Sequence names. Both start at 1.
const (
	ShopSeq    = "shop_seq"
	ProductSeq = "product_seq"
)

// nextval advances the named sequence and returns the new value.
// The increment and the read are one statement, so two callers can never
// observe the same value.
func nextval(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var value int64
	err := tx.QueryRowContext(ctx, `
		UPDATE sequences SET value = value + 1
		WHERE name = ?
		RETURNING value
	`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("nextval %s: sequence not found", name)
	}
	if err != nil {
		return 0, fmt.Errorf("nextval %s: %w", name, err)
	}
	return value, nil
}
