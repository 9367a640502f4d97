package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/catalog/internal/catalog"
)

// recordSelect projects a product joined with its shop title.
const recordSelect = `
	SELECT p.product_name, s.shop_title, p.product_price
	FROM products p
	INNER JOIN shops s ON s.shop_id = p.shop_id
`

// ListAll returns every product with its shop title, ordered by product_id.
//
// Returns an empty slice (not nil) if the catalog has no products.
func (s *Store) ListAll(ctx context.Context) ([]catalog.Record, error) {
	rows, err := s.db.QueryContext(ctx, recordSelect+`
		ORDER BY p.product_id ASC
	`)
	if err != nil {
		return nil, s.storageErr("query products", err)
	}
	defer rows.Close()

	return s.scanRecords(rows)
}

// ListByShop returns the products of the shop whose title equals title
// exactly (byte for byte, case-sensitive), ordered by product_id.
//
// Returns an empty slice (not nil) if the shop does not exist or has no products.
func (s *Store) ListByShop(ctx context.Context, title string) ([]catalog.Record, error) {
	rows, err := s.db.QueryContext(ctx, recordSelect+`
		WHERE s.shop_title = ? COLLATE BINARY
		ORDER BY p.product_id ASC
	`, title)
	if err != nil {
		return nil, s.storageErr("query products by shop", err)
	}
	defer rows.Close()

	return s.scanRecords(rows)
}

// Shops returns every shop ordered by shop_id.
//
// Returns an empty slice (not nil) if no shop has been created.
func (s *Store) Shops(ctx context.Context) ([]catalog.Shop, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT shop_id, shop_title
		FROM shops
		ORDER BY shop_id ASC
	`)
	if err != nil {
		return nil, s.storageErr("query shops", err)
	}
	defer rows.Close()

	shops := []catalog.Shop{}
	for rows.Next() {
		var shop catalog.Shop
		if err := rows.Scan(&shop.ID, &shop.Title); err != nil {
			return nil, s.storageErr("scan shop", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, s.storageErr("iterate shops", err)
	}

	return shops, nil
}

// scanRecords drains rows produced by recordSelect.
func (s *Store) scanRecords(rows *sql.Rows) ([]catalog.Record, error) {
	records := []catalog.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, s.storageErr("iterate products", err)
	}

	return records, nil
}

func scanRecord(rows *sql.Rows) (catalog.Record, error) {
	var (
		rec       catalog.Record
		priceJSON string
	)
	if err := rows.Scan(&rec.Name, &rec.Shop, &priceJSON); err != nil {
		return catalog.Record{}, fmt.Errorf("scan product: %w", err)
	}

	price, err := unmarshalPrice(priceJSON)
	if err != nil {
		return catalog.Record{}, fmt.Errorf("scan product %q: %w", rec.Name, err)
	}
	rec.Price = price

	return rec, nil
}
