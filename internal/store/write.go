package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/roach88/catalog/internal/catalog"
)

// AddProduct inserts one product, creating its shop first when no shop with
// that title exists yet. Shop lookup, shop creation and the product insert
// commit together or not at all.
//
// Returns *catalog.ValidationError if the name is empty.
func (s *Store) AddProduct(ctx context.Context, p catalog.NewProduct) (catalog.Product, error) {
	products, err := s.AddProducts(ctx, []catalog.NewProduct{p})
	if err != nil {
		return catalog.Product{}, err
	}
	return products[0], nil
}

// AddProducts inserts products in order within a single transaction.
// Every product is validated before anything is written; if any insert
// fails, none of the products or shops they introduced are kept.
func (s *Store) AddProducts(ctx context.Context, ps []catalog.NewProduct) (_ []catalog.Product, err error) {
	for i, p := range ps {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("add product %d: %w", i+1, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, s.storageErr("begin", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	products := make([]catalog.Product, 0, len(ps))
	for _, p := range ps {
		product, err := s.addProductTx(ctx, tx, p)
		if err != nil {
			return nil, fmt.Errorf("add product %q: %w", p.Name, err)
		}
		products = append(products, product)
	}

	if err := tx.Commit(); err != nil {
		return nil, s.storageErr("commit", err)
	}

	return products, nil
}

// addProductTx runs the resolve-or-create-shop then insert-product steps.
// p must already be validated.
func (s *Store) addProductTx(ctx context.Context, tx *sql.Tx, p catalog.NewProduct) (catalog.Product, error) {
	shopID, err := s.resolveShop(ctx, tx, p.Shop)
	if err != nil {
		return catalog.Product{}, err
	}

	productID, err := nextval(ctx, tx, ProductSeq)
	if err != nil {
		return catalog.Product{}, s.storageErr("allocate product id", err)
	}

	product := catalog.Product{
		ID:     productID,
		Name:   p.Name,
		ShopID: shopID,
		Price:  p.Price,
	}
	if product.Price == nil {
		product.Price = catalog.PriceList{}
	}

	if err := s.insertProduct(ctx, tx, product); err != nil {
		return catalog.Product{}, err
	}

	return product, nil
}

// resolveShop returns the id of the shop titled title, inserting a new shop
// with the next shop_seq value if there is none. When several rows share a
// title the oldest wins.
func (s *Store) resolveShop(ctx context.Context, tx *sql.Tx, title string) (int64, error) {
	var shopID int64
	err := tx.QueryRowContext(ctx, `
		SELECT shop_id FROM shops
		WHERE shop_title = ?
		ORDER BY shop_id ASC
		LIMIT 1
	`, title).Scan(&shopID)
	if err == nil {
		return shopID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, s.storageErr("lookup shop", err)
	}

	shopID, err = nextval(ctx, tx, ShopSeq)
	if err != nil {
		return 0, s.storageErr("allocate shop id", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO shops (shop_id, shop_title) VALUES (?, ?)
	`, shopID, title); err != nil {
		return 0, s.storageErr("insert shop", err)
	}

	return shopID, nil
}

// insertProduct writes a single product row.
// A foreign-key rejection is reported as *catalog.ReferenceError.
func (s *Store) insertProduct(ctx context.Context, tx *sql.Tx, p catalog.Product) error {
	priceJSON, err := marshalPrice(p.Price)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products (product_id, product_name, shop_id, product_price)
		VALUES (?, ?, ?, ?)
	`, p.ID, p.Name, p.ShopID, priceJSON)
	if isForeignKeyViolation(err) {
		return &catalog.ReferenceError{ShopID: p.ShopID, Err: err}
	}
	if err != nil {
		return s.storageErr("insert product", err)
	}

	return nil
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
