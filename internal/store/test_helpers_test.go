package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/roach88/catalog/internal/catalog"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustAdd adds a product and fails the test on error.
func mustAdd(t *testing.T, s *Store, name, shop string, prices ...int64) catalog.Product {
	t.Helper()
	p, err := s.AddProduct(context.Background(), catalog.NewProduct{
		Name:  name,
		Shop:  shop,
		Price: catalog.Prices(prices...),
	})
	if err != nil {
		t.Fatalf("AddProduct(%q, %q) failed: %v", name, shop, err)
	}
	return p
}

// countRows returns the number of rows in table.
func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

// currval returns the last value handed out by the named sequence,
// or 0 if none has been.
func (s *Store) currval(ctx context.Context, name string) (int64, error) {
	var value int64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM sequences WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("currval %s: sequence not found", name)
	}
	return value, err
}
