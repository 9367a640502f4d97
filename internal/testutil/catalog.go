// Package testutil holds fixtures shared by catalog tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/roach88/catalog/internal/catalog"
)

// CatalogPath returns a catalog file path inside a fresh temporary directory.
// The file itself is not created.
func CatalogPath(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "products.db")
}

// EndToEndProducts returns the three-product fixture: two products in
// Store1 and one in Store2, in insertion order.
func EndToEndProducts() []catalog.NewProduct {
	return []catalog.NewProduct{
		{Name: "Pen", Shop: "Store1", Price: catalog.Prices(5)},
		{Name: "Notebook", Shop: "Store1", Price: catalog.Prices(12, 15)},
		{Name: "Mug", Shop: "Store2", Price: catalog.Prices(8)},
	}
}

// RecordsOf projects products the way catalog queries do.
func RecordsOf(products ...catalog.NewProduct) []catalog.Record {
	records := make([]catalog.Record, len(products))
	for i, p := range products {
		records[i] = catalog.Record{Name: p.Name, Shop: p.Shop, Price: p.Price}
	}
	return records
}
