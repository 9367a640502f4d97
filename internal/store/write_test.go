package store

import (
	"context"
	"errors"
	"testing"

	"github.com/roach88/catalog/internal/catalog"
	"github.com/roach88/catalog/internal/testutil"
)

func TestAddProduct_CreatesShop(t *testing.T) {
	s := createTestStore(t)

	p := mustAdd(t, s, "Pen", "Store1", 5)

	if p.ID != 1 {
		t.Errorf("product ID = %d, want 1", p.ID)
	}
	if p.ShopID != 1 {
		t.Errorf("shop ID = %d, want 1", p.ShopID)
	}
	if n := countRows(t, s, "shops"); n != 1 {
		t.Errorf("shops = %d, want 1", n)
	}
	if n := countRows(t, s, "products"); n != 1 {
		t.Errorf("products = %d, want 1", n)
	}
}

func TestAddProduct_ReusesShop(t *testing.T) {
	s := createTestStore(t)

	p1 := mustAdd(t, s, "Pen", "Store1", 5)
	p2 := mustAdd(t, s, "Notebook", "Store1", 12, 15)

	if p1.ShopID != p2.ShopID {
		t.Errorf("shop IDs differ: %d vs %d", p1.ShopID, p2.ShopID)
	}
	if n := countRows(t, s, "shops"); n != 1 {
		t.Errorf("shops = %d, want 1", n)
	}
	if n := countRows(t, s, "products"); n != 2 {
		t.Errorf("products = %d, want 2", n)
	}

	var refs int
	err := s.db.QueryRow("SELECT COUNT(*) FROM products WHERE shop_id = ?", p1.ShopID).Scan(&refs)
	if err != nil {
		t.Fatalf("count refs: %v", err)
	}
	if refs != 2 {
		t.Errorf("products referencing shop %d = %d, want 2", p1.ShopID, refs)
	}
}

func TestAddProduct_NewTitleAddsExactlyOneShop(t *testing.T) {
	s := createTestStore(t)

	mustAdd(t, s, "Pen", "Store1", 5)
	before := countRows(t, s, "shops")

	p := mustAdd(t, s, "Mug", "Store2", 8)

	if after := countRows(t, s, "shops"); after != before+1 {
		t.Errorf("shops = %d, want %d", after, before+1)
	}
	if p.ShopID != 2 {
		t.Errorf("new shop ID = %d, want 2", p.ShopID)
	}
}

func TestAddProduct_ShopTitleIsCaseSensitive(t *testing.T) {
	s := createTestStore(t)

	a := mustAdd(t, s, "Pen", "store", 1)
	b := mustAdd(t, s, "Pen", "Store", 1)

	if a.ShopID == b.ShopID {
		t.Error("titles differing only in case resolved to the same shop")
	}
}

func TestAddProduct_StoresTextVerbatim(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	a := mustAdd(t, s, "Pen", "A", 1)
	b := mustAdd(t, s, " Mug ", " A ", 2)

	if a.ShopID == b.ShopID {
		t.Errorf("%q and %q resolved to the same shop %d", "A", " A ", a.ShopID)
	}
	if b.Name != " Mug " {
		t.Errorf("Name = %q, want %q", b.Name, " Mug ")
	}
	if n := countRows(t, s, "shops"); n != 2 {
		t.Errorf("shops = %d, want 2", n)
	}

	records, err := s.ListByShop(ctx, " A ")
	if err != nil {
		t.Fatalf("ListByShop() failed: %v", err)
	}
	assertRecords(t, records, []catalog.Record{
		{Name: " Mug ", Shop: " A ", Price: catalog.Prices(2)},
	})
}

func TestAddProduct_DistinctUnicodeForms(t *testing.T) {
	s := createTestStore(t)

	// "é" as e + combining acute accent vs. the precomposed code point.
	a := mustAdd(t, s, "Croissant", "Cafe\u0301", 3)
	b := mustAdd(t, s, "Baguette", "Caf\u00e9", 2)

	if a.ShopID == b.ShopID {
		t.Errorf("differently encoded titles resolved to the same shop %d", a.ShopID)
	}
}

func TestAddProduct_EmptyShopTitle(t *testing.T) {
	s := createTestStore(t)

	a := mustAdd(t, s, "Loose item", "", 1)
	b := mustAdd(t, s, "Another", "", 2)

	if a.ShopID != b.ShopID {
		t.Errorf("empty titles resolved to shops %d and %d", a.ShopID, b.ShopID)
	}
}

func TestAddProduct_IDsStrictlyIncrease(t *testing.T) {
	s := createTestStore(t)

	shops := []string{"A", "B", "A", "C", "B"}
	var last int64
	seen := make(map[int64]bool)
	for i, shop := range shops {
		p := mustAdd(t, s, "item", shop, int64(i))
		if seen[p.ID] {
			t.Fatalf("product ID %d reused", p.ID)
		}
		seen[p.ID] = true
		if p.ID <= last {
			t.Fatalf("product ID %d not greater than previous %d", p.ID, last)
		}
		last = p.ID
	}
}

func TestAddProduct_EmptyName(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"", "  "} {
		_, err := s.AddProduct(ctx, catalog.NewProduct{Name: name, Shop: "Store1", Price: catalog.Prices(5)})
		if !catalog.IsValidation(err) {
			t.Errorf("AddProduct(name=%q) error = %v, want ValidationError", name, err)
		}
	}

	if n := countRows(t, s, "shops"); n != 0 {
		t.Errorf("shops = %d after rejected insert, want 0", n)
	}
	if v, _ := s.currval(ctx, ProductSeq); v != 0 {
		t.Errorf("product_seq = %d after rejected insert, want 0", v)
	}
}

func TestAddProduct_NilPriceStoredAsEmpty(t *testing.T) {
	s := createTestStore(t)

	p, err := s.AddProduct(context.Background(), catalog.NewProduct{Name: "Free sample", Shop: "Store1"})
	if err != nil {
		t.Fatalf("AddProduct() failed: %v", err)
	}
	if p.Price == nil || len(p.Price) != 0 {
		t.Errorf("Price = %#v, want empty non-nil list", p.Price)
	}

	var raw string
	if err := s.db.QueryRow("SELECT product_price FROM products WHERE product_id = ?", p.ID).Scan(&raw); err != nil {
		t.Fatalf("read price: %v", err)
	}
	if raw != "[]" {
		t.Errorf("stored price = %q, want []", raw)
	}
}

func TestAddProducts_AllOrNothing(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.AddProducts(ctx, []catalog.NewProduct{
		{Name: "Pen", Shop: "Store1", Price: catalog.Prices(5)},
		{Name: "", Shop: "Store2", Price: catalog.Prices(1)},
	})
	if !catalog.IsValidation(err) {
		t.Fatalf("AddProducts() error = %v, want ValidationError", err)
	}
	if n := countRows(t, s, "products"); n != 0 {
		t.Errorf("products = %d, want 0", n)
	}

	products, err := s.AddProducts(ctx, testutil.EndToEndProducts())
	if err != nil {
		t.Fatalf("AddProducts() failed: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("len(products) = %d, want 3", len(products))
	}
	if products[0].ShopID != products[1].ShopID || products[1].ShopID == products[2].ShopID {
		t.Errorf("unexpected shop assignment: %+v", products)
	}
	if n := countRows(t, s, "shops"); n != 2 {
		t.Errorf("shops = %d, want 2", n)
	}
}

func TestAddProduct_CanceledContextRollsBack(t *testing.T) {
	s := createTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.AddProduct(ctx, catalog.NewProduct{Name: "Pen", Shop: "Store1", Price: catalog.Prices(5)})
	if err == nil {
		t.Fatal("AddProduct() with canceled context should fail")
	}
	if n := countRows(t, s, "shops"); n != 0 {
		t.Errorf("shops = %d, want 0", n)
	}
	if n := countRows(t, s, "products"); n != 0 {
		t.Errorf("products = %d, want 0", n)
	}
}

func TestInsertProduct_MissingShopIsReferenceError(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx() failed: %v", err)
	}
	defer tx.Rollback()

	err = s.insertProduct(ctx, tx, catalog.Product{
		ID:     1,
		Name:   "Orphan",
		ShopID: 42,
		Price:  catalog.Prices(1),
	})

	var refErr *catalog.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("insertProduct() error = %v, want ReferenceError", err)
	}
	if refErr.ShopID != 42 {
		t.Errorf("ReferenceError.ShopID = %d, want 42", refErr.ShopID)
	}
}
