package store

import (
	"context"
	"testing"
)

func TestNextval_StartsAtOneAndIncrements(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx() failed: %v", err)
	}
	for want := int64(1); want <= 3; want++ {
		got, err := nextval(ctx, tx, ShopSeq)
		if err != nil {
			t.Fatalf("nextval() failed: %v", err)
		}
		if got != want {
			t.Errorf("nextval() = %d, want %d", got, want)
		}
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	if v, err := s.currval(ctx, ShopSeq); err != nil || v != 3 {
		t.Errorf("currval(shop_seq) = %d, %v; want 3", v, err)
	}
	if v, err := s.currval(ctx, ProductSeq); err != nil || v != 0 {
		t.Errorf("currval(product_seq) = %d, %v; want 0", v, err)
	}
}

func TestNextval_UnknownSequence(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx() failed: %v", err)
	}
	defer tx.Rollback()

	if _, err := nextval(ctx, tx, "missing_seq"); err == nil {
		t.Error("nextval() on unknown sequence should fail")
	}
}

func TestSequences_IndependentOfEachOther(t *testing.T) {
	s := createTestStore(t)

	mustAdd(t, s, "Pen", "Store1", 5)
	mustAdd(t, s, "Notebook", "Store1", 12)
	mustAdd(t, s, "Mug", "Store1", 8)

	ctx := context.Background()
	if v, _ := s.currval(ctx, ShopSeq); v != 1 {
		t.Errorf("shop_seq = %d, want 1", v)
	}
	if v, _ := s.currval(ctx, ProductSeq); v != 3 {
		t.Errorf("product_seq = %d, want 3", v)
	}
}

func TestSequences_RollbackReturnsID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mustAdd(t, s, "Pen", "Store1", 5)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx() failed: %v", err)
	}
	if v, err := nextval(ctx, tx, ProductSeq); err != nil || v != 2 {
		t.Fatalf("nextval() = %d, %v; want 2", v, err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}

	p := mustAdd(t, s, "Mug", "Store1", 8)
	if p.ID != 2 {
		t.Errorf("product ID after rollback = %d, want 2", p.ID)
	}
}
