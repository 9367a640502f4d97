package store

import (
	"context"

	"github.com/roach88/catalog/internal/catalog"
)

// Initialize ensures the catalog file at path exists and holds the schema.
// Calling it on an initialized file changes nothing.
func Initialize(ctx context.Context, path string) error {
	_, err := withStore(path, func(*Store) (struct{}, error) {
		return struct{}{}, ctx.Err()
	})
	return err
}

// AddProduct opens the catalog at path, adds one product and closes it.
func AddProduct(ctx context.Context, path string, p catalog.NewProduct) (catalog.Product, error) {
	return withStore(path, func(s *Store) (catalog.Product, error) {
		return s.AddProduct(ctx, p)
	})
}

// ListAll opens the catalog at path and returns every product record.
func ListAll(ctx context.Context, path string) ([]catalog.Record, error) {
	return withStore(path, func(s *Store) ([]catalog.Record, error) {
		return s.ListAll(ctx)
	})
}

// ListByShop opens the catalog at path and returns the records of one shop.
func ListByShop(ctx context.Context, path, title string) ([]catalog.Record, error) {
	return withStore(path, func(s *Store) ([]catalog.Record, error) {
		return s.ListByShop(ctx, title)
	})
}

// ListShops opens the catalog at path and returns every shop.
func ListShops(ctx context.Context, path string) ([]catalog.Shop, error) {
	return withStore(path, func(s *Store) ([]catalog.Shop, error) {
		return s.Shops(ctx)
	})
}

// withStore opens the catalog, runs fn and always closes the handle.
// A close failure is reported only when fn itself succeeded.
func withStore[T any](path string, fn func(*Store) (T, error)) (result T, err error) {
	s, err := Open(path)
	if err != nil {
		return result, err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil && err == nil {
			err = s.storageErr("close", closeErr)
		}
	}()

	return fn(s)
}
