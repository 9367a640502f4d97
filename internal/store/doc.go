// Package store provides the SQLite-backed Catalog Store.
//
// The store keeps two entities in a single local file:
//   - shops: id minted from shop_seq, title
//   - products: id minted from product_seq, name, owning shop, price list
//
// # Identifiers
//
// SQLite has no sequence objects, so each sequence is a row in the
// sequences table. Minting an id increments the row inside the same
// transaction as the insert it serves. A rolled-back transaction also rolls
// back the increment, so the next committed row gets that id; committed ids
// are never reused and strictly increase.
//
// # Unit of Work
//
// AddProduct resolves the shop by title, creates it when absent, then inserts
// the product, all in one transaction. A failure at any step rolls back the
// whole unit: a product referencing a missing shop is never observable, and
// neither is a shop created for a product that was not written.
//
// # Queries
//
// Both queries join products with shops and return catalog.Record values
// ordered by product_id, which is the order products were added in.
//
// # Database Configuration
//
//   - WAL mode: readers do not block the writer
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: products.shop_id must reference shops.shop_id
//
// The path-scoped functions Initialize, AddProduct, ListAll and ListByShop
// open the file, perform one operation and close it again before returning,
// on every exit path. Use Open directly to run several operations against one
// handle.
package store
