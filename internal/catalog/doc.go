// Package catalog defines the records kept by the inventory catalog.
//
// A catalog holds two entities:
//   - Shop: a seller or location, identified by a sequence-minted id and a title
//   - Product: an item belonging to exactly one Shop, carrying an ordered list of price points
//
// Shops are never created directly. A Shop comes into existence the first time
// a Product references a title that has not been seen yet, and is reused for
// every later Product with the same title.
//
// Titles are compared byte for byte: "Store1", "store1" and " Store1 " are
// three different shops.
package catalog
