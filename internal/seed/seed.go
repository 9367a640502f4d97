// Package seed reads product lists for bulk import.
//
// A seed file is YAML (.yaml, .yml) or CUE (.cue):
//
//	products:
//	  - name: Pen
//	    shop: Store1
//	    price: [5]
//	  - name: Notebook
//	    shop: Store1
//	    price: [12, 15.50]
//
// Both formats are checked against the same embedded CUE schema, so every
// product needs a non-blank name and at least one numeric price. The shop
// defaults to the empty title.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/roach88/catalog/internal/catalog"
)

//go:embed schema.cue
var schemaCUE string

// Load reads the seed file at path, choosing the format by extension.
func Load(path string) ([]catalog.NewProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data, path)
	case ".cue":
		return ParseCUE(data, path)
	default:
		return nil, &catalog.ValidationError{
			Field:   "seed",
			Message: fmt.Sprintf("unsupported seed file extension %q (want .yaml, .yml or .cue)", ext),
		}
	}
}

// ParseYAML decodes a YAML seed document. filename is used in error messages.
func ParseYAML(data []byte, filename string) ([]catalog.NewProduct, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &catalog.ValidationError{
			Field:   "seed",
			Message: fmt.Sprintf("%s: %v", filename, err),
		}
	}
	if raw == nil {
		raw = map[string]any{}
	}

	ctx := cuecontext.New()
	return decode(ctx, ctx.Encode(raw), filename)
}

// ParseCUE compiles a CUE seed document. filename is used in error messages.
func ParseCUE(data []byte, filename string) ([]catalog.NewProduct, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, schemaError(filename, err)
	}
	return decode(ctx, v, filename)
}

// decode validates data against the seed schema and extracts the products.
func decode(ctx *cue.Context, data cue.Value, filename string) ([]catalog.NewProduct, error) {
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}

	v := schema.LookupPath(cue.ParsePath("#Seed")).Unify(data)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, schemaError(filename, err)
	}

	productsVal := v.LookupPath(cue.ParsePath("products"))
	if !productsVal.Exists() {
		return []catalog.NewProduct{}, nil
	}

	iter, err := productsVal.List()
	if err != nil {
		return nil, schemaError(filename, err)
	}

	products := []catalog.NewProduct{}
	for iter.Next() {
		p, err := decodeProduct(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("%s: products[%s]: %w", filename, iter.Selector(), err)
		}
		products = append(products, p)
	}

	return products, nil
}

func decodeProduct(v cue.Value) (catalog.NewProduct, error) {
	var p catalog.NewProduct

	name, err := v.LookupPath(cue.ParsePath("name")).String()
	if err != nil {
		return p, fmt.Errorf("name: %w", err)
	}
	shopVal, _ := v.LookupPath(cue.ParsePath("shop")).Default()
	shop, err := shopVal.String()
	if err != nil {
		return p, fmt.Errorf("shop: %w", err)
	}

	iter, err := v.LookupPath(cue.ParsePath("price")).List()
	if err != nil {
		return p, fmt.Errorf("price: %w", err)
	}
	price := catalog.PriceList{}
	for iter.Next() {
		// MarshalJSON yields the literal number text, keeping full precision.
		raw, err := iter.Value().MarshalJSON()
		if err != nil {
			return p, fmt.Errorf("price: %w", err)
		}
		d, err := decimal.NewFromString(string(raw))
		if err != nil {
			return p, fmt.Errorf("price: %w", err)
		}
		price = append(price, d)
	}

	p.Name = name
	p.Shop = shop
	p.Price = price
	return p, nil
}

// schemaError converts a CUE error into a ValidationError listing every
// violation with its position.
func schemaError(filename string, err error) error {
	details := strings.TrimSpace(cueerrors.Details(err, nil))
	return &catalog.ValidationError{
		Field:   "seed",
		Message: fmt.Sprintf("%s: %s", filename, details),
	}
}
