package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceList is an ordered sequence of price points for one product.
// Order is significant and duplicates are allowed.
type PriceList []decimal.Decimal

// Prices builds a PriceList from integer amounts.
func Prices(amounts ...int64) PriceList {
	out := make(PriceList, len(amounts))
	for i, a := range amounts {
		out[i] = decimal.NewFromInt(a)
	}
	return out
}

// ParsePriceList parses a single number or a comma-separated list of numbers,
// e.g. "5" or "12, 15.50".
func ParsePriceList(s string) (PriceList, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &ValidationError{Field: "price", Message: "at least one price is required"}
	}

	parts := strings.Split(s, ",")
	out := make(PriceList, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		d, err := decimal.NewFromString(part)
		if err != nil {
			return nil, &ValidationError{
				Field:   "price",
				Message: fmt.Sprintf("%q is not a number", part),
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// String joins the price points with ", ", the form used in tables.
func (p PriceList) String() string {
	parts := make([]string, len(p))
	for i, d := range p {
		parts[i] = d.String()
	}
	return strings.Join(parts, ", ")
}

// Equal reports whether both lists hold numerically equal values in the same order.
func (p PriceList) Equal(other PriceList) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the list as an array of decimal strings so no
// precision is lost on the way to storage. A nil list encodes as [].
func (p PriceList) MarshalJSON() ([]byte, error) {
	parts := make([]string, len(p))
	for i, d := range p {
		parts[i] = d.String()
	}
	return json.Marshal(parts)
}

// UnmarshalJSON accepts an array of numbers or of numeric strings.
func (p *PriceList) UnmarshalJSON(data []byte) error {
	var raw []decimal.Decimal
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal price list: %w", err)
	}
	if raw == nil {
		raw = []decimal.Decimal{}
	}
	*p = PriceList(raw)
	return nil
}
