package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/catalog/internal/catalog"
)

// marshalPrice converts a price list to JSON TEXT for storage.
// A nil list is stored as [].
func marshalPrice(price catalog.PriceList) (string, error) {
	data, err := json.Marshal(price)
	if err != nil {
		return "", fmt.Errorf("marshal price: %w", err)
	}
	return string(data), nil
}

// unmarshalPrice parses stored JSON TEXT back into a price list.
// Never returns a nil list without an error.
func unmarshalPrice(data string) (catalog.PriceList, error) {
	if data == "" {
		return catalog.PriceList{}, nil
	}
	var price catalog.PriceList
	if err := json.Unmarshal([]byte(data), &price); err != nil {
		return nil, fmt.Errorf("unmarshal price: %w", err)
	}
	return price, nil
}
