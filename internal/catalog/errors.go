package catalog

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is matched by every StorageError.
//
//	if errors.Is(err, catalog.ErrStorageUnavailable) { ... }
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageError reports that the backing file could not be created, opened,
// configured or written.
type StorageError struct {
	// Op names the step that failed, e.g. "open" or "commit".
	Op string

	// Path is the catalog file involved.
	Path string

	// Err is the underlying driver or filesystem error.
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s %s: %v", ErrStorageUnavailable, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrStorageUnavailable, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStorageUnavailable) true for any StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Message
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// ReferenceError reports a product whose shop id does not resolve to a shop.
// Shops are always resolved or created before the product insert, so seeing
// this error means that invariant was broken.
type ReferenceError struct {
	ShopID int64
	Err    error
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference: shop %d does not exist: %v", e.ShopID, e.Err)
}

// Unwrap returns the underlying driver error.
func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsReference reports whether err is or wraps a ReferenceError.
func IsReference(err error) bool {
	var r *ReferenceError
	return errors.As(err, &r)
}
