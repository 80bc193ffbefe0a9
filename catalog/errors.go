package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrCatalogNotFound  = errors.New("catalog not found")
	ErrDuplicateProduct = errors.New("duplicate product id")
)

// NotFoundError reports a lookup for a product id the catalog does not hold.
type NotFoundError struct {
	ProductID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InsufficientInventoryError carries the quantity actually available so the
// caller can offer a reduced quantity or an alternative product.
type InsufficientInventoryError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// SchemaError reports required columns missing from the durable store.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "catalog is missing required columns: " + strings.Join(e.Missing, ", ")
}

// FieldTypeError reports a cell that failed coercion to its column type.
// Row is 1-based and counts data rows only.
type FieldTypeError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("row %d: field %s: cannot coerce %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *FieldTypeError) Unwrap() error {
	return e.Err
}
