package catalog

import (
	"errors"
	"testing"
)

func validHeader() []string {
	return []string{
		"product_id", "product_name", "product_description",
		"type", "price", "rating", "inventory_count",
	}
}

func TestParseRowsValid(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"P1", "Widget", "A widget", "gadget", "100.00", "4.5", "10"},
		{"P2", "Gizmo", "A gizmo", "gadget", "49.99", "3.8", "0"},
	}
	c, err := ParseRows(validHeader(), rows)
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.Records[0].ProductID != "P1" {
		t.Fatalf("ProductID = %q, want P1", c.Records[0].ProductID)
	}
	if c.Records[0].Price.String() != "100.00" {
		t.Fatalf("Price = %s, want 100.00", c.Records[0].Price.String())
	}
	if c.Records[1].InventoryCount != 0 {
		t.Fatalf("InventoryCount = %d, want 0", c.Records[1].InventoryCount)
	}
}

func TestParseRowsReordersColumnsByHeader(t *testing.T) {
	t.Parallel()

	header := []string{"price", "product_id", "product_name", "product_description", "type", "rating", "inventory_count"}
	rows := [][]string{{"12.50", "P9", "Thing", "desc", "misc", "4.0", "3"}}
	c, err := ParseRows(header, rows)
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	if c.Records[0].ProductID != "P9" {
		t.Fatalf("ProductID = %q, want P9", c.Records[0].ProductID)
	}
	if c.Records[0].Price.String() != "12.50" {
		t.Fatalf("Price = %s, want 12.50", c.Records[0].Price.String())
	}
}

func TestParseRowsMissingColumns(t *testing.T) {
	t.Parallel()

	header := []string{"product_id", "product_name", "product_description", "type", "inventory_count"}
	_, err := ParseRows(header, nil)

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("ParseRows() error = %v, want SchemaError", err)
	}
	if len(schemaErr.Missing) != 2 {
		t.Fatalf("Missing = %v, want price and rating", schemaErr.Missing)
	}
}

func TestParseRowsBadPrice(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"P1", "Widget", "d", "gadget", "not-a-price", "4.5", "10"}}
	_, err := ParseRows(validHeader(), rows)

	var fieldErr *FieldTypeError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("ParseRows() error = %v, want FieldTypeError", err)
	}
	if fieldErr.Field != "price" || fieldErr.Row != 1 {
		t.Fatalf("FieldTypeError = %+v, want field price row 1", fieldErr)
	}
}

func TestParseRowsNegativeInventory(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"P1", "Widget", "d", "gadget", "10", "4.5", "-3"}}
	_, err := ParseRows(validHeader(), rows)

	var fieldErr *FieldTypeError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("ParseRows() error = %v, want FieldTypeError", err)
	}
	if fieldErr.Field != "inventory_count" {
		t.Fatalf("Field = %q, want inventory_count", fieldErr.Field)
	}
}

func TestParseRowsAllOrNothing(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"P1", "Widget", "d", "gadget", "10", "4.5", "3"},
		{"P2", "Gizmo", "d", "gadget", "20", "bad-rating", "1"},
	}
	c, err := ParseRows(validHeader(), rows)
	if err == nil {
		t.Fatal("ParseRows() expected error for bad rating")
	}
	if c.Len() != 0 {
		t.Fatalf("expected no partial catalog, got %d records", c.Len())
	}
}

func TestParseRowsDuplicateIDCaseInsensitive(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"P1", "Widget", "d", "gadget", "10", "4.5", "3"},
		{"p1", "Widget Again", "d", "gadget", "20", "4.0", "1"},
	}
	_, err := ParseRows(validHeader(), rows)
	if !errors.Is(err, ErrDuplicateProduct) {
		t.Fatalf("ParseRows() error = %v, want ErrDuplicateProduct", err)
	}
}

func TestParseRowsEmptyProductID(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"   ", "Widget", "d", "gadget", "10", "4.5", "3"}}
	_, err := ParseRows(validHeader(), rows)

	var fieldErr *FieldTypeError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("ParseRows() error = %v, want FieldTypeError", err)
	}
	if fieldErr.Field != "product_id" {
		t.Fatalf("Field = %q, want product_id", fieldErr.Field)
	}
}
