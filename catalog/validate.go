package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRows validates raw tabular data and builds a Catalog. The load is
// all-or-nothing: one bad cell fails the whole catalog, no partial result is
// ever returned.
func ParseRows(header []string, rows [][]string) (Catalog, error) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return Catalog{}, &SchemaError{Missing: missing}
	}

	records := make([]Record, 0, len(rows))
	seen := make(map[string]int, len(rows))
	for n, row := range rows {
		rowNum := n + 1
		cell := func(col string) string {
			i := index[col]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}

		rec := Record{
			ProductID:          strings.TrimSpace(cell("product_id")),
			ProductName:        cell("product_name"),
			ProductDescription: cell("product_description"),
			Type:               cell("type"),
		}
		if rec.ProductID == "" {
			return Catalog{}, &FieldTypeError{
				Row:   rowNum,
				Field: "product_id",
				Value: cell("product_id"),
				Err:   errors.New("product id is empty"),
			}
		}

		price, err := decimal.NewFromString(strings.TrimSpace(cell("price")))
		if err != nil {
			return Catalog{}, &FieldTypeError{Row: rowNum, Field: "price", Value: cell("price"), Err: err}
		}
		rec.Price = price

		rating, err := strconv.ParseFloat(strings.TrimSpace(cell("rating")), 64)
		if err != nil {
			return Catalog{}, &FieldTypeError{Row: rowNum, Field: "rating", Value: cell("rating"), Err: err}
		}
		rec.Rating = rating

		count, err := strconv.Atoi(strings.TrimSpace(cell("inventory_count")))
		if err != nil {
			return Catalog{}, &FieldTypeError{Row: rowNum, Field: "inventory_count", Value: cell("inventory_count"), Err: err}
		}
		if count < 0 {
			return Catalog{}, &FieldTypeError{
				Row:   rowNum,
				Field: "inventory_count",
				Value: cell("inventory_count"),
				Err:   errors.New("inventory count must be >= 0"),
			}
		}
		rec.InventoryCount = count

		key := NormalizeID(rec.ProductID)
		if prev, ok := seen[key]; ok {
			return Catalog{}, fmt.Errorf("%w: %s (rows %d and %d)", ErrDuplicateProduct, rec.ProductID, prev, rowNum)
		}
		seen[key] = rowNum

		records = append(records, rec)
	}

	return Catalog{Records: records}, nil
}
