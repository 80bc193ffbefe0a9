package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Columns is the required column set of the durable catalog representation,
// in persisted order.
var Columns = []string{
	"product_id",
	"product_name",
	"product_description",
	"type",
	"price",
	"rating",
	"inventory_count",
}

// Record is one product row of the catalog.
type Record struct {
	ProductID          string          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	ProductDescription string          `json:"product_description"`
	Type               string          `json:"type"`
	Price              decimal.Decimal `json:"price"`
	Rating             float64         `json:"rating"`
	InventoryCount     int             `json:"inventory_count"`
}

// NormalizeID is the comparison key for product ids. Lookups must match
// regardless of input case and surrounding whitespace.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Catalog is the full ordered product collection, the unit of load and
// persist.
type Catalog struct {
	Records []Record
}

func (c Catalog) Len() int {
	return len(c.Records)
}

// Find returns the index of the record whose id matches after normalization,
// or -1 when the catalog does not hold it.
func (c Catalog) Find(productID string) int {
	key := NormalizeID(productID)
	for i := range c.Records {
		if NormalizeID(c.Records[i].ProductID) == key {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy. Callers of the store receive copies,
// never a live reference into another caller's view.
func (c Catalog) Clone() Catalog {
	out := Catalog{Records: make([]Record, len(c.Records))}
	copy(out.Records, c.Records)
	return out
}
