package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the recommendation count used when a filter does not ask for
// a specific one.
const DefaultTopN = 5

type SearchResult struct {
	Count   int      `json:"count"`
	Matches []Record `json:"matches"`
}

// FilterParams are conjunctive predicates; a nil or zero-value field skips
// its predicate.
type FilterParams struct {
	ProductType string
	MinRating   *float64
	MinPrice    *float64
	MaxPrice    *float64
	TopN        int
}

type FilterResult struct {
	Count           int      `json:"count"`
	Recommendations []Record `json:"recommendations"`
}

type InventoryStatus struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Price          decimal.Decimal `json:"price"`
	Rating         float64         `json:"rating"`
	InventoryCount int             `json:"inventory_count"`
	InStock        bool            `json:"in_stock"`
}

// Search matches the keyword case-insensitively against product name or
// description. No match is a success with an empty list, not an error.
func Search(c Catalog, keyword string) (SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(keyword))
	if q == "" {
		return SearchResult{}, fmt.Errorf("%w: search keyword is empty", ErrInvalidArgument)
	}

	var matches []Record
	for _, r := range c.Records {
		if strings.Contains(strings.ToLower(r.ProductName), q) ||
			strings.Contains(strings.ToLower(r.ProductDescription), q) {
			matches = append(matches, r)
		}
	}
	return SearchResult{Count: len(matches), Matches: matches}, nil
}

// Filter applies all supplied predicates and returns the top-N records sorted
// by rating descending, then price ascending. Among equally rated items the
// cheaper one ranks first; that tie-break is a contract, not an accident.
func Filter(c Catalog, p FilterParams) FilterResult {
	wantType := strings.ToLower(strings.TrimSpace(p.ProductType))

	var minPrice, maxPrice decimal.Decimal
	if p.MinPrice != nil {
		minPrice = decimal.NewFromFloat(*p.MinPrice)
	}
	if p.MaxPrice != nil {
		maxPrice = decimal.NewFromFloat(*p.MaxPrice)
	}

	var out []Record
	for _, r := range c.Records {
		if wantType != "" && strings.ToLower(r.Type) != wantType {
			continue
		}
		if p.MinRating != nil && r.Rating < *p.MinRating {
			continue
		}
		if p.MinPrice != nil && r.Price.Cmp(minPrice) < 0 {
			continue
		}
		if p.MaxPrice != nil && r.Price.Cmp(maxPrice) > 0 {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Price.Cmp(out[j].Price) < 0
	})

	topN := p.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(out) > topN {
		out = out[:topN]
	}
	return FilterResult{Count: len(out), Recommendations: out}
}

// Inventory reports live stock for one product by normalized id.
func Inventory(c Catalog, productID string) (InventoryStatus, error) {
	i := c.Find(productID)
	if i < 0 {
		return InventoryStatus{}, &NotFoundError{ProductID: strings.TrimSpace(productID)}
	}
	r := c.Records[i]
	return InventoryStatus{
		ProductID:      r.ProductID,
		ProductName:    r.ProductName,
		Price:          r.Price,
		Rating:         r.Rating,
		InventoryCount: r.InventoryCount,
		InStock:        r.InventoryCount > 0,
	}, nil
}
