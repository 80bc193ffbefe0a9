package tool

import catalogx "github.com/tanpawarit/Chative-Sales-Catalog/catalog"

// ProductView is the JSON shape a product takes inside tool payloads.
type ProductView struct {
	ProductID          string  `json:"product_id"`
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	Type               string  `json:"type"`
	Price              float64 `json:"price"`
	Rating             float64 `json:"rating"`
	InventoryCount     int     `json:"inventory_count"`
}

type SearchOutput struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Count   int           `json:"count"`
	Matches []ProductView `json:"matches"`
}

type FilterOutput struct {
	Success         bool          `json:"success"`
	Count           int           `json:"count"`
	Recommendations []ProductView `json:"recommendations"`
}

type InventoryOutput struct {
	Success        bool    `json:"success"`
	Error          string  `json:"error,omitempty"`
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name,omitempty"`
	Price          float64 `json:"price,omitempty"`
	Rating         float64 `json:"rating,omitempty"`
	InventoryCount int     `json:"inventory_count"`
	InStock        bool    `json:"in_stock"`
}

type OrderView struct {
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Qty         int     `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type CheckoutOutput struct {
	Success   bool       `json:"success"`
	Error     string     `json:"error,omitempty"`
	Message   string     `json:"message,omitempty"`
	ProductID string     `json:"product_id,omitempty"`
	Available int        `json:"available,omitempty"`
	Order     *OrderView `json:"order,omitempty"`
}

func productViews(records []catalogx.Record) []ProductView {
	views := make([]ProductView, 0, len(records))
	for _, r := range records {
		views = append(views, ProductView{
			ProductID:          r.ProductID,
			ProductName:        r.ProductName,
			ProductDescription: r.ProductDescription,
			Type:               r.Type,
			Price:              r.Price.InexactFloat64(),
			Rating:             r.Rating,
			InventoryCount:     r.InventoryCount,
		})
	}
	return views
}
