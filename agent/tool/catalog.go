// Package tool is the façade between the catalog store and the agent
// framework. It names the four catalog operations, coerces loosely typed
// tool-call arguments, and converts the core's error taxonomy into
// structured payloads the agent can reason about.
package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/Chative-Sales-Catalog/agent/contract"
	catalogx "github.com/tanpawarit/Chative-Sales-Catalog/catalog"
)

const (
	ToolCatalogSearch    = "catalog.search"
	ToolCatalogFilter    = "catalog.filter"
	ToolCatalogInventory = "catalog.inventory"
	ToolCatalogCheckout  = "catalog.checkout"
)

// MaxRecommendations caps top_n at the façade; the query engine itself is
// cap-free.
const MaxRecommendations = 5

// Error codes surfaced in failure payloads.
const (
	errEmptyQuery            = "empty_query"
	errNotFound              = "not_found"
	errInvalidQuantity       = "invalid_quantity"
	errInsufficientInventory = "insufficient_inventory"
)

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// CatalogService is the slice of the catalog service the façade needs.
type CatalogService interface {
	Search(ctx context.Context, keyword string) (catalogx.SearchResult, error)
	Filter(ctx context.Context, params catalogx.FilterParams) (catalogx.FilterResult, error)
	Inventory(ctx context.Context, productID string) (catalogx.InventoryStatus, error)
	Checkout(ctx context.Context, productID string, quantity int) (catalogx.Order, error)
}

func BuildForCatalog(svc CatalogService) ([]*schema.ToolInfo, Executor) {
	return catalogToolInfos(), NewExecutor(svc)
}

// NewExecutor dispatches tool calls to the catalog service. Every call
// returns a well-formed ToolResult; unexpected internal errors are folded
// into the envelope's Error instead of crossing the boundary.
func NewExecutor(svc CatalogService) Executor {
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		var (
			result any
			err    error
		)
		switch canonicalTool(tool) {
		case ToolCatalogSearch:
			result, err = executeSearch(ctx, svc, args)
		case ToolCatalogFilter:
			result, err = executeFilter(ctx, svc, args)
		case ToolCatalogInventory:
			result, err = executeInventory(ctx, svc, args)
		case ToolCatalogCheckout:
			result, err = executeCheckout(ctx, svc, args)
		default:
			return contractx.ToolResult{
				Tool:  tool,
				Error: fmt.Sprintf("%v: %s", contractx.ErrUnknownTool, tool),
			}, nil
		}
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		return contractx.ToolResult{Tool: tool, Result: result}, nil
	}
}

// canonicalTool maps underscore aliases (OpenAI function names cannot contain
// dots) onto the dotted tool names.
func canonicalTool(name string) string {
	if strings.Contains(name, "_") && !strings.Contains(name, ".") {
		return strings.Replace(name, "_", ".", 1)
	}
	return name
}

func executeSearch(ctx context.Context, svc CatalogService, args map[string]any) (any, error) {
	keyword, err := stringArg(args, "keyword", true)
	if err != nil {
		return nil, err
	}

	res, err := svc.Search(ctx, keyword)
	if errors.Is(err, catalogx.ErrInvalidArgument) {
		return SearchOutput{Error: errEmptyQuery}, nil
	}
	if err != nil {
		return nil, err
	}
	return SearchOutput{
		Success: true,
		Count:   res.Count,
		Matches: productViews(res.Matches),
	}, nil
}

func executeFilter(ctx context.Context, svc CatalogService, args map[string]any) (any, error) {
	productType, err := stringArg(args, "product_type", false)
	if err != nil {
		return nil, err
	}
	minRating, err := numberArg(args, "min_rating")
	if err != nil {
		return nil, err
	}
	minPrice, err := numberArg(args, "min_price")
	if err != nil {
		return nil, err
	}
	maxPrice, err := numberArg(args, "max_price")
	if err != nil {
		return nil, err
	}
	topN, err := intArg(args, "top_n", MaxRecommendations)
	if err != nil {
		return nil, err
	}
	if topN > MaxRecommendations {
		topN = MaxRecommendations
	}

	res, err := svc.Filter(ctx, catalogx.FilterParams{
		ProductType: productType,
		MinRating:   minRating,
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		TopN:        topN,
	})
	if err != nil {
		return nil, err
	}
	return FilterOutput{
		Success:         true,
		Count:           res.Count,
		Recommendations: productViews(res.Recommendations),
	}, nil
}

func executeInventory(ctx context.Context, svc CatalogService, args map[string]any) (any, error) {
	productID, err := stringArg(args, "product_id", true)
	if err != nil {
		return nil, err
	}

	st, err := svc.Inventory(ctx, productID)
	var nf *catalogx.NotFoundError
	if errors.As(err, &nf) {
		return InventoryOutput{Error: errNotFound, ProductID: nf.ProductID}, nil
	}
	if err != nil {
		return nil, err
	}
	return InventoryOutput{
		Success:        true,
		ProductID:      st.ProductID,
		ProductName:    st.ProductName,
		Price:          st.Price.InexactFloat64(),
		Rating:         st.Rating,
		InventoryCount: st.InventoryCount,
		InStock:        st.InStock,
	}, nil
}

func executeCheckout(ctx context.Context, svc CatalogService, args map[string]any) (any, error) {
	productID, err := stringArg(args, "product_id", true)
	if err != nil {
		return nil, err
	}
	quantity, err := intArg(args, "quantity", 1)
	if err != nil {
		return nil, err
	}

	order, err := svc.Checkout(ctx, productID, quantity)
	switch {
	case errors.Is(err, catalogx.ErrInvalidArgument):
		return CheckoutOutput{
			Error:   errInvalidQuantity,
			Message: "quantity must be >= 1",
		}, nil
	case err != nil:
		var nf *catalogx.NotFoundError
		if errors.As(err, &nf) {
			return CheckoutOutput{Error: errNotFound, ProductID: nf.ProductID}, nil
		}
		var ins *catalogx.InsufficientInventoryError
		if errors.As(err, &ins) {
			return CheckoutOutput{
				Error:     errInsufficientInventory,
				ProductID: ins.ProductID,
				Available: ins.Available,
			}, nil
		}
		return nil, err
	}

	return CheckoutOutput{
		Success: true,
		Order: &OrderView{
			OrderID:     order.OrderID,
			ProductID:   order.ProductID,
			ProductName: order.ProductName,
			Qty:         order.Qty,
			UnitPrice:   order.UnitPrice.InexactFloat64(),
			TotalPrice:  order.TotalPrice.InexactFloat64(),
		},
	}, nil
}

/* ----------------------------- tool schemas ------------------------------ */

type toolParam struct {
	name     string
	desc     string
	typ      schema.DataType
	required bool
}

var toolOrder = []string{
	ToolCatalogSearch,
	ToolCatalogFilter,
	ToolCatalogInventory,
	ToolCatalogCheckout,
}

var toolDescs = map[string]string{
	ToolCatalogSearch:    "Search products by keyword in name or description.",
	ToolCatalogFilter:    "Filter products and return the top recommendations sorted by rating (desc) then price (asc).",
	ToolCatalogInventory: "Check live stock and price for a product id.",
	ToolCatalogCheckout:  "Purchase a quantity of a product and decrement inventory. Call only after the user explicitly confirmed.",
}

var toolParams = map[string][]toolParam{
	ToolCatalogSearch: {
		{"keyword", "Keyword matched against product name and description", schema.String, true},
	},
	ToolCatalogFilter: {
		{"product_type", "Exact product category, e.g. smartphone", schema.String, false},
		{"min_rating", "Minimum rating, catalog convention 0-5", schema.Number, false},
		{"min_price", "Minimum unit price", schema.Number, false},
		{"max_price", "Maximum unit price", schema.Number, false},
		{"top_n", "Number of recommendations to return, at most 5", schema.Integer, false},
	},
	ToolCatalogInventory: {
		{"product_id", "Product id to look up", schema.String, true},
	},
	ToolCatalogCheckout: {
		{"product_id", "Product id to purchase", schema.String, true},
		{"quantity", "Units to purchase, defaults to 1", schema.Integer, false},
	},
}

func catalogToolInfos() []*schema.ToolInfo {
	infos := make([]*schema.ToolInfo, 0, len(toolOrder))
	for _, name := range toolOrder {
		params := make(map[string]*schema.ParameterInfo, len(toolParams[name]))
		for _, p := range toolParams[name] {
			params[p.name] = &schema.ParameterInfo{
				Type:     p.typ,
				Desc:     p.desc,
				Required: p.required,
			}
		}
		infos = append(infos, &schema.ToolInfo{
			Name:        name,
			Desc:        toolDescs[name],
			ParamsOneOf: schema.NewParamsOneOfByParams(params),
		})
	}
	return infos
}
