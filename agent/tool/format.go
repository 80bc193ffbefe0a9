package tool

import (
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Chative-Sales-Catalog/agent/contract"
)

// RenderText converts a structured tool result into user-displayable text.
// The agent layer owns the conversation; these strings are the raw material
// it presents.
func RenderText(res contractx.ToolResult) string {
	if res.Error != "" {
		return "Error: " + res.Error
	}
	switch out := res.Result.(type) {
	case SearchOutput:
		return renderSearch(out)
	case FilterOutput:
		return renderFilter(out)
	case InventoryOutput:
		return renderInventory(out)
	case CheckoutOutput:
		return renderCheckout(out)
	default:
		return fmt.Sprintf("%v", res.Result)
	}
}

func renderSearch(out SearchOutput) string {
	if !out.Success {
		return "Error: " + out.Error
	}
	if out.Count == 0 {
		return "No products found."
	}
	lines := []string{fmt.Sprintf("Products found (%d):", out.Count)}
	for _, p := range out.Matches {
		lines = append(lines, "- "+productLine(p))
	}
	return strings.Join(lines, "\n")
}

func renderFilter(out FilterOutput) string {
	if out.Count == 0 {
		return "No products match the given filters."
	}
	lines := []string{fmt.Sprintf("Top %d recommendation(s):", out.Count)}
	for i, p := range out.Recommendations {
		lines = append(lines, fmt.Sprintf("%d. %s, inventory: %d", i+1, productLine(p), p.InventoryCount))
	}
	return strings.Join(lines, "\n")
}

func renderInventory(out InventoryOutput) string {
	if !out.Success {
		return fmt.Sprintf("Product %s not found.", out.ProductID)
	}
	stock := "out of stock"
	if out.InStock {
		stock = "in stock"
	}
	return fmt.Sprintf("%s: %s (%d units). Price: $%.2f, Rating: %g.",
		out.ProductName, stock, out.InventoryCount, out.Price, out.Rating)
}

func renderCheckout(out CheckoutOutput) string {
	if !out.Success {
		switch out.Error {
		case errInsufficientInventory:
			return fmt.Sprintf("Checkout failed: only %d units available.", out.Available)
		case errNotFound:
			return fmt.Sprintf("Checkout failed: product %s not found.", out.ProductID)
		case errInvalidQuantity:
			return "Checkout failed: " + out.Message
		default:
			return "Checkout failed: " + out.Error
		}
	}
	o := out.Order
	return fmt.Sprintf("Checkout successful: %d x %s (Order ID: %s). Total: $%.2f",
		o.Qty, o.ProductName, o.OrderID, o.TotalPrice)
}

func productLine(p ProductView) string {
	return fmt.Sprintf("%s: %s ($%.2f, rating %g, type %s)",
		p.ProductID, p.ProductName, p.Price, p.Rating, p.Type)
}
