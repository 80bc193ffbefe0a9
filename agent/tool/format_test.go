package tool

import (
	"strings"
	"testing"

	contractx "github.com/tanpawarit/Chative-Sales-Catalog/agent/contract"
)

func TestRenderTextEnvelopeError(t *testing.T) {
	t.Parallel()

	got := RenderText(contractx.ToolResult{Tool: ToolCatalogSearch, Error: "boom"})
	if got != "Error: boom" {
		t.Fatalf("RenderText() = %q", got)
	}
}

func TestRenderSearchEmpty(t *testing.T) {
	t.Parallel()

	got := RenderText(contractx.ToolResult{Result: SearchOutput{Success: true}})
	if got != "No products found." {
		t.Fatalf("RenderText() = %q", got)
	}
}

func TestRenderSearchLines(t *testing.T) {
	t.Parallel()

	out := SearchOutput{Success: true, Count: 1, Matches: []ProductView{
		{ProductID: "P1", ProductName: "Widget", Price: 100, Rating: 4.5, Type: "gadget"},
	}}
	got := RenderText(contractx.ToolResult{Result: out})
	if !strings.Contains(got, "Products found (1):") {
		t.Fatalf("missing heading: %q", got)
	}
	if !strings.Contains(got, "P1") || !strings.Contains(got, "$100.00") {
		t.Fatalf("missing product line: %q", got)
	}
}

func TestRenderFilterNoMatch(t *testing.T) {
	t.Parallel()

	got := RenderText(contractx.ToolResult{Result: FilterOutput{Success: true}})
	if got != "No products match the given filters." {
		t.Fatalf("RenderText() = %q", got)
	}
}

func TestRenderFilterNumbersRecommendations(t *testing.T) {
	t.Parallel()

	out := FilterOutput{Success: true, Count: 2, Recommendations: []ProductView{
		{ProductID: "P2", ProductName: "Pro", Price: 899, Rating: 4.7, Type: "smartphone", InventoryCount: 12},
		{ProductID: "P1", ProductName: "Base", Price: 499, Rating: 4.3, Type: "smartphone", InventoryCount: 24},
	}}
	got := RenderText(contractx.ToolResult{Result: out})
	if !strings.Contains(got, "Top 2 recommendation(s):") {
		t.Fatalf("missing heading: %q", got)
	}
	if !strings.Contains(got, "1. P2") || !strings.Contains(got, "2. P1") {
		t.Fatalf("missing numbering: %q", got)
	}
	if !strings.Contains(got, "inventory: 12") {
		t.Fatalf("missing inventory: %q", got)
	}
}

func TestRenderInventory(t *testing.T) {
	t.Parallel()

	out := InventoryOutput{Success: true, ProductID: "P1", ProductName: "Widget", Price: 100, Rating: 4.5, InventoryCount: 7, InStock: true}
	got := RenderText(contractx.ToolResult{Result: out})
	if !strings.Contains(got, "in stock") || !strings.Contains(got, "(7 units)") {
		t.Fatalf("RenderText() = %q", got)
	}

	out.InStock = false
	out.InventoryCount = 0
	got = RenderText(contractx.ToolResult{Result: out})
	if !strings.Contains(got, "out of stock") {
		t.Fatalf("RenderText() = %q", got)
	}
}

func TestRenderInventoryNotFound(t *testing.T) {
	t.Parallel()

	got := RenderText(contractx.ToolResult{Result: InventoryOutput{Error: "not_found", ProductID: "P404"}})
	if got != "Product P404 not found." {
		t.Fatalf("RenderText() = %q", got)
	}
}

func TestRenderCheckoutSuccess(t *testing.T) {
	t.Parallel()

	out := CheckoutOutput{Success: true, Order: &OrderView{
		OrderID: "ORD-AB12CD34", ProductID: "P1", ProductName: "Widget",
		Qty: 3, UnitPrice: 100, TotalPrice: 300,
	}}
	got := RenderText(contractx.ToolResult{Result: out})
	if !strings.Contains(got, "ORD-AB12CD34") || !strings.Contains(got, "$300.00") {
		t.Fatalf("RenderText() = %q", got)
	}
}

func TestRenderCheckoutFailures(t *testing.T) {
	t.Parallel()

	got := RenderText(contractx.ToolResult{Result: CheckoutOutput{Error: "insufficient_inventory", Available: 7}})
	if !strings.Contains(got, "only 7 units available") {
		t.Fatalf("RenderText() = %q", got)
	}

	got = RenderText(contractx.ToolResult{Result: CheckoutOutput{Error: "not_found", ProductID: "P404"}})
	if !strings.Contains(got, "P404 not found") {
		t.Fatalf("RenderText() = %q", got)
	}
}
