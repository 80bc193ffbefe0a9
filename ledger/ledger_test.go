package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	catalogx "github.com/tanpawarit/Chative-Sales-Catalog/catalog"
)

func testOrder() catalogx.Order {
	return catalogx.Order{
		OrderID:     "ORD-1B9F04C2",
		ProductID:   "P1",
		ProductName: "Widget",
		Qty:         3,
		UnitPrice:   decimal.RequireFromString("100.00"),
		TotalPrice:  decimal.RequireFromString("300.00"),
	}
}

func TestOrderKey(t *testing.T) {
	t.Parallel()

	l := &UpstashRedisLedger{keyPrefix: defaultKeyPrefix}
	got, err := l.orderKey("ORD-ABC")
	if err != nil {
		t.Fatalf("orderKey() error = %v", err)
	}
	if got != "catalog:order:ORD-ABC" {
		t.Fatalf("orderKey() = %q, want catalog:order:ORD-ABC", got)
	}
}

func TestOrderKeyEmptyID(t *testing.T) {
	t.Parallel()

	l := &UpstashRedisLedger{}
	if _, err := l.orderKey("   "); !errors.Is(err, ErrInvalidOrderID) {
		t.Fatalf("orderKey() error = %v, want ErrInvalidOrderID", err)
	}
}

func TestRecordSetsPrefixedKeyWithTTL(t *testing.T) {
	t.Parallel()

	var gotCommand []any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&gotCommand); err != nil {
			t.Fatalf("decode command: %v", err)
		}
		fmt.Fprint(w, `{"result":"OK"}`)
	}))
	t.Cleanup(server.Close)

	l, err := New(Config{URL: server.URL, Token: "token"}, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := l.Record(context.Background(), testOrder()); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if len(gotCommand) != 5 {
		t.Fatalf("unexpected command: %#v", gotCommand)
	}
	if gotCommand[0] != "SET" {
		t.Fatalf("command[0] = %v, want SET", gotCommand[0])
	}
	if gotCommand[1] != "catalog:order:ORD-1B9F04C2" {
		t.Fatalf("command[1] = %v", gotCommand[1])
	}
	if gotCommand[3] != "EX" {
		t.Fatalf("command[3] = %v, want EX", gotCommand[3])
	}
}

func TestRecordWithoutTTL(t *testing.T) {
	t.Parallel()

	var gotCommand []any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&gotCommand); err != nil {
			t.Fatalf("decode command: %v", err)
		}
		fmt.Fprint(w, `{"result":"OK"}`)
	}))
	t.Cleanup(server.Close)

	l, err := New(Config{URL: server.URL, Token: "token"}, WithHTTPClient(server.Client()), WithTTL(0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := l.Record(context.Background(), testOrder()); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if len(gotCommand) != 3 {
		t.Fatalf("expected SET without EX, got %#v", gotCommand)
	}
}

func TestFetchNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":null}`)
	}))
	t.Cleanup(server.Close)

	l, err := New(Config{URL: server.URL, Token: "token"}, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = l.Fetch(context.Background(), "ORD-MISSING")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("Fetch() error = %v, want ErrOrderNotFound", err)
	}
}

func TestFetchRoundTrip(t *testing.T) {
	t.Parallel()

	order := testOrder()
	payload, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("marshal order: %v", err)
	}
	// Upstash returns the stored string JSON-encoded inside the result field.
	encoded, err := json.Marshal(string(payload))
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"result":%s}`, encoded)
	}))
	t.Cleanup(server.Close)

	l, err := New(Config{URL: server.URL, Token: "token"}, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := l.Fetch(context.Background(), order.OrderID)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got.OrderID != order.OrderID || got.Qty != order.Qty {
		t.Fatalf("Fetch() = %+v, want %+v", got, order)
	}
	if !got.TotalPrice.Equal(order.TotalPrice) {
		t.Fatalf("TotalPrice = %s, want %s", got.TotalPrice, order.TotalPrice)
	}
}

func TestExecReportsRedisError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":"WRONGPASS invalid token"}`)
	}))
	t.Cleanup(server.Close)

	l, err := New(Config{URL: server.URL, Token: "token"}, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := l.Record(context.Background(), testOrder()); err == nil {
		t.Fatal("Record() expected redis error")
	}
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{URL: "", Token: "t"}); err == nil {
		t.Fatal("New() expected error for empty url")
	}
	if _, err := New(Config{URL: "https://example.upstash.io", Token: ""}); err == nil {
		t.Fatal("New() expected error for empty token")
	}
}
