package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Store bridges the in-memory catalog and its durable representation.
// Load returns a fresh copy; Persist replaces the whole durable catalog
// atomically.
type Store interface {
	Load(ctx context.Context) (Catalog, error)
	Persist(ctx context.Context, c Catalog) error
}

// OrderLedger records receipts after the inventory commit.
type OrderLedger interface {
	Record(ctx context.Context, order Order) error
}

// OrderNotifier publishes an event for a committed order.
type OrderNotifier interface {
	PublishOrder(ctx context.Context, order Order) error
}

// OrderNotifierFunc adapts a function to the OrderNotifier interface.
type OrderNotifierFunc func(ctx context.Context, order Order) error

func (f OrderNotifierFunc) PublishOrder(ctx context.Context, order Order) error {
	return f(ctx, order)
}

type ServiceOption func(*Service)

func WithLedger(l OrderLedger) ServiceOption {
	return func(s *Service) {
		s.ledger = l
	}
}

func WithNotifier(n OrderNotifier) ServiceOption {
	return func(s *Service) {
		s.notifier = n
	}
}

func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// Service is the catalog store's operation surface. Reads work on a fresh
// snapshot per call; Checkout is the only mutating operation and runs its
// whole load-check-decrement-persist cycle under the service mutex, so two
// concurrent checkouts can never lose an update through independent
// load/persist cycles.
type Service struct {
	store    Store
	ledger   OrderLedger
	notifier OrderNotifier
	logger   zerolog.Logger

	mu sync.Mutex
}

func NewService(store Store, opts ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("catalog store is required")
	}

	s := &Service{
		store:  store,
		logger: log.With().Str("component", "catalog").Logger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

func MustNewService(store Store, opts ...ServiceOption) *Service {
	s, err := NewService(store, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Service) Search(ctx context.Context, keyword string) (SearchResult, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	return Search(c, keyword)
}

func (s *Service) Filter(ctx context.Context, params FilterParams) (FilterResult, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return FilterResult{}, err
	}
	return Filter(c, params), nil
}

func (s *Service) Inventory(ctx context.Context, productID string) (InventoryStatus, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return InventoryStatus{}, err
	}
	return Inventory(c, productID)
}

// Checkout validates the purchase against current stock, decrements it,
// persists the whole catalog, and returns the receipt. If persistence fails
// the checkout fails; no success is ever claimed for an uncommitted
// decrement.
func (s *Service) Checkout(ctx context.Context, productID string, quantity int) (Order, error) {
	if quantity <= 0 {
		return Order{}, fmt.Errorf("%w: quantity must be >= 1, got %d", ErrInvalidArgument, quantity)
	}

	s.mu.Lock()
	order, err := s.checkoutLocked(ctx, productID, quantity)
	s.mu.Unlock()
	if err != nil {
		return Order{}, err
	}

	s.logger.Info().
		Str("order_id", order.OrderID).
		Str("product_id", order.ProductID).
		Int("qty", order.Qty).
		Str("total_price", order.TotalPrice.String()).
		Msg("checkout committed")

	s.afterCommit(ctx, order)
	return order, nil
}

func (s *Service) checkoutLocked(ctx context.Context, productID string, quantity int) (Order, error) {
	c, err := s.store.Load(ctx)
	if err != nil {
		return Order{}, err
	}

	i := c.Find(productID)
	if i < 0 {
		return Order{}, &NotFoundError{ProductID: strings.TrimSpace(productID)}
	}

	rec := &c.Records[i]
	if rec.InventoryCount < quantity {
		return Order{}, &InsufficientInventoryError{
			ProductID: rec.ProductID,
			Requested: quantity,
			Available: rec.InventoryCount,
		}
	}

	rec.InventoryCount -= quantity
	if err := s.store.Persist(ctx, c); err != nil {
		return Order{}, fmt.Errorf("persist catalog after checkout: %w", err)
	}

	return Order{
		OrderID:     NewOrderID(),
		ProductID:   rec.ProductID,
		ProductName: rec.ProductName,
		Qty:         quantity,
		UnitPrice:   rec.Price,
		TotalPrice:  rec.Price.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
	}, nil
}

// afterCommit fans the receipt out to the optional order sinks. The inventory
// decrement is already durable at this point, so sink failures are logged and
// never change the checkout result.
func (s *Service) afterCommit(ctx context.Context, order Order) {
	if s.ledger != nil {
		if err := s.ledger.Record(ctx, order); err != nil {
			s.logger.Warn().Err(err).Str("order_id", order.OrderID).Msg("order ledger write failed")
		}
	}
	if s.notifier != nil {
		if err := s.notifier.PublishOrder(ctx, order); err != nil {
			s.logger.Warn().Err(err).Str("order_id", order.OrderID).Msg("order event publish failed")
		}
	}
}
