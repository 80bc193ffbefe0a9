// Package ledger gives checkout receipts a durable home. The catalog store
// itself only persists the inventory side-effect; the ledger keeps the order
// audit trail.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	catalogx "github.com/tanpawarit/Chative-Sales-Catalog/catalog"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("order id is empty")
)

const (
	defaultKeyPrefix     = "catalog:order:"
	defaultTTL           = 30 * 24 * time.Hour
	maxResponseSizeBytes = 1 << 20
)

type Config struct {
	URL     string        `split_words:"true" required:"true"`
	Token   string        `split_words:"true" required:"true"`
	Timeout time.Duration `split_words:"true" default:"10s"`
}

// Option customizes UpstashRedisLedger.
type Option func(*UpstashRedisLedger)

func WithKeyPrefix(prefix string) Option {
	return func(l *UpstashRedisLedger) {
		trimmed := strings.TrimSpace(prefix)
		if trimmed != "" {
			l.keyPrefix = trimmed
		}
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(l *UpstashRedisLedger) {
		l.ttl = ttl
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(l *UpstashRedisLedger) {
		if client != nil {
			l.httpClient = client
		}
	}
}

// UpstashRedisLedger stores order receipts in Upstash Redis via REST.
type UpstashRedisLedger struct {
	baseURL    string
	token      string
	httpClient *http.Client
	keyPrefix  string
	ttl        time.Duration
}

type redisRESTResponse struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

func New(cfg Config, opts ...Option) (*UpstashRedisLedger, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("upstash redis url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid redis rest url: %w", err)
	}

	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("upstash redis token is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	l := &UpstashRedisLedger{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		keyPrefix: defaultKeyPrefix,
		ttl:       defaultTTL,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	if l.ttl < 0 {
		return nil, errors.New("ttl must be >= 0")
	}
	return l, nil
}

// Record writes the receipt under catalog:order:<order_id>. It implements
// the catalog service's OrderLedger contract.
func (l *UpstashRedisLedger) Record(ctx context.Context, order catalogx.Order) error {
	key, err := l.orderKey(order.OrderID)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	cmd := []any{"SET", key, string(payload)}
	if l.ttl > 0 {
		cmd = append(cmd, "EX", ttlSeconds(l.ttl))
	}

	if _, err := l.exec(ctx, cmd); err != nil {
		return err
	}
	return nil
}

// Fetch returns a previously recorded receipt.
func (l *UpstashRedisLedger) Fetch(ctx context.Context, orderID string) (catalogx.Order, error) {
	key, err := l.orderKey(orderID)
	if err != nil {
		return catalogx.Order{}, err
	}

	resp, err := l.exec(ctx, []any{"GET", key})
	if err != nil {
		return catalogx.Order{}, err
	}

	result := bytes.TrimSpace(resp.Result)
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return catalogx.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	var encoded string
	if err := json.Unmarshal(result, &encoded); err != nil {
		return catalogx.Order{}, fmt.Errorf("decode order payload: %w", err)
	}

	var order catalogx.Order
	if err := json.Unmarshal([]byte(encoded), &order); err != nil {
		return catalogx.Order{}, fmt.Errorf("unmarshal order: %w", err)
	}
	return order, nil
}

func (l *UpstashRedisLedger) orderKey(orderID string) (string, error) {
	if strings.TrimSpace(orderID) == "" {
		return "", ErrInvalidOrderID
	}
	return strings.TrimSpace(l.keyPrefix) + strings.TrimSpace(orderID), nil
}

func (l *UpstashRedisLedger) exec(ctx context.Context, command []any) (*redisRESTResponse, error) {
	if l == nil {
		return nil, errors.New("nil ledger")
	}
	if len(command) == 0 {
		return nil, errors.New("empty redis command")
	}

	body, err := json.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("marshal redis command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build redis request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+l.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute redis request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return nil, fmt.Errorf("read redis response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("redis http status=%d body=%s", resp.StatusCode, string(raw))
	}

	var parsed redisRESTResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode redis response: %w", err)
	}
	if parsed.Error != "" {
		return nil, errors.New(parsed.Error)
	}
	return &parsed, nil
}

func ttlSeconds(ttl time.Duration) int64 {
	seconds := ttl / time.Second
	if seconds <= 0 {
		return 1
	}
	if ttl%time.Second != 0 {
		seconds++
	}
	return int64(seconds)
}
