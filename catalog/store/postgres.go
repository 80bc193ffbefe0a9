package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	catalogx "github.com/tanpawarit/Chative-Sales-Catalog/catalog"
)

type PostgresConfig struct {
	DSN string `split_words:"true"`
}

// productRow mirrors one catalog record. The position column preserves the
// catalog's ordering so a load after persist round-trips in the same order
// the CSV backend would.
type productRow struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	Position           int     `bun:"position,pk"`
	ProductID          string  `bun:"product_id,notnull"`
	ProductName        string  `bun:"product_name,notnull"`
	ProductDescription string  `bun:"product_description,notnull"`
	Type               string  `bun:"type,notnull"`
	Price              string  `bun:"price,notnull"`
	Rating             float64 `bun:"rating,notnull"`
	InventoryCount     int     `bun:"inventory_count,notnull"`
}

// BunStore is the Postgres-backed catalog store. Persist replaces the whole
// product table inside one transaction, the relational equivalent of the CSV
// backend's write-then-rename.
type BunStore struct {
	db *bun.DB
}

func NewBunStore(cfg PostgresConfig) (*BunStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return &BunStore{db: bun.NewDB(sqldb, pgdialect.New())}, nil
}

// Init creates the products table when it does not exist yet.
func (s *BunStore) Init(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*productRow)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	return nil
}

func (s *BunStore) Load(ctx context.Context) (catalogx.Catalog, error) {
	var rows []productRow
	if err := s.db.NewSelect().Model(&rows).Order("position ASC").Scan(ctx); err != nil {
		return catalogx.Catalog{}, fmt.Errorf("select catalog: %w", err)
	}
	if len(rows) == 0 {
		return catalogx.Catalog{}, catalogx.ErrCatalogNotFound
	}

	// Funnel rows through the same all-or-nothing validator the CSV backend
	// uses, so both backends reject bad data identically.
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.ProductID,
			row.ProductName,
			row.ProductDescription,
			row.Type,
			row.Price,
			strconv.FormatFloat(row.Rating, 'f', -1, 64),
			strconv.Itoa(row.InventoryCount),
		})
	}
	return catalogx.ParseRows(catalogx.Columns, cells)
}

func (s *BunStore) Persist(ctx context.Context, c catalogx.Catalog) error {
	rows := make([]productRow, 0, c.Len())
	for i, r := range c.Records {
		rows = append(rows, productRow{
			Position:           i + 1,
			ProductID:          r.ProductID,
			ProductName:        r.ProductName,
			ProductDescription: r.ProductDescription,
			Type:               r.Type,
			Price:              r.Price.String(),
			Rating:             r.Rating,
			InventoryCount:     r.InventoryCount,
		})
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*productRow)(nil)).Where("TRUE").Exec(ctx); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert catalog: %w", err)
		}
		return nil
	})
}

func (s *BunStore) Close() error {
	return s.db.Close()
}
