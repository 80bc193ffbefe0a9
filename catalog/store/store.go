// Package store holds the durable backends of the product catalog. Both
// backends replace the whole catalog on every persist; there is no row-level
// update, which keeps atomicity trivial at this catalog's scale.
package store

import (
	"fmt"
	"strings"

	catalogx "github.com/tanpawarit/Chative-Sales-Catalog/catalog"
)

type Config struct {
	Backend  string `split_words:"true" default:"csv"`
	CSV      CSVConfig
	Postgres PostgresConfig
}

// New builds the configured catalog store backend.
func New(cfg Config) (catalogx.Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "csv":
		return NewCSVStore(cfg.CSV)
	case "postgres":
		return NewBunStore(cfg.Postgres)
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Backend)
	}
}

func MustNew(cfg Config) catalogx.Store {
	s, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return s
}
