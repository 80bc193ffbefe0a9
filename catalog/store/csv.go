package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	catalogx "github.com/tanpawarit/Chative-Sales-Catalog/catalog"
)

type CSVConfig struct {
	Path string `split_words:"true" default:"data/product.csv"`
}

// CSVStore keeps the catalog in a single CSV file. Persist follows the
// write-then-rename discipline: the new content goes to a temp file in the
// same directory and atomically replaces the original, so a concurrent or
// crashed reader sees either the old or the new file in full, never a
// partial write.
type CSVStore struct {
	path string
}

func NewCSVStore(cfg CSVConfig) (*CSVStore, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, errors.New("csv catalog path is required")
	}
	return &CSVStore{path: path}, nil
}

func MustNewCSVStore(cfg CSVConfig) *CSVStore {
	s, err := NewCSVStore(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *CSVStore) Load(ctx context.Context) (catalogx.Catalog, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return catalogx.Catalog{}, fmt.Errorf("%w: %s", catalogx.ErrCatalogNotFound, s.path)
		}
		return catalogx.Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return catalogx.Catalog{}, fmt.Errorf("read catalog csv: %w", err)
	}
	if len(rows) == 0 {
		return catalogx.Catalog{}, &catalogx.SchemaError{Missing: catalogx.Columns}
	}
	return catalogx.ParseRows(rows[0], rows[1:])
}

func (s *CSVStore) Persist(ctx context.Context, c catalogx.Catalog) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.csv")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	writeErr := w.Write(catalogx.Columns)
	if writeErr == nil {
		for i := range c.Records {
			if writeErr = w.Write(encodeRow(c.Records[i])); writeErr != nil {
				break
			}
		}
	}
	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}
	if writeErr == nil {
		writeErr = tmp.Sync()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write temp catalog: %w", writeErr)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

func encodeRow(r catalogx.Record) []string {
	return []string{
		r.ProductID,
		r.ProductName,
		r.ProductDescription,
		r.Type,
		r.Price.String(),
		strconv.FormatFloat(r.Rating, 'f', -1, 64),
		strconv.Itoa(r.InventoryCount),
	}
}
