// Package seed loads the storefront's static product and review data. The
// default dataset is embedded; a YAML file with the same shape can replace it.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var ErrInvalidDataset = errors.New("seed: invalid dataset")

// Dataset is the startup data: the catalog and the initial review ledger.
type Dataset struct {
	Products []models.Product `yaml:"products"`
	Reviews  []models.Review  `yaml:"reviews"`
}

// Default decodes and validates the embedded dataset.
func Default() (*Dataset, error) {
	return Decode(defaultCatalog)
}

// MustDefault is Default for callers that cannot proceed without seed data.
func MustDefault() *Dataset {
	ds, err := Default()
	if err != nil {
		panic(err)
	}
	return ds
}

// LoadFile reads a dataset from a YAML file.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a dataset from r.
func Read(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read seed data: %w", err)
	}
	return Decode(data)
}

// Decode parses YAML seed data and validates it.
func Decode(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks the dataset invariants: unique ids, non-negative prices and
// counts, ratings in range, and reviews that point at known products.
func (ds *Dataset) Validate() error {
	var errs []error
	productIDs := make(map[string]struct{}, len(ds.Products))

	for i, p := range ds.Products {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("product #%d: missing id", i))
		case has(productIDs, p.ID):
			errs = append(errs, fmt.Errorf("product %q: duplicate id", p.ID))
		}
		productIDs[p.ID] = struct{}{}

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("product %q: missing name", p.ID))
		}
		if p.Category == "" {
			errs = append(errs, fmt.Errorf("product %q: missing category", p.ID))
		}
		if p.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("product %q: negative price %s", p.ID, p.Price))
		}
		if p.Rating < 0 || p.Rating > 5 {
			errs = append(errs, fmt.Errorf("product %q: rating %.1f out of range", p.ID, p.Rating))
		}
		if p.Reviews < 0 {
			errs = append(errs, fmt.Errorf("product %q: negative review count", p.ID))
		}
	}

	reviewIDs := make(map[string]struct{}, len(ds.Reviews))
	for i, r := range ds.Reviews {
		switch {
		case r.ID == "":
			errs = append(errs, fmt.Errorf("review #%d: missing id", i))
		case has(reviewIDs, r.ID):
			errs = append(errs, fmt.Errorf("review %q: duplicate id", r.ID))
		}
		reviewIDs[r.ID] = struct{}{}

		if !has(productIDs, r.ProductID) {
			errs = append(errs, fmt.Errorf("review %q: unknown product %q", r.ID, r.ProductID))
		}
		if r.Rating < 1 || r.Rating > 5 {
			errs = append(errs, fmt.Errorf("review %q: rating %d out of range", r.ID, r.Rating))
		}
		if _, err := time.Parse(models.DateLayout, r.Date); err != nil {
			errs = append(errs, fmt.Errorf("review %q: bad date %q", r.ID, r.Date))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(errs...))
	}
	return nil
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
