// Package seed reads catalog fixtures from YAML.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"product-catalog-api/internal/product"
)

var ErrInvalidSeed = errors.New("invalid seed file")

type file struct {
	Items []entry `yaml:"items"`
}

type entry struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	SKU         string  `yaml:"sku"`
	Price       float64 `yaml:"price"`
	IsAvailable *bool   `yaml:"is_available"`
}

// Load reads a seed file from disk.
func Load(path string) ([]product.CreateItemInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed.Load: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a seed document. Items default to available. Every item needs
// a name and a SKU, prices must not be negative and SKUs must be unique.
func Parse(r io.Reader) ([]product.CreateItemInput, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	seen := make(map[string]int, len(f.Items))
	inputs := make([]product.CreateItemInput, 0, len(f.Items))
	for i, e := range f.Items {
		name := strings.TrimSpace(e.Name)
		sku := strings.TrimSpace(e.SKU)
		switch {
		case name == "":
			return nil, fmt.Errorf("%w: item %d has no name", ErrInvalidSeed, i)
		case sku == "":
			return nil, fmt.Errorf("%w: item %d has no sku", ErrInvalidSeed, i)
		case e.Price < 0:
			return nil, fmt.Errorf("%w: item %q has a negative price", ErrInvalidSeed, sku)
		}
		if prev, ok := seen[sku]; ok {
			return nil, fmt.Errorf("%w: sku %q repeated at items %d and %d", ErrInvalidSeed, sku, prev, i)
		}
		seen[sku] = i

		available := true
		if e.IsAvailable != nil {
			available = *e.IsAvailable
		}
		inputs = append(inputs, product.CreateItemInput{
			Name:        name,
			Description: e.Description,
			SKU:         sku,
			Price:       e.Price,
			IsAvailable: available,
		})
	}

	return inputs, nil
}

// Importer is the part of the product use case used for seeding.
type Importer interface {
	Import(ctx context.Context, inputs []product.CreateItemInput) (int, error)
}

// Apply loads path and imports it. Items whose SKU already exists are skipped.
func Apply(ctx context.Context, imp Importer, path string) (int, error) {
	inputs, err := Load(path)
	if err != nil {
		return 0, err
	}
	return imp.Import(ctx, inputs)
}
