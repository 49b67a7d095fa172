package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog-api/internal/product"
)

func TestParse(t *testing.T) {
	doc := `
items:
  - name: Anti-Wrinkle Moisturiser
    description: 50ml pump
    sku: AWMPS
    price: 24.99
  - name: " Travel Mug "
    sku: MUG-01
    price: 12
    is_available: false
`
	inputs, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []product.CreateItemInput{
		{Name: "Anti-Wrinkle Moisturiser", Description: "50ml pump", SKU: "AWMPS", Price: 24.99, IsAvailable: true},
		{Name: "Travel Mug", SKU: "MUG-01", Price: 12, IsAvailable: false},
	}, inputs)
}

func TestParse_Empty(t *testing.T) {
	inputs, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no name", "items:\n  - sku: A\n"},
		{"no sku", "items:\n  - name: A\n"},
		{"negative price", "items:\n  - name: A\n    sku: A\n    price: -1\n"},
		{"duplicate sku", "items:\n  - name: A\n    sku: A\n  - name: B\n    sku: A\n"},
		{"unknown field", "items:\n  - name: A\n    sku: A\n    colour: red\n"},
		{"not yaml", "items: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidSeed)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: Lamp\n    sku: LMP\n    price: 20\n"), 0o600))

	inputs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "LMP", inputs[0].SKU)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

type fakeImporter struct {
	got []product.CreateItemInput
}

func (f *fakeImporter) Import(ctx context.Context, inputs []product.CreateItemInput) (int, error) {
	f.got = inputs
	return len(inputs), nil
}

func TestApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: Lamp\n    sku: LMP\n  - name: Desk\n    sku: DSK\n"), 0o600))

	imp := &fakeImporter{}
	n, err := Apply(context.Background(), imp, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "DSK", imp.got[1].SKU)
}
