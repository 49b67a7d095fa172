package query_test

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog-api/internal/product/query"
)

func TestParseOptions_Defaults(t *testing.T) {
	opt := query.ParseOptions(nil)

	assert.Equal(t, 1, opt.Page())
	assert.Equal(t, 50, opt.Size())
	assert.Equal(t, "id", opt.SortBy())
	assert.Equal(t, query.Ascending, opt.SortOrder())
	assert.Nil(t, opt.MinPrice)
	assert.Nil(t, opt.MaxPrice)
	assert.Empty(t, opt.Name)
	assert.Empty(t, opt.SKU)
	assert.Empty(t, opt.SearchTerm)
}

func TestParseOptions_SizeClamp(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"25", 25},
		{"100", 100},
		{"101", 100},
		{"5000", 100},
		{"0", 1},
		{"-3", 1},
		{"abc", 50},
		{"", 50},
		{"12.5", 50},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			opt := query.ParseOptions(map[string]string{"size": tt.in})
			assert.Equal(t, tt.want, opt.Size())
		})
	}
}

func TestParseOptions_Page(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"7", 7},
		{"0", 1},
		{"-10", 1},
		{"two", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			opt := query.ParseOptions(map[string]string{"page": tt.in})
			assert.Equal(t, tt.want, opt.Page())
		})
	}
}

func TestParseOptions_SortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want query.SortOrder
	}{
		{"ascending", query.Ascending},
		{"descending", query.Descending},
		{"asc", query.Ascending},
		{"DESC", query.Descending},
		{"Descending", query.Descending},
		{"sideways", query.Ascending},
		{"", query.Ascending},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			opt := query.ParseOptions(map[string]string{"sortOrder": tt.in})
			assert.Equal(t, tt.want, opt.SortOrder())
		})
	}
}

func TestSetSortOrder_InvalidKeepsPrevious(t *testing.T) {
	opt := query.NewOptions()
	opt.SetSortOrder("descending")
	opt.SetSortOrder("random")

	assert.Equal(t, query.Descending, opt.SortOrder())
}

func TestParseOptions_Prices(t *testing.T) {
	opt := query.ParseOptions(map[string]string{"minPrice": "20", "maxPrice": "50.5"})
	require.NotNil(t, opt.MinPrice)
	require.NotNil(t, opt.MaxPrice)
	assert.Equal(t, 20.0, *opt.MinPrice)
	assert.Equal(t, 50.5, *opt.MaxPrice)

	opt = query.ParseOptions(map[string]string{"minPrice": "cheap", "maxPrice": "NaN"})
	assert.Nil(t, opt.MinPrice)
	assert.Nil(t, opt.MaxPrice)
}

func TestParseOptions_CaseInsensitiveKeys(t *testing.T) {
	opt := query.ParseOptions(map[string]string{
		"PAGE":       "3",
		"Size":       "10",
		"sortby":     "price",
		"SORTORDER":  "desc",
		"searchterm": "awm",
		"Unknown":    "ignored",
	})

	assert.Equal(t, 3, opt.Page())
	assert.Equal(t, 10, opt.Size())
	assert.Equal(t, "price", opt.SortBy())
	assert.Equal(t, query.Descending, opt.SortOrder())
	assert.Equal(t, "awm", opt.SearchTerm)
}

func TestFromValues_FirstValueWins(t *testing.T) {
	values := url.Values{
		"size": {"10", "90"},
		"sku":  {"AWMPS"},
	}

	opt := query.FromValues(values)

	assert.Equal(t, 10, opt.Size())
	assert.Equal(t, "AWMPS", opt.SKU)
}

func TestFromValues_CaseVariantDuplicates(t *testing.T) {
	values, err := url.ParseQuery("size=10&SIZE=90&sortOrder=asc&SortOrder=desc&Page=4&PAGE=2")
	require.NoError(t, err)

	want := query.FromValues(values)
	assert.Equal(t, 10, want.Size())
	assert.Equal(t, query.Ascending, want.SortOrder())
	assert.Equal(t, 2, want.Page())

	for range 200 {
		assert.Equal(t, want.Key(), query.FromValues(values).Key())
	}
}

func TestOffset(t *testing.T) {
	opt := query.NewOptions()
	opt.SetSize(25)
	opt.SetPage(2)
	assert.Equal(t, 25, opt.Offset())

	opt.SetPage(1)
	assert.Equal(t, 0, opt.Offset())

	opt.SetPage(math.MaxInt)
	assert.Equal(t, math.MaxInt, opt.Offset())
}

func TestKey(t *testing.T) {
	a := query.ParseOptions(map[string]string{"size": "10", "sortBy": "Price"})
	b := query.ParseOptions(map[string]string{"Size": "10", "sortby": "price"})
	c := query.ParseOptions(map[string]string{"size": "10", "sortBy": "price", "minPrice": "1"})

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
