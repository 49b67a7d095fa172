package query

import (
	"fmt"
	"maps"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// SortOrder is the direction applied to the sort key.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

const (
	DefaultPage   = 1
	DefaultSize   = 50
	MaxSize       = 100
	MinSize       = 1
	DefaultSortBy = "id"
)

// Query string keys. Lookup is case-insensitive.
const (
	ParamPage       = "page"
	ParamSize       = "size"
	ParamSortBy     = "sortBy"
	ParamSortOrder  = "sortOrder"
	ParamMinPrice   = "minPrice"
	ParamMaxPrice   = "maxPrice"
	ParamName       = "name"
	ParamSKU        = "sku"
	ParamSearchTerm = "searchTerm"
)

// Options is the bounded form of the client's query parameters.
// The zero value is not valid; use NewOptions or ParseOptions.
type Options struct {
	page      int
	size      int
	sortBy    string
	sortOrder SortOrder

	MinPrice   *float64
	MaxPrice   *float64
	Name       string
	SKU        string
	SearchTerm string
}

// NewOptions returns Options holding the defaults.
func NewOptions() Options {
	return Options{
		page:      DefaultPage,
		size:      DefaultSize,
		sortBy:    DefaultSortBy,
		sortOrder: Ascending,
	}
}

// ParseOptions builds Options from raw query parameters. It never fails:
// unparseable numbers are treated as absent and out-of-range values are clamped.
// When several keys fold to the same parameter, the exact spelling wins,
// then the lowest key in byte order.
func ParseOptions(raw map[string]string) Options {
	opt := NewOptions()
	keys := slices.Sorted(maps.Keys(raw))

	if value, ok := lookup(raw, keys, ParamPage); ok {
		if n, err := strconv.Atoi(value); err == nil {
			opt.SetPage(n)
		}
	}
	if value, ok := lookup(raw, keys, ParamSize); ok {
		if n, err := strconv.Atoi(value); err == nil {
			opt.SetSize(n)
		}
	}
	if value, ok := lookup(raw, keys, ParamSortBy); ok {
		opt.SetSortBy(value)
	}
	if value, ok := lookup(raw, keys, ParamSortOrder); ok {
		opt.SetSortOrder(value)
	}
	if value, ok := lookup(raw, keys, ParamMinPrice); ok {
		opt.MinPrice = parsePrice(value)
	}
	if value, ok := lookup(raw, keys, ParamMaxPrice); ok {
		opt.MaxPrice = parsePrice(value)
	}
	if value, ok := lookup(raw, keys, ParamName); ok {
		opt.Name = value
	}
	if value, ok := lookup(raw, keys, ParamSKU); ok {
		opt.SKU = value
	}
	if value, ok := lookup(raw, keys, ParamSearchTerm); ok {
		opt.SearchTerm = value
	}

	return opt
}

// lookup finds param in raw. keys must be the sorted keys of raw.
func lookup(raw map[string]string, keys []string, param string) (string, bool) {
	if value, ok := raw[param]; ok {
		return strings.TrimSpace(value), true
	}
	for _, key := range keys {
		if strings.EqualFold(key, param) {
			return strings.TrimSpace(raw[key]), true
		}
	}
	return "", false
}

// FromValues flattens url.Values to the first value of every key and parses it.
func FromValues(values url.Values) Options {
	raw := make(map[string]string, len(values))
	for key, vs := range values {
		if len(vs) > 0 {
			raw[key] = vs[0]
		}
	}
	return ParseOptions(raw)
}

func parsePrice(value string) *float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	return &f
}

// SetPage sets the page number; values below 1 become 1.
func (o *Options) SetPage(page int) {
	o.page = max(page, DefaultPage)
}

// SetSize sets the page size clamped to [MinSize, MaxSize].
func (o *Options) SetSize(size int) {
	o.size = min(max(size, MinSize), MaxSize)
}

// SetSortBy sets the sort key. An empty key keeps the current one.
func (o *Options) SetSortBy(key string) {
	if key != "" {
		o.sortBy = key
	}
}

// SetSortOrder accepts asc, ascending, desc and descending in any case.
// Any other token is ignored and the current order is kept.
func (o *Options) SetSortOrder(token string) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "asc", string(Ascending):
		o.sortOrder = Ascending
	case "desc", string(Descending):
		o.sortOrder = Descending
	}
}

func (o Options) Page() int            { return o.page }
func (o Options) Size() int            { return o.size }
func (o Options) SortBy() string       { return o.sortBy }
func (o Options) SortOrder() SortOrder { return o.sortOrder }

// Offset is the number of filtered items skipped before the page starts.
// Saturates at math.MaxInt for very large page numbers.
func (o Options) Offset() int {
	if o.size <= 0 || o.page <= 1 {
		return 0
	}
	if o.page-1 > math.MaxInt/o.size {
		return math.MaxInt
	}
	return o.size * (o.page - 1)
}

// Key is a canonical representation of the options, equal for equal options.
func (o Options) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "p=%d|s=%d|by=%s|ord=%s", o.page, o.size, strings.ToLower(o.sortBy), o.sortOrder)
	if o.MinPrice != nil {
		fmt.Fprintf(&b, "|min=%g", *o.MinPrice)
	}
	if o.MaxPrice != nil {
		fmt.Fprintf(&b, "|max=%g", *o.MaxPrice)
	}
	fmt.Fprintf(&b, "|name=%q|sku=%q|q=%q", o.Name, o.SKU, o.SearchTerm)
	return b.String()
}

// normalized fills in defaults for Options built as a zero value.
func (o Options) normalized() Options {
	if o.page < DefaultPage {
		o.page = DefaultPage
	}
	if o.size == 0 {
		o.size = DefaultSize
	}
	o.SetSize(o.size)
	if o.sortBy == "" {
		o.sortBy = DefaultSortBy
	}
	if o.sortOrder != Descending {
		o.sortOrder = Ascending
	}
	return o
}
