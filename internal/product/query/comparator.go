package query

import (
	"cmp"
	"strings"

	"product-catalog-api/internal/model"
)

// CompareFunc orders two items like cmp.Compare.
type CompareFunc func(a, b model.Item) int

// sortKey binds a public attribute name to a typed comparison.
type sortKey struct {
	name    string
	compare CompareFunc
}

var sortKeys = []sortKey{
	{"id", func(a, b model.Item) int { return cmp.Compare(a.ID, b.ID) }},
	{"name", func(a, b model.Item) int { return strings.Compare(a.Name, b.Name) }},
	{"description", func(a, b model.Item) int { return strings.Compare(a.Description, b.Description) }},
	{"sku", func(a, b model.Item) int { return strings.Compare(a.SKU, b.SKU) }},
	{"price", func(a, b model.Item) int { return cmp.Compare(a.Price, b.Price) }},
	{"isAvailable", func(a, b model.Item) int { return compareBool(a.IsAvailable, b.IsAvailable) }},
	{"createdAt", func(a, b model.Item) int { return a.CreatedAt.Compare(b.CreatedAt) }},
	{"updatedAt", func(a, b model.Item) int { return a.UpdatedAt.Compare(b.UpdatedAt) }},
}

var sortKeyIndex = func() map[string]CompareFunc {
	idx := make(map[string]CompareFunc, len(sortKeys))
	for _, k := range sortKeys {
		idx[strings.ToLower(k.name)] = k.compare
	}
	return idx
}()

// SortKeys returns the attribute names accepted by Comparator.
func SortKeys() []string {
	names := make([]string, len(sortKeys))
	for i, k := range sortKeys {
		names[i] = k.name
	}
	return names
}

// Comparator resolves key (case-insensitive) to an ordering in the given
// direction. ok is false when key names no known attribute.
func Comparator(key string, order SortOrder) (CompareFunc, bool) {
	compare, ok := sortKeyIndex[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, false
	}
	if order == Descending {
		return func(a, b model.Item) int { return compare(b, a) }, true
	}
	return compare, true
}

// false sorts before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
