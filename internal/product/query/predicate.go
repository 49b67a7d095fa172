package query

import (
	"strings"

	"product-catalog-api/internal/model"
)

// Predicate reports whether an item belongs to the result.
type Predicate func(item model.Item) bool

// BuildPredicates turns the active filters of opt into predicates, one per
// filter dimension. An empty result means every item matches.
func BuildPredicates(opt Options) []Predicate {
	var preds []Predicate

	switch {
	case opt.SearchTerm != "":
		// "true"/"false" filter on availability instead of searching text.
		// Numeric terms have no numeric attribute to match and stay a text search,
		// so "100" finds SKUs such as "LMP-100".
		if available, ok := parseAvailability(opt.SearchTerm); ok {
			preds = append(preds, availabilityEquals(available))
		} else {
			preds = append(preds, nameOrSKUContains(opt.SearchTerm))
		}
	default:
		if opt.SKU != "" {
			preds = append(preds, skuEquals(opt.SKU))
		}
		if opt.Name != "" {
			preds = append(preds, nameContains(opt.Name))
		}
	}

	if opt.MinPrice != nil {
		minPrice := *opt.MinPrice
		preds = append(preds, func(item model.Item) bool { return item.Price >= minPrice })
	}
	if opt.MaxPrice != nil {
		maxPrice := *opt.MaxPrice
		preds = append(preds, func(item model.Item) bool { return item.Price <= maxPrice })
	}

	return preds
}

// All combines preds with logical AND.
func All(preds ...Predicate) Predicate {
	return func(item model.Item) bool {
		for _, p := range preds {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// Match reports whether item satisfies every active filter of opt.
func Match(item model.Item, opt Options) bool {
	return All(BuildPredicates(opt)...)(item)
}

func parseAvailability(term string) (bool, bool) {
	switch {
	case strings.EqualFold(term, "true"):
		return true, true
	case strings.EqualFold(term, "false"):
		return false, true
	}
	return false, false
}

func availabilityEquals(available bool) Predicate {
	return func(item model.Item) bool { return item.IsAvailable == available }
}

func nameOrSKUContains(term string) Predicate {
	needle := strings.ToLower(term)
	return func(item model.Item) bool {
		return strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.SKU), needle)
	}
}

func skuEquals(sku string) Predicate {
	return func(item model.Item) bool { return item.SKU == sku }
}

func nameContains(name string) Predicate {
	needle := strings.ToLower(name)
	return func(item model.Item) bool {
		return strings.Contains(strings.ToLower(item.Name), needle)
	}
}
