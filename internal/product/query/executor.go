package query

import (
	"slices"

	"product-catalog-api/internal/model"
)

// Page is one page of the filtered and sorted items.
type Page struct {
	Items      []model.Item `json:"items"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Size       int          `json:"size"`
	TotalPages int          `json:"total_pages"`
}

// Execute filters, sorts and paginates items according to opt. items is
// never modified, so a single snapshot may be shared by concurrent calls.
func Execute(items []model.Item, opt Options) Page {
	opt = opt.normalized()

	match := All(BuildPredicates(opt)...)
	filtered := make([]model.Item, 0, len(items))
	for _, item := range items {
		if match(item) {
			filtered = append(filtered, item)
		}
	}

	if compare, ok := Comparator(opt.SortBy(), opt.SortOrder()); ok {
		slices.SortStableFunc(filtered, compare)
	}

	total := len(filtered)
	page := Page{
		Items:      []model.Item{},
		Total:      total,
		Page:       opt.Page(),
		Size:       opt.Size(),
		TotalPages: (total + opt.Size() - 1) / opt.Size(),
	}

	offset := opt.Offset()
	if offset >= total {
		return page
	}
	end := min(offset+opt.Size(), total)
	page.Items = filtered[offset:end]

	return page
}
