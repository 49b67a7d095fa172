package sqlite

import (
	sq "github.com/Masterminds/squirrel"

	repo "product-catalog-api/internal/product/repository"
)

const itemsTable = "items"

var itemColumns = []string{
	"id", "name", "description", "sku", "price", "is_available", "created_at", "updated_at",
}

// buildGetOneQuery applies all non-zero fields of opt as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) sq.SelectBuilder {
	q := r.sb.Select(itemColumns...).From(itemsTable)

	if opt.ID != 0 {
		q = q.Where(sq.Eq{"id": opt.ID})
	}
	if opt.SKU != "" {
		q = q.Where(sq.Eq{"sku": opt.SKU})
	}

	return q.OrderBy("id ASC").Limit(1)
}

// buildSnapshotQuery selects every item in id order.
func (r *implRepository) buildSnapshotQuery() sq.SelectBuilder {
	return r.sb.Select(itemColumns...).From(itemsTable).OrderBy("id ASC")
}

func (r *implRepository) buildInsertQuery(opt repo.CreateItemOptions) sq.InsertBuilder {
	now := r.now().UTC()
	return r.sb.Insert(itemsTable).
		Columns("name", "description", "sku", "price", "is_available", "created_at", "updated_at").
		Values(opt.Name, opt.Description, opt.SKU, opt.Price, opt.IsAvailable, now, now)
}

func (r *implRepository) buildUpdateQuery(opt repo.UpdateItemOptions) sq.UpdateBuilder {
	return r.sb.Update(itemsTable).
		Set("name", opt.Name).
		Set("description", opt.Description).
		Set("sku", opt.SKU).
		Set("price", opt.Price).
		Set("is_available", opt.IsAvailable).
		Set("updated_at", r.now().UTC()).
		Where(sq.Eq{"id": opt.ID})
}
