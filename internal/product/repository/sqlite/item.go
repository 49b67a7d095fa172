package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"product-catalog-api/internal/model"
	repo "product-catalog-api/internal/product/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.Item, error) {
	var item model.Item
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.SKU,
		&item.Price, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

// isUniqueViolation reports whether err comes from the sku unique index.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// CreateItem inserts a new Item row and returns the created entity.
// A clash on the sku index yields ErrDuplicateSKU.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	query, args, err := r.buildInsertQuery(opt).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return model.Item{}, repo.ErrDuplicateSKU
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s last id: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}

	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
}

// GetOneItem retrieves a single Item by the provided filters (AND condition).
// Returns zero-value Item (ID == 0) when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	query, args, err := r.buildGetOneQuery(opt).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// Snapshot reads all items inside one transaction so the result is consistent.
func (r *implRepository) Snapshot(ctx context.Context) ([]model.Item, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Snapshot"), err)
		return nil, repo.ErrFailedToList
	}
	defer tx.Rollback()

	query, args, err := r.buildSnapshotQuery().ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("Snapshot"), err)
		return nil, repo.ErrFailedToList
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Snapshot"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("Snapshot"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("Snapshot"), err)
		return nil, repo.ErrFailedToList
	}

	return items, nil
}

// CountItems returns the number of stored items.
func (r *implRepository) CountItems(ctx context.Context) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From(itemsTable).ToSql()
	if err != nil {
		return 0, repo.ErrFailedToList
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountItems"), err)
		return 0, repo.ErrFailedToList
	}
	return total, nil
}

// UpdateItem updates an Item by ID and returns the updated entity.
// Returns zero-value Item when the id does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	query, args, err := r.buildUpdateQuery(opt).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return model.Item{}, repo.ErrDuplicateSKU
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Item{}, nil
	}

	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: opt.ID})
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete(itemsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return repo.ErrFailedToDelete
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
