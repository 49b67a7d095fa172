package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"product-catalog-api/internal/product/repository"
	"product-catalog-api/pkg/log"
)

const driverName = "sqlite3"

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	sb  sq.StatementBuilderType
	now func() time.Time
}

// New creates a SQLite-backed Repository on an already migrated db.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("product/repository/sqlite: db is required")
	}
	return &implRepository{
		db:  db,
		l:   l,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now: time.Now,
	}
}

// Open opens the database at path, applies migrations and returns a Repository.
func Open(ctx context.Context, path string, l log.Logger) (repository.Repository, error) {
	db, err := OpenDB(ctx, path)
	if err != nil {
		return nil, err
	}

	applied, err := Migrate(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if applied > 0 {
		l.Infof(ctx, "sqlite: applied %d migration(s) to %s", applied, path)
	}

	return New(db, l), nil
}

// OpenDB opens and pings the database without migrating it.
func OpenDB(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return db, nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("Ping"), err)
		return err
	}
	return nil
}

func (r *implRepository) Close() error {
	return r.db.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("product/repository/sqlite.%s", method)
}
