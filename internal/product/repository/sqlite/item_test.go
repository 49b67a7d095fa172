package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "product-catalog-api/internal/product/repository"
	"product-catalog-api/internal/product/repository/sqlite"
	"product-catalog-api/pkg/log"
)

func openTestRepo(t *testing.T) repo.Repository {
	t.Helper()

	r, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "catalog.db"), log.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.OpenDB(ctx, filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer db.Close()

	applied, err := sqlite.Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	applied, err = sqlite.Migrate(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, applied)

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{
		Name:        "AWMPS",
		Description: "Adjustable wall mount",
		SKU:         "AWMPS",
		Price:       49.99,
		IsAvailable: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "AWMPS", created.SKU)
	assert.Equal(t, 49.99, created.Price)
	assert.True(t, created.IsAvailable)
	assert.False(t, created.CreatedAt.IsZero())

	bySKU, err := r.GetOneItem(ctx, repo.GetOneItemOptions{SKU: "AWMPS"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySKU.ID)

	missing, err := r.GetOneItem(ctx, repo.GetOneItemOptions{SKU: "awmps"})
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestRepository_DuplicateSKURejected(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	_, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "A", SKU: "DUP"})
	require.NoError(t, err)

	_, err = r.CreateItem(ctx, repo.CreateItemOptions{Name: "B", SKU: "DUP"})
	assert.ErrorIs(t, err, repo.ErrDuplicateSKU)

	other, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "C", SKU: "OTHER"})
	require.NoError(t, err)

	_, err = r.UpdateItem(ctx, repo.UpdateItemOptions{ID: other.ID, Name: "C", SKU: "DUP"})
	assert.ErrorIs(t, err, repo.ErrDuplicateSKU)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "Lamp", SKU: "LMP", Price: 20, IsAvailable: true})
	require.NoError(t, err)

	updated, err := r.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          created.ID,
		Name:        "Desk lamp",
		SKU:         "LMP",
		Price:       25,
		IsAvailable: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Desk lamp", updated.Name)
	assert.Equal(t, 25.0, updated.Price)
	assert.False(t, updated.IsAvailable)

	missing, err := r.UpdateItem(ctx, repo.UpdateItemOptions{ID: created.ID + 100, Name: "x", SKU: "X"})
	require.NoError(t, err)
	assert.Zero(t, missing.ID)

	require.NoError(t, r.DeleteItem(ctx, created.ID))
	gone, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Zero(t, gone.ID)
}

func TestRepository_Snapshot(t *testing.T) {
	ctx := context.Background()
	r := openTestRepo(t)

	for _, sku := range []string{"C", "A", "B"} {
		_, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: sku, SKU: sku})
		require.NoError(t, err)
	}

	snap, err := r.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{snap[0].SKU, snap[1].SKU, snap[2].SKU})
	assert.Less(t, snap[0].ID, snap[1].ID)

	count, err := r.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_Ping(t *testing.T) {
	ctx := context.Background()
	r, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "ping.db"), log.NewNop())
	require.NoError(t, err)

	assert.NoError(t, r.Ping(ctx))

	require.NoError(t, r.Close())
	assert.Error(t, r.Ping(ctx))
}
