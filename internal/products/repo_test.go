package products

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id int64, name string, printifyID string) {
	t.Helper()

	sizes := `["S","M","L"]`
	category := "mens"
	require.NoError(t, db.Create(&models.Product{
		ID:         id,
		Name:       name,
		Price:      32.00,
		Category:   &category,
		Sizes:      &sizes,
		PrintifyID: &printifyID,
	}).Error)
}

func TestRepositoryListOrdersByID(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	seedProduct(t, db, 2, "Hot Hand Tee", "pfy-2")
	seedProduct(t, db, 1, "Lunar Moth Tee", "pfy-1")

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, int64(2), rows[1].ID)
}

func TestRepositoryFindByID(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	seedProduct(t, db, 7, "King Playing Card Tee", "pfy-7")

	row, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "King Playing Card Tee", row.Name)

	_, err = repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryFindByPrintifyID(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	seedProduct(t, db, 3, "Origami Crane Tee", "25330988")

	row, err := repo.FindByPrintifyID(context.Background(), "25330988")
	require.NoError(t, err)
	assert.Equal(t, int64(3), row.ID)
}
