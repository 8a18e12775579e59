package products

import (
	"context"

	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
)

// Repository reads the seeded product cache.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a product repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every cached product ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns one cached product.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var row models.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByPrintifyID resolves a cached product by its provider id.
func (r *Repository) FindByPrintifyID(ctx context.Context, printifyID string) (*models.Product, error) {
	var row models.Product
	if err := r.db.WithContext(ctx).Where("printify_id = ?", printifyID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
