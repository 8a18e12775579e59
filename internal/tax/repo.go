package tax

import (
	"context"

	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
)

// Repository reads the seeded tax rate table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByStateCode returns the configured rate row for an exact state code.
func (r *Repository) FindByStateCode(ctx context.Context, stateCode string) (*models.TaxRate, error) {
	var row models.TaxRate
	if err := r.db.WithContext(ctx).Where("state_code = ?", stateCode).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
