package addresses

import (
	"context"

	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
)

// AddressRepository defines the persistence surface required by the service.
type AddressRepository interface {
	WithTx(tx *gorm.DB) AddressRepository
	ListByUser(ctx context.Context, userID int64) ([]models.Address, error)
	Create(ctx context.Context, address *models.Address) error
	ClearDefaults(ctx context.Context, userID int64) error
	DeleteByIDAndUser(ctx context.Context, id, userID int64) (int64, error)
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) AddressRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// ListByUser returns the user's addresses, default first then newest.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]models.Address, error) {
	var rows []models.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new address row.
func (r *Repository) Create(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

// ClearDefaults unsets the default flag on all of the user's addresses.
func (r *Repository) ClearDefaults(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Address{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
}

// DeleteByIDAndUser removes an address scoped to its owner and reports the
// affected row count. Rows owned by other users are left untouched.
func (r *Repository) DeleteByIDAndUser(ctx context.Context, id, userID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Address{})
	return result.RowsAffected, result.Error
}
