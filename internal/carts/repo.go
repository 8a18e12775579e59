package carts

import (
	"context"

	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
)

// CartRepository defines the persistence surface required by the service.
type CartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.CartItem, error)
	ListBySession(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, owner Owner, itemID int64, quantity int) (int64, error)
	Delete(ctx context.Context, owner Owner, itemID int64) (int64, error)
	ClearByUser(ctx context.Context, userID int64) error
	ClearBySession(ctx context.Context, sessionID string) error
	Transfer(ctx context.Context, sessionID string, userID int64) (int64, error)
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns a user's cart in insertion order.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListBySession returns an anonymous session's cart in insertion order.
func (r *Repository) ListBySession(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// UpdateQuantity sets the quantity on one of the owner's rows. A row held by
// a different user or session is not touched.
func (r *Repository) UpdateQuantity(ctx context.Context, owner Owner, itemID int64, quantity int) (int64, error) {
	res := scopeOwner(r.db.WithContext(ctx).Model(&models.CartItem{}), owner).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	return res.RowsAffected, res.Error
}

// Delete removes one of the owner's rows.
func (r *Repository) Delete(ctx context.Context, owner Owner, itemID int64) (int64, error) {
	res := scopeOwner(r.db.WithContext(ctx), owner).
		Where("id = ?", itemID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

func scopeOwner(q *gorm.DB, owner Owner) *gorm.DB {
	if owner.UserID != 0 {
		return q.Where("user_id = ?", owner.UserID)
	}
	return q.Where("session_id = ?", owner.SessionID)
}

func (r *Repository) ClearByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

func (r *Repository) ClearBySession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}

// Transfer re-owns every session row to the user and clears the session id.
// Duplicate product/size lines are left as separate rows.
func (r *Repository) Transfer(ctx context.Context, sessionID string, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]any{"user_id": userID, "session_id": nil})
	return res.RowsAffected, res.Error
}
