package marketing

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
)

// SubscriberRepository defines the persistence surface required by the service.
type SubscriberRepository interface {
	Upsert(ctx context.Context, sub *models.MarketingSubscriber) error
	SetSubscribed(ctx context.Context, email string, subscribed bool) (int64, error)
	FindByEmail(ctx context.Context, email string) (*models.MarketingSubscriber, error)
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the subscriber or, when the email already exists, re-enables
// the subscription and refreshes the user link.
func (r *Repository) Upsert(ctx context.Context, sub *models.MarketingSubscriber) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(map[string]any{"subscribed": true, "user_id": sub.UserID}),
		}).
		Create(sub).Error
}

// SetSubscribed flips the subscribed flag for an email, returning the number
// of rows touched.
func (r *Repository) SetSubscribed(ctx context.Context, email string, subscribed bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.MarketingSubscriber{}).
		Where("email = ?", email).
		Update("subscribed", subscribed)
	return res.RowsAffected, res.Error
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.MarketingSubscriber, error) {
	var row models.MarketingSubscriber
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
