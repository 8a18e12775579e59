package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
)

// OrderRepository defines the persistence surface required by the service.
type OrderRepository interface {
	WithTx(tx *gorm.DB) OrderRepository
	Create(ctx context.Context, order *models.Order) error
	CreateItems(ctx context.Context, items []models.OrderItem) error
	ListByUser(ctx context.Context, userID int64) ([]models.Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]models.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) error
	UpdateFulfillmentID(ctx context.Context, orderID int64, printifyOrderID string) error
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts the order row.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// CreateItems inserts the order's line items.
func (r *Repository) CreateItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// ListByUser returns the user's orders, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByNumber loads an order by its public number.
func (r *Repository) FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var row models.Order
	if err := r.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListItems returns the line items for one order.
func (r *Repository) ListItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	var rows []models.OrderItem
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus sets the order status.
func (r *Repository) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

// UpdateFulfillmentID records the provider's order id once submitted.
func (r *Repository) UpdateFulfillmentID(ctx context.Context, orderID int64, printifyOrderID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("printify_order_id", printifyOrderID).Error
}
