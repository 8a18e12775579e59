package orders

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
)

// OrderWithItems pairs an order with its line items for API responses.
type OrderWithItems struct {
	models.Order
	Items []models.OrderItem `json:"items"`
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes order reads and store-side writes. Orders are created by
// the checkout flow and mutated only as fulfillment progresses.
type Service interface {
	ListForUser(ctx context.Context, userID int64) ([]OrderWithItems, error)
	GetByNumber(ctx context.Context, callerUserID int64, orderNumber string) (*OrderWithItems, error)
	Create(ctx context.Context, order *models.Order, items []models.OrderItem) error
	UpdateStatus(ctx context.Context, orderID int64, status string) error
	UpdateFulfillmentID(ctx context.Context, orderID int64, printifyOrderID string) error
}

type service struct {
	repo OrderRepository
	tx   txRunner
}

func NewService(repo OrderRepository, tx txRunner) Service {
	return &service{repo: repo, tx: tx}
}

// ListForUser returns the user's orders newest first, each with its items.
func (s *service) ListForUser(ctx context.Context, userID int64) ([]OrderWithItems, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load orders")
	}
	out := make([]OrderWithItems, 0, len(rows))
	for _, row := range rows {
		items, err := s.repo.ListItems(ctx, row.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load orders")
		}
		out = append(out, OrderWithItems{Order: row, Items: items})
	}
	return out, nil
}

// GetByNumber loads an order by its public number. Ownerless guest orders are
// readable by anyone holding the number. Owned orders are hidden only from a
// different authenticated user; callerUserID of zero means unauthenticated.
func (s *service) GetByNumber(ctx context.Context, callerUserID int64, orderNumber string) (*OrderWithItems, error) {
	order, err := s.repo.FindByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load order")
	}
	if order.UserID != nil && callerUserID != 0 && *order.UserID != callerUserID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "Access denied")
	}
	items, err := s.repo.ListItems(ctx, order.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load order")
	}
	return &OrderWithItems{Order: *order, Items: items}, nil
}

// Create persists the order and its items in one transaction, assigning an
// order number when the caller did not set one.
func (s *service) Create(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	if order.OrderNumber == "" {
		order.OrderNumber = NewOrderNumber(time.Now())
	}
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Create(ctx, order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		return repo.CreateItems(ctx, items)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create order")
	}
	return nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update order")
	}
	return nil
}

func (s *service) UpdateFulfillmentID(ctx context.Context, orderID int64, printifyOrderID string) error {
	if err := s.repo.UpdateFulfillmentID(ctx, orderID, printifyOrderID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update order")
	}
	return nil
}

// NewOrderNumber builds a public order number like LL-20260110-9F3A2C. The
// random suffix keeps numbers unguessable since guest orders are readable by
// number alone.
func NewOrderNumber(now time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// Fall back to the clock if the system randomness source fails.
		return fmt.Sprintf("LL-%s-%06X", now.UTC().Format("20060102"), now.UnixNano()&0xFFFFFF)
	}
	return fmt.Sprintf("LL-%s-%X", now.UTC().Format("20060102"), buf)
}
