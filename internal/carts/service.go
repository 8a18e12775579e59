package carts

import (
	"context"
	"strings"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
)

// Owner identifies whose cart an operation targets. An authenticated user
// sets UserID; an anonymous shopper sets SessionID. UserID wins when both
// are present.
type Owner struct {
	UserID    int64
	SessionID string
}

func (o Owner) valid() bool {
	return o.UserID != 0 || strings.TrimSpace(o.SessionID) != ""
}

// NewItem carries the product snapshot stored on a cart line.
type NewItem struct {
	ProductID   int64
	ProductName string
	Size        string
	Quantity    int
	UnitPrice   float64
	ImageURL    *string
}

type Service interface {
	List(ctx context.Context, owner Owner) ([]models.CartItem, error)
	Add(ctx context.Context, owner Owner, item NewItem) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, owner Owner, itemID int64, quantity int) error
	Remove(ctx context.Context, owner Owner, itemID int64) error
	Clear(ctx context.Context, owner Owner) error
	Transfer(ctx context.Context, sessionID string, userID int64) (int64, error)
}

type service struct {
	repo CartRepository
}

func NewService(repo CartRepository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, owner Owner) ([]models.CartItem, error) {
	if !owner.valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing cart identity")
	}
	var (
		rows []models.CartItem
		err  error
	)
	if owner.UserID != 0 {
		rows, err = s.repo.ListByUser(ctx, owner.UserID)
	} else {
		rows, err = s.repo.ListBySession(ctx, owner.SessionID)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load cart")
	}
	return rows, nil
}

func (s *service) Add(ctx context.Context, owner Owner, item NewItem) (*models.CartItem, error) {
	if !owner.valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing cart identity")
	}
	if item.ProductID == 0 || item.ProductName == "" || item.Size == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing required cart item fields")
	}
	if item.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	row := &models.CartItem{
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Size:        item.Size,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		ImageURL:    item.ImageURL,
	}
	if owner.UserID != 0 {
		row.UserID = &owner.UserID
	} else {
		sessionID := owner.SessionID
		row.SessionID = &sessionID
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to add to cart")
	}
	return row, nil
}

// UpdateQuantity changes one line on the owner's cart. A line id that exists
// under another user or session reports not found, so callers cannot reach
// across carts.
func (s *service) UpdateQuantity(ctx context.Context, owner Owner, itemID int64, quantity int) error {
	if !owner.valid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing cart identity")
	}
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	affected, err := s.repo.UpdateQuantity(ctx, owner, itemID, quantity)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update cart item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return nil
}

// Remove deletes one line on the owner's cart, masking other owners' line ids
// the same way UpdateQuantity does.
func (s *service) Remove(ctx context.Context, owner Owner, itemID int64) error {
	if !owner.valid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing cart identity")
	}
	affected, err := s.repo.Delete(ctx, owner, itemID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to remove cart item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return nil
}

func (s *service) Clear(ctx context.Context, owner Owner) error {
	if !owner.valid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing cart identity")
	}
	var err error
	if owner.UserID != 0 {
		err = s.repo.ClearByUser(ctx, owner.UserID)
	} else {
		err = s.repo.ClearBySession(ctx, owner.SessionID)
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to clear cart")
	}
	return nil
}

// Transfer re-owns an anonymous session's rows to the freshly authenticated
// user. Duplicate product/size lines stay separate.
func (s *service) Transfer(ctx context.Context, sessionID string, userID int64) (int64, error) {
	if strings.TrimSpace(sessionID) == "" || userID == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "missing cart identity")
	}
	moved, err := s.repo.Transfer(ctx, sessionID, userID)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to transfer cart")
	}
	return moved, nil
}
