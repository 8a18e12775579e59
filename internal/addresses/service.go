package addresses

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
)

// Input carries a new address as submitted by the client.
type Input struct {
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	Phone        string
	IsDefault    bool
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type Service interface {
	List(ctx context.Context, userID int64) ([]models.Address, error)
	Create(ctx context.Context, userID int64, input Input) (int64, error)
	Delete(ctx context.Context, userID, addressID int64) error
}

type service struct {
	repo AddressRepository
	tx   txRunner
}

func NewService(repo AddressRepository, tx txRunner) Service {
	return &service{repo: repo, tx: tx}
}

func (s *service) List(ctx context.Context, userID int64) ([]models.Address, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load addresses")
	}
	return rows, nil
}

// Create inserts a new address. When the address is flagged default, clearing
// the previous default and the insert run inside one transaction so a second
// writer cannot leave the user with two defaults.
func (s *service) Create(ctx context.Context, userID int64, input Input) (int64, error) {
	if err := validateInput(input); err != nil {
		return 0, err
	}

	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = "US"
	}

	address := &models.Address{
		UserID:       userID,
		IsDefault:    input.IsDefault,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		AddressLine1: strings.TrimSpace(input.AddressLine1),
		AddressLine2: optional(input.AddressLine2),
		City:         strings.TrimSpace(input.City),
		State:        strings.TrimSpace(input.State),
		PostalCode:   strings.TrimSpace(input.PostalCode),
		Country:      country,
		Phone:        optional(input.Phone),
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if input.IsDefault {
			if err := repo.ClearDefaults(ctx, userID); err != nil {
				return err
			}
		}
		return repo.Create(ctx, address)
	})
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to save address")
	}
	return address.ID, nil
}

// Delete removes the user's address. Rows owned by someone else look exactly
// like missing rows to the caller.
func (s *service) Delete(ctx context.Context, userID, addressID int64) error {
	affected, err := s.repo.DeleteByIDAndUser(ctx, addressID, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to delete address")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}
	return nil
}

func validateInput(input Input) error {
	missing := []string{}
	required := []struct {
		name  string
		value string
	}{
		{"firstName", input.FirstName},
		{"lastName", input.LastName},
		{"addressLine1", input.AddressLine1},
		{"city", input.City},
		{"state", input.State},
		{"postalCode", input.PostalCode},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing required address fields: "+strings.Join(missing, ", "))
	}
	return nil
}

func optional(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
