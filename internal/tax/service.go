package tax

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
)

// RateRepository is the persistence surface required by the tax service.
type RateRepository interface {
	FindByStateCode(ctx context.Context, stateCode string) (*models.TaxRate, error)
}

type Service interface {
	Rate(ctx context.Context, stateCode string) (float64, string, error)
}

type service struct {
	repo RateRepository
}

func NewService(repo RateRepository) Service {
	return &service{repo: repo}
}

// Rate returns the sales tax rate for a state code. Codes are upper-cased
// before lookup; unknown codes resolve to 0 rather than an error.
func (s *service) Rate(ctx context.Context, stateCode string) (float64, string, error) {
	code := strings.ToUpper(strings.TrimSpace(stateCode))

	row, err := s.repo.FindByStateCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, code, nil
		}
		return 0, code, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to get tax rate")
	}
	return row.Rate, code, nil
}

// Amount computes the tax on a subtotal, rounded half-up to cents. No HTTP
// route exposes it; checkout callers building order totals use it to snapshot
// the tax charged alongside the rate returned by Rate.
func Amount(subtotal, rate float64) float64 {
	amount := decimal.NewFromFloat(subtotal).
		Mul(decimal.NewFromFloat(rate)).
		Round(2)
	out, _ := amount.Float64()
	return out
}
