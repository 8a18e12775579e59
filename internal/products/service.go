package products

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
)

// Summary is the cached product shape served in catalog fallback listings.
type Summary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Sizes       []string `json:"sizes"`
	Description string   `json:"description"`
	PrintifyID  string   `json:"printify_id"`
}

// Detail is the full cached product row served by the detail endpoint.
type Detail struct {
	Summary
	Tag string `json:"tag"`
}

// CacheRepository is the persistence surface required by the product service.
type CacheRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindByPrintifyID(ctx context.Context, printifyID string) (*models.Product, error)
}

type Service interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id int64) (*Detail, error)
	GetByPrintifyID(ctx context.Context, printifyID string) (*Detail, error)
}

type service struct {
	repo CacheRepository
}

func NewService(repo CacheRepository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	out := make([]Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSummary(row))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Detail, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return toDetail(*row), nil
}

func (s *service) GetByPrintifyID(ctx context.Context, printifyID string) (*Detail, error) {
	row, err := s.repo.FindByPrintifyID(ctx, printifyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return toDetail(*row), nil
}

func toSummary(row models.Product) Summary {
	return Summary{
		ID:          row.ID,
		Name:        row.Name,
		Price:       row.Price,
		Category:    deref(row.Category),
		ImageURL:    deref(row.ImageURL),
		Sizes:       parseSizes(row.Sizes),
		Description: deref(row.Description),
		PrintifyID:  deref(row.PrintifyID),
	}
}

func toDetail(row models.Product) *Detail {
	return &Detail{
		Summary: toSummary(row),
		Tag:     deref(row.Tag),
	}
}

// parseSizes decodes the stored JSON list. Malformed or empty values degrade
// to an empty list rather than an error.
func parseSizes(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}
	var sizes []string
	if err := json.Unmarshal([]byte(*raw), &sizes); err != nil {
		return []string{}
	}
	return sizes
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
