package products

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
)

type stubCacheRepo struct {
	rows    []models.Product
	byID    map[int64]*models.Product
	listErr error
}

func (s *stubCacheRepo) List(context.Context) ([]models.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.rows, nil
}

func (s *stubCacheRepo) FindByID(_ context.Context, id int64) (*models.Product, error) {
	if row, ok := s.byID[id]; ok {
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCacheRepo) FindByPrintifyID(_ context.Context, printifyID string) (*models.Product, error) {
	for _, row := range s.byID {
		if row.PrintifyID != nil && *row.PrintifyID == printifyID {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func strptr(v string) *string { return &v }

func TestServiceListParsesSizes(t *testing.T) {
	repo := &stubCacheRepo{rows: []models.Product{
		{ID: 1, Name: "Lunar Moth Tee", Price: 32, Category: strptr("mens"), Sizes: strptr(`["S","M"]`)},
		{ID: 2, Name: "Tumbler", Price: 36, Category: strptr("accessories"), Sizes: nil},
	}}
	svc := NewService(repo)

	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 products, got %d", len(out))
	}
	if len(out[0].Sizes) != 2 || out[0].Sizes[0] != "S" {
		t.Fatalf("unexpected sizes %v", out[0].Sizes)
	}
	if out[1].Sizes == nil || len(out[1].Sizes) != 0 {
		t.Fatalf("nil sizes column should yield empty list, got %v", out[1].Sizes)
	}
}

func TestServiceListMalformedSizes(t *testing.T) {
	repo := &stubCacheRepo{rows: []models.Product{
		{ID: 1, Name: "Tee", Sizes: strptr(`not-json`)},
	}}
	svc := NewService(repo)

	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out[0].Sizes) != 0 {
		t.Fatalf("malformed sizes should degrade to empty list, got %v", out[0].Sizes)
	}
}

func TestServiceGetNotFound(t *testing.T) {
	svc := NewService(&stubCacheRepo{byID: map[int64]*models.Product{}})

	_, err := svc.Get(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error for missing product")
	}
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected code %s", pkgerrors.CodeOf(err))
	}
}

func TestServiceGetIncludesTag(t *testing.T) {
	svc := NewService(&stubCacheRepo{byID: map[int64]*models.Product{
		4: {ID: 4, Name: "King Playing Card Tee", Tag: strptr("bestseller"), Sizes: strptr(`["S"]`)},
	}})

	detail, err := svc.Get(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Tag != "bestseller" {
		t.Fatalf("unexpected tag %q", detail.Tag)
	}
}

func TestServiceListRepoError(t *testing.T) {
	svc := NewService(&stubCacheRepo{listErr: errors.New("disk on fire")})

	_, err := svc.List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if pkgerrors.CodeOf(err) != pkgerrors.CodeInternal {
		t.Fatalf("unexpected code %s", pkgerrors.CodeOf(err))
	}
}
