package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/lowkeylegends/storefront-backend/api/middleware"
	"github.com/lowkeylegends/storefront-backend/internal/carts"
	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
)

type stubCartService struct {
	items     []models.CartItem
	added     *models.CartItem
	err       error
	lastOwner carts.Owner
	lastItem  carts.NewItem
	lastQty   int
}

func (s *stubCartService) List(ctx context.Context, owner carts.Owner) ([]models.CartItem, error) {
	s.lastOwner = owner
	return s.items, s.err
}

func (s *stubCartService) Add(ctx context.Context, owner carts.Owner, item carts.NewItem) (*models.CartItem, error) {
	s.lastOwner = owner
	s.lastItem = item
	if s.err != nil {
		return nil, s.err
	}
	return s.added, nil
}

func (s *stubCartService) UpdateQuantity(ctx context.Context, owner carts.Owner, itemID int64, quantity int) error {
	s.lastOwner = owner
	s.lastQty = quantity
	return s.err
}

func (s *stubCartService) Remove(ctx context.Context, owner carts.Owner, itemID int64) error {
	s.lastOwner = owner
	return s.err
}

func (s *stubCartService) Clear(ctx context.Context, owner carts.Owner) error {
	s.lastOwner = owner
	return s.err
}

func (s *stubCartService) Transfer(ctx context.Context, sessionID string, userID int64) (int64, error) {
	return 0, s.err
}

func TestGetCartIdentity(t *testing.T) {
	logg := testLogger()

	t.Run("authenticated user", func(t *testing.T) {
		stub := &stubCartService{}
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), 7))
		rec := httptest.NewRecorder()
		GetCart(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.lastOwner.UserID != 7 {
			t.Fatalf("expected user identity, got %+v", stub.lastOwner)
		}
	})

	t.Run("guest session header", func(t *testing.T) {
		stub := &stubCartService{}
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("X-Session-Id", "sess-1")
		rec := httptest.NewRecorder()
		GetCart(stub, logg).ServeHTTP(rec, req)

		if stub.lastOwner.SessionID != "sess-1" || stub.lastOwner.UserID != 0 {
			t.Fatalf("expected session identity, got %+v", stub.lastOwner)
		}
	})

	t.Run("no identity", func(t *testing.T) {
		stub := &stubCartService{err: pkgerrors.New(pkgerrors.CodeValidation, "missing cart identity")}
		rec := httptest.NewRecorder()
		GetCart(stub, logg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 without identity, got %d", rec.Code)
		}
	})
}

func TestAddCartItem(t *testing.T) {
	logg := testLogger()

	t.Run("created", func(t *testing.T) {
		stub := &stubCartService{added: &models.CartItem{ID: 5, ProductName: "Lowkey King Tee"}}
		body := `{"product_id":101,"product_name":"Lowkey King Tee","size":"M","quantity":2,"unit_price":29.99}`
		req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
		req.Header.Set("X-Session-Id", "sess-1")
		rec := httptest.NewRecorder()
		AddCartItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastItem.Quantity != 2 || stub.lastItem.ProductID != 101 {
			t.Fatalf("unexpected item passed through: %+v", stub.lastItem)
		}
		var resp struct {
			Item struct {
				ID int64 `json:"id"`
			} `json:"item"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp.Item.ID != 5 {
			t.Fatalf("expected created item id 5, got %d", resp.Item.ID)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		stub := &stubCartService{}
		req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"quantity":0}`))
		rec := httptest.NewRecorder()
		AddCartItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestUpdateCartItem(t *testing.T) {
	logg := testLogger()

	withItemID := func(id, body string) *http.Request {
		req := httptest.NewRequest(http.MethodPatch, "/api/cart/items/"+id, strings.NewReader(body))
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	}

	t.Run("updated", func(t *testing.T) {
		stub := &stubCartService{}
		req := withItemID("5", `{"quantity":3}`)
		req.Header.Set("X-Session-Id", "sess-1")
		rec := httptest.NewRecorder()
		UpdateCartItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastQty != 3 {
			t.Fatalf("expected quantity 3, got %d", stub.lastQty)
		}
		if stub.lastOwner.SessionID != "sess-1" {
			t.Fatalf("expected caller identity on update, got %+v", stub.lastOwner)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		stub := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")}
		rec := httptest.NewRecorder()
		UpdateCartItem(stub, logg).ServeHTTP(rec, withItemID("999", `{"quantity":3}`))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestClearCart(t *testing.T) {
	stub := &stubCartService{}
	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	ClearCart(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastOwner.UserID != 7 {
		t.Fatalf("expected user identity, got %+v", stub.lastOwner)
	}
}
