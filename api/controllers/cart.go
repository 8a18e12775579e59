package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lowkeylegends/storefront-backend/api/middleware"
	"github.com/lowkeylegends/storefront-backend/api/responses"
	"github.com/lowkeylegends/storefront-backend/api/validators"
	"github.com/lowkeylegends/storefront-backend/internal/carts"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
	"github.com/lowkeylegends/storefront-backend/pkg/logger"
)

// sessionHeader carries the anonymous cart identity for guests.
const sessionHeader = "X-Session-Id"

func cartOwner(r *http.Request) carts.Owner {
	return carts.Owner{
		UserID:    middleware.UserIDFromContext(r.Context()),
		SessionID: r.Header.Get(sessionHeader),
	}
}

type addCartItemRequest struct {
	ProductID   int64   `json:"product_id" validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Size        string  `json:"size" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// GetCart lists the cart for the caller's identity, user or session.
func GetCart(svc carts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		items, err := svc.List(r.Context(), cartOwner(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"items": items})
	}
}

// AddCartItem appends a product snapshot to the cart.
func AddCartItem(svc carts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Add(r.Context(), cartOwner(r), carts.NewItem{
			ProductID:   payload.ProductID,
			ProductName: validators.SanitizeString(payload.ProductName, 255),
			Size:        validators.SanitizeString(payload.Size, 50),
			Quantity:    payload.Quantity,
			UnitPrice:   payload.UnitPrice,
			ImageURL:    payload.ImageURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, responses.Fields{"item": item})
	}
}

// UpdateCartItem changes the quantity on one cart line.
func UpdateCartItem(svc carts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found"))
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateQuantity(r.Context(), cartOwner(r), itemID, payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"message": "Cart updated"})
	}
}

// RemoveCartItem deletes one cart line.
func RemoveCartItem(svc carts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found"))
			return
		}

		if err := svc.Remove(r.Context(), cartOwner(r), itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"message": "Item removed"})
	}
}

// ClearCart empties the cart for the caller's identity.
func ClearCart(svc carts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		if err := svc.Clear(r.Context(), cartOwner(r)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"message": "Cart cleared"})
	}
}
