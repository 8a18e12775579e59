package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lowkeylegends/storefront-backend/api/responses"
	"github.com/lowkeylegends/storefront-backend/internal/catalog"
	productsvc "github.com/lowkeylegends/storefront-backend/internal/products"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
	"github.com/lowkeylegends/storefront-backend/pkg/logger"
)

// ListProducts serves the catalog, provider first with a cache fallback. The
// source field tells the client which one answered.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		listing, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{
			"products": listing.Products,
			"source":   listing.Source,
		})
	}
}

// GetProduct serves one product from the local cache.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"product": product})
	}
}
