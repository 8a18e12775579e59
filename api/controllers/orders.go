package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lowkeylegends/storefront-backend/api/middleware"
	"github.com/lowkeylegends/storefront-backend/api/responses"
	"github.com/lowkeylegends/storefront-backend/internal/orders"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
	"github.com/lowkeylegends/storefront-backend/pkg/logger"
)

// ListOrders returns the caller's orders, newest first, with items.
func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		rows, err := svc.ListForUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"orders": rows})
	}
}

// GetOrder returns one order by its public number. Guests may look up
// ownerless orders; owned orders are denied to other authenticated users.
func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		callerID := middleware.UserIDFromContext(r.Context())
		order, err := svc.GetByNumber(r.Context(), callerID, chi.URLParam(r, "orderNumber"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"order": order})
	}
}
