package controllers

import (
	"net/http"

	"github.com/lowkeylegends/storefront-backend/api/middleware"
	"github.com/lowkeylegends/storefront-backend/api/responses"
	"github.com/lowkeylegends/storefront-backend/api/validators"
	"github.com/lowkeylegends/storefront-backend/internal/marketing"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
	"github.com/lowkeylegends/storefront-backend/pkg/logger"
)

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe opts an email into the newsletter. An authenticated caller gets
// linked to the subscription.
func Subscribe(svc marketing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "marketing service unavailable"))
			return
		}

		var payload subscribeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if err := svc.Subscribe(r.Context(), payload.Email, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"message": "Subscribed"})
	}
}

// Unsubscribe opts an email out of the newsletter.
func Unsubscribe(svc marketing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "marketing service unavailable"))
			return
		}

		var payload subscribeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Unsubscribe(r.Context(), payload.Email); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"message": "Unsubscribed"})
	}
}
