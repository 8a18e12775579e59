package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lowkeylegends/storefront-backend/api/middleware"
	"github.com/lowkeylegends/storefront-backend/api/responses"
	"github.com/lowkeylegends/storefront-backend/api/validators"
	"github.com/lowkeylegends/storefront-backend/internal/addresses"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
	"github.com/lowkeylegends/storefront-backend/pkg/logger"
)

type createAddressRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	IsDefault    bool   `json:"isDefault"`
}

func (r createAddressRequest) toInput() addresses.Input {
	return addresses.Input{
		FirstName:    validators.SanitizeString(r.FirstName, 100),
		LastName:     validators.SanitizeString(r.LastName, 100),
		AddressLine1: validators.SanitizeString(r.AddressLine1, 255),
		AddressLine2: validators.SanitizeString(r.AddressLine2, 255),
		City:         validators.SanitizeString(r.City, 100),
		State:        validators.SanitizeString(r.State, 50),
		PostalCode:   validators.SanitizeString(r.PostalCode, 20),
		Country:      validators.SanitizeString(r.Country, 10),
		Phone:        validators.SanitizeString(r.Phone, 30),
		IsDefault:    r.IsDefault,
	}
}

// ListAddresses returns the caller's saved addresses, default first.
func ListAddresses(svc addresses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		rows, err := svc.List(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"addresses": rows})
	}
}

// CreateAddress saves a new address for the caller.
func CreateAddress(svc addresses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var payload createAddressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.Create(r.Context(), userID, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, responses.Fields{"addressId": id})
	}
}

// DeleteAddress removes one of the caller's addresses. Rows belonging to other
// users look like missing rows.
func DeleteAddress(svc addresses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		addressID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "address not found"))
			return
		}

		if err := svc.Delete(r.Context(), userID, addressID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{"message": "Address deleted"})
	}
}
