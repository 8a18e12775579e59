package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lowkeylegends/storefront-backend/api/responses"
	"github.com/lowkeylegends/storefront-backend/internal/tax"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
	"github.com/lowkeylegends/storefront-backend/pkg/logger"
)

// GetTaxRate returns the sales tax rate for a state code. Unknown codes get a
// zero rate rather than an error so checkout math never blocks.
func GetTaxRate(svc tax.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tax service unavailable"))
			return
		}

		rate, stateCode, err := svc.Rate(r.Context(), chi.URLParam(r, "stateCode"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, responses.Fields{
			"rate":      rate,
			"stateCode": stateCode,
		})
	}
}
