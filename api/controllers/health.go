package controllers

import (
	"net/http"
	"time"

	"github.com/lowkeylegends/storefront-backend/api/responses"
)

// Health reports process liveness.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, responses.Fields{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
