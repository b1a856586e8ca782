package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/commercekit/payment-gateways/internal/interfaces/rest"
)

// Timeout bounds request handling. An expired request is answered with the
// same error envelope the handlers use, so hosts parse one shape everywhere.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body, _ := json.Marshal(rest.ErrorResponse{
		Error: rest.ErrorDetail{
			Code:    "TIMEOUT",
			Message: "request timed out",
		},
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			http.TimeoutHandler(next, timeout, string(body)).ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
