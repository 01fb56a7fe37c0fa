package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/inventory-service/pkg/correlationid"
)

// CorrelationID attaches the inbound correlation ID to the request context,
// generating one when the client did not send any, and echoes it back on the
// response.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID := r.Header.Get(correlationid.Header)
			if correlationID == "" {
				correlationID = uuid.NewString()
			}

			ctx := correlationid.NewContext(r.Context(), correlationID)
			w.Header().Set(correlationid.Header, correlationID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
