// Package requestmeta provides middleware that stamps each request with a
// correlation ID and a request-scoped "now". All operations within a single
// request observe the same timestamp, keeping audit events and logs
// consistent.
package requestmeta

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"unify/pkg/requestcontext"
)

// requestIDHeader is honored when set by an upstream proxy so correlation IDs
// survive hop boundaries.
const requestIDHeader = "X-Request-ID"

// Middleware assigns a request ID (generating one when the header is absent)
// and captures the request start time into the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
