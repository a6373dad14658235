package middleware

import (
	"context"
	"net/http"

	"github.com/fhuszti/paper-site-go/internal/api_context"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequestID exposes chi's request ID to the logger. It must run after
// chimw.RequestID.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			w.Header().Set(chimw.RequestIDHeader, id)
			r = r.WithContext(context.WithValue(r.Context(), api_context.RequestIDKey, id))
		}
		next.ServeHTTP(w, r)
	})
}
