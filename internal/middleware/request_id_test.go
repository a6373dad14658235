package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/paper-site-go/internal/api_context"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestWithRequestID(t *testing.T) {
	var got string
	h := chimw.RequestID(WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = api_context.RequestIDFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got != "req-42" {
		t.Errorf("request id in context = %q; want %q", got, "req-42")
	}
	if rec.Header().Get(chimw.RequestIDHeader) != "req-42" {
		t.Errorf("response header = %q", rec.Header().Get(chimw.RequestIDHeader))
	}
}
