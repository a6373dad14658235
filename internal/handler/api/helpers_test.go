package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fhuszti/paper-site-go/internal/api_context"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

const validIDStr = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

func validID(t testing.TB) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(validIDStr)
	if err != nil {
		t.Fatalf("parse id: %v", err)
	}
	return id
}

func withID(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), api_context.IDKey, id))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t testing.TB, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}
