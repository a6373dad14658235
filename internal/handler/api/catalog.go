package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/usecase/catalog"
)

func GetCategoriesHandler(renderer port.HTTPRenderer, svc port.CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderCached(w, r, renderer, "categories", func(ctx context.Context) (any, error) {
			return svc.ListCategories(ctx)
		})
	}
}

func GetCategoryHandler(renderer port.HTTPRenderer, svc port.CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			WriteError(w, http.StatusBadRequest, "Slug is required", nil)
			return
		}
		renderCached(w, r, renderer, "category:"+slug, func(ctx context.Context) (any, error) {
			return svc.GetCategory(ctx, slug)
		})
	}
}

// GetProductsHandler lists products, optionally narrowed by ?category= and
// ?featured=true.
func GetProductsHandler(renderer port.HTTPRenderer, svc port.CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := port.ProductFilter{Category: q.Get("category")}
		if raw := q.Get("featured"); raw != "" {
			featured, err := strconv.ParseBool(raw)
			if err != nil {
				WriteErrorDetails(w, http.StatusBadRequest, "Invalid query", map[string]string{"featured": "boolean"}, nil)
				return
			}
			f.Featured = featured
		}

		key := productsKey(f)
		renderCached(w, r, renderer, key, func(ctx context.Context) (any, error) {
			return svc.ListProducts(ctx, f)
		})
	}
}

func GetProductHandler(renderer port.HTTPRenderer, svc port.CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			WriteError(w, http.StatusBadRequest, "Slug is required", nil)
			return
		}
		renderCached(w, r, renderer, "product:"+slug, func(ctx context.Context) (any, error) {
			return svc.GetProduct(ctx, slug)
		})
	}
}

func GetContentHandler(renderer port.HTTPRenderer, svc port.CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			WriteError(w, http.StatusBadRequest, "Key is required", nil)
			return
		}
		renderCached(w, r, renderer, "content:"+key, func(ctx context.Context) (any, error) {
			return svc.GetContent(ctx, key)
		})
	}
}

func productsKey(f port.ProductFilter) string {
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Featured {
		v.Set("featured", "1")
	}
	if len(v) == 0 {
		return "products"
	}
	return "products?" + v.Encode()
}

func renderCached(w http.ResponseWriter, r *http.Request, renderer port.HTTPRenderer, key string, load port.CatalogLoader) {
	raw, etag, err := renderer.RenderCatalog(r.Context(), key, load)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Not found", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "Could not load catalog", err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	if etag != "" {
		w.Header().Set("ETag", etag)
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	RespondRawJSON(w, http.StatusOK, raw)
}
