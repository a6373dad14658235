package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fhuszti/paper-site-go/internal/api_context"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/port"
)

func CreateCategoryHandler(svc port.CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.CategoryInput
		form, err := parseAdminForm(w, r, &in)
		if err != nil {
			writeFormError(w, err)
			return
		}
		defer form.Close()
		in.Files = form.Files

		res, err := svc.CreateCategory(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "Could not create category")
			return
		}
		logSaved(r, "category", res.Warnings)
		RespondJSON(w, http.StatusCreated, res)
	}
}

func UpdateCategoryHandler(svc port.CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		var in port.CategoryInput
		form, err := parseAdminForm(w, r, &in)
		if err != nil {
			writeFormError(w, err)
			return
		}
		defer form.Close()
		in.Files = form.Files

		res, err := svc.UpdateCategory(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, err, "Could not update category")
			return
		}
		logSaved(r, "category", res.Warnings)
		RespondJSON(w, http.StatusOK, res)
	}
}

func DeleteCategoryHandler(svc port.CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		res, err := svc.DeleteCategory(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Could not delete category")
			return
		}
		logSaved(r, "category", res.Warnings)
		RespondJSON(w, http.StatusOK, res)
	}
}

func CreateProductHandler(svc port.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.ProductInput
		form, err := parseAdminForm(w, r, &in)
		if err != nil {
			writeFormError(w, err)
			return
		}
		defer form.Close()
		in.Files = form.Files

		res, err := svc.CreateProduct(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "Could not create product")
			return
		}
		logSaved(r, "product", res.Warnings)
		RespondJSON(w, http.StatusCreated, res)
	}
}

func UpdateProductHandler(svc port.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		var in port.ProductInput
		form, err := parseAdminForm(w, r, &in)
		if err != nil {
			writeFormError(w, err)
			return
		}
		defer form.Close()
		in.Files = form.Files

		res, err := svc.UpdateProduct(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, err, "Could not update product")
			return
		}
		logSaved(r, "product", res.Warnings)
		RespondJSON(w, http.StatusOK, res)
	}
}

func DeleteProductHandler(svc port.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		res, err := svc.DeleteProduct(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Could not delete product")
			return
		}
		logSaved(r, "product", res.Warnings)
		RespondJSON(w, http.StatusOK, res)
	}
}

// UpsertContentHandler creates or replaces the content section named by {key}.
func UpsertContentHandler(svc port.ContentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			WriteError(w, http.StatusBadRequest, "Key is required", nil)
			return
		}
		var in port.ContentInput
		form, err := parseAdminForm(w, r, &in)
		if err != nil {
			writeFormError(w, err)
			return
		}
		defer form.Close()
		in.Files = form.Files

		res, err := svc.UpsertContent(r.Context(), key, in)
		if err != nil {
			writeServiceError(w, err, "Could not save content")
			return
		}
		logSaved(r, "content "+key, res.Warnings)
		RespondJSON(w, http.StatusOK, res)
	}
}

func logSaved(r *http.Request, what string, warnings []port.Warning) {
	if len(warnings) == 0 {
		logger.Infof(r.Context(), "✅  %s %s done", r.Method, what)
		return
	}
	logger.Warnf(r.Context(), "⚠️  %s %s done with %d media warning(s)", r.Method, what, len(warnings))
}
