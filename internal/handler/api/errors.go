package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/usecase/catalog"
	"github.com/fhuszti/paper-site-go/internal/usecase/lead"
	"github.com/fhuszti/paper-site-go/internal/usecase/media"
)

// writeServiceError maps usecase errors to HTTP responses. Provider and
// signing details are logged, never returned.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var vErr *media.ValidationError
	var upErr *cloudinary.UploadFailedError
	var delErr *cloudinary.DeletionFailedError

	switch {
	case errors.As(err, &vErr):
		WriteErrorDetails(w, http.StatusBadRequest, vErr.Message, vErr.Fields, nil)
	case errors.Is(err, media.ErrInvalidResourceType):
		WriteErrorDetails(w, http.StatusBadRequest, "Invalid resource type", map[string]string{"resource_type": "oneof"}, nil)
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, lead.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, catalog.ErrCategoryInUse):
		WriteError(w, http.StatusConflict, "Category still has products", nil)
	case errors.As(err, &upErr):
		WriteErrorDetails(w, http.StatusBadGateway, "Upload failed", upErr.Message, err)
	case errors.Is(err, cloudinary.ErrUploadFailed):
		WriteError(w, http.StatusBadGateway, "Upload failed", err)
	case errors.As(err, &delErr):
		WriteErrorDetails(w, http.StatusBadGateway, "Failed to delete media", delErr.Message, err)
	case errors.Is(err, cloudinary.ErrDeletionFailed):
		WriteError(w, http.StatusBadGateway, "Failed to delete media", err)
	case errors.Is(err, cloudinary.ErrSigning):
		WriteError(w, http.StatusInternalServerError, "Internal server error", err)
	default:
		WriteError(w, http.StatusInternalServerError, fallback, err)
	}
}
