package api

import (
	"fmt"
	"net/http"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/port"
)

// DeleteMediaHandler destroys one asset with server-held credentials.
// Deleting an asset that is already gone succeeds.
func DeleteMediaHandler(svc port.MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req port.DeleteMediaInput
		if err := decodeJSON(w, r, &req); err != nil {
			WriteErrorDetails(w, http.StatusBadRequest, "Invalid request", map[string]string{"public_id": "required"}, fmt.Errorf("invalid JSON: %w", err))
			return
		}

		res, err := svc.DeleteMedia(r.Context(), req)
		if err != nil {
			writeServiceError(w, err, "Failed to delete media")
			return
		}

		msg := "Media deleted"
		if res == cloudinary.NotFound {
			msg = "Media already deleted"
		}
		RespondJSON(w, http.StatusOK, MessageResponse{Message: msg})
		logger.Infof(r.Context(), "✅  %s: %q", msg, req.PublicID)
	}
}
