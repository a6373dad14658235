package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/port"
)

const maxJSONBody = 1 << 20

// GenerateSignatureHandler signs a direct browser upload. An empty body
// signs an image upload into the default folder.
func GenerateSignatureHandler(svc port.SignatureIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req port.GenerateSignatureInput
		if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		sig, err := svc.IssueSignature(r.Context(), req)
		if err != nil {
			writeServiceError(w, err, "Could not generate signature")
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, sig)
		logger.Debugf(r.Context(), "signature issued for folder %q", req.Folder)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(v)
}
