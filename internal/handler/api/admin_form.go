package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/usecase/media"
)

const (
	// maxFormBytes caps a whole admin form: one image, a gallery and a few videos.
	maxFormBytes int64 = 512 << 20
	formMemory   int64 = 32 << 20
)

// adminForm is a parsed admin save request. Close releases the uploaded
// files once the save has completed.
type adminForm struct {
	Files port.MediaFiles
	open  []multipart.File
}

func (f *adminForm) Close() {
	for _, file := range f.open {
		_ = file.Close()
	}
	f.open = nil
}

// parseAdminForm decodes the entity fields into payload. A multipart body
// carries them as JSON in the "payload" field next to the "image", "gallery"
// and "videos" files; a JSON body carries only the fields.
func parseAdminForm(w http.ResponseWriter, r *http.Request, payload any) (*adminForm, error) {
	form := &adminForm{}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if err := decodeJSON(w, r, payload); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return form, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(formMemory); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	if raw := r.FormValue("payload"); raw != "" {
		if err := json.Unmarshal([]byte(raw), payload); err != nil {
			return nil, fmt.Errorf("invalid payload: %w", err)
		}
	}

	files := r.MultipartForm.File
	if hs := files["image"]; len(hs) > 0 {
		if len(hs) > 1 {
			return nil, &media.ValidationError{Message: "only one image may be uploaded", Fields: map[string]string{"image": "max"}}
		}
		up, err := form.openFile(hs[0])
		if err != nil {
			return nil, err
		}
		form.Files.Image = &up
	}
	for _, h := range files["gallery"] {
		up, err := form.openFile(h)
		if err != nil {
			return nil, err
		}
		form.Files.Gallery = append(form.Files.Gallery, up)
	}
	for _, h := range files["videos"] {
		up, err := form.openFile(h)
		if err != nil {
			return nil, err
		}
		form.Files.Videos = append(form.Files.Videos, up)
	}
	return form, nil
}

func (f *adminForm) openFile(h *multipart.FileHeader) (port.FileUpload, error) {
	file, err := h.Open()
	if err != nil {
		f.Close()
		return port.FileUpload{}, fmt.Errorf("open %q: %w", h.Filename, err)
	}
	f.open = append(f.open, file)
	return port.FileUpload{Filename: h.Filename, Size: h.Size, Content: file}, nil
}

// writeFormError answers a request whose form could not be read.
func writeFormError(w http.ResponseWriter, err error) {
	var vErr *media.ValidationError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &vErr):
		writeServiceError(w, err, "Invalid request")
	case errors.As(err, &maxErr):
		WriteError(w, http.StatusRequestEntityTooLarge, "Request too large", err)
	default:
		WriteError(w, http.StatusBadRequest, "Invalid request", err)
	}
}
