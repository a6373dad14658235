// Package cloudinarytest runs an in-memory stand-in for the provider's upload
// and destroy endpoints. It verifies request signatures the way the provider does.
package cloudinarytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
	"testing"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
)

// Server is a fake provider account.
type Server struct {
	*httptest.Server

	CloudName string
	APIKey    string
	Secret    string
	Preset    string
	Version   int64

	// UploadError, when set, rejects every upload with this provider message.
	UploadError string
	// DestroyResult, when set, overrides the result of every destroy call.
	DestroyResult string

	mu           sync.Mutex
	assets       map[string]bool
	uploadCalls  int
	destroyCalls int
	destroyed    []string
}

func NewServer(t testing.TB, cloudName, apiKey, secret, preset string) *Server {
	t.Helper()
	s := &Server{
		CloudName: cloudName,
		APIKey:    apiKey,
		Secret:    secret,
		Preset:    preset,
		Version:   1712345678,
		assets:    make(map[string]bool),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// HostPrefix is the managed delivery prefix of the fake account.
func (s *Server) HostPrefix() string {
	return cloudinary.HostPrefix(cloudinary.DefaultDeliveryBaseURL, s.CloudName)
}

// Put registers an existing asset.
func (s *Server) Put(kind cloudinary.ResourceKind, publicID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets[key(kind, publicID)] = true
}

// Has reports whether the asset is currently stored.
func (s *Server) Has(kind cloudinary.ResourceKind, publicID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assets[key(kind, publicID)]
}

func (s *Server) UploadCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploadCalls
}

func (s *Server) DestroyCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyCalls
}

// Destroyed lists the public IDs received by destroy calls, in arrival order.
func (s *Server) Destroyed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.destroyed...)
}

func key(kind cloudinary.ResourceKind, publicID string) string {
	return string(kind) + ":" + publicID
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	// /<cloud>/<kind>/<action>
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if r.Method != http.MethodPost || len(parts) != 3 || parts[0] != s.CloudName {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]string{"message": "unknown endpoint"}})
		return
	}
	kind := cloudinary.ResourceKind(parts[1])

	switch parts[2] {
	case "upload":
		s.upload(w, r, kind)
	case "destroy":
		s.destroy(w, r, kind)
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]string{"message": "unknown action"}})
	}
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request, kind cloudinary.ResourceKind) {
	s.mu.Lock()
	s.uploadCalls++
	s.mu.Unlock()

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		fail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	if msg := s.verify(r, kind); msg != "" {
		fail(w, http.StatusUnauthorized, msg)
		return
	}
	if s.UploadError != "" {
		fail(w, http.StatusBadRequest, s.UploadError)
		return
	}
	_, header, err := r.FormFile("file")
	if err != nil {
		fail(w, http.StatusBadRequest, "Missing required parameter - file")
		return
	}

	ext := path.Ext(header.Filename)
	publicID := path.Join(r.FormValue("folder"), strings.TrimSuffix(header.Filename, ext))
	s.Put(kind, publicID)

	secureURL := fmt.Sprintf("%s%s/upload/v%d/%s%s", s.HostPrefix(), kind, s.Version, publicID, ext)
	writeJSON(w, http.StatusOK, map[string]any{
		"public_id":     publicID,
		"secure_url":    secureURL,
		"resource_type": string(kind),
	})
}

func (s *Server) destroy(w http.ResponseWriter, r *http.Request, kind cloudinary.ResourceKind) {
	s.mu.Lock()
	s.destroyCalls++
	s.mu.Unlock()

	if err := r.ParseForm(); err != nil {
		fail(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := s.verify(r, kind); msg != "" {
		fail(w, http.StatusUnauthorized, msg)
		return
	}

	publicID := r.PostFormValue("public_id")
	s.mu.Lock()
	s.destroyed = append(s.destroyed, publicID)
	override := s.DestroyResult
	k := key(kind, publicID)
	existed := s.assets[k]
	delete(s.assets, k)
	s.mu.Unlock()

	result := "not found"
	if existed {
		result = "ok"
	}
	if override != "" {
		result = override
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}

// verify recomputes the signature over every posted parameter except the
// file, the api key and the signature itself.
func (s *Server) verify(r *http.Request, kind cloudinary.ResourceKind) string {
	if r.FormValue("api_key") != s.APIKey {
		return "Invalid api_key"
	}
	if kind == cloudinary.KindVideo && r.FormValue("resource_type") != string(cloudinary.KindVideo) {
		return "resource_type mismatch"
	}
	if up := r.FormValue("upload_preset"); up != "" && up != s.Preset {
		return "Upload preset not found"
	}

	values := r.PostForm
	if r.MultipartForm != nil {
		values = r.MultipartForm.Value
	}
	params := cloudinary.Params{}
	for k, v := range values {
		if k == "api_key" || k == "signature" || k == "file" || len(v) == 0 {
			continue
		}
		params[k] = v[0]
	}
	want, err := cloudinary.Sign(params, s.Secret)
	if err != nil {
		return "Invalid signature parameters"
	}
	if r.FormValue("signature") != want {
		return "Invalid Signature " + r.FormValue("signature")
	}
	return ""
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": map[string]string{"message": msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
