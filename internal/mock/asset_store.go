package mock

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
)

const DefaultHostPrefix = "https://res.cloudinary.com/demo/"

// AssetStore is an in-memory asset CDN safe for concurrent use.
type AssetStore struct {
	Prefix string

	// errors
	UploadErr        error
	UploadErrByName  map[string]error
	DestroyErr       error
	DestroyErrByID   map[string]error
	DestroyResByID   map[string]cloudinary.DestroyResult
	DefaultDestroyed cloudinary.DestroyResult

	mu       sync.Mutex
	uploads  []cloudinary.UploadInput
	destroys []cloudinary.PublicAsset
}

func (s *AssetStore) HostPrefix() string {
	if s.Prefix == "" {
		return DefaultHostPrefix
	}
	return s.Prefix
}

// Upload returns <prefix><kind>/upload/v1/<folder>/<filename>.
func (s *AssetStore) Upload(ctx context.Context, in cloudinary.UploadInput) (string, error) {
	if in.File != nil {
		_, _ = io.Copy(io.Discard, in.File)
	}
	s.mu.Lock()
	s.uploads = append(s.uploads, in)
	s.mu.Unlock()

	if err, ok := s.UploadErrByName[in.Filename]; ok {
		return "", err
	}
	if s.UploadErr != nil {
		return "", s.UploadErr
	}
	return fmt.Sprintf("%s%s/upload/v1/%s", s.HostPrefix(), in.Kind, path.Join(in.Folder, in.Filename)), nil
}

func (s *AssetStore) Destroy(ctx context.Context, publicID string, kind cloudinary.ResourceKind) (cloudinary.DestroyResult, error) {
	s.mu.Lock()
	s.destroys = append(s.destroys, cloudinary.PublicAsset{PublicID: publicID, Kind: kind})
	s.mu.Unlock()

	if err, ok := s.DestroyErrByID[publicID]; ok {
		return "", err
	}
	if s.DestroyErr != nil {
		return "", s.DestroyErr
	}
	if res, ok := s.DestroyResByID[publicID]; ok {
		return res, nil
	}
	if s.DefaultDestroyed != "" {
		return s.DefaultDestroyed, nil
	}
	return cloudinary.Deleted, nil
}

func (s *AssetStore) Uploads() []cloudinary.UploadInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]cloudinary.UploadInput(nil), s.uploads...)
}

func (s *AssetStore) Destroys() []cloudinary.PublicAsset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]cloudinary.PublicAsset(nil), s.destroys...)
}

// DestroyedIDs lists destroyed public IDs in call order.
func (s *AssetStore) DestroyedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.destroys))
	for i, d := range s.destroys {
		out[i] = d.PublicID
	}
	return out
}

// URL builds a managed URL the way Upload does.
func (s *AssetStore) URL(kind cloudinary.ResourceKind, publicIDWithExt string) string {
	return s.HostPrefix() + string(kind) + "/upload/v1/" + strings.TrimPrefix(publicIDWithExt, "/")
}

// UploadSigner signs with a fixed signature.
type UploadSigner struct {
	Sig cloudinary.Signature
	Err error

	Called bool
	Folder string
	Kind   cloudinary.ResourceKind
}

func (s *UploadSigner) SignUpload(folder string, kind cloudinary.ResourceKind) (cloudinary.Signature, error) {
	s.Called = true
	s.Folder = folder
	s.Kind = kind
	if s.Err != nil {
		return cloudinary.Signature{}, s.Err
	}
	return s.Sig, nil
}
