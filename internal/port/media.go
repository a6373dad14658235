package port

import (
	"context"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
)

// AssetUploader sends one file to the asset CDN and returns its secure URL.
type AssetUploader interface {
	Upload(ctx context.Context, in cloudinary.UploadInput) (string, error)
}

// AssetDestroyer removes one asset from the asset CDN.
type AssetDestroyer interface {
	Destroy(ctx context.Context, publicID string, kind cloudinary.ResourceKind) (cloudinary.DestroyResult, error)
}

// AssetStore is the full surface of the asset CDN used by the reconciliation workflow.
type AssetStore interface {
	AssetUploader
	AssetDestroyer
	// HostPrefix is the delivery URL prefix identifying managed assets.
	HostPrefix() string
}

// UploadSigner issues upload signatures for browsers uploading directly to the CDN.
type UploadSigner interface {
	SignUpload(folder string, kind cloudinary.ResourceKind) (cloudinary.Signature, error)
}

// Warning reports an asset that could not be removed while the operation itself succeeded.
type Warning struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// MediaPurger destroys every managed asset behind the given URLs.
type MediaPurger interface {
	Purge(ctx context.Context, urls []string) []Warning
}
