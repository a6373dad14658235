package cloudinary

import (
	"fmt"
	"io"
)

// ResourceKind is the provider-side resource type of an asset.
type ResourceKind string

const (
	KindImage ResourceKind = "image"
	KindVideo ResourceKind = "video"
)

// ParseResourceKind maps a request value to a ResourceKind, defaulting to image.
func ParseResourceKind(s string) (ResourceKind, error) {
	switch s {
	case "", string(KindImage):
		return KindImage, nil
	case string(KindVideo):
		return KindVideo, nil
	default:
		return "", fmt.Errorf("unsupported resource type %q", s)
	}
}

// Signature is a time-boxed upload authorisation handed to the uploader.
type Signature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
}

// UploadInput describes one file sent to the provider.
type UploadInput struct {
	File     io.Reader
	Filename string
	Folder   string
	Kind     ResourceKind
}

// DestroyResult is the successful outcome of a destroy call.
type DestroyResult string

const (
	Deleted  DestroyResult = "ok"
	NotFound DestroyResult = "not found"
)

// PublicAsset identifies a stored asset by its public ID and resource kind.
type PublicAsset struct {
	PublicID string
	Kind     ResourceKind
}
