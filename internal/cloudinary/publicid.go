package cloudinary

import (
	"regexp"
	"strings"
)

const uploadSegment = "/upload/"

var versionSegment = regexp.MustCompile(`^v[0-9]+$`)

// IsManaged reports whether rawURL points into the managed delivery host.
func IsManaged(hostPrefix, rawURL string) bool {
	return hostPrefix != "" && strings.HasPrefix(rawURL, hostPrefix)
}

// ExtractPublicID derives the public ID and resource kind of a delivery URL.
// URLs outside hostPrefix, or without anything after "/upload/", yield
// ErrInvalidAssetURL.
func ExtractPublicID(hostPrefix, rawURL string) (PublicAsset, error) {
	if !IsManaged(hostPrefix, rawURL) {
		return PublicAsset{}, ErrInvalidAssetURL
	}

	idx := strings.Index(rawURL, uploadSegment)
	if idx < 0 {
		return PublicAsset{}, ErrInvalidAssetURL
	}

	kind := KindImage
	if strings.HasSuffix(rawURL[:idx], "/"+string(KindVideo)) {
		kind = KindVideo
	}

	rest := rawURL[idx+len(uploadSegment):]
	parts := strings.Split(rest, "/")
	if len(parts) > 0 && versionSegment.MatchString(parts[0]) {
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return PublicAsset{}, ErrInvalidAssetURL
	}

	// the extension only ever lives on the last component
	last := parts[len(parts)-1]
	if dot := strings.LastIndex(last, "."); dot >= 0 {
		parts[len(parts)-1] = last[:dot]
	}

	publicID := strings.Join(parts, "/")
	if publicID == "" || strings.HasSuffix(publicID, "/") {
		return PublicAsset{}, ErrInvalidAssetURL
	}

	return PublicAsset{PublicID: publicID, Kind: kind}, nil
}
