package media

import (
	"context"
	"fmt"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/metrics"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/validation"
)

type deleteMediaSrv struct {
	destroyer port.AssetDestroyer
}

// compile-time check: *deleteMediaSrv must satisfy port.MediaDeleter
var _ port.MediaDeleter = (*deleteMediaSrv)(nil)

// NewMediaDeleter constructs a MediaDeleter implementation.
func NewMediaDeleter(destroyer port.AssetDestroyer) port.MediaDeleter {
	return &deleteMediaSrv{destroyer: destroyer}
}

// DeleteMedia destroys one asset by public ID. An asset that is already gone
// is reported as NotFound, not as an error.
func (s *deleteMediaSrv) DeleteMedia(ctx context.Context, in port.DeleteMediaInput) (cloudinary.DestroyResult, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return "", &ValidationError{Message: "invalid delete request", Fields: validation.FieldErrors(err)}
	}
	kind, err := cloudinary.ParseResourceKind(in.ResourceType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResourceType, err)
	}

	res, err := s.destroyer.Destroy(ctx, in.PublicID, kind)
	if err != nil {
		metrics.Destroys.WithLabelValues(string(kind), "failed").Inc()
		return "", err
	}

	switch res {
	case cloudinary.NotFound:
		metrics.Destroys.WithLabelValues(string(kind), "not_found").Inc()
		logger.Infof(ctx, "%s %q was already absent", kind, in.PublicID)
	default:
		metrics.Destroys.WithLabelValues(string(kind), "deleted").Inc()
		logger.Infof(ctx, "✅  destroyed %s %q", kind, in.PublicID)
	}
	return res, nil
}
