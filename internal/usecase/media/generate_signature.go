package media

import (
	"context"
	"fmt"
	"regexp"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/metrics"
	"github.com/fhuszti/paper-site-go/internal/port"
)

const DefaultFolder = "default_folder"

var folderRe = regexp.MustCompile(`^[A-Za-z0-9_-]+(/[A-Za-z0-9_-]+)*$`)

type signatureIssuerSrv struct {
	signer port.UploadSigner
}

// compile-time check: *signatureIssuerSrv must satisfy port.SignatureIssuer
var _ port.SignatureIssuer = (*signatureIssuerSrv)(nil)

func NewSignatureIssuer(signer port.UploadSigner) port.SignatureIssuer {
	return &signatureIssuerSrv{signer: signer}
}

// IssueSignature signs a direct upload into in.Folder.
func (s *signatureIssuerSrv) IssueSignature(ctx context.Context, in port.GenerateSignatureInput) (cloudinary.Signature, error) {
	folder := in.Folder
	if folder == "" {
		folder = DefaultFolder
	}
	if !folderRe.MatchString(folder) {
		return cloudinary.Signature{}, newValidationError("folder", "folder", "folder %q is not allowed", folder)
	}
	kind, err := cloudinary.ParseResourceKind(in.ResourceType)
	if err != nil {
		return cloudinary.Signature{}, fmt.Errorf("%w: %v", ErrInvalidResourceType, err)
	}

	sig, err := s.signer.SignUpload(folder, kind)
	if err != nil {
		return cloudinary.Signature{}, err
	}

	metrics.SignaturesIssued.WithLabelValues(string(kind)).Inc()
	logger.Infof(ctx, "issued %s upload signature for folder %q", kind, folder)
	return sig, nil
}
