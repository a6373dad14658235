package media

import (
	"context"
	"errors"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/metrics"
	"github.com/fhuszti/paper-site-go/internal/port"
	"golang.org/x/sync/errgroup"
)

// PendingUpload is one file waiting to be sent to the asset CDN.
type PendingUpload struct {
	Field  string
	Folder string
	Kind   cloudinary.ResourceKind
	File   port.FileUpload
}

// UploadBatch validates every file, then uploads them concurrently. The
// returned URLs are index-aligned with uploads. Nothing is sent when any file
// is invalid. Uploads already in flight are allowed to finish when a sibling
// fails; the first failure is returned.
func UploadBatch(ctx context.Context, uploader port.AssetUploader, uploads []PendingUpload) ([]string, error) {
	for _, u := range uploads {
		if err := ValidateFile(u.Field, u.File, u.Kind); err != nil {
			return nil, err
		}
	}

	urls := make([]string, len(uploads))
	var g errgroup.Group
	for i, u := range uploads {
		g.Go(func() error {
			url, err := uploader.Upload(ctx, cloudinary.UploadInput{
				File:     u.File.Content,
				Filename: u.File.Filename,
				Folder:   u.Folder,
				Kind:     u.Kind,
			})
			if err != nil {
				metrics.Uploads.WithLabelValues(string(u.Kind), "failed").Inc()
				logger.Errorf(ctx, "❌  upload of %q to %q failed: %v", u.File.Filename, u.Folder, err)
				return err
			}
			metrics.Uploads.WithLabelValues(string(u.Kind), "ok").Inc()
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if !errors.Is(err, cloudinary.ErrUploadFailed) && !errors.Is(err, cloudinary.ErrSigning) {
			err = &cloudinary.UploadFailedError{Message: "unexpected upload error", Err: err}
		}
		return nil, err
	}
	return urls, nil
}
