package media

import (
	"fmt"
	"io"
	"strings"

	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/gabriel-vasile/mimetype"
)

const (
	MaxImageSize int64 = 10 * 1024 * 1024  // 10 MB
	MaxVideoSize int64 = 100 * 1024 * 1024 // 100 MB
)

// MaxFileSize is the upload limit for kind.
func MaxFileSize(kind cloudinary.ResourceKind) int64 {
	if kind == cloudinary.KindVideo {
		return MaxVideoSize
	}
	return MaxImageSize
}

// ValidateFile checks size and sniffed MIME family of one file. The content is
// rewound so it can be uploaded afterwards.
func ValidateFile(field string, f port.FileUpload, kind cloudinary.ResourceKind) error {
	if f.Size <= 0 {
		return newValidationError(field, "empty", "file %q is empty", f.Filename)
	}
	if max := MaxFileSize(kind); f.Size > max {
		return newValidationError(field, "max", "file %q is %s, above the %s limit for %ss",
			f.Filename, humanSize(f.Size), humanSize(max), kind)
	}
	if f.Content == nil {
		return newValidationError(field, "required", "file %q has no content", f.Filename)
	}

	mt, err := mimetype.DetectReader(f.Content)
	if err != nil {
		return fmt.Errorf("sniff %q: %w", f.Filename, err)
	}
	if _, err := f.Content.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %q: %w", f.Filename, err)
	}

	if !strings.HasPrefix(mt.String(), string(kind)+"/") {
		return newValidationError(field, "mimetype", "file %q is %s, expected an %s", f.Filename, mt.String(), kind)
	}
	return nil
}

func humanSize(n int64) string {
	const mb = 1024 * 1024
	if n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	return fmt.Sprintf("%.1fMB", float64(n)/mb)
}
