package cloudinary

import (
	"errors"
	"fmt"
)

var (
	ErrSigning         = errors.New("cloudinary: invalid signing parameters")
	ErrUploadFailed    = errors.New("cloudinary: upload failed")
	ErrDeletionFailed  = errors.New("cloudinary: deletion failed")
	ErrInvalidAssetURL = errors.New("cloudinary: not a managed asset url")
)

// UploadFailedError carries the provider message of a rejected or interrupted upload.
type UploadFailedError struct {
	Message string
	Err     error
}

func (e *UploadFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload failed: %s: %v", e.Message, e.Err)
	}
	return "upload failed: " + e.Message
}

func (e *UploadFailedError) Is(target error) bool { return target == ErrUploadFailed }

func (e *UploadFailedError) Unwrap() error { return e.Err }

// DeletionFailedError carries the provider message of a failed destroy call.
type DeletionFailedError struct {
	PublicID string
	Message  string
	Err      error
}

func (e *DeletionFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deletion of %q failed: %s: %v", e.PublicID, e.Message, e.Err)
	}
	return fmt.Sprintf("deletion of %q failed: %s", e.PublicID, e.Message)
}

func (e *DeletionFailedError) Is(target error) bool { return target == ErrDeletionFailed }

func (e *DeletionFailedError) Unwrap() error { return e.Err }

func signingErr(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrSigning, fmt.Sprintf(format, a...))
}
