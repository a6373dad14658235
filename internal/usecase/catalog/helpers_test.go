package catalog

import (
	"bytes"
	"io"

	"github.com/fhuszti/paper-site-go/internal/mock"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

const prefix = mock.DefaultHostPrefix

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func pngUpload(name string, size int) port.FileUpload {
	b := make([]byte, size)
	copy(b, pngHeader)
	return port.FileUpload{Filename: name, Size: int64(size), Content: bytes.NewReader(b)}
}

func img(publicIDWithExt string) string {
	return prefix + "image/upload/v1/" + publicIDWithExt
}

func fixedID() uuid.UUID {
	id, _ := uuid.Parse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	return id
}

func bytesReader(b []byte) io.ReadSeeker { return bytes.NewReader(b) }
