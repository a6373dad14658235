package media

import (
	"bytes"

	"github.com/fhuszti/paper-site-go/internal/port"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	mp4Header = []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom\x00\x00\x00\x08free")
)

func fileOf(name string, header []byte, size int) port.FileUpload {
	b := make([]byte, size)
	copy(b, header)
	return port.FileUpload{Filename: name, Size: int64(len(b)), Content: bytes.NewReader(b)}
}

func pngFile(name string, size int) port.FileUpload { return fileOf(name, pngHeader, size) }
func mp4File(name string, size int) port.FileUpload { return fileOf(name, mp4Header, size) }
