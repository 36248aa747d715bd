package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupportedPhoto is returned for profile photos gofpdf cannot embed.
var ErrUnsupportedPhoto = errors.New("unsupported photo format")

// Photo is a profile image read into memory before rendering starts.
type Photo struct {
	Data      []byte
	ImageType string
}

var photoTypes = map[string]string{
	"image/jpeg": "JPG",
	"image/png":  "PNG",
	"image/gif":  "GIF",
}

// LoadPhoto reads a profile photo from disk. An empty path yields no photo.
func LoadPhoto(path string) (*Photo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	return NewPhoto(data)
}

// NewPhoto wraps in-memory image bytes after sniffing their format.
func NewPhoto(data []byte) (*Photo, error) {
	if len(data) == 0 {
		return nil, nil
	}
	detected := mimetype.Detect(data)
	for mime, imageType := range photoTypes {
		if detected.Is(mime) {
			return &Photo{Data: data, ImageType: imageType}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPhoto, detected.String())
}
