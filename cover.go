package txt2epub

import (
	"fmt"
	"net/http"
	"strings"
)

// coverMediaTypes maps supported cover extensions to media types.
var coverMediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// SupportedCoverExtension reports whether ext (with leading dot, any case)
// is an accepted cover image extension.
func SupportedCoverExtension(ext string) bool {
	_, ok := coverMediaTypes[strings.ToLower(ext)]
	return ok
}

// coverImage is a validated cover ready to be written into the container.
type coverImage struct {
	href      string // relative to the package document
	mediaType string
	data      []byte
}

// prepareCover validates c and returns its container representation.
// The media type is chosen from the extension and must agree with the
// sniffed content of the bytes.
func prepareCover(c *Cover) (*coverImage, error) {
	ext := strings.ToLower(strings.TrimSpace(c.Ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	mediaType, ok := coverMediaTypes[ext]
	if !ok {
		return nil, fmt.Errorf("txt2epub: unsupported cover extension %q: %w", c.Ext, ErrInvalidCover)
	}
	if len(c.Data) == 0 {
		return nil, fmt.Errorf("txt2epub: cover image is empty: %w", ErrInvalidCover)
	}
	if sniffed := http.DetectContentType(c.Data); sniffed != mediaType {
		return nil, fmt.Errorf("txt2epub: cover extension %s does not match content %s: %w", ext, sniffed, ErrInvalidCover)
	}

	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return &coverImage{
		href:      imageDir + "/cover" + ext,
		mediaType: mediaType,
		data:      c.Data,
	}, nil
}
