package txt2epub

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when Metadata.Language is empty.
const DefaultLanguage = "zh"

// NormalizeMetadata returns a copy of md with whitespace trimmed, empty
// authors removed and defaults applied: Language "zh", Identifier a fresh
// "urn:uuid:" value, Modified the current time. The language tag is
// validated and canonicalised as BCP 47.
//
// It returns an error wrapping ErrInvalidMetadata when the title is empty
// or the language tag cannot be parsed.
func NormalizeMetadata(md Metadata) (Metadata, error) {
	out := Metadata{
		Title:       strings.TrimSpace(md.Title),
		Language:    strings.TrimSpace(md.Language),
		Identifier:  strings.TrimSpace(md.Identifier),
		Publisher:   strings.TrimSpace(md.Publisher),
		Description: strings.TrimSpace(md.Description),
		Modified:    md.Modified,
	}

	if out.Title == "" {
		return Metadata{}, fmt.Errorf("txt2epub: title is required: %w", ErrInvalidMetadata)
	}

	for _, a := range md.Authors {
		if v := strings.TrimSpace(a); v != "" {
			out.Authors = append(out.Authors, v)
		}
	}

	if out.Language == "" {
		out.Language = DefaultLanguage
	}
	tag, err := language.Parse(out.Language)
	if err != nil {
		return Metadata{}, fmt.Errorf("txt2epub: language %q: %v: %w", out.Language, err, ErrInvalidMetadata)
	}
	out.Language = tag.String()

	if out.Identifier == "" {
		out.Identifier = "urn:uuid:" + uuid.NewString()
	}

	if out.Modified.IsZero() {
		out.Modified = time.Now()
	}
	out.Modified = out.Modified.UTC().Truncate(time.Second)

	return out, nil
}

// TitleFromPath derives a book title from a text file path: the base name
// without its extension.
func TitleFromPath(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath returns the EPUB path for a text file: same directory, same
// base name, ".epub" extension.
func OutputPath(textPath string) string {
	dir := filepath.Dir(textPath)
	return filepath.Join(dir, TitleFromPath(textPath)+".epub")
}
