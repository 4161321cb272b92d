package txt2epub

import (
	"strings"
	"time"
)

// ParagraphSeparator joins consecutive body lines of a Chapter. Body lines
// never contain it, so splitting a joined body on it restores the lines.
const ParagraphSeparator = "\n"

// UnitKind distinguishes the two kinds of Unit.
type UnitKind int

const (
	// KindChapter is a titled block of body content.
	KindChapter UnitKind = iota + 1

	// KindVolume is a structural grouping header with no body.
	KindVolume
)

// String returns "chapter" or "volume".
func (k UnitKind) String() string {
	switch k {
	case KindChapter:
		return "chapter"
	case KindVolume:
		return "volume"
	default:
		return "unknown"
	}
}

// Unit is a Volume or Chapter produced by segmentation.
// Units are never mutated after the Document is built; accessors on
// Document return copies.
type Unit struct {
	// Kind is KindVolume or KindChapter.
	Kind UnitKind

	// Title is the marker line verbatim, or for a Chapter without a
	// preceding marker, its first content line.
	Title string

	// BodyLines holds the paragraphs of a Chapter in input order.
	// It is always empty for a Volume.
	BodyLines []string

	// Sequence is the 1-based position of the Unit in emission order.
	// It is zero until the Document builder assigns it.
	Sequence int

	// Slot is the addressable identity derived from Sequence
	// (e.g., "chapter07", "volume01"). Empty until assigned.
	Slot string
}

// Body returns the body lines joined with ParagraphSeparator.
func (u Unit) Body() string {
	return strings.Join(u.BodyLines, ParagraphSeparator)
}

// Href returns the container path of the Unit's content document,
// relative to the package document.
func (u Unit) Href() string {
	if u.Slot == "" {
		return ""
	}
	return contentDir + "/" + u.Slot + ".xhtml"
}

// TOCEntry is a navigation node referencing a Unit.
// Volume entries own the chapters that follow them; the tree is at most
// two levels deep.
type TOCEntry struct {
	// Title is the Unit title.
	Title string

	// Slot is the Unit slot name this entry points to.
	Slot string

	// Href is the content document path of the Unit.
	Href string

	// Children contains the Chapter entries of a Volume.
	Children []TOCEntry
}

// Metadata holds the book-level fields the engine passes through to the
// EPUB writer. The engine never derives these from the text.
type Metadata struct {
	// Title is the dc:title value. Required.
	Title string

	// Authors contains dc:creator values in order.
	Authors []string

	// Language is a BCP 47 tag. Defaults to "zh".
	Language string

	// Identifier is the dc:identifier value. Defaults to a urn:uuid.
	Identifier string

	// Publisher is the optional dc:publisher value.
	Publisher string

	// Description is the optional dc:description value.
	Description string

	// Modified is written as dcterms:modified. Defaults to the current time.
	Modified time.Time
}

// Cover holds the cover image supplied by the caller.
type Cover struct {
	// Data is the raw image bytes.
	Data []byte

	// Ext is the file extension including the dot (".jpg", ".jpeg", ".png").
	Ext string
}
