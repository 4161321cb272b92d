package txt2epub

import (
	"fmt"
	"strconv"
)

// contentDir is the directory, relative to the package document, that
// holds the per-Unit content documents.
const contentDir = "text"

// minSlotWidth is the smallest zero-padding width of slot numbers.
const minSlotWidth = 2

// Document is the assembled book model: Units in emission order, the
// two-level table of contents and the spine. It is read-only once built;
// every accessor returns a copy.
type Document struct {
	units    []Unit
	markup   []string // rendered body fragment per unit, parallel to units
	toc      []TOCEntry
	bySlot   map[string]int
	warnings []string
	encoding string
}

// Build assigns sequence numbers and slot names to units in order, builds
// the table of contents and the spine, and renders each Unit's markup.
//
// Sequence numbers start at 1 and are shared by Volumes and Chapters.
// Slot numbers are zero-padded to at least two digits and widened so that
// every slot in the document has the same width.
//
// Build returns ErrEmptyDocument when units is empty.
func Build(units []Unit) (*Document, error) {
	if len(units) == 0 {
		return nil, ErrEmptyDocument
	}

	width := slotWidth(len(units))
	d := &Document{
		units:  make([]Unit, len(units)),
		markup: make([]string, len(units)),
		bySlot: make(map[string]int, len(units)),
	}

	volume := -1 // index in d.toc of the open Volume entry
	for i, in := range units {
		if in.Title == "" {
			return nil, fmt.Errorf("txt2epub: unit %d has an empty title", i+1)
		}

		u := Unit{
			Kind:      in.Kind,
			Title:     in.Title,
			BodyLines: append([]string(nil), in.BodyLines...),
			Sequence:  i + 1,
		}

		switch u.Kind {
		case KindVolume:
			if len(u.BodyLines) > 0 {
				return nil, fmt.Errorf("txt2epub: volume %q has body content", u.Title)
			}
			u.Slot = slotName("volume", u.Sequence, width)
			d.toc = append(d.toc, TOCEntry{Title: u.Title, Slot: u.Slot, Href: u.Href()})
			volume = len(d.toc) - 1
		case KindChapter:
			u.Slot = slotName("chapter", u.Sequence, width)
			entry := TOCEntry{Title: u.Title, Slot: u.Slot, Href: u.Href()}
			if volume >= 0 {
				d.toc[volume].Children = append(d.toc[volume].Children, entry)
			} else {
				d.toc = append(d.toc, entry)
			}
		default:
			return nil, fmt.Errorf("txt2epub: unit %d has unknown kind %d", i+1, int(u.Kind))
		}

		markup, err := renderUnit(u)
		if err != nil {
			return nil, fmt.Errorf("txt2epub: render %s: %w", u.Slot, err)
		}

		d.units[i] = u
		d.markup[i] = markup
		d.bySlot[u.Slot] = i
	}

	return d, nil
}

// slotWidth returns the zero-padding width for a document of n units.
func slotWidth(n int) int {
	return max(minSlotWidth, len(strconv.Itoa(n)))
}

func slotName(prefix string, seq, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, seq)
}

// Len returns the number of Units.
func (d *Document) Len() int {
	return len(d.units)
}

// Units returns the Units in emission order.
func (d *Document) Units() []Unit {
	out := make([]Unit, len(d.units))
	for i, u := range d.units {
		out[i] = copyUnit(u)
	}
	return out
}

// Unit returns the Unit with the given slot name.
func (d *Document) Unit(slot string) (Unit, bool) {
	i, ok := d.bySlot[slot]
	if !ok {
		return Unit{}, false
	}
	return copyUnit(d.units[i]), true
}

// Markup returns the rendered body fragment of the Unit with the given
// slot: an <h1> for a Volume, an <h2> and a paragraph block for a Chapter.
func (d *Document) Markup(slot string) (string, bool) {
	i, ok := d.bySlot[slot]
	if !ok {
		return "", false
	}
	return d.markup[i], true
}

// Spine returns the slot names of all Units in linear reading order.
// It always equals emission order, independent of TOC nesting.
func (d *Document) Spine() []string {
	out := make([]string, len(d.units))
	for i, u := range d.units {
		out[i] = u.Slot
	}
	return out
}

// TOC returns the table of contents. Volumes are top-level entries that own
// the Chapters following them; Chapters before the first Volume are
// top-level entries themselves.
func (d *Document) TOC() []TOCEntry {
	return copyTOCEntries(d.toc)
}

// Warnings returns the non-fatal findings recorded while building the
// Document, such as misplaced or dropped markers.
func (d *Document) Warnings() []string {
	return append([]string(nil), d.warnings...)
}

// Encoding returns the name of the encoding the input was decoded with.
// It is empty for Documents built directly from Units.
func (d *Document) Encoding() string {
	return d.encoding
}

func copyUnit(u Unit) Unit {
	u.BodyLines = append([]string(nil), u.BodyLines...)
	return u
}

func copyTOCEntries(in []TOCEntry) []TOCEntry {
	if in == nil {
		return nil
	}
	out := make([]TOCEntry, len(in))
	for i := range in {
		out[i] = in[i]
		out[i].Children = copyTOCEntries(in[i].Children)
	}
	return out
}
