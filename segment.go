package txt2epub

import (
	"strings"
)

// Line is a trimmed, non-blank line of decoded input.
type Line struct {
	// Text is the line with surrounding whitespace removed.
	Text string

	// Number is the 1-based line number in the decoded input.
	Number int
}

// SplitLines splits decoded text into trimmed, non-blank lines. LF, CRLF
// and lone CR line endings are all accepted. Blank lines are dropped here
// and never reach the classifier.
func SplitLines(text string) []Line {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, Line{Text: l, Number: i + 1})
	}
	return lines
}

// Segmentation is the output of Segment: the emitted Units plus the
// recoverable findings made along the way.
type Segmentation struct {
	// Units are in emission order, without Sequence or Slot assigned.
	Units []Unit

	// Misplaced lists lines that carried a marker outside the anchored
	// position and were treated as content.
	Misplaced []*MalformedMarkerError

	// Dropped lists chapter marker lines that were discarded because no
	// content followed them before the next marker.
	Dropped []Line
}

// Segment folds the classified line stream into Units.
//
// A Volume line flushes pending content as a Chapter and then emits a
// Volume. A Chapter line flushes pending content and becomes the title of
// the next Chapter. Content lines accumulate. At end of input any pending
// content, or a pending title, is flushed as a final Chapter.
//
// Segment is a pure function of its input.
func Segment(lines []Line, c *Classifier) Segmentation {
	var s segmenter
	for _, l := range lines {
		class, misplaced := c.Classify(l.Text)
		if misplaced {
			s.out.Misplaced = append(s.out.Misplaced, &MalformedMarkerError{Line: l.Number, Text: l.Text})
		}
		s.step(class, l)
	}
	s.finish()
	return s.out
}

// segmenter is the accumulator threaded through Segment.
type segmenter struct {
	out Segmentation

	// title is the most recent chapter marker not yet used as a title.
	title    Line
	hasTitle bool

	pending []string
}

func (s *segmenter) step(class LineClass, l Line) {
	switch class {
	case LineVolume:
		s.boundary()
		s.hasTitle = false
		s.title = Line{}
		s.out.Units = append(s.out.Units, Unit{Kind: KindVolume, Title: l.Text})
	case LineChapter:
		s.boundary()
		s.title = l
		s.hasTitle = true
	default:
		s.pending = append(s.pending, l.Text)
	}
}

// boundary flushes pending content at a marker. A pending title with no
// content is dropped so adjacent markers never produce an empty Chapter.
func (s *segmenter) boundary() {
	if len(s.pending) > 0 {
		s.flush()
		return
	}
	if s.hasTitle {
		s.out.Dropped = append(s.out.Dropped, s.title)
	}
}

func (s *segmenter) finish() {
	if len(s.pending) > 0 || s.hasTitle {
		s.flush()
	}
}

// flush emits the pending content as a Chapter. Without a pending title
// the first content line is promoted to the title.
func (s *segmenter) flush() {
	u := Unit{Kind: KindChapter}
	if s.hasTitle {
		u.Title = s.title.Text
		u.BodyLines = s.pending
	} else {
		u.Title = s.pending[0]
		u.BodyLines = s.pending[1:]
	}
	if len(u.BodyLines) == 0 {
		u.BodyLines = nil
	}

	s.out.Units = append(s.out.Units, u)
	s.pending = nil
	s.hasTitle = false
	s.title = Line{}
}
