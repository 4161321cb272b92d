package txt2epub

import (
	"fmt"
	"log/slog"
)

// Options configures Convert.
type Options struct {
	// Encodings lists candidate encodings in priority order.
	// Empty means DefaultEncodings.
	Encodings []string

	// Rules configures marker detection. Nil means DefaultRules().
	Rules *MarkerRules

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Convert decodes a whole text file and builds its Document: encoding
// resolution, line splitting, classification, segmentation and model
// building, in that order, in a single pass.
//
// Errors: a *DecodeError when no encoding fits, ErrEmptyDocument when the
// text has no non-blank line, or a marker rule configuration error.
func Convert(data []byte, opts Options) (*Document, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rules := DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	classifier, err := NewClassifier(rules)
	if err != nil {
		return nil, err
	}

	decoded, err := DecodeText(data, opts.Encodings)
	if err != nil {
		return nil, err
	}
	logger.Info("input decoded", "encoding", decoded.Encoding, "bytes", len(data))

	lines := SplitLines(decoded.Text)
	seg := Segment(lines, classifier)

	doc, err := Build(seg.Units)
	if err != nil {
		return nil, err
	}
	doc.encoding = decoded.Encoding

	for _, m := range seg.Misplaced {
		doc.warnings = append(doc.warnings, m.Error())
	}
	for _, l := range seg.Dropped {
		doc.warnings = append(doc.warnings, fmt.Sprintf("line %d: chapter marker %q has no content; dropped", l.Number, l.Text))
	}
	for _, w := range doc.warnings {
		logger.Warn("segmentation", "warning", w)
	}

	volumes := 0
	for _, u := range doc.units {
		if u.Kind == KindVolume {
			volumes++
		}
	}
	logger.Debug("document built",
		"lines", len(lines),
		"units", doc.Len(),
		"volumes", volumes,
		"chapters", doc.Len()-volumes,
	)

	return doc, nil
}
