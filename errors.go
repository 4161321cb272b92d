package txt2epub

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the txt2epub package.
var (
	// ErrDecode indicates that none of the candidate encodings could decode
	// the input strictly. Returned errors are *DecodeError values that wrap it.
	ErrDecode = errors.New("txt2epub: cannot decode input")

	// ErrEmptyDocument indicates the input contained no non-blank line,
	// so no Unit could be produced.
	ErrEmptyDocument = errors.New("txt2epub: document has no content")

	// ErrMalformedMarker indicates a marker appeared outside the position
	// required by anchored marker rules. It is recoverable: the line is
	// treated as content and the error is kept as a document warning.
	ErrMalformedMarker = errors.New("txt2epub: marker not at line start")

	// ErrInvalidCover indicates the cover image bytes or extension are not
	// a supported image (JPEG or PNG).
	ErrInvalidCover = errors.New("txt2epub: invalid cover image")

	// ErrInvalidMetadata indicates required book metadata is missing or
	// malformed (for example an empty title or an unparsable language tag).
	ErrInvalidMetadata = errors.New("txt2epub: invalid metadata")
)

// DecodeError reports the encodings that were attempted, in priority order,
// when every one of them failed.
type DecodeError struct {
	// Attempted lists the encoding names tried before giving up.
	Attempted []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("txt2epub: cannot decode input as any of [%s]", strings.Join(e.Attempted, ", "))
}

// Unwrap makes errors.Is(err, ErrDecode) hold for any *DecodeError.
func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// MalformedMarkerError records a line that carries a marker in a position
// the active MarkerRules do not accept.
type MalformedMarkerError struct {
	// Line is the 1-based line number in the decoded input.
	Line int

	// Text is the trimmed line content.
	Text string
}

func (e *MalformedMarkerError) Error() string {
	return fmt.Sprintf("txt2epub: line %d: marker not at line start: %q", e.Line, e.Text)
}

// Unwrap makes errors.Is(err, ErrMalformedMarker) hold.
func (e *MalformedMarkerError) Unwrap() error {
	return ErrMalformedMarker
}
