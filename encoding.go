package txt2epub

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncodings is the candidate list used when Options.Encodings is
// empty: UTF-8 first, then the GB18030 superset of GBK/GB2312.
var DefaultEncodings = []string{"utf-8", "gb18030"}

// Decoded is the result of resolving the input encoding.
type Decoded struct {
	// Text is the decoded input with any leading byte order mark removed.
	Text string

	// Encoding is the canonical name of the encoding that succeeded.
	Encoding string
}

// DecodeText decodes data with the first candidate encoding that accepts
// it strictly. Candidates are tried once each, in order. Names are WHATWG
// labels ("utf-8", "gb18030", "gbk", "big5", "shift_jis", ...).
// An empty candidate list means DefaultEncodings.
//
// Decoding is strict: a non-UTF-8 candidate is accepted only when the
// decoded text encodes back to exactly the input bytes.
// When every candidate fails, the returned error is a *DecodeError.
func DecodeText(data []byte, candidates []string) (Decoded, error) {
	if len(candidates) == 0 {
		candidates = DefaultEncodings
	}

	attempted := make([]string, 0, len(candidates))
	for _, name := range candidates {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		attempted = append(attempted, name)

		if isUTF8Label(name) {
			if text, ok := decodeUTF8(data); ok {
				return Decoded{Text: text, Encoding: "utf-8"}, nil
			}
			continue
		}

		enc, err := htmlindex.Get(name)
		if err != nil {
			continue
		}
		if text, ok := decodeStrict(enc, data); ok {
			canonical, err := htmlindex.Name(enc)
			if err != nil {
				canonical = name
			}
			return Decoded{Text: text, Encoding: canonical}, nil
		}
	}

	return Decoded{}, &DecodeError{Attempted: attempted}
}

// ValidEncoding reports whether name is a label DecodeText understands.
func ValidEncoding(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if isUTF8Label(name) {
		return true
	}
	_, err := htmlindex.Get(name)
	return err == nil
}

func isUTF8Label(name string) bool {
	return name == "utf-8" || name == "utf8" || name == "unicode-1-1-utf-8"
}

// decodeUTF8 validates data as UTF-8. The x/text UTF-8 decoder replaces
// invalid sequences, so validation is done on the raw bytes instead.
func decodeUTF8(data []byte) (string, bool) {
	data = stripBOM(data)
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// decodeStrict decodes data with enc and accepts the result only if
// re-encoding it reproduces data exactly. This rejects bytes the decoder
// replaced with U+FFFD as well as lenient mappings such as a lone 0x80
// read as "€" by gb18030. A literal U+FFFD the encoding can represent
// round-trips and is kept.
func decodeStrict(enc encoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	back, err := enc.NewEncoder().Bytes(out)
	if err != nil || !bytes.Equal(back, data) {
		return "", false
	}
	return strings.TrimPrefix(string(out), "\ufeff"), true
}
