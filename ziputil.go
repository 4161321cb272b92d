package txt2epub

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"
	"time"
)

// expectedMimetype is the required content of the "mimetype" file in a valid ePub.
const expectedMimetype = "application/epub+zip"

// zipWriter writes ePub entries with a fixed modification time so that
// identical inputs produce identical archives.
type zipWriter struct {
	zw       *zip.Writer
	modified time.Time
	names    map[string]bool
}

func newZipWriter(zw *zip.Writer, modified time.Time) *zipWriter {
	return &zipWriter{zw: zw, modified: modified, names: make(map[string]bool)}
}

// writeMimetype writes the uncompressed "mimetype" entry. It must be the
// first entry of the archive and its local header must carry no extra
// field, so the content starts at byte 38. Only the MS-DOS timestamp is
// set; a non-zero Modified would add an extended-timestamp field.
func (w *zipWriter) writeMimetype() error {
	if len(w.names) > 0 {
		return fmt.Errorf("txt2epub: mimetype must be the first zip entry")
	}
	fh := &zip.FileHeader{
		Name:   "mimetype",
		Method: zip.Store,
	}
	fh.ModifiedDate, fh.ModifiedTime = msDosTime(w.modified)
	return w.write(fh, []byte(expectedMimetype))
}

// writeFile writes a deflated entry.
func (w *zipWriter) writeFile(name string, data []byte) error {
	return w.write(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: w.modified,
	}, data)
}

func (w *zipWriter) write(fh *zip.FileHeader, data []byte) error {
	name := fh.Name
	if !isSafePath(name) {
		return fmt.Errorf("txt2epub: unsafe zip entry path: %s", name)
	}
	if w.names[name] {
		return fmt.Errorf("txt2epub: duplicate zip entry: %s", name)
	}
	w.names[name] = true

	fw, err := w.zw.CreateHeader(fh)
	if err != nil {
		return fmt.Errorf("txt2epub: create zip entry %s: %w", name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("txt2epub: write zip entry %s: %w", name, err)
	}
	return nil
}

// msDosTime converts t to the MS-DOS date and time fields of a zip header.
// Years outside 1980..2107 are clamped; seconds have two-second precision.
func msDosTime(t time.Time) (date, clock uint16) {
	t = t.UTC()
	year := t.Year()
	switch {
	case year < 1980:
		return 1<<5 | 1, 0
	case year > 2107:
		year = 2107
	}
	date = uint16(t.Day() + int(t.Month())<<5 + (year-1980)<<9)
	clock = uint16(t.Second()/2 + t.Minute()<<5 + t.Hour()<<11)
	return date, clock
}

// isSafePath checks whether p is a safe ZIP-internal path that does not
// escape the archive root via path traversal (e.g., "../../../etc/passwd").
func isSafePath(p string) bool {
	if p == "" {
		return false
	}
	cleaned := path.Clean(p)
	if strings.HasPrefix(cleaned, "/") {
		return false
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return false
	}
	return true
}

// stripBOM removes a leading UTF-8 BOM (0xEF 0xBB 0xBF) from data, if present.
func stripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
