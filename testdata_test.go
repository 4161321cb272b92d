package txt2epub

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testModified is the fixed modification time used by writer tests.
var testModified = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

// Byte prefixes that http.DetectContentType recognises as PNG and JPEG.
var (
	testPNG  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	testJPEG = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

// sampleNovel has a preface, two volumes and three chapters.
const sampleNovel = "序言\n这是一个故事。\n\n第一卷 上卷\n第一章 开端\n你好\n世界\n第二章 发展\n继续\n第二卷 下卷\n第三章 终章\n再见\n"

// mustConvert converts text with default options and fails the test on error.
func mustConvert(t *testing.T, text string) *Document {
	t.Helper()
	doc, err := Convert([]byte(text), Options{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	return doc
}

// testMetadata returns complete metadata with a fixed identifier and time.
func testMetadata() Metadata {
	return Metadata{
		Title:      "测试小说",
		Authors:    []string{"佚名"},
		Language:   "zh",
		Identifier: "urn:uuid:00000000-0000-4000-8000-000000000000",
		Modified:   testModified,
	}
}

// buildTestBook writes doc to an in-memory archive and returns its bytes.
func buildTestBook(t *testing.T, doc *Document, md Metadata, cover *Cover) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, doc, md, cover); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return buf.Bytes()
}

// readTestArchive opens archive bytes and returns the entries in archive
// order and their contents by name.
func readTestArchive(t *testing.T, data []byte) ([]*zip.File, map[string]string) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("readTestArchive: open reader: %v", err)
	}
	contents := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("readTestArchive: open %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("readTestArchive: read %s: %v", f.Name, err)
		}
		contents[f.Name] = string(b)
	}
	return zr.File, contents
}

// writeTestFile writes data under a temporary directory and returns the path.
func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fp, data, 0644); err != nil {
		t.Fatalf("writeTestFile: %v", err)
	}
	return fp
}
