package txt2epub

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestNormalizeMetadata_Defaults(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Second)
	md, err := NormalizeMetadata(Metadata{Title: "  小说  "})
	if err != nil {
		t.Fatalf("NormalizeMetadata() error = %v", err)
	}

	if md.Title != "小说" {
		t.Errorf("Title = %q, want %q", md.Title, "小说")
	}
	if md.Language != DefaultLanguage {
		t.Errorf("Language = %q, want %q", md.Language, DefaultLanguage)
	}
	if !strings.HasPrefix(md.Identifier, "urn:uuid:") || len(md.Identifier) != len("urn:uuid:")+36 {
		t.Errorf("Identifier = %q, want a urn:uuid", md.Identifier)
	}
	if md.Modified.Before(before) || md.Modified.Location() != time.UTC {
		t.Errorf("Modified = %v, want current UTC time", md.Modified)
	}
	if md.Modified.Nanosecond() != 0 {
		t.Errorf("Modified = %v, want whole seconds", md.Modified)
	}
}

func TestNormalizeMetadata_FreshIdentifiers(t *testing.T) {
	a, _ := NormalizeMetadata(Metadata{Title: "x"})
	b, _ := NormalizeMetadata(Metadata{Title: "x"})
	if a.Identifier == b.Identifier {
		t.Errorf("identifiers repeat: %s", a.Identifier)
	}
}

func TestNormalizeMetadata_KeepsValues(t *testing.T) {
	in := Metadata{
		Title:       "书名",
		Authors:     []string{" 张三 ", "", "  ", "李四"},
		Language:    "zh-hant-tw",
		Identifier:  "isbn:9780000000000",
		Publisher:   " 出版社 ",
		Description: "简介",
		Modified:    time.Date(2024, 3, 1, 20, 30, 0, 500, time.FixedZone("CST", 8*3600)),
	}
	md, err := NormalizeMetadata(in)
	if err != nil {
		t.Fatalf("NormalizeMetadata() error = %v", err)
	}

	if want := []string{"张三", "李四"}; !reflect.DeepEqual(md.Authors, want) {
		t.Errorf("Authors = %v, want %v", md.Authors, want)
	}
	if md.Language != "zh-Hant-TW" {
		t.Errorf("Language = %q, want canonical zh-Hant-TW", md.Language)
	}
	if md.Identifier != in.Identifier {
		t.Errorf("Identifier = %q, want %q", md.Identifier, in.Identifier)
	}
	if md.Publisher != "出版社" || md.Description != "简介" {
		t.Errorf("Publisher/Description = %q/%q", md.Publisher, md.Description)
	}
	if want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC); !md.Modified.Equal(want) || md.Modified.Location() != time.UTC {
		t.Errorf("Modified = %v, want %v", md.Modified, want)
	}
	if in.Authors[0] != " 张三 " {
		t.Error("NormalizeMetadata modified its input")
	}
}

func TestNormalizeMetadata_Errors(t *testing.T) {
	tests := []struct {
		name string
		md   Metadata
	}{
		{"missing title", Metadata{}},
		{"blank title", Metadata{Title: "   "}},
		{"bad language", Metadata{Title: "x", Language: "not a tag!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeMetadata(tt.md)
			if !errors.Is(err, ErrInvalidMetadata) {
				t.Errorf("error = %v, want ErrInvalidMetadata", err)
			}
		})
	}
}

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"novel.txt", "novel"},
		{filepath.Join("books", "三国演义.txt"), "三国演义"},
		{filepath.Join("a", "b.c.txt"), "b.c"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := TitleFromPath(tt.path); got != tt.want {
			t.Errorf("TitleFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"novel.txt", "novel.epub"},
		{filepath.Join("books", "三国演义.TXT"), filepath.Join("books", "三国演义.epub")},
		{filepath.Join("a", "b.c.txt"), filepath.Join("a", "b.c.epub")},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.path); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
