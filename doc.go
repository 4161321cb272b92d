// Package txt2epub converts flat narrative text with Chinese volume and
// chapter markers (第一卷, 第十二章, 第3部 ...) into a structured book and
// writes it as an ePub 3 container with an ePub 2 NCX.
//
// # Converting text
//
// Use [Convert] to decode the raw bytes of a text file and build a
// [Document]:
//
//	data, err := os.ReadFile("novel.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := txt2epub.Convert(data, txt2epub.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The input is decoded with the first encoding in [DefaultEncodings] (or
// [Options.Encodings]) that accepts it strictly; [Document.Encoding]
// reports which one was used.
//
// # Markers
//
// A marker is the token 第, one or more numerals from [DefaultNumerals],
// then a unit word: 章 for chapters, 卷 or 部 for volumes. By default a
// marker may appear anywhere in a line. [StrictRules] requires it at line
// start followed by whitespace. A chapter marker titles the content that
// follows it; content that appears before any chapter marker takes its
// first line as the title.
//
// # Document model
//
// Every Unit gets a sequence number in emission order and a slot name
// derived from it ("volume01", "chapter02", ...). [Document.Spine]
// lists slots in reading order and [Document.TOC] groups chapters under
// the volume that precedes them:
//
//	for _, e := range doc.TOC() {
//	    fmt.Println(e.Title, len(e.Children))
//	}
//
// # Writing an ePub
//
// [WriteFile] and [Write] serialise a Document together with [Metadata]
// and an optional [Cover]:
//
//	err = txt2epub.WriteFile(txt2epub.OutputPath("novel.txt"), doc,
//	    txt2epub.Metadata{Title: "novel", Authors: []string{"佚名"}}, nil)
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - [ErrDecode] – no candidate encoding decoded the input (see [DecodeError])
//   - [ErrEmptyDocument] – the input has no non-blank line
//   - [ErrMalformedMarker] – a marker outside the anchored position; recorded
//     in [Document.Warnings], never returned
//   - [ErrInvalidCover] – the cover is not a JPEG or PNG matching its extension
//   - [ErrInvalidMetadata] – title missing or language tag malformed
package txt2epub
