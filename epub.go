package txt2epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// stylesheet is shared by every content document.
const stylesheet = `@charset "UTF-8";
h1,
h2 {
    text-align: center;
    margin: 1em 0;
    text-indent: 0;
}
p {
    text-indent: 2em;
    margin: 0.5em 0;
    line-height: 1.5em;
    text-align: justify;
}
div.cover {
    text-align: center;
    margin: 0;
    padding: 0;
}
div.cover img {
    max-width: 100%;
    height: auto;
}
`

// Write serialises doc as an ePub 3 container (with an NCX for ePub 2
// reading systems) to w. md is normalised with NormalizeMetadata before
// use; cover may be nil.
//
// Archive layout:
//
//	mimetype
//	META-INF/container.xml
//	OEBPS/content.opf
//	OEBPS/toc.ncx
//	OEBPS/nav.xhtml
//	OEBPS/style/nav.css
//	OEBPS/images/cover.jpg|png   (with a cover)
//	OEBPS/text/cover.xhtml       (with a cover)
//	OEBPS/text/<slot>.xhtml      (one per Unit, spine order)
func Write(w io.Writer, doc *Document, md Metadata, cover *Cover) error {
	if doc == nil || doc.Len() == 0 {
		return ErrEmptyDocument
	}

	md, err := NormalizeMetadata(md)
	if err != nil {
		return err
	}

	var img *coverImage
	if cover != nil {
		if img, err = prepareCover(cover); err != nil {
			return err
		}
	}

	zw := zip.NewWriter(w)
	if err := writeEntries(newZipWriter(zw, md.Modified), doc, md, img); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("txt2epub: close archive: %w", err)
	}
	return nil
}

// WriteFile writes the ePub to path. The archive is written to a temporary
// file in the same directory and renamed into place, so a failed write
// never leaves a truncated book behind.
func WriteFile(name string, doc *Document, md Metadata, cover *Cover) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("txt2epub: create %s: %w", name, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, doc, md, cover); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("txt2epub: close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("txt2epub: chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("txt2epub: rename to %s: %w", name, err)
	}
	return nil
}

func writeEntries(zw *zipWriter, doc *Document, md Metadata, cover *coverImage) error {
	if err := zw.writeMimetype(); err != nil {
		return err
	}

	container, err := marshalContainer()
	if err != nil {
		return err
	}
	if err := zw.writeFile(containerPath, container); err != nil {
		return err
	}

	opf, err := marshalXML(buildOPF(doc, md, cover))
	if err != nil {
		return err
	}
	if err := zw.writeFile(packagePath, opf); err != nil {
		return err
	}

	ncx, err := marshalXML(buildNCX(doc, md))
	if err != nil {
		return err
	}
	if err := zw.writeFile(packageFile(ncxHref), ncx); err != nil {
		return err
	}

	nav, err := buildNavDocument(doc, md)
	if err != nil {
		return fmt.Errorf("txt2epub: render nav document: %w", err)
	}
	if err := zw.writeFile(packageFile(navHref), nav); err != nil {
		return err
	}

	if err := zw.writeFile(packageFile(styleHref), []byte(stylesheet)); err != nil {
		return err
	}

	if cover != nil {
		if err := zw.writeFile(packageFile(cover.href), cover.data); err != nil {
			return err
		}
		page, err := buildCoverPage(md, cover)
		if err != nil {
			return fmt.Errorf("txt2epub: render cover page: %w", err)
		}
		if err := zw.writeFile(packageFile(coverPageHref), page); err != nil {
			return err
		}
	}

	css := relativeHref(contentDir, styleHref)
	for i, u := range doc.units {
		page, err := xhtmlPage(u.Title, md.Language, css, doc.markup[i])
		if err != nil {
			return fmt.Errorf("txt2epub: render %s: %w", u.Slot, err)
		}
		if err := zw.writeFile(packageFile(u.Href()), page); err != nil {
			return err
		}
	}
	return nil
}

// buildCoverPage renders the XHTML page that displays the cover image.
func buildCoverPage(md Metadata, cover *coverImage) ([]byte, error) {
	block := element(atom.Div, []html.Attribute{{Key: "class", Val: "cover"}},
		element(atom.Img, []html.Attribute{
			{Key: "src", Val: relativeHref(contentDir, cover.href)},
			{Key: "alt", Val: xmlSafe(md.Title)},
		}),
	)
	body, err := renderNodes(block)
	if err != nil {
		return nil, err
	}
	return xhtmlPage(md.Title, md.Language, relativeHref(contentDir, styleHref), body)
}

// packageFile returns the archive path of a resource href relative to the
// package document.
func packageFile(href string) string {
	return path.Join(packageDir, href)
}

// relativeHref returns target (relative to the package document) as seen
// from a document in dir (also relative to the package document).
func relativeHref(dir, target string) string {
	var buf bytes.Buffer
	for d := path.Clean(dir); d != "." && d != "/"; d = path.Dir(d) {
		buf.WriteString("../")
	}
	buf.WriteString(target)
	return buf.String()
}
