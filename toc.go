package txt2epub

import (
	"encoding/xml"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Publication resource paths, relative to the package document.
const (
	navHref       = "nav.xhtml"
	ncxHref       = "toc.ncx"
	styleHref     = "style/nav.css"
	coverPageHref = contentDir + "/cover.xhtml"
	imageDir      = "images"
)

const (
	xhtmlMediaType = "application/xhtml+xml"
	ncxMediaType   = "application/x-dtbncx+xml"
	ncxNamespace   = "http://www.daisy.org/z3986/2005/ncx/"
)

// --- NCX XML encoding structs (ePub 2) ---

// ncxDocument represents the root <ncx> element of an NCX file.
type ncxDocument struct {
	XMLName  xml.Name  `xml:"http://www.daisy.org/z3986/2005/ncx/ ncx"`
	Version  string    `xml:"version,attr"`
	Lang     string    `xml:"xml:lang,attr,omitempty"`
	Head     ncxHead   `xml:"head"`
	DocTitle ncxText   `xml:"docTitle"`
	NavMap   ncxNavMap `xml:"navMap"`
}

// ncxHead holds the <meta> elements reading systems use to match the NCX
// to its package.
type ncxHead struct {
	Metas []ncxMeta `xml:"meta"`
}

type ncxMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

// ncxText wraps a <text> child element.
type ncxText struct {
	Text string `xml:"text"`
}

// ncxNavMap represents the <navMap> element containing top-level navPoints.
type ncxNavMap struct {
	NavPoints []ncxNavPoint `xml:"navPoint"`
}

// ncxNavPoint represents a <navPoint> element which may contain nested navPoints.
type ncxNavPoint struct {
	ID        string        `xml:"id,attr"`
	PlayOrder int           `xml:"playOrder,attr"`
	Label     ncxText       `xml:"navLabel"`
	Content   ncxContent    `xml:"content"`
	Children  []ncxNavPoint `xml:"navPoint"`
}

// ncxContent represents the <content> element with its src attribute.
type ncxContent struct {
	Src string `xml:"src,attr"`
}

// buildNCX mirrors the document TOC as an NCX navMap. playOrder follows
// spine order, so a volume always precedes its chapters.
func buildNCX(doc *Document, md Metadata) ncxDocument {
	depth := 1
	for _, e := range doc.toc {
		if len(e.Children) > 0 {
			depth = 2
			break
		}
	}

	return ncxDocument{
		Version: "2005-1",
		Lang:    md.Language,
		Head: ncxHead{Metas: []ncxMeta{
			{Name: "dtb:uid", Content: md.Identifier},
			{Name: "dtb:depth", Content: strconv.Itoa(depth)},
			{Name: "dtb:totalPageCount", Content: "0"},
			{Name: "dtb:maxPageNumber", Content: "0"},
		}},
		DocTitle: ncxText{Text: xmlSafe(md.Title)},
		NavMap:   ncxNavMap{NavPoints: convertTOCEntries(doc, doc.toc)},
	}
}

// convertTOCEntries recursively converts TOC entries into navPoints.
func convertTOCEntries(doc *Document, entries []TOCEntry) []ncxNavPoint {
	if len(entries) == 0 {
		return nil
	}

	points := make([]ncxNavPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, ncxNavPoint{
			ID:        "nav-" + e.Slot,
			PlayOrder: doc.units[doc.bySlot[e.Slot]].Sequence,
			Label:     ncxText{Text: xmlSafe(e.Title)},
			Content:   ncxContent{Src: e.Href},
			Children:  convertTOCEntries(doc, e.Children),
		})
	}
	return points
}

// --- Nav Document rendering (ePub 3) ---

// buildNavDocument renders the ePub 3 navigation document: a
// <nav epub:type="toc"> whose nested <ol> mirrors the TOC tree.
func buildNavDocument(doc *Document, md Metadata) ([]byte, error) {
	nav := element(atom.Nav, []html.Attribute{
		{Key: "epub:type", Val: "toc"},
		{Key: "id", Val: "toc"},
	},
		element(atom.H1, nil, textNode(md.Title)),
		navList(doc.toc),
	)

	body, err := renderNodes(nav)
	if err != nil {
		return nil, err
	}
	return xhtmlPage(md.Title, md.Language, styleHref, body)
}

// navList renders entries as an <ol> of <li><a> items with nested lists
// for volume children.
func navList(entries []TOCEntry) *html.Node {
	ol := element(atom.Ol, nil)
	for _, e := range entries {
		li := element(atom.Li, nil,
			element(atom.A, []html.Attribute{{Key: "href", Val: e.Href}}, textNode(e.Title)),
		)
		if len(e.Children) > 0 {
			li.AppendChild(navList(e.Children))
		}
		ol.AppendChild(li)
	}
	return ol
}
