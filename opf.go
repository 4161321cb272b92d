package txt2epub

import (
	"encoding/xml"
	"strconv"
	"time"
)

const (
	opfNamespace = "http://www.idpf.org/2007/opf"
	dcNamespace  = "http://purl.org/dc/elements/1.1/"

	// bookIDRef is the id of the dc:identifier named by unique-identifier.
	bookIDRef = "book-id"
)

// Manifest item ids for the fixed publication resources.
const (
	navID        = "nav"
	ncxID        = "ncx"
	styleID      = "style"
	coverImageID = "cover-image"
	coverPageID  = "cover-page"
)

// opfPackage represents the root <package> element of an OPF file.
type opfPackage struct {
	XMLName          xml.Name    `xml:"http://www.idpf.org/2007/opf package"`
	Version          string      `xml:"version,attr"`
	UniqueIdentifier string      `xml:"unique-identifier,attr"`
	Lang             string      `xml:"xml:lang,attr,omitempty"`
	Metadata         opfMetadata `xml:"metadata"`
	Manifest         opfManifest `xml:"manifest"`
	Spine            opfSpine    `xml:"spine"`
	Guide            *opfGuide   `xml:"guide,omitempty"`
}

// opfMetadata holds the Dublin Core and meta elements. The dc prefix is
// declared on this element.
type opfMetadata struct {
	XmlnsDC      string         `xml:"xmlns:dc,attr"`
	XmlnsOPF     string         `xml:"xmlns:opf,attr"`
	Identifiers  []opfDCElement `xml:"dc:identifier"`
	Titles       []opfDCElement `xml:"dc:title"`
	Languages    []opfDCElement `xml:"dc:language"`
	Creators     []opfDCElement `xml:"dc:creator"`
	Publishers   []opfDCElement `xml:"dc:publisher"`
	Descriptions []opfDCElement `xml:"dc:description"`
	Metas        []opfMeta      `xml:"meta"`
}

// opfDCElement holds a Dublin Core element with an optional id.
type opfDCElement struct {
	ID    string `xml:"id,attr,omitempty"`
	Value string `xml:",chardata"`
}

// opfMeta represents a <meta> element in the OPF metadata.
// ePub 2: <meta name="..." content="..."/>
// ePub 3: <meta property="..." refines="...">value</meta>
type opfMeta struct {
	Name     string `xml:"name,attr,omitempty"`
	Content  string `xml:"content,attr,omitempty"`
	Property string `xml:"property,attr,omitempty"`
	Refines  string `xml:"refines,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// opfManifest wraps the <manifest> element.
type opfManifest struct {
	Items []opfManifestItem `xml:"item"`
}

// opfManifestItem represents a single <item> in the manifest.
type opfManifestItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr,omitempty"`
}

// opfSpine wraps the <spine> element.
type opfSpine struct {
	Toc      string            `xml:"toc,attr,omitempty"`
	ItemRefs []opfSpineItemRef `xml:"itemref"`
}

// opfSpineItemRef represents a single <itemref> in the spine.
type opfSpineItemRef struct {
	IDRef  string `xml:"idref,attr"`
	Linear string `xml:"linear,attr,omitempty"`
}

// opfGuide wraps the <guide> element.
type opfGuide struct {
	References []opfGuideReference `xml:"reference"`
}

// opfGuideReference represents a single <reference> in the guide.
type opfGuideReference struct {
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
	Href  string `xml:"href,attr"`
}

// buildOPF assembles the package document for doc. cover may be nil.
func buildOPF(doc *Document, md Metadata, cover *coverImage) opfPackage {
	pkg := opfPackage{
		Version:          "3.0",
		UniqueIdentifier: bookIDRef,
		Lang:             md.Language,
	}

	m := &pkg.Metadata
	m.XmlnsDC = dcNamespace
	m.XmlnsOPF = opfNamespace
	m.Identifiers = []opfDCElement{{ID: bookIDRef, Value: md.Identifier}}
	m.Titles = []opfDCElement{{ID: "title", Value: xmlSafe(md.Title)}}
	m.Languages = []opfDCElement{{Value: md.Language}}
	for i, a := range md.Authors {
		id := "creator" + strconv.Itoa(i+1)
		m.Creators = append(m.Creators, opfDCElement{ID: id, Value: xmlSafe(a)})
		m.Metas = append(m.Metas, opfMeta{Property: "role", Refines: "#" + id, Value: "aut"})
	}
	if md.Publisher != "" {
		m.Publishers = []opfDCElement{{Value: xmlSafe(md.Publisher)}}
	}
	if md.Description != "" {
		m.Descriptions = []opfDCElement{{Value: xmlSafe(md.Description)}}
	}
	m.Metas = append(m.Metas, opfMeta{
		Property: "dcterms:modified",
		Value:    md.Modified.UTC().Format(time.RFC3339),
	})

	items := []opfManifestItem{
		{ID: navID, Href: navHref, MediaType: xhtmlMediaType, Properties: "nav"},
		{ID: ncxID, Href: ncxHref, MediaType: ncxMediaType},
		{ID: styleID, Href: styleHref, MediaType: "text/css"},
	}
	var refs []opfSpineItemRef

	if cover != nil {
		m.Metas = append(m.Metas, opfMeta{Name: "cover", Content: coverImageID})
		items = append(items,
			opfManifestItem{ID: coverImageID, Href: cover.href, MediaType: cover.mediaType, Properties: "cover-image"},
			opfManifestItem{ID: coverPageID, Href: coverPageHref, MediaType: xhtmlMediaType},
		)
		refs = append(refs, opfSpineItemRef{IDRef: coverPageID})
		pkg.Guide = &opfGuide{References: []opfGuideReference{
			{Type: "cover", Title: "Cover", Href: coverPageHref},
		}}
	}

	for _, u := range doc.units {
		items = append(items, opfManifestItem{ID: u.Slot, Href: u.Href(), MediaType: xhtmlMediaType})
		refs = append(refs, opfSpineItemRef{IDRef: u.Slot})
	}

	pkg.Manifest.Items = items
	pkg.Spine = opfSpine{Toc: ncxID, ItemRefs: refs}
	return pkg
}
