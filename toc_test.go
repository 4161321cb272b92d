package txt2epub

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestBuildNCX(t *testing.T) {
	doc := mustConvert(t, sampleNovel)
	md := mustNormalize(t, testMetadata())

	ncx := buildNCX(doc, md)

	metas := make(map[string]string)
	for _, m := range ncx.Head.Metas {
		metas[m.Name] = m.Content
	}
	if metas["dtb:uid"] != md.Identifier {
		t.Errorf("dtb:uid = %q, want %q", metas["dtb:uid"], md.Identifier)
	}
	if metas["dtb:depth"] != "2" {
		t.Errorf("dtb:depth = %q, want 2", metas["dtb:depth"])
	}
	if ncx.DocTitle.Text != "测试小说" {
		t.Errorf("docTitle = %q", ncx.DocTitle.Text)
	}

	points := ncx.NavMap.NavPoints
	if len(points) != 3 {
		t.Fatalf("len(navPoints) = %d, want 3", len(points))
	}
	if points[0].ID != "nav-chapter01" || points[0].PlayOrder != 1 || points[0].Content.Src != "text/chapter01.xhtml" {
		t.Errorf("navPoint[0] = %+v", points[0])
	}
	vol := points[1]
	if vol.Label.Text != "第一卷 上卷" || vol.PlayOrder != 2 || len(vol.Children) != 2 {
		t.Fatalf("navPoint[1] = %+v", vol)
	}
	if vol.Children[1].PlayOrder != 4 || vol.Children[1].Content.Src != "text/chapter04.xhtml" {
		t.Errorf("navPoint[1].Children[1] = %+v", vol.Children[1])
	}
}

func TestBuildNCX_FlatDepth(t *testing.T) {
	doc := mustConvert(t, "第一章 a\nx\n第二章 b\ny\n")
	ncx := buildNCX(doc, mustNormalize(t, testMetadata()))
	for _, m := range ncx.Head.Metas {
		if m.Name == "dtb:depth" && m.Content != "1" {
			t.Errorf("dtb:depth = %q, want 1", m.Content)
		}
	}
}

func TestBuildNCX_Marshalled(t *testing.T) {
	doc := mustConvert(t, sampleNovel)
	data, err := marshalXML(buildNCX(doc, mustNormalize(t, testMetadata())))
	if err != nil {
		t.Fatalf("marshalXML() error = %v", err)
	}
	s := string(data)
	for _, want := range []string{
		`<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1" xml:lang="zh">`,
		`<meta name="dtb:uid" content="urn:uuid:00000000-0000-4000-8000-000000000000"></meta>`,
		`<navPoint id="nav-volume02" playOrder="2">`,
		`<content src="text/chapter03.xhtml"></content>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("toc.ncx missing %s:\n%s", want, s)
		}
	}
}

func TestBuildNavDocument(t *testing.T) {
	doc := mustConvert(t, sampleNovel)
	page, err := buildNavDocument(doc, mustNormalize(t, testMetadata()))
	if err != nil {
		t.Fatalf("buildNavDocument() error = %v", err)
	}
	if !strings.Contains(string(page), `<nav epub:type="toc" id="toc">`) {
		t.Errorf("nav document has no toc nav:\n%s", page)
	}

	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	nav := findElement(root, "nav")
	if nav == nil {
		t.Fatal("no <nav> element")
	}

	links := findElements(nav, "a")
	var hrefs []string
	for _, a := range links {
		hrefs = append(hrefs, attrOf(a, "href"))
	}
	want := []string{
		"text/chapter01.xhtml",
		"text/volume02.xhtml",
		"text/chapter03.xhtml",
		"text/chapter04.xhtml",
		"text/volume05.xhtml",
		"text/chapter06.xhtml",
	}
	if strings.Join(hrefs, " ") != strings.Join(want, " ") {
		t.Errorf("nav hrefs = %v, want %v", hrefs, want)
	}

	// Chapters of a volume are in a nested list.
	lists := findElements(nav, "ol")
	if len(lists) != 3 {
		t.Errorf("nav has %d <ol> elements, want 3", len(lists))
	}
	if got := textOf(links[2]); got != "第一章 开端" {
		t.Errorf("link text = %q", got)
	}
	if p := links[2].Parent.Parent.Parent; p == nil || p.Data != "li" {
		t.Errorf("chapter link is not nested under a volume <li>")
	}
}

func TestNavList_Empty(t *testing.T) {
	ol := navList(nil)
	if ol.FirstChild != nil {
		t.Error("navList(nil) has children")
	}
}
