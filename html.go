package txt2epub

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	xhtmlNamespace = "http://www.w3.org/1999/xhtml"
	opsNamespace   = "http://www.idpf.org/2007/ops"
	xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"
)

// renderUnit renders the body fragment of u. Text is escaped by the
// renderer, so marker lines and content may contain any character.
func renderUnit(u Unit) (string, error) {
	var nodes []*html.Node
	switch u.Kind {
	case KindVolume:
		nodes = append(nodes, element(atom.H1, nil, textNode(u.Title)))
	case KindChapter:
		nodes = append(nodes, element(atom.H2, nil, textNode(u.Title)))
		if len(u.BodyLines) > 0 {
			block := element(atom.Div, []html.Attribute{{Key: "class", Val: "body"}})
			for _, line := range u.BodyLines {
				block.AppendChild(element(atom.P, nil, textNode(line)))
			}
			nodes = append(nodes, block)
		}
	}
	return renderNodes(nodes...)
}

// xhtmlPage wraps a body fragment into a complete XHTML content document.
// cssHref is relative to the page; an empty cssHref omits the stylesheet.
func xhtmlPage(title, lang, cssHref, body string) ([]byte, error) {
	head := element(atom.Head, nil,
		element(atom.Meta, []html.Attribute{
			{Key: "http-equiv", Val: "Content-Type"},
			{Key: "content", Val: "text/html; charset=utf-8"},
		}),
		element(atom.Title, nil, textNode(title)),
	)
	if cssHref != "" {
		head.AppendChild(element(atom.Link, []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "type", Val: "text/css"},
			{Key: "href", Val: cssHref},
		}))
	}

	bodyNode := element(atom.Body, nil, &html.Node{Type: html.RawNode, Data: body})

	attrs := []html.Attribute{
		{Key: "xmlns", Val: xhtmlNamespace},
		{Key: "xmlns:epub", Val: opsNamespace},
	}
	if lang != "" {
		attrs = append(attrs,
			html.Attribute{Key: "lang", Val: lang},
			html.Attribute{Key: "xml:lang", Val: lang},
		)
	}
	root := element(atom.Html, attrs, head, bodyNode)

	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	if err := html.Render(&buf, &html.Node{Type: html.DoctypeNode, Data: "html"}); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	if err := html.Render(&buf, root); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// element builds an element node with the given attributes and children.
func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// textNode builds a text node holding s with XML-illegal characters removed.
func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: xmlSafe(s)}
}

// renderNodes renders nodes in order and concatenates the output.
func renderNodes(nodes ...*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// xmlSafe drops characters that XML 1.0 does not allow in documents:
// C0 controls other than tab/LF/CR, surrogates, U+FFFE and U+FFFF.
func xmlSafe(s string) string {
	if strings.IndexFunc(s, func(r rune) bool { return !isXMLChar(r) }) < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if isXMLChar(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r < 0x20:
		return false
	case r == utf8.RuneError:
		return true
	case r >= 0xD800 && r <= 0xDFFF:
		return false
	case r == 0xFFFE || r == 0xFFFF:
		return false
	}
	return r <= utf8.MaxRune
}
