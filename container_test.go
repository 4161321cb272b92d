package txt2epub

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestMarshalContainer(t *testing.T) {
	data, err := marshalContainer()
	if err != nil {
		t.Fatalf("marshalContainer() error = %v", err)
	}
	s := string(data)

	if !strings.HasPrefix(s, xml.Header) {
		t.Errorf("container.xml missing XML declaration:\n%s", s)
	}
	for _, want := range []string{
		`<container xmlns="urn:oasis:names:tc:opendocument:xmlns:container" version="1.0">`,
		`<rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"></rootfile>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("container.xml missing %s:\n%s", want, s)
		}
	}

	var c containerXML
	if err := xml.Unmarshal(data, &c); err != nil {
		t.Fatalf("xml.Unmarshal() error = %v", err)
	}
	if len(c.RootFiles) != 1 || c.RootFiles[0].FullPath != packagePath {
		t.Errorf("RootFiles = %+v, want one entry for %s", c.RootFiles, packagePath)
	}
}

func TestMarshalXML_Error(t *testing.T) {
	// Channels cannot be marshalled.
	_, err := marshalXML(struct {
		XMLName xml.Name `xml:"x"`
		C       chan int `xml:"c"`
	}{C: make(chan int)})
	if err == nil || !strings.Contains(err.Error(), "marshal") {
		t.Errorf("marshalXML() error = %v, want marshal error", err)
	}
}
