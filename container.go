package txt2epub

import (
	"encoding/xml"
	"fmt"
)

const (
	// containerPath is the well-known location of container.xml in an ePub archive.
	containerPath = "META-INF/container.xml"

	// packageDir is the archive directory holding the package document
	// and every publication resource.
	packageDir = "OEBPS"

	// packagePath is the archive path of the OPF package document.
	packagePath = packageDir + "/content.opf"

	packageMediaType = "application/oebps-package+xml"
)

// containerXML models the META-INF/container.xml file used to locate the OPF.
type containerXML struct {
	XMLName   xml.Name   `xml:"urn:oasis:names:tc:opendocument:xmlns:container container"`
	Version   string     `xml:"version,attr"`
	RootFiles []rootFile `xml:"rootfiles>rootfile"`
}

// rootFile represents a single <rootfile> element inside container.xml.
type rootFile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// marshalContainer renders container.xml pointing at the package document.
func marshalContainer() ([]byte, error) {
	c := containerXML{
		Version: "1.0",
		RootFiles: []rootFile{
			{FullPath: packagePath, MediaType: packageMediaType},
		},
	}
	return marshalXML(c)
}

// marshalXML renders v as an indented XML document with declaration.
func marshalXML(v any) ([]byte, error) {
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("txt2epub: marshal %T: %w", v, err)
	}
	out := make([]byte, 0, len(xml.Header)+len(data)+1)
	out = append(out, xml.Header...)
	out = append(out, data...)
	out = append(out, '\n')
	return out, nil
}
