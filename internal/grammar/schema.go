package grammar

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/DRvader/xml-schema-sub000/internal/diag"
)

// Schema is the parsed document root. It owns every reachable construct
// node and records the namespace prefix declarations of the root element.
type Schema struct {
	TargetNamespace      string
	ElementFormDefault   string
	AttributeFormDefault string

	// Prefixes maps declared namespace prefixes to URIs. The default
	// namespace, if declared, is stored under the empty prefix.
	Prefixes map[string]string

	Imports         []*Import
	Elements        []*Element
	Attributes      []*Attribute
	ComplexTypes    []*ComplexType
	SimpleTypes     []*SimpleType
	Groups          []*Group
	AttributeGroups []*AttributeGroup
}

// xmlSchema is the decode target for the root element. Prefix declarations
// arrive through the catch-all attribute list.
type xmlSchema struct {
	TargetNamespace      string     `xml:"targetNamespace,attr"`
	ElementFormDefault   string     `xml:"elementFormDefault,attr"`
	AttributeFormDefault string     `xml:"attributeFormDefault,attr"`
	Attrs                []xml.Attr `xml:",any,attr"`

	Imports         []*Import         `xml:"import"`
	Elements        []*Element        `xml:"element"`
	Attributes      []*Attribute      `xml:"attribute"`
	ComplexTypes    []*ComplexType    `xml:"complexType"`
	SimpleTypes     []*SimpleType     `xml:"simpleType"`
	Groups          []*Group          `xml:"group"`
	AttributeGroups []*AttributeGroup `xml:"attributeGroup"`
}

// Parse decodes one XSD document into a Schema. The document root must be
// a schema element in the XML Schema namespace; anything else is fatal.
// Grammar violations are detected here, before resolution starts.
func Parse(data []byte) (*Schema, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	root, err := findRoot(dec)
	if err != nil {
		return nil, err
	}

	var raw xmlSchema
	if err := dec.DecodeElement(&raw, root); err != nil {
		return nil, fmt.Errorf("decoding schema document: %w", err)
	}

	s := &Schema{
		TargetNamespace:      raw.TargetNamespace,
		ElementFormDefault:   raw.ElementFormDefault,
		AttributeFormDefault: raw.AttributeFormDefault,
		Prefixes:             prefixTable(raw.Attrs),
		Imports:              raw.Imports,
		Elements:             raw.Elements,
		Attributes:           raw.Attributes,
		ComplexTypes:         raw.ComplexTypes,
		SimpleTypes:          raw.SimpleTypes,
		Groups:               raw.Groups,
		AttributeGroups:      raw.AttributeGroups,
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// findRoot skips leading character data and processing instructions and
// returns the document root start element.
func findRoot(dec *xml.Decoder) (*xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, diag.Violationf("document", "no root element found")
		}

		if err != nil {
			return nil, fmt.Errorf("reading schema document: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if start.Name.Space != XSDNamespace || start.Name.Local != "schema" {
			return nil, diag.Violationf("document",
				"root element is %s, want schema in %s", start.Name.Local, XSDNamespace)
		}

		return &start, nil
	}
}

// prefixTable extracts xmlns declarations from the root attribute list.
func prefixTable(attrs []xml.Attr) map[string]string {
	prefixes := make(map[string]string)

	for _, attr := range attrs {
		switch {
		case attr.Name.Space == "xmlns":
			prefixes[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			prefixes[""] = attr.Value
		}
	}

	return prefixes
}
