package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/diag"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
	"github.com/DRvader/xml-schema-sub000/internal/symbols"
)

// compile parses and resolves one document with no import resolver.
func compile(t *testing.T, doc string) (*symbols.Context, *Result) {
	t.Helper()

	s, err := grammar.Parse([]byte(doc))
	require.NoError(t, err)

	ctx := symbols.NewContext(s)

	res, err := Resolve(s, ctx, Options{})
	require.NoError(t, err)

	return ctx, res
}

func lookup(t *testing.T, ctx *symbols.Context, key symbols.Key) *descriptor.Descriptor {
	t.Helper()

	d, ok := ctx.Lookup(key)
	require.True(t, ok, "missing %s", key.Ref().String())

	return d
}

const notesDoc = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns:tns="urn:notes" targetNamespace="urn:notes">
  <xs:element name="note">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="to" type="xs:string"/>
        <xs:element name="from" type="xs:string"/>
        <xs:element name="body" type="xs:string" minOccurs="0"/>
      </xs:sequence>
      <xs:attribute name="lang" type="xs:string" use="required"/>
    </xs:complexType>
  </xs:element>
</xs:schema>`

func TestResolve_InlineComplexTypeElement(t *testing.T) {
	ctx, res := compile(t, notesDoc)

	require.Len(t, res.TopLevel, 1)

	d := lookup(t, ctx, symbols.Key{Space: "urn:notes", Local: "note", Kind: grammar.KindElement})
	assert.Equal(t, descriptor.ShapeRecord, d.Shape)
	assert.Equal(t, "Note", d.TypeName)

	require.Len(t, d.Fields, 4)
	assert.Equal(t, "To", d.Fields[0].Name)
	assert.Equal(t, descriptor.TypeRef{Name: "string"}, d.Fields[0].Type)
	assert.Equal(t, "Body", d.Fields[2].Name)
	assert.Equal(t, descriptor.TypeRef{Name: "string", Optional: true}, d.Fields[2].Type)

	lang := d.Fields[3]
	assert.Equal(t, "Lang", lang.Name)
	assert.True(t, lang.FromAttribute)
	assert.Equal(t, descriptor.TypeRef{Name: "string"}, lang.Type, "required attributes stay bare")
}

func TestResolve_ForwardReferenceRetries(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
      xmlns:tns="urn:lib" targetNamespace="urn:lib">
  <xs:complexType name="Library">
    <xs:sequence>
      <xs:element name="book" type="tns:Book" maxOccurs="unbounded"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="Book">
    <xs:sequence>
      <xs:element name="title" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`

	ctx, res := compile(t, doc)
	require.Len(t, res.TopLevel, 2)

	lib := lookup(t, ctx, symbols.Key{Space: "urn:lib", Local: "Library", Kind: grammar.KindComplexType})
	require.Len(t, lib.Fields, 1)
	assert.Equal(t, "Book", lib.Fields[0].Name)
	assert.Equal(t, descriptor.TypeRef{Name: "Book", Repeated: true}, lib.Fields[0].Type)
}

func TestResolve_PureCycleReportsEveryPending(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
      xmlns:tns="urn:cycle" targetNamespace="urn:cycle">
  <xs:complexType name="A">
    <xs:sequence><xs:element name="b" type="tns:B"/></xs:sequence>
  </xs:complexType>
  <xs:complexType name="B">
    <xs:sequence><xs:element name="a" type="tns:A"/></xs:sequence>
  </xs:complexType>
</xs:schema>`

	s, err := grammar.Parse([]byte(doc))
	require.NoError(t, err)

	_, err = Resolve(s, symbols.NewContext(s), Options{})
	require.Error(t, err)

	var unresolved *diag.UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	require.Len(t, unresolved.Pending, 2)

	for _, p := range unresolved.Pending {
		assert.Positive(t, p.Retries)
	}
}

func TestResolve_EnumSimpleType(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:e">
  <xs:simpleType name="yesNo">
    <xs:restriction base="xs:string">
      <xs:enumeration value="yes"/>
      <xs:enumeration value="no"/>
    </xs:restriction>
  </xs:simpleType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	d := lookup(t, ctx, symbols.Key{Space: "urn:e", Local: "yesNo", Kind: grammar.KindSimpleType})
	assert.Equal(t, descriptor.ShapeUnion, d.Shape)
	assert.Equal(t, "YesNo", d.TypeName)

	require.Len(t, d.Variants, 2)
	assert.Equal(t, "Yes", d.Variants[0].Name)
	assert.Equal(t, "yes", d.Variants[0].XMLValue)
	assert.Nil(t, d.Variants[0].Payload)
}

func TestResolve_EnumVariantNameCollision(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:e">
  <xs:simpleType name="casing">
    <xs:restriction base="xs:string">
      <xs:enumeration value="foo-bar"/>
      <xs:enumeration value="fooBar"/>
    </xs:restriction>
  </xs:simpleType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	d := lookup(t, ctx, symbols.Key{Space: "urn:e", Local: "casing", Kind: grammar.KindSimpleType})
	require.Len(t, d.Variants, 2)
	assert.Equal(t, "FooBar", d.Variants[0].Name)
	assert.Equal(t, "FooBar2", d.Variants[1].Name)
	assert.Equal(t, "fooBar", d.Variants[1].XMLValue)
}

func TestResolve_TopLevelAliasAndList(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:s">
  <xs:simpleType name="code">
    <xs:restriction base="xs:string"/>
  </xs:simpleType>
  <xs:simpleType name="codes">
    <xs:list itemType="xs:int"/>
  </xs:simpleType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	alias := lookup(t, ctx, symbols.Key{Space: "urn:s", Local: "code", Kind: grammar.KindSimpleType})
	assert.Equal(t, descriptor.ShapeAlias, alias.Shape)
	assert.Equal(t, descriptor.TypeRef{Name: "string"}, alias.Target)

	list := lookup(t, ctx, symbols.Key{Space: "urn:s", Local: "codes", Kind: grammar.KindSimpleType})
	assert.Equal(t, descriptor.ShapeReference, list.Shape)
	assert.Equal(t, descriptor.TypeRef{Name: "int", Repeated: true}, list.Target)
}

func TestResolve_RepeatedInlineRecordDemotes(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:o">
  <xs:element name="order">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="items" maxOccurs="unbounded">
          <xs:complexType>
            <xs:sequence>
              <xs:element name="sku" type="xs:string"/>
            </xs:sequence>
          </xs:complexType>
        </xs:element>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

	ctx, _ := compile(t, doc)

	order := lookup(t, ctx, symbols.Key{Space: "urn:o", Local: "order", Kind: grammar.KindElement})
	assert.Equal(t, "Order", order.TypeName)

	require.Len(t, order.Fields, 1)
	assert.Equal(t, "Items", order.Fields[0].Name)
	assert.Equal(t, descriptor.TypeRef{Name: "InnerOrderItems", Repeated: true}, order.Fields[0].Type)

	require.Len(t, order.Nested, 1)
	inner := order.Nested[0]
	assert.Equal(t, "InnerOrderItems", inner.TypeName)
	assert.Equal(t, descriptor.ShapeRecord, inner.Shape)
	require.Len(t, inner.Fields, 1)
	assert.Equal(t, "Sku", inner.Fields[0].Name)
}

func TestResolve_ChoiceBecomesUnion(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:c">
  <xs:complexType name="Payment">
    <xs:choice>
      <xs:element name="card" type="xs:string"/>
      <xs:element name="cash" type="xs:decimal"/>
    </xs:choice>
  </xs:complexType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	d := lookup(t, ctx, symbols.Key{Space: "urn:c", Local: "Payment", Kind: grammar.KindComplexType})
	assert.Equal(t, descriptor.ShapeRecord, d.Shape)

	require.Len(t, d.Fields, 1)
	assert.Equal(t, "cardCash", d.Fields[0].XMLName)
	assert.Equal(t, "PaymentCardCash", d.Fields[0].Type.Name)

	require.Len(t, d.Nested, 1)
	union := d.Nested[0]
	assert.Equal(t, descriptor.ShapeUnion, union.Shape)
	require.Len(t, union.Variants, 2)
	assert.Equal(t, "Card", union.Variants[0].Name)
	assert.Equal(t, "string", union.Variants[0].Payload.Name)
	assert.Equal(t, "Cash", union.Variants[1].Name)
	assert.Equal(t, "float64", union.Variants[1].Payload.Name)
}

func TestResolve_GroupSplicesTransparently(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
      xmlns:tns="urn:g" targetNamespace="urn:g">
  <xs:complexType name="Person">
    <xs:group ref="tns:nameGroup"/>
    <xs:attribute name="id" type="xs:int" use="required"/>
  </xs:complexType>
  <xs:group name="nameGroup">
    <xs:sequence>
      <xs:element name="first" type="xs:string"/>
      <xs:element name="last" type="xs:string"/>
    </xs:sequence>
  </xs:group>
</xs:schema>`

	ctx, _ := compile(t, doc)

	person := lookup(t, ctx, symbols.Key{Space: "urn:g", Local: "Person", Kind: grammar.KindComplexType})
	require.Len(t, person.Fields, 3)
	assert.Equal(t, "First", person.Fields[0].Name)
	assert.Equal(t, "Last", person.Fields[1].Name)
	assert.Equal(t, "Id", person.Fields[2].Name)
	assert.Empty(t, person.Nested, "group content splices, it does not nest")

	group := lookup(t, ctx, symbols.Key{Space: "urn:g", Local: "nameGroup", Kind: grammar.KindGroup})
	assert.True(t, group.Transparent)
}

func TestResolve_ExtensionCopiesBase(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
      xmlns:tns="urn:d" targetNamespace="urn:d">
  <xs:complexType name="Base">
    <xs:sequence>
      <xs:element name="id" type="xs:int"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="Derived">
    <xs:complexContent>
      <xs:extension base="tns:Base">
        <xs:sequence>
          <xs:element name="extra" type="xs:string"/>
        </xs:sequence>
      </xs:extension>
    </xs:complexContent>
  </xs:complexType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	derived := lookup(t, ctx, symbols.Key{Space: "urn:d", Local: "Derived", Kind: grammar.KindComplexType})
	require.Len(t, derived.Fields, 2)
	assert.Equal(t, "Id", derived.Fields[0].Name)
	assert.Equal(t, "Extra", derived.Fields[1].Name)

	// The base keeps its own field list.
	base := lookup(t, ctx, symbols.Key{Space: "urn:d", Local: "Base", Kind: grammar.KindComplexType})
	assert.Len(t, base.Fields, 1)
}

func TestResolve_SimpleContentBecomesCharData(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:p">
  <xs:complexType name="Price">
    <xs:simpleContent>
      <xs:extension base="xs:decimal">
        <xs:attribute name="currency" type="xs:string"/>
      </xs:extension>
    </xs:simpleContent>
  </xs:complexType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	price := lookup(t, ctx, symbols.Key{Space: "urn:p", Local: "Price", Kind: grammar.KindComplexType})
	require.Len(t, price.Fields, 2)

	value := price.Fields[0]
	assert.Equal(t, "Value", value.Name)
	assert.Empty(t, value.XMLName, "character data carries no element name")
	assert.Equal(t, "float64", value.Type.Name)

	currency := price.Fields[1]
	assert.Equal(t, "Currency", currency.Name)
	assert.True(t, currency.FromAttribute)
	assert.True(t, currency.Type.Optional, "attributes default to optional")
}

func TestResolve_AttributeElementNameCollision(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:x">
  <xs:complexType name="Tagged">
    <xs:sequence>
      <xs:element name="label" type="xs:string"/>
    </xs:sequence>
    <xs:attribute name="label" type="xs:string"/>
  </xs:complexType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	d := lookup(t, ctx, symbols.Key{Space: "urn:x", Local: "Tagged", Kind: grammar.KindComplexType})
	require.Len(t, d.Fields, 2)
	assert.Equal(t, "Label", d.Fields[0].Name)
	assert.False(t, d.Fields[0].FromAttribute)
	assert.Equal(t, "AttrLabel", d.Fields[1].Name)
	assert.True(t, d.Fields[1].FromAttribute)
}

func TestResolve_AttributeRefRequiredOverridesDeclaration(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
      xmlns:tns="urn:a" targetNamespace="urn:a">
  <xs:attribute name="id" type="xs:string"/>
  <xs:complexType name="Thing">
    <xs:attribute ref="tns:id" use="required"/>
  </xs:complexType>
  <xs:complexType name="Loose">
    <xs:attribute ref="tns:id"/>
  </xs:complexType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	thing := lookup(t, ctx, symbols.Key{Space: "urn:a", Local: "Thing", Kind: grammar.KindComplexType})
	require.Len(t, thing.Fields, 1)
	assert.Equal(t, "Id", thing.Fields[0].Name)
	assert.Equal(t, descriptor.TypeRef{Name: "string"}, thing.Fields[0].Type,
		"the referencing site's required flag decides")

	loose := lookup(t, ctx, symbols.Key{Space: "urn:a", Local: "Loose", Kind: grammar.KindComplexType})
	require.Len(t, loose.Fields, 1)
	assert.Equal(t, descriptor.TypeRef{Name: "string", Optional: true}, loose.Fields[0].Type)
}

func TestResolve_ProhibitedAttributeSkipped(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:x">
  <xs:complexType name="Stripped">
    <xs:attribute name="gone" type="xs:string" use="prohibited"/>
    <xs:attribute name="kept" type="xs:string"/>
  </xs:complexType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	d := lookup(t, ctx, symbols.Key{Space: "urn:x", Local: "Stripped", Kind: grammar.KindComplexType})
	require.Len(t, d.Fields, 1)
	assert.Equal(t, "Kept", d.Fields[0].Name)
}

func TestResolve_ElementRef(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
      xmlns:tns="urn:r" targetNamespace="urn:r">
  <xs:element name="title" type="xs:string"/>
  <xs:complexType name="Chapter">
    <xs:sequence>
      <xs:element ref="tns:title"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	chapter := lookup(t, ctx, symbols.Key{Space: "urn:r", Local: "Chapter", Kind: grammar.KindComplexType})
	require.Len(t, chapter.Fields, 1)
	assert.Equal(t, "Title", chapter.Fields[0].Name)
	assert.Equal(t, "title", chapter.Fields[0].XMLName)
	assert.Equal(t, descriptor.TypeRef{Name: "string"}, chapter.Fields[0].Type)
}

func TestResolve_MissingImportIsWarningNotError(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:m">
  <xs:import namespace="urn:elsewhere" schemaLocation="elsewhere.xsd"/>
  <xs:simpleType name="local">
    <xs:restriction base="xs:string"/>
  </xs:simpleType>
</xs:schema>`

	_, res := compile(t, doc)

	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, "import_skipped", res.Diagnostics.Warnings[0].Code)
}

func TestResolve_SimpleTypeUnion(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:u">
  <xs:simpleType name="size">
    <xs:union memberTypes="xs:int xs:string"/>
  </xs:simpleType>
</xs:schema>`

	ctx, _ := compile(t, doc)

	d := lookup(t, ctx, symbols.Key{Space: "urn:u", Local: "size", Kind: grammar.KindSimpleType})
	assert.Equal(t, descriptor.ShapeUnion, d.Shape)

	require.Len(t, d.Variants, 2)
	assert.Equal(t, "Int", d.Variants[0].Name)
	assert.Equal(t, "int", d.Variants[0].Payload.Name)
	assert.Equal(t, "String", d.Variants[1].Name)
	assert.Equal(t, "string", d.Variants[1].Payload.Name)
}
