package grammar

// Element declares an XML element, either top-level or inside a particle.
// Exactly one of Ref, Type, or an inline type is expected; violations are
// reported during parsing.
type Element struct {
	Name      string `xml:"name,attr"`
	Ref       string `xml:"ref,attr"`
	Type      string `xml:"type,attr"`
	Default   string `xml:"default,attr"`
	Nillable  string `xml:"nillable,attr"`
	MinOccurs string `xml:"minOccurs,attr"`
	MaxOccurs string `xml:"maxOccurs,attr"`

	ComplexType *ComplexType `xml:"complexType"`
	SimpleType  *SimpleType  `xml:"simpleType"`
}

// Attribute declares an attribute, either top-level, inside a complex type,
// or inside an attribute group.
type Attribute struct {
	Name    string `xml:"name,attr"`
	Ref     string `xml:"ref,attr"`
	Type    string `xml:"type,attr"`
	Use     string `xml:"use,attr"`
	Default string `xml:"default,attr"`
	Fixed   string `xml:"fixed,attr"`

	SimpleType *SimpleType `xml:"simpleType"`
}

// Required reports whether the attribute carries use="required". Attribute
// optionality keys off this flag, never off occurrence counts.
func (a *Attribute) Required() bool {
	return a.Use == "required"
}

// ComplexType describes an element content model with attributes. The
// particle children (Sequence, Choice, Group) are mutually exclusive with
// each other and with ComplexContent/SimpleContent.
type ComplexType struct {
	Name  string `xml:"name,attr"`
	Mixed string `xml:"mixed,attr"`

	Sequence *Sequence `xml:"sequence"`
	Choice   *Choice   `xml:"choice"`
	Group    *Group    `xml:"group"`

	Attributes      []*Attribute      `xml:"attribute"`
	AttributeGroups []*AttributeGroup `xml:"attributeGroup"`

	ComplexContent *ComplexContent `xml:"complexContent"`
	SimpleContent  *SimpleContent  `xml:"simpleContent"`
}

// ComplexContent wraps an extension or restriction of a complex base type.
type ComplexContent struct {
	Extension   *Extension   `xml:"extension"`
	Restriction *Restriction `xml:"restriction"`
}

// SimpleContent wraps an extension or restriction of a simple base type,
// producing character data content plus attributes.
type SimpleContent struct {
	Extension   *Extension   `xml:"extension"`
	Restriction *Restriction `xml:"restriction"`
}

// Extension derives a type by adding particles and attributes to a named
// base type.
type Extension struct {
	Base string `xml:"base,attr"`

	Sequence *Sequence `xml:"sequence"`
	Choice   *Choice   `xml:"choice"`
	Group    *Group    `xml:"group"`

	Attributes      []*Attribute      `xml:"attribute"`
	AttributeGroups []*AttributeGroup `xml:"attributeGroup"`
}

// Restriction derives a type by constraining a named base type. For simple
// types the facets matter (enumerations foremost); for complex content the
// particle and attribute children do.
type Restriction struct {
	Base string `xml:"base,attr"`

	Enumerations []*Enumeration `xml:"enumeration"`
	Pattern      *Facet         `xml:"pattern"`
	MinLength    *Facet         `xml:"minLength"`
	MaxLength    *Facet         `xml:"maxLength"`
	MinInclusive *Facet         `xml:"minInclusive"`
	MaxInclusive *Facet         `xml:"maxInclusive"`

	SimpleType *SimpleType `xml:"simpleType"`

	Sequence *Sequence `xml:"sequence"`
	Choice   *Choice   `xml:"choice"`

	Attributes      []*Attribute      `xml:"attribute"`
	AttributeGroups []*AttributeGroup `xml:"attributeGroup"`
}

// Enumeration is one permitted value of a restricted simple type.
type Enumeration struct {
	Value string `xml:"value,attr"`
}

// Facet is a single-value restriction facet. Facets other than enumeration
// do not shape the generated types; they are retained for completeness.
type Facet struct {
	Value string `xml:"value,attr"`
}

// SimpleType describes a scalar type. Exactly one of Restriction, List, or
// Union must be present.
type SimpleType struct {
	Name string `xml:"name,attr"`

	Restriction *Restriction `xml:"restriction"`
	List        *List        `xml:"list"`
	Union       *Union       `xml:"union"`
}

// List declares a whitespace-separated list of a simple item type.
type List struct {
	ItemType string `xml:"itemType,attr"`

	SimpleType *SimpleType `xml:"simpleType"`
}

// Union declares a choice between simple member types, referenced by name
// and/or declared inline. Declaration order is preserved.
type Union struct {
	MemberTypes string `xml:"memberTypes,attr"`

	SimpleTypes []*SimpleType `xml:"simpleType"`
}

// Sequence is an ordered particle. Its children contribute fields to the
// enclosing type in declaration order.
type Sequence struct {
	MinOccurs string `xml:"minOccurs,attr"`
	MaxOccurs string `xml:"maxOccurs,attr"`

	Elements  []*Element  `xml:"element"`
	Choices   []*Choice   `xml:"choice"`
	Sequences []*Sequence `xml:"sequence"`
	Groups    []*Group    `xml:"group"`
}

// Choice is an exclusive particle. Its children become variants of a
// tagged union.
type Choice struct {
	MinOccurs string `xml:"minOccurs,attr"`
	MaxOccurs string `xml:"maxOccurs,attr"`

	Elements  []*Element  `xml:"element"`
	Choices   []*Choice   `xml:"choice"`
	Sequences []*Sequence `xml:"sequence"`
	Groups    []*Group    `xml:"group"`
}

// Group is either a named model group definition (Name set, top-level) or
// a reference to one (Ref set). Group content is transparent: its fields
// splice into the referencing type.
type Group struct {
	Name      string `xml:"name,attr"`
	Ref       string `xml:"ref,attr"`
	MinOccurs string `xml:"minOccurs,attr"`
	MaxOccurs string `xml:"maxOccurs,attr"`

	Sequence *Sequence `xml:"sequence"`
	Choice   *Choice   `xml:"choice"`
}

// AttributeGroup is either a named attribute collection (Name set) or a
// reference to one (Ref set). Like model groups, its content splices into
// the referencing type.
type AttributeGroup struct {
	Name string `xml:"name,attr"`
	Ref  string `xml:"ref,attr"`

	Attributes      []*Attribute      `xml:"attribute"`
	AttributeGroups []*AttributeGroup `xml:"attributeGroup"`
}

// Import pulls top-level definitions of another schema document into the
// importing one.
type Import struct {
	Namespace      string `xml:"namespace,attr"`
	SchemaLocation string `xml:"schemaLocation,attr"`
}
