package descriptor

import (
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

// Shape is the target-language shape of a descriptor.
type Shape int

const (
	// ShapeRecord is a product type with ordered named fields.
	ShapeRecord Shape = iota
	// ShapeUnion is a sum type with ordered named variants.
	ShapeUnion
	// ShapeReference is a possibly-wrapped reference to another type.
	ShapeReference
	// ShapeAlias is a top-level name for an existing type.
	ShapeAlias
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRecord:
		return "record"
	case ShapeUnion:
		return "union"
	case ShapeReference:
		return "reference"
	case ShapeAlias:
		return "alias"
	default:
		return "unknown"
	}
}

// TypeRef is a reference to a type by rendered name, with at most one
// cardinality wrapper applied.
type TypeRef struct {
	Name     string
	Optional bool
	Repeated bool
}

// String renders the reference as target-language syntax.
func (r TypeRef) String() string {
	switch {
	case r.Repeated:
		return "[]" + r.Name
	case r.Optional:
		return "*" + r.Name
	default:
		return r.Name
	}
}

// Field is one named member of a record.
type Field struct {
	// Name is the rendered field name, unique within the record.
	Name string
	// XMLName is the original attribute or element local name.
	XMLName string
	// Type references the field type.
	Type TypeRef
	// FromAttribute is true for attribute-origin fields.
	FromAttribute bool
}

// Variant is one alternative of a tagged union. Enumeration variants carry
// no payload; choice variants carry exactly one.
type Variant struct {
	// Name is the rendered variant name.
	Name string
	// XMLValue is the lexical enumeration value, empty for payload variants.
	XMLValue string
	// Payload references the carried type, nil for enumeration variants.
	Payload *TypeRef
}

// Descriptor is the in-memory representation of one generated target type.
type Descriptor struct {
	// Name is the identity of the definition this descriptor came from.
	Name grammar.QName
	// Kind is the construct kind of the source definition.
	Kind grammar.Kind
	// TypeName is the rendered type name, adjusted on collision.
	TypeName string
	// Shape selects which of Fields, Variants or Target is meaningful.
	Shape Shape

	Fields   []Field
	Variants []Variant
	// Target is the referenced type for ShapeReference and ShapeAlias.
	Target TypeRef

	// FieldHint is the name to use when this descriptor becomes a field
	// or variant of a parent.
	FieldHint string
	// Nested holds exclusively-owned descriptors for anonymous inline
	// types. They render inside the owner's scope.
	Nested []*Descriptor
	// Transparent marks group-like descriptors whose fields splice into
	// the parent instead of nesting.
	Transparent bool
}

// NewRecord returns an empty record descriptor.
func NewRecord(name grammar.QName, kind grammar.Kind, typeName string) *Descriptor {
	return &Descriptor{Name: name, Kind: kind, TypeName: typeName, Shape: ShapeRecord}
}

// NewUnion returns an empty tagged union descriptor.
func NewUnion(name grammar.QName, kind grammar.Kind, typeName string) *Descriptor {
	return &Descriptor{Name: name, Kind: kind, TypeName: typeName, Shape: ShapeUnion}
}

// NewReference returns a reference descriptor pointing at target.
func NewReference(name grammar.QName, kind grammar.Kind, typeName string, target TypeRef) *Descriptor {
	return &Descriptor{Name: name, Kind: kind, TypeName: typeName, Shape: ShapeReference, Target: target}
}

// NewAlias returns an alias descriptor pointing at target.
func NewAlias(name grammar.QName, kind grammar.Kind, typeName string, target TypeRef) *Descriptor {
	return &Descriptor{Name: name, Kind: kind, TypeName: typeName, Shape: ShapeAlias, Target: target}
}

// Hint returns the field-name hint, falling back to the descriptor's own
// local name.
func (d *Descriptor) Hint() string {
	if d.FieldHint != "" {
		return d.FieldHint
	}

	return d.Name.Local
}

// Ref returns a reference to this descriptor usable as a field type. Bare
// references and aliases collapse to their target so that no intermediate
// type is demanded from the emission backend.
func (d *Descriptor) Ref() TypeRef {
	if d.Shape == ShapeReference || d.Shape == ShapeAlias {
		return d.Target
	}

	return TypeRef{Name: d.TypeName}
}

// Clone returns a deep copy of the descriptor. Extension and restriction
// merge onto a copy of their base's content, never onto the base itself.
func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}

	out := *d
	out.Fields = append([]Field(nil), d.Fields...)
	out.Variants = append([]Variant(nil), d.Variants...)

	for i, v := range out.Variants {
		if v.Payload != nil {
			payload := *v.Payload
			out.Variants[i].Payload = &payload
		}
	}

	out.Nested = make([]*Descriptor, len(d.Nested))
	for i, n := range d.Nested {
		out.Nested[i] = n.Clone()
	}

	return &out
}

// Rename changes the rendered type name and rewrites every self-reference
// inside the descriptor's own content to the new name.
func (d *Descriptor) Rename(typeName string) {
	old := d.TypeName
	d.TypeName = typeName
	d.RewriteRefs(old, typeName)
}

// RewriteRefs replaces references to the rendered name old with new in the
// descriptor's fields, variants, target and nested descriptors.
func (d *Descriptor) RewriteRefs(old, new string) {
	if old == "" || old == new {
		return
	}

	for i := range d.Fields {
		if d.Fields[i].Type.Name == old {
			d.Fields[i].Type.Name = new
		}
	}

	for i := range d.Variants {
		if p := d.Variants[i].Payload; p != nil && p.Name == old {
			p.Name = new
		}
	}

	if d.Target.Name == old {
		d.Target.Name = new
	}

	for _, n := range d.Nested {
		n.RewriteRefs(old, new)
	}
}

// FindField returns the index of the field with the given rendered name,
// or -1 when absent.
func (d *Descriptor) FindField(name string) int {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return i
		}
	}

	return -1
}
