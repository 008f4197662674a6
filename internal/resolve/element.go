package resolve

import (
	"github.com/DRvader/xml-schema-sub000/internal/cardinality"
	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

// buildTopLevelElement builds the descriptor stored for a named top-level
// element: its type's natural shape, occurrence-wrapped. An inline
// complex type stays a record; a wrapped one is demoted under the wrapper
// by the cardinality policy.
func (b *builder) buildTopLevelElement(el *grammar.Element) (*descriptor.Descriptor, error) {
	occ, err := grammar.ParseOccurs(el.MinOccurs, el.MaxOccurs)
	if err != nil {
		return nil, err
	}

	d, err := b.elementType(el, "")
	if err != nil {
		return nil, err
	}

	return cardinality.Wrap(d, occ), nil
}

// particleElement builds the descriptor an element contributes to its
// enclosing particle. The result always merges into the parent as one
// field: fresh records and unions are attached as nested descriptors
// behind a reference.
func (b *builder) particleElement(el *grammar.Element, scope string) (*descriptor.Descriptor, error) {
	occ, err := grammar.ParseOccurs(el.MinOccurs, el.MaxOccurs)
	if err != nil {
		return nil, err
	}

	d, err := b.elementType(el, scope)
	if err != nil {
		return nil, err
	}

	d = cardinality.Wrap(d, occ)
	if d.Shape != descriptor.ShapeRecord && d.Shape != descriptor.ShapeUnion {
		return d, nil
	}

	hint := d.FieldHint
	d.FieldHint = ""

	ref := descriptor.NewReference(d.Name, grammar.KindElement, d.TypeName, descriptor.TypeRef{Name: d.TypeName})
	ref.FieldHint = hint
	ref.Nested = []*descriptor.Descriptor{d}

	return ref, nil
}

// elementType resolves an element's declared type into its natural
// descriptor shape: a reference for ref= and type= declarations, the
// inline type itself otherwise.
func (b *builder) elementType(el *grammar.Element, scope string) (*descriptor.Descriptor, error) {
	if el.Ref != "" {
		target, err := b.ctx.ResolveTypeRef(el.Ref, grammar.KindElement)
		if err != nil {
			return nil, err
		}

		name := b.ctx.ResolveName(el.Ref)
		ref := descriptor.NewReference(name, grammar.KindElement, descriptor.Export(name.Local), target.Ref())
		ref.FieldHint = name.Local

		return ref, nil
	}

	name := grammar.QName{Space: b.schema.TargetNamespace, Local: el.Name}
	typeName := descriptor.Export(el.Name)

	switch {
	case el.Type != "":
		target, err := b.ctx.ResolveTypeRef(el.Type, grammar.KindSimpleType, grammar.KindComplexType)
		if err != nil {
			return nil, err
		}

		ref := descriptor.NewReference(name, grammar.KindElement, typeName, target.Ref())
		ref.FieldHint = el.Name

		return ref, nil

	case el.ComplexType != nil:
		inline, err := b.buildComplexType(el.ComplexType, name, scope+typeName)
		if err != nil {
			return nil, err
		}

		inline.FieldHint = el.Name

		return inline, nil

	case el.SimpleType != nil:
		inline, err := b.buildSimpleType(el.SimpleType, name, scope+typeName, false)
		if err != nil {
			return nil, err
		}

		inline.FieldHint = el.Name

		return inline, nil

	default:
		// No declared type defaults to string content.
		ref := descriptor.NewReference(name, grammar.KindElement, typeName, descriptor.TypeRef{Name: "string"})
		ref.FieldHint = el.Name

		return ref, nil
	}
}
