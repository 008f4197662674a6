package resolve

import (
	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/diag"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

// attrCollisionPrefix disambiguates attribute-origin fields that collide
// with element-origin ones.
const attrCollisionPrefix = "Attr"

// buildTopLevelAttribute builds the descriptor stored for a named
// top-level attribute.
func (b *builder) buildTopLevelAttribute(attr *grammar.Attribute) (*descriptor.Descriptor, error) {
	return b.attributeField(attr)
}

// attributeField builds the reference an attribute contributes as a
// field. Optionality keys off the required flag, never off occurrence
// counts. Declaring both a name reference and an inline type is rejected
// before generation.
func (b *builder) attributeField(attr *grammar.Attribute) (*descriptor.Descriptor, error) {
	if attr.Name != "" && attr.Ref != "" {
		return nil, diag.Violationf("attribute", "%s: name and ref are mutually exclusive", attr.Name)
	}

	if (attr.Type != "" || attr.Ref != "") && attr.SimpleType != nil {
		return nil, diag.Violationf("attribute", "%s: reference and inline type are mutually exclusive", attr.Name)
	}

	if attr.Ref != "" {
		target, err := b.ctx.ResolveTypeRef(attr.Ref, grammar.KindAttribute)
		if err != nil {
			return nil, err
		}

		// The referenced declaration carries its own use wrapping; the
		// referencing site's required flag decides, so unwrap before
		// re-applying.
		base := target.Ref()
		base.Optional = false

		name := b.ctx.ResolveName(attr.Ref)
		ref := descriptor.NewReference(name, grammar.KindAttribute, descriptor.Export(name.Local), optionalRef(base, attr))
		ref.FieldHint = name.Local

		return ref, nil
	}

	name := grammar.QName{Space: b.schema.TargetNamespace, Local: attr.Name}
	typeName := descriptor.Export(attr.Name)

	var (
		target descriptor.TypeRef
		nested []*descriptor.Descriptor
	)

	switch {
	case attr.Type != "":
		d, err := b.ctx.ResolveTypeRef(attr.Type, grammar.KindSimpleType)
		if err != nil {
			return nil, err
		}

		target = d.Ref()

	case attr.SimpleType != nil:
		inline, err := b.buildSimpleType(attr.SimpleType, name, typeName, false)
		if err != nil {
			return nil, err
		}

		if inline.Shape == descriptor.ShapeUnion {
			nested = []*descriptor.Descriptor{inline}
			target = descriptor.TypeRef{Name: inline.TypeName}
		} else {
			target = inline.Ref()
			nested = inline.Nested
		}

	default:
		// Untyped attributes default to string content.
		target = descriptor.TypeRef{Name: "string"}
	}

	ref := descriptor.NewReference(name, grammar.KindAttribute, typeName, optionalRef(target, attr))
	ref.FieldHint = attr.Name
	ref.Nested = nested

	return ref, nil
}

// optionalRef applies the required-flag wrapping to an attribute type.
func optionalRef(ref descriptor.TypeRef, attr *grammar.Attribute) descriptor.TypeRef {
	if !attr.Required() && !ref.Repeated {
		ref.Optional = true
	}

	return ref
}

// mergeAttributes folds attribute declarations and attribute group
// references into a record. Collisions with element-origin fields pick up
// the attribute prefix instead of overwriting.
func (b *builder) mergeAttributes(rec *descriptor.Descriptor, attrs []*grammar.Attribute, groups []*grammar.AttributeGroup) error {
	settings := descriptor.MergeSettings{Prefix: attrCollisionPrefix, FromAttribute: true}

	for _, attr := range attrs {
		if attr.Use == "prohibited" {
			continue
		}

		d, err := b.attributeField(attr)
		if err != nil {
			return err
		}

		if err := rec.Merge(d, settings); err != nil {
			return err
		}
	}

	for _, ag := range groups {
		if ag.Ref == "" {
			return diag.Violationf("attributeGroup", "reference without ref")
		}

		d, err := b.ctx.ResolveTypeRef(ag.Ref, grammar.KindAttributeGroup)
		if err != nil {
			return err
		}

		if err := rec.Merge(d.Clone(), settings); err != nil {
			return err
		}
	}

	return nil
}
