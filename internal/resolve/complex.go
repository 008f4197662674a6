package resolve

import (
	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

// buildComplexType builds the record descriptor for a complex type,
// top-level or inline. typeName is already scope-qualified by the caller
// for inline types.
func (b *builder) buildComplexType(ct *grammar.ComplexType, name grammar.QName, typeName string) (*descriptor.Descriptor, error) {
	rec := descriptor.NewRecord(name, grammar.KindComplexType, typeName)

	switch {
	case ct.ComplexContent != nil:
		if err := b.mergeDerivation(rec, ct.ComplexContent.Extension, ct.ComplexContent.Restriction); err != nil {
			return nil, err
		}
	case ct.SimpleContent != nil:
		if err := b.mergeSimpleContent(rec, ct.SimpleContent); err != nil {
			return nil, err
		}
	default:
		if err := b.mergeParticle(rec, ct.Sequence, ct.Choice, ct.Group); err != nil {
			return nil, err
		}
	}

	if err := b.mergeAttributes(rec, ct.Attributes, ct.AttributeGroups); err != nil {
		return nil, err
	}

	return rec, nil
}

// mergeDerivation handles complexContent extension and restriction. Both
// look up the named base and merge their own content model and attributes
// onto a copy of the base's fields.
func (b *builder) mergeDerivation(rec *descriptor.Descriptor, ext *grammar.Extension, res *grammar.Restriction) error {
	base := ext
	if base == nil {
		base = &grammar.Extension{
			Base:            res.Base,
			Sequence:        res.Sequence,
			Choice:          res.Choice,
			Attributes:      res.Attributes,
			AttributeGroups: res.AttributeGroups,
		}
	}

	baseDesc, err := b.ctx.ResolveTypeRef(base.Base, grammar.KindComplexType, grammar.KindSimpleType)
	if err != nil {
		return err
	}

	if err := b.mergeBase(rec, baseDesc); err != nil {
		return err
	}

	if err := b.mergeParticle(rec, base.Sequence, base.Choice, base.Group); err != nil {
		return err
	}

	return b.mergeAttributes(rec, base.Attributes, base.AttributeGroups)
}

// mergeSimpleContent handles simpleContent extension and restriction: the
// base becomes the character data value, attributes are merged on top.
func (b *builder) mergeSimpleContent(rec *descriptor.Descriptor, sc *grammar.SimpleContent) error {
	baseRef := ""
	attrs := []*grammar.Attribute(nil)
	groups := []*grammar.AttributeGroup(nil)

	switch {
	case sc.Extension != nil:
		baseRef = sc.Extension.Base
		attrs = sc.Extension.Attributes
		groups = sc.Extension.AttributeGroups
	case sc.Restriction != nil:
		baseRef = sc.Restriction.Base
		attrs = sc.Restriction.Attributes
		groups = sc.Restriction.AttributeGroups
	}

	base, err := b.ctx.ResolveTypeRef(baseRef, grammar.KindSimpleType, grammar.KindComplexType)
	if err != nil {
		return err
	}

	rec.Fields = append(rec.Fields, charDataField(base))

	return b.mergeAttributes(rec, attrs, groups)
}

// mergeBase folds a resolved base descriptor into a derived record. Record
// bases contribute a copy of their fields; simple bases contribute the
// character data value.
func (b *builder) mergeBase(rec, base *descriptor.Descriptor) error {
	if base.Shape == descriptor.ShapeRecord {
		return rec.Merge(base.Clone(), descriptor.MergeSettings{})
	}

	rec.Fields = append(rec.Fields, charDataField(base))

	return nil
}

// charDataField is the field carrying element character data. An empty
// XMLName marks it for chardata serialization.
func charDataField(base *descriptor.Descriptor) descriptor.Field {
	return descriptor.Field{Name: "Value", XMLName: "", Type: base.Ref()}
}

// buildGroup builds a named model group. Group content is transparent: a
// referencing type splices the fields instead of nesting the group.
func (b *builder) buildGroup(g *grammar.Group) (*descriptor.Descriptor, error) {
	name := grammar.QName{Space: b.schema.TargetNamespace, Local: g.Name}
	rec := descriptor.NewRecord(name, grammar.KindGroup, descriptor.Export(g.Name))
	rec.Transparent = true

	if err := b.mergeParticle(rec, g.Sequence, g.Choice, nil); err != nil {
		return nil, err
	}

	return rec, nil
}

// buildAttributeGroup builds a named attribute group, also transparent.
func (b *builder) buildAttributeGroup(ag *grammar.AttributeGroup) (*descriptor.Descriptor, error) {
	name := grammar.QName{Space: b.schema.TargetNamespace, Local: ag.Name}
	rec := descriptor.NewRecord(name, grammar.KindAttributeGroup, descriptor.Export(ag.Name))
	rec.Transparent = true

	if err := b.mergeAttributes(rec, ag.Attributes, ag.AttributeGroups); err != nil {
		return nil, err
	}

	return rec, nil
}
