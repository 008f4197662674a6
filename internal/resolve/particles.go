package resolve

import (
	"github.com/DRvader/xml-schema-sub000/internal/cardinality"
	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/diag"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

// mergeParticle folds a type's particle (sequence, choice, or group
// reference) into the record under construction.
func (b *builder) mergeParticle(rec *descriptor.Descriptor, seq *grammar.Sequence, ch *grammar.Choice, groupRef *grammar.Group) error {
	if seq != nil {
		d, err := b.buildSequence(seq, rec.TypeName)
		if err != nil {
			return err
		}

		if err := rec.Merge(d, descriptor.MergeSettings{}); err != nil {
			return err
		}
	}

	if ch != nil {
		d, err := b.buildChoice(ch, rec.TypeName)
		if err != nil {
			return err
		}

		if err := rec.Merge(d, descriptor.MergeSettings{}); err != nil {
			return err
		}
	}

	if groupRef != nil {
		if err := b.mergeGroupRef(rec, groupRef); err != nil {
			return err
		}
	}

	return nil
}

// buildSequence builds the record contributed by a sequence particle.
// Unwrapped sequences stay transparent and splice their fields into the
// parent; occurrence-wrapped ones become named nested types with a
// content-derived synthetic name.
func (b *builder) buildSequence(seq *grammar.Sequence, scope string) (*descriptor.Descriptor, error) {
	occ, err := grammar.ParseOccurs(seq.MinOccurs, seq.MaxOccurs)
	if err != nil {
		return nil, err
	}

	rec := descriptor.NewRecord(grammar.QName{}, grammar.KindSequence, "")
	rec.Transparent = true

	children, err := b.particleChildren(seq.Elements, seq.Sequences, seq.Choices, seq.Groups, scope)
	if err != nil {
		return nil, err
	}

	if needsName(occ) {
		rec.TypeName = scope + descriptor.InferTypeName(children)
		rec.Transparent = false
	}

	for _, child := range children {
		if err := rec.Merge(child, descriptor.MergeSettings{}); err != nil {
			return nil, err
		}
	}

	return cardinality.Wrap(rec, occ), nil
}

// buildChoice builds the tagged union contributed by a choice particle.
// Anonymous choices get a deterministic, content-derived synthetic name.
func (b *builder) buildChoice(ch *grammar.Choice, scope string) (*descriptor.Descriptor, error) {
	occ, err := grammar.ParseOccurs(ch.MinOccurs, ch.MaxOccurs)
	if err != nil {
		return nil, err
	}

	children, err := b.particleChildren(ch.Elements, ch.Sequences, ch.Choices, ch.Groups, scope)
	if err != nil {
		return nil, err
	}

	u := descriptor.NewUnion(grammar.QName{}, grammar.KindChoice, descriptor.InferTypeName(children))

	for _, child := range children {
		if err := u.Merge(child, descriptor.MergeSettings{}); err != nil {
			return nil, err
		}
	}

	if len(u.Variants) == 0 {
		return nil, diag.Violationf("choice", "%s: no variants", u.TypeName)
	}

	return cardinality.Wrap(u, occ), nil
}

// particleChildren builds the descriptors of a particle's children.
// Element declaration order is preserved; nested particles and group
// references follow the elements.
func (b *builder) particleChildren(
	elements []*grammar.Element,
	sequences []*grammar.Sequence,
	choices []*grammar.Choice,
	groups []*grammar.Group,
	scope string,
) ([]*descriptor.Descriptor, error) {
	var children []*descriptor.Descriptor

	for _, el := range elements {
		d, err := b.particleElement(el, scope)
		if err != nil {
			return nil, err
		}

		children = append(children, d)
	}

	for _, nested := range sequences {
		d, err := b.buildSequence(nested, scope)
		if err != nil {
			return nil, err
		}

		children = append(children, d)
	}

	for _, nested := range choices {
		d, err := b.buildChoice(nested, scope)
		if err != nil {
			return nil, err
		}

		children = append(children, d)
	}

	for _, g := range groups {
		d, err := b.resolveGroupRef(g)
		if err != nil {
			return nil, err
		}

		children = append(children, d)
	}

	return children, nil
}

// mergeGroupRef splices a referenced model group's fields into a record.
func (b *builder) mergeGroupRef(rec *descriptor.Descriptor, g *grammar.Group) error {
	d, err := b.resolveGroupRef(g)
	if err != nil {
		return err
	}

	return rec.Merge(d, descriptor.MergeSettings{})
}

// resolveGroupRef looks up a named model group and returns a private copy
// of its transparent descriptor, occurrence-wrapped if the reference asks
// for it.
func (b *builder) resolveGroupRef(g *grammar.Group) (*descriptor.Descriptor, error) {
	occ, err := grammar.ParseOccurs(g.MinOccurs, g.MaxOccurs)
	if err != nil {
		return nil, err
	}

	d, err := b.ctx.ResolveTypeRef(g.Ref, grammar.KindGroup)
	if err != nil {
		return nil, err
	}

	clone := d.Clone()
	if needsName(occ) {
		clone.Transparent = false
	}

	return cardinality.Wrap(clone, occ), nil
}

// needsName reports whether an occurrence forces an otherwise-transparent
// particle to become a named nested type.
func needsName(occ grammar.Occurs) bool {
	return cardinality.Multiple(occ) || cardinality.Optional(occ)
}
