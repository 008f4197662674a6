package resolve

import (
	"strconv"
	"strings"

	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

// buildSimpleType builds the descriptor for a simple type. Top-level
// plain restrictions become aliases; enumeration-bearing restrictions
// become tagged unions; lists become repeated references; unions become
// tagged unions over their members.
func (b *builder) buildSimpleType(st *grammar.SimpleType, name grammar.QName, typeName string, topLevel bool) (*descriptor.Descriptor, error) {
	switch {
	case st.Restriction != nil:
		return b.buildRestriction(st.Restriction, name, typeName, topLevel)
	case st.List != nil:
		return b.buildList(st.List, name, typeName)
	case st.Union != nil:
		return b.buildUnion(st.Union, name, typeName)
	default:
		// Unreachable after grammar validation.
		return descriptor.NewAlias(name, grammar.KindSimpleType, typeName, descriptor.TypeRef{Name: "string"}), nil
	}
}

// buildRestriction handles simple type restriction. Enumerations shape
// the type; other facets constrain values only and do not.
func (b *builder) buildRestriction(res *grammar.Restriction, name grammar.QName, typeName string, topLevel bool) (*descriptor.Descriptor, error) {
	if len(res.Enumerations) > 0 {
		u := descriptor.NewUnion(name, grammar.KindSimpleType, typeName)

		seen := make(map[string]bool, len(res.Enumerations))
		for _, enum := range res.Enumerations {
			variant := descriptor.Export(enum.Value)
			for i := 2; seen[variant]; i++ {
				variant = descriptor.Export(enum.Value) + strconv.Itoa(i)
			}

			seen[variant] = true
			u.Variants = append(u.Variants, descriptor.Variant{Name: variant, XMLValue: enum.Value})
		}

		return u, nil
	}

	base, err := b.restrictionBase(res, name, typeName)
	if err != nil {
		return nil, err
	}

	if topLevel {
		return descriptor.NewAlias(name, grammar.KindSimpleType, typeName, base), nil
	}

	return descriptor.NewReference(name, grammar.KindSimpleType, typeName, base), nil
}

// restrictionBase resolves the restricted base type, named or inline.
func (b *builder) restrictionBase(res *grammar.Restriction, name grammar.QName, typeName string) (descriptor.TypeRef, error) {
	if res.Base != "" {
		d, err := b.ctx.ResolveTypeRef(res.Base, grammar.KindSimpleType)
		if err != nil {
			return descriptor.TypeRef{}, err
		}

		return d.Ref(), nil
	}

	inline, err := b.buildSimpleType(res.SimpleType, name, typeName+"Base", false)
	if err != nil {
		return descriptor.TypeRef{}, err
	}

	return inline.Ref(), nil
}

// buildList builds the repeated reference for a list simple type.
func (b *builder) buildList(list *grammar.List, name grammar.QName, typeName string) (*descriptor.Descriptor, error) {
	var item descriptor.TypeRef

	if list.ItemType != "" {
		d, err := b.ctx.ResolveTypeRef(list.ItemType, grammar.KindSimpleType)
		if err != nil {
			return nil, err
		}

		item = d.Ref()
	} else {
		inline, err := b.buildSimpleType(list.SimpleType, name, typeName+"Item", false)
		if err != nil {
			return nil, err
		}

		item = inline.Ref()
	}

	item.Repeated = true
	item.Optional = false

	return descriptor.NewReference(name, grammar.KindList, typeName, item), nil
}

// buildUnion merges each referenced and inline member as a variant, in
// declaration order and without deduplication.
func (b *builder) buildUnion(union *grammar.Union, name grammar.QName, typeName string) (*descriptor.Descriptor, error) {
	u := descriptor.NewUnion(name, grammar.KindUnion, typeName)

	for _, member := range strings.Fields(union.MemberTypes) {
		d, err := b.ctx.ResolveTypeRef(member, grammar.KindSimpleType)
		if err != nil {
			return nil, err
		}

		memberName := b.ctx.ResolveName(member)
		ref := descriptor.NewReference(memberName, grammar.KindSimpleType, descriptor.Export(memberName.Local), d.Ref())
		ref.FieldHint = memberName.Local

		if err := u.Merge(ref, descriptor.MergeSettings{}); err != nil {
			return nil, err
		}
	}

	for i, inline := range union.SimpleTypes {
		member, err := b.buildSimpleType(inline, name, typeName+"Member"+strconv.Itoa(i+1), false)
		if err != nil {
			return nil, err
		}

		if err := u.Merge(member, descriptor.MergeSettings{}); err != nil {
			return nil, err
		}
	}

	return u, nil
}
