// Package cardinality maps occurrence constraints onto type wrappers.
//
// A construct is wrapped at most once, after merging completes: repeated
// when its occurrence allows more than one value, optional when it allows
// zero-or-one, bare otherwise. The two wrappings are mutually exclusive.
package cardinality

import (
	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

// Multiple reports whether the occurrence admits more than one value.
func Multiple(occ grammar.Occurs) bool {
	return occ.Unbounded || occ.Max > 1 || occ.Min > 1
}

// Optional reports whether the occurrence admits zero values but at most
// one. Mutually exclusive with Multiple.
func Optional(occ grammar.Occurs) bool {
	return !Multiple(occ) && occ.Min == 0 && occ.Max == 1
}

// Wrap applies the occurrence wrapping to a resolved descriptor and
// returns the descriptor to use in its place.
//
// Wrapping an already-wrapped reference is a no-op, so re-application
// never double-wraps. A freshly-introduced record or union (not a bare
// reference) is demoted to a nested descriptor of the wrapper and renamed
// with an Inner qualifier.
func Wrap(d *descriptor.Descriptor, occ grammar.Occurs) *descriptor.Descriptor {
	switch {
	case Multiple(occ):
		return wrap(d, func(ref *descriptor.TypeRef) bool {
			if ref.Repeated {
				return false
			}

			ref.Repeated = true
			ref.Optional = false

			return true
		})
	case Optional(occ):
		return wrap(d, func(ref *descriptor.TypeRef) bool {
			if ref.Optional || ref.Repeated {
				return false
			}

			ref.Optional = true

			return true
		})
	default:
		return d
	}
}

// wrap applies one wrapping step. For reference shapes the target is
// adjusted in place; for record and union shapes a wrapper reference is
// introduced and the original becomes its nested descriptor.
func wrap(d *descriptor.Descriptor, apply func(*descriptor.TypeRef) bool) *descriptor.Descriptor {
	if d.Shape == descriptor.ShapeReference || d.Shape == descriptor.ShapeAlias {
		apply(&d.Target)
		return d
	}

	wrapper := descriptor.NewReference(d.Name, d.Kind, d.TypeName, descriptor.TypeRef{})
	wrapper.FieldHint = d.FieldHint

	inner := d
	inner.Rename("Inner" + inner.TypeName)
	inner.FieldHint = ""

	wrapper.Target = descriptor.TypeRef{Name: inner.TypeName}
	apply(&wrapper.Target)
	wrapper.Nested = []*descriptor.Descriptor{inner}

	return wrapper
}
