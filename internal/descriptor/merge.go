package descriptor

import (
	"fmt"
	"strconv"
)

// MergeSettings controls how a merge resolves field-name collisions and
// which origin the incoming content has.
type MergeSettings struct {
	// Prefix is prepended to an incoming field name that collides with an
	// existing one. Attribute-origin merges set it; element-origin merges
	// leave it empty and rely on the schema for uniqueness.
	Prefix string
	// FromAttribute marks the incoming content as attribute-origin.
	FromAttribute bool
}

// Merge folds other into d in place. The receiver keeps its identity and
// rendered name; other is consumed and must not be used afterwards.
// Merging into a reference or alias is disallowed: those are terminal
// shapes.
func (d *Descriptor) Merge(other *Descriptor, settings MergeSettings) error {
	if other == nil {
		return nil
	}

	switch d.Shape {
	case ShapeRecord:
		if other.Shape == ShapeRecord {
			d.mergeRecord(other, settings)
			return nil
		}

		d.mergeTerminalIntoRecord(other, settings)

		return nil
	case ShapeUnion:
		d.mergeIntoUnion(other, settings)
		return nil
	default:
		return fmt.Errorf("cannot merge into terminal shape %s (%s)", d.Shape, d.TypeName)
	}
}

// mergeRecord appends another record's fields. Group-like sources are
// flagged transparent and take the same path: their fields splice directly
// into the receiver instead of nesting.
func (d *Descriptor) mergeRecord(other *Descriptor, settings MergeSettings) {
	if len(d.Fields) == 0 {
		d.Fields = append(d.Fields, other.Fields...)
		if settings.FromAttribute {
			for i := range d.Fields {
				d.Fields[i].FromAttribute = true
			}
		}

		d.MergeNested(other.Nested...)

		return
	}

	for _, f := range other.Fields {
		if settings.FromAttribute {
			f.FromAttribute = true
		}

		f.Name = d.uniqueFieldName(f.Name, settings.Prefix)
		d.Fields = append(d.Fields, f)
	}

	d.MergeNested(other.Nested...)
}

// mergeTerminalIntoRecord turns a union, reference or alias into one new
// field of the receiver.
func (d *Descriptor) mergeTerminalIntoRecord(other *Descriptor, settings MergeSettings) {
	hint := other.Hint()
	if hint == "" {
		hint = LowerFirst(other.TypeName)
	}

	var fieldType TypeRef

	switch other.Shape {
	case ShapeReference, ShapeAlias:
		fieldType = other.Target
		d.MergeNested(other.Nested...)
	default:
		// Anonymous unions nest inside the receiver under a
		// path-qualified name.
		d.adoptNested(other)
		fieldType = TypeRef{Name: other.TypeName}
	}

	d.Fields = append(d.Fields, Field{
		Name:          d.uniqueFieldName(Export(hint), settings.Prefix),
		XMLName:       hint,
		Type:          fieldType,
		FromAttribute: settings.FromAttribute,
	})
}

// mergeIntoUnion turns other into one new variant carrying other as its
// sole payload.
func (d *Descriptor) mergeIntoUnion(other *Descriptor, settings MergeSettings) {
	_ = settings

	hint := other.Hint()
	if hint == "" {
		hint = LowerFirst(other.TypeName)
	}

	var payload TypeRef

	switch other.Shape {
	case ShapeReference, ShapeAlias:
		payload = other.Target
		d.MergeNested(other.Nested...)
	default:
		d.adoptNested(other)
		payload = TypeRef{Name: other.TypeName}
	}

	d.Variants = append(d.Variants, Variant{
		Name:    d.uniqueVariantName(Export(hint)),
		Payload: &payload,
	})
}

// adoptNested path-qualifies other's rendered name by the receiver's and
// stores it as a nested descriptor.
func (d *Descriptor) adoptNested(other *Descriptor) {
	qualified := d.TypeName + other.TypeName
	if other.TypeName != "" && d.TypeName != "" && !hasPrefix(other.TypeName, d.TypeName) {
		other.Rename(qualified)
	}

	d.MergeNested(other)
}

func hasPrefix(name, prefix string) bool {
	return len(name) >= len(prefix) && name[:len(prefix)] == prefix
}

// MergeNested absorbs incoming nested descriptors. An incoming descriptor
// whose rendered name matches an existing one is skipped when structurally
// identical, otherwise renamed by construct-kind suffix (with internal
// self-references rewritten) before insertion.
func (d *Descriptor) MergeNested(incoming ...*Descriptor) {
	for _, inc := range incoming {
		if inc == nil {
			continue
		}

		existing := d.findNested(inc.TypeName)
		if existing == nil {
			d.Nested = append(d.Nested, inc)
			continue
		}

		if StructurallyEqual(existing, inc) {
			continue
		}

		renamed := inc.TypeName + inc.Kind.Suffix()
		for i := 2; d.findNested(renamed) != nil; i++ {
			renamed = inc.TypeName + inc.Kind.Suffix() + strconv.Itoa(i)
		}

		inc.Rename(renamed)
		d.Nested = append(d.Nested, inc)
	}
}

func (d *Descriptor) findNested(typeName string) *Descriptor {
	for _, n := range d.Nested {
		if n.TypeName == typeName {
			return n
		}
	}

	return nil
}

// uniqueFieldName resolves a field name collision. A configured prefix is
// applied first; if the name still collides (or no prefix is configured) a
// numeric suffix disambiguates, so no field is ever silently overwritten.
func (d *Descriptor) uniqueFieldName(name, prefix string) string {
	if d.FindField(name) < 0 {
		return name
	}

	if prefix != "" {
		prefixed := prefix + name
		if d.FindField(prefixed) < 0 {
			return prefixed
		}

		name = prefixed
	}

	for i := 2; ; i++ {
		candidate := name + strconv.Itoa(i)
		if d.FindField(candidate) < 0 {
			return candidate
		}
	}
}

func (d *Descriptor) uniqueVariantName(name string) string {
	taken := func(candidate string) bool {
		for _, v := range d.Variants {
			if v.Name == candidate {
				return true
			}
		}

		return false
	}

	if !taken(name) {
		return name
	}

	for i := 2; ; i++ {
		candidate := name + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}

// StructurallyEqual reports whether two descriptors describe the same
// shape and content. Metadata that does not affect the declaration, such
// as the attribute-origin flag of a field, is ignored.
func StructurallyEqual(a, b *Descriptor) bool {
	if a.Shape != b.Shape || a.Transparent != b.Transparent || a.Target != b.Target {
		return false
	}

	if len(a.Fields) != len(b.Fields) || len(a.Variants) != len(b.Variants) || len(a.Nested) != len(b.Nested) {
		return false
	}

	for i := range a.Fields {
		af, bf := a.Fields[i], b.Fields[i]
		if af.Name != bf.Name || af.XMLName != bf.XMLName || af.Type != bf.Type {
			return false
		}
	}

	for i := range a.Variants {
		av, bv := a.Variants[i], b.Variants[i]
		if av.Name != bv.Name || av.XMLValue != bv.XMLValue {
			return false
		}

		switch {
		case av.Payload == nil && bv.Payload == nil:
		case av.Payload == nil || bv.Payload == nil:
			return false
		case *av.Payload != *bv.Payload:
			return false
		}
	}

	for i := range a.Nested {
		if !StructurallyEqual(a.Nested[i], b.Nested[i]) {
			return false
		}
	}

	return true
}
