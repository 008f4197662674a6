package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

func record(typeName string, fields ...Field) *Descriptor {
	d := NewRecord(grammar.QName{Space: "urn:x", Local: LowerFirst(typeName)}, grammar.KindComplexType, typeName)
	d.Fields = fields

	return d
}

func TestMerge_RecordIntoEmptyRecord(t *testing.T) {
	dst := record("Note")
	src := record("NoteBody",
		Field{Name: "To", XMLName: "to", Type: TypeRef{Name: "string"}},
		Field{Name: "From", XMLName: "from", Type: TypeRef{Name: "string"}},
	)

	require.NoError(t, dst.Merge(src, MergeSettings{}))

	require.Len(t, dst.Fields, 2)
	assert.Equal(t, "To", dst.Fields[0].Name)
	assert.Equal(t, "Note", dst.TypeName)
}

func TestMerge_RecordAppendsDisjointFields(t *testing.T) {
	dst := record("Note", Field{Name: "To", XMLName: "to", Type: TypeRef{Name: "string"}})
	src := record("Extra", Field{Name: "Subject", XMLName: "subject", Type: TypeRef{Name: "string"}})

	require.NoError(t, dst.Merge(src, MergeSettings{}))

	require.Len(t, dst.Fields, 2)
	assert.Equal(t, "To", dst.Fields[0].Name)
	assert.Equal(t, "Subject", dst.Fields[1].Name)
}

func TestMerge_AttributePrefixOnCollision(t *testing.T) {
	dst := record("Note", Field{Name: "Lang", XMLName: "lang", Type: TypeRef{Name: "string"}})
	src := record("Attrs", Field{Name: "Lang", XMLName: "lang", Type: TypeRef{Name: "string"}})

	require.NoError(t, dst.Merge(src, MergeSettings{Prefix: "Attr", FromAttribute: true}))

	require.Len(t, dst.Fields, 2)
	assert.Equal(t, "AttrLang", dst.Fields[1].Name)
	assert.True(t, dst.Fields[1].FromAttribute)
	assert.False(t, dst.Fields[0].FromAttribute)
}

func TestMerge_NumericSuffixWhenPrefixTaken(t *testing.T) {
	dst := record("Note",
		Field{Name: "Lang", XMLName: "lang", Type: TypeRef{Name: "string"}},
		Field{Name: "AttrLang", XMLName: "lang", Type: TypeRef{Name: "string"}},
	)
	src := record("Attrs", Field{Name: "Lang", XMLName: "lang", Type: TypeRef{Name: "string"}})

	require.NoError(t, dst.Merge(src, MergeSettings{Prefix: "Attr"}))

	require.Len(t, dst.Fields, 3)
	assert.Equal(t, "AttrLang2", dst.Fields[2].Name)
}

func TestMerge_ReferenceBecomesField(t *testing.T) {
	dst := record("Note")

	ref := NewReference(grammar.QName{Space: "urn:x", Local: "to"}, grammar.KindElement, "To",
		TypeRef{Name: "string"})
	ref.FieldHint = "to"

	require.NoError(t, dst.Merge(ref, MergeSettings{}))

	require.Len(t, dst.Fields, 1)
	assert.Equal(t, "To", dst.Fields[0].Name)
	assert.Equal(t, "to", dst.Fields[0].XMLName)
	assert.Equal(t, TypeRef{Name: "string"}, dst.Fields[0].Type)
}

func TestMerge_AnonymousUnionNestsPathQualified(t *testing.T) {
	dst := record("Part")

	union := NewUnion(grammar.QName{}, grammar.KindChoice, "Options")
	union.FieldHint = "options"
	union.Variants = []Variant{{Name: "A", Payload: &TypeRef{Name: "string"}}}

	require.NoError(t, dst.Merge(union, MergeSettings{}))

	require.Len(t, dst.Fields, 1)
	assert.Equal(t, "PartOptions", dst.Fields[0].Type.Name)
	require.Len(t, dst.Nested, 1)
	assert.Equal(t, "PartOptions", dst.Nested[0].TypeName)
}

func TestMerge_IntoUnionAddsPayloadVariant(t *testing.T) {
	dst := NewUnion(grammar.QName{Space: "urn:x", Local: "pick"}, grammar.KindChoice, "Pick")

	ref := NewReference(grammar.QName{Space: "urn:x", Local: "count"}, grammar.KindElement, "Count",
		TypeRef{Name: "int"})
	ref.FieldHint = "count"

	require.NoError(t, dst.Merge(ref, MergeSettings{}))

	require.Len(t, dst.Variants, 1)
	assert.Equal(t, "Count", dst.Variants[0].Name)
	require.NotNil(t, dst.Variants[0].Payload)
	assert.Equal(t, "int", dst.Variants[0].Payload.Name)
}

func TestMerge_IntoTerminalShapeFails(t *testing.T) {
	dst := NewReference(grammar.QName{}, grammar.KindElement, "Item", TypeRef{Name: "string"})

	err := dst.Merge(record("Extra"), MergeSettings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal shape")
}

func TestMergeNested_SkipsStructuralDuplicate(t *testing.T) {
	dst := record("Outer")

	a := record("Inner", Field{Name: "V", XMLName: "v", Type: TypeRef{Name: "string"}})
	b := record("Inner", Field{Name: "V", XMLName: "v", Type: TypeRef{Name: "string"}})

	dst.MergeNested(a)
	dst.MergeNested(b)

	assert.Len(t, dst.Nested, 1)
}

func TestMergeNested_MetadataOnlyDifferenceStillDeduplicates(t *testing.T) {
	dst := record("Outer")

	a := record("Inner", Field{Name: "V", XMLName: "v", Type: TypeRef{Name: "string"}})
	b := record("Inner", Field{Name: "V", XMLName: "v", Type: TypeRef{Name: "string"}, FromAttribute: true})

	dst.MergeNested(a)
	dst.MergeNested(b)

	assert.Len(t, dst.Nested, 1)
}

func TestMergeNested_RenamesConflictingShape(t *testing.T) {
	dst := record("Outer")

	a := record("Inner", Field{Name: "V", XMLName: "v", Type: TypeRef{Name: "string"}})
	b := record("Inner", Field{Name: "W", XMLName: "w", Type: TypeRef{Name: "int"}})
	b.Kind = grammar.KindSequence

	dst.MergeNested(a)
	dst.MergeNested(b)

	require.Len(t, dst.Nested, 2)
	assert.Equal(t, "InnerSequence", dst.Nested[1].TypeName)
}

func TestRename_RewritesSelfReferences(t *testing.T) {
	d := record("Node", Field{Name: "Next", XMLName: "next", Type: TypeRef{Name: "Node", Optional: true}})
	d.Rename("TreeNode")

	assert.Equal(t, "TreeNode", d.TypeName)
	assert.Equal(t, "TreeNode", d.Fields[0].Type.Name)
}

func TestClone_IsDeep(t *testing.T) {
	d := record("Base", Field{Name: "V", XMLName: "v", Type: TypeRef{Name: "string"}})
	d.Nested = []*Descriptor{record("BaseInner")}

	c := d.Clone()
	c.Fields[0].Name = "Changed"
	c.Nested[0].TypeName = "Changed"

	assert.Equal(t, "V", d.Fields[0].Name)
	assert.Equal(t, "BaseInner", d.Nested[0].TypeName)
}
