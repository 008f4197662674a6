package cardinality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

func TestMultipleAndOptional(t *testing.T) {
	cases := []struct {
		name     string
		occ      grammar.Occurs
		multiple bool
		optional bool
	}{
		{"exactly one", grammar.Occurs{Min: 1, Max: 1}, false, false},
		{"zero or one", grammar.Occurs{Min: 0, Max: 1}, false, true},
		{"unbounded", grammar.Occurs{Min: 0, Unbounded: true}, true, false},
		{"max above one", grammar.Occurs{Min: 1, Max: 4}, true, false},
		{"min above one", grammar.Occurs{Min: 2, Max: 2}, true, false},
		{"zero to many", grammar.Occurs{Min: 0, Max: 9}, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.multiple, Multiple(tc.occ))
			assert.Equal(t, tc.optional, Optional(tc.occ))

			// The two wrappings never apply together.
			assert.False(t, Multiple(tc.occ) && Optional(tc.occ))
		})
	}
}

func TestWrap_ReferenceTarget(t *testing.T) {
	d := descriptor.NewReference(grammar.QName{Local: "item"}, grammar.KindElement, "Item",
		descriptor.TypeRef{Name: "string"})

	out := Wrap(d, grammar.Occurs{Min: 0, Unbounded: true})

	assert.Same(t, d, out)
	assert.True(t, out.Target.Repeated)
	assert.False(t, out.Target.Optional)
}

func TestWrap_Idempotent(t *testing.T) {
	d := descriptor.NewReference(grammar.QName{Local: "item"}, grammar.KindElement, "Item",
		descriptor.TypeRef{Name: "string"})

	out := Wrap(d, grammar.Occurs{Min: 0, Unbounded: true})
	out = Wrap(out, grammar.Occurs{Min: 0, Unbounded: true})

	assert.Equal(t, descriptor.TypeRef{Name: "string", Repeated: true}, out.Target)
}

func TestWrap_NeverOptionalOfRepeated(t *testing.T) {
	d := descriptor.NewReference(grammar.QName{Local: "item"}, grammar.KindElement, "Item",
		descriptor.TypeRef{Name: "string", Repeated: true})

	out := Wrap(d, grammar.Occurs{Min: 0, Max: 1})

	assert.True(t, out.Target.Repeated)
	assert.False(t, out.Target.Optional)
}

func TestWrap_ExactlyOneIsBare(t *testing.T) {
	d := descriptor.NewReference(grammar.QName{Local: "item"}, grammar.KindElement, "Item",
		descriptor.TypeRef{Name: "string"})

	out := Wrap(d, grammar.DefaultOccurs())

	assert.Equal(t, descriptor.TypeRef{Name: "string"}, out.Target)
}

func TestWrap_DemotesFreshRecord(t *testing.T) {
	rec := descriptor.NewRecord(grammar.QName{Local: "items"}, grammar.KindElement, "Items")
	rec.FieldHint = "items"
	rec.Fields = []descriptor.Field{
		{Name: "Item", XMLName: "item", Type: descriptor.TypeRef{Name: "string", Repeated: true}},
	}

	out := Wrap(rec, grammar.Occurs{Min: 0, Unbounded: true})

	require.NotSame(t, rec, out)
	assert.Equal(t, descriptor.ShapeReference, out.Shape)
	assert.Equal(t, "Items", out.TypeName)
	assert.Equal(t, "items", out.FieldHint)
	assert.Equal(t, descriptor.TypeRef{Name: "InnerItems", Repeated: true}, out.Target)

	require.Len(t, out.Nested, 1)
	assert.Equal(t, "InnerItems", out.Nested[0].TypeName)
	assert.Empty(t, out.Nested[0].FieldHint)
}

func TestWrap_DemotesFreshUnionToOptional(t *testing.T) {
	union := descriptor.NewUnion(grammar.QName{Local: "pick"}, grammar.KindChoice, "Pick")
	union.Variants = []descriptor.Variant{{Name: "A", Payload: &descriptor.TypeRef{Name: "string"}}}

	out := Wrap(union, grammar.Occurs{Min: 0, Max: 1})

	assert.Equal(t, descriptor.ShapeReference, out.Shape)
	assert.Equal(t, descriptor.TypeRef{Name: "InnerPick", Optional: true}, out.Target)
	require.Len(t, out.Nested, 1)
	assert.Equal(t, descriptor.ShapeUnion, out.Nested[0].Shape)
}
