package descriptor

import (
	"strings"
	"unicode"
)

// Export converts an XML local name to an exported target identifier.
// Separators (-, _, ., :) split words; each word is capitalized. A leading
// digit is prefixed to keep the identifier valid.
func Export(name string) string {
	var sb strings.Builder

	upperNext := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ':' || unicode.IsSpace(r):
			upperNext = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			upperNext = true
		case upperNext:
			sb.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			sb.WriteRune(r)
		}
	}

	out := sb.String()
	if out == "" {
		return "Value"
	}

	if unicode.IsDigit(rune(out[0])) {
		out = "X" + out
	}

	return out
}

// LowerFirst lowercases the first rune of an identifier.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

// InferTypeName synthesizes a deterministic name for an unnamed construct
// from its children, concatenating each child's field-name hint (or its
// rendered type name when no hint exists) in declaration order.
func InferTypeName(children []*Descriptor) string {
	var sb strings.Builder

	for _, child := range children {
		part := child.FieldHint
		if part == "" {
			part = child.TypeName
		}

		sb.WriteString(Export(part))
	}

	if sb.Len() == 0 {
		return "Empty"
	}

	return sb.String()
}
