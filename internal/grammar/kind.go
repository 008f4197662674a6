package grammar

import "strings"

//go:generate go tool stringer -type=Kind

// Kind is the construct kind of a schema definition. Definitions with the
// same name but different kinds are distinct symbol table entries.
type Kind int

const (
	KindAttribute Kind = iota
	KindElement
	KindComplexType
	KindSimpleType
	KindSequence
	KindChoice
	KindGroup
	KindExtension
	KindRestriction
	KindUnion
	KindList
	KindAttributeGroup
	KindImport
)

// Suffix returns the kind name without the "Kind" prefix, used when a
// rendered type name needs a disambiguating suffix.
func (i Kind) Suffix() string {
	return strings.TrimPrefix(i.String(), "Kind")
}
