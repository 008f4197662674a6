package symbols

import (
	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

// builtinEntry maps one XSD primitive to its target type.
type builtinEntry struct {
	local    string
	goType   string
	repeated bool
}

// builtinTable covers the built-in simple types seen in real-world
// schemas. The derived gYear/gMonth family and duration stay lexical.
var builtinTable = []builtinEntry{
	{local: "string", goType: "string"},
	{local: "normalizedString", goType: "string"},
	{local: "token", goType: "string"},
	{local: "language", goType: "string"},
	{local: "Name", goType: "string"},
	{local: "NCName", goType: "string"},
	{local: "NMTOKEN", goType: "string"},
	{local: "NMTOKENS", goType: "string", repeated: true},
	{local: "ID", goType: "string"},
	{local: "IDREF", goType: "string"},
	{local: "IDREFS", goType: "string", repeated: true},
	{local: "ENTITY", goType: "string"},
	{local: "ENTITIES", goType: "string", repeated: true},
	{local: "anyURI", goType: "string"},
	{local: "QName", goType: "string"},
	{local: "NOTATION", goType: "string"},
	{local: "anyType", goType: "string"},
	{local: "anySimpleType", goType: "string"},

	{local: "boolean", goType: "bool"},

	{local: "decimal", goType: "float64"},
	{local: "float", goType: "float32"},
	{local: "double", goType: "float64"},

	{local: "int", goType: "int"},
	{local: "integer", goType: "int64"},
	{local: "long", goType: "int64"},
	{local: "short", goType: "int16"},
	{local: "byte", goType: "int8"},
	{local: "negativeInteger", goType: "int64"},
	{local: "nonPositiveInteger", goType: "int64"},
	{local: "nonNegativeInteger", goType: "uint64"},
	{local: "positiveInteger", goType: "uint64"},
	{local: "unsignedLong", goType: "uint64"},
	{local: "unsignedInt", goType: "uint32"},
	{local: "unsignedShort", goType: "uint16"},
	{local: "unsignedByte", goType: "uint8"},

	{local: "base64Binary", goType: "[]byte"},
	{local: "hexBinary", goType: "[]byte"},

	{local: "date", goType: "time.Time"},
	{local: "dateTime", goType: "time.Time"},
	{local: "time", goType: "time.Time"},

	{local: "duration", goType: "string"},
	{local: "gDay", goType: "string"},
	{local: "gMonth", goType: "string"},
	{local: "gMonthDay", goType: "string"},
	{local: "gYear", goType: "string"},
	{local: "gYearMonth", goType: "string"},
}

// seedBuiltins populates the primitive entries under the XML Schema
// namespace. It runs once at construction, before any user definition
// resolves, and the entries are never overwritten afterwards.
//
// Built-ins are not registered in the rendered-name index: they resolve to
// target-language primitives and produce no declarations of their own.
func (c *Context) seedBuiltins() {
	for _, entry := range builtinTable {
		key := Key{Space: grammar.XSDNamespace, Local: entry.local, Kind: grammar.KindSimpleType}

		c.types[key] = descriptor.NewReference(
			key.QName(),
			grammar.KindSimpleType,
			entry.goType,
			descriptor.TypeRef{Name: entry.goType, Repeated: entry.repeated},
		)
		c.builtin[key] = true
	}
}
