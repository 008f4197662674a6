// Package grammar holds the typed representation of XML Schema constructs.
//
// A Schema and its nodes are produced once by parsing and are read-only
// afterwards; resolution never mutates them. Only the subset of XSD needed
// by real-world schemas is modeled: simple and complex types, sequence,
// choice and group particles, attributes and attribute groups, extension
// and restriction derivation, list and union simple types, and imports.
package grammar
