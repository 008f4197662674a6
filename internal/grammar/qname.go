package grammar

import "strings"

// XSDNamespace is the XML Schema namespace URI. Built-in types live under
// it, and every schema document root must belong to it.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

// QName is a namespace-qualified name. Space may be empty for definitions
// in no namespace; it is normalized against the prefix table during
// resolution, never during parsing.
type QName struct {
	Space string
	Local string
}

// String returns the name in Clark notation ("{space}local").
func (n QName) String() string {
	if n.Space == "" {
		return n.Local
	}

	return "{" + n.Space + "}" + n.Local
}

// SplitName splits a possibly-prefixed lexical name into its prefix and
// local parts. Names without a colon have an empty prefix.
func SplitName(raw string) (prefix, local string) {
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		return raw[:i], raw[i+1:]
	}

	return "", raw
}
