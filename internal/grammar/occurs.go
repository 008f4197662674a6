package grammar

import (
	"strconv"

	"github.com/DRvader/xml-schema-sub000/internal/diag"
)

// unboundedLexical is the maxOccurs value meaning "no upper bound".
const unboundedLexical = "unbounded"

// Occurs is a parsed minOccurs/maxOccurs pair. The zero value is not
// meaningful; use DefaultOccurs or ParseOccurs.
type Occurs struct {
	Min       int
	Max       int
	Unbounded bool
}

// DefaultOccurs returns the XSD default of exactly one occurrence.
func DefaultOccurs() Occurs {
	return Occurs{Min: 1, Max: 1}
}

// ParseOccurs parses minOccurs/maxOccurs attribute values. Empty strings
// take the XSD defaults (1, 1).
func ParseOccurs(minAttr, maxAttr string) (Occurs, error) {
	occ := DefaultOccurs()

	if minAttr != "" {
		v, err := strconv.Atoi(minAttr)
		if err != nil || v < 0 {
			return occ, diag.Violationf("occurrence", "invalid minOccurs %q", minAttr)
		}

		occ.Min = v
	}

	switch {
	case maxAttr == "":
	case maxAttr == unboundedLexical:
		occ.Max = 0
		occ.Unbounded = true
	default:
		v, err := strconv.Atoi(maxAttr)
		if err != nil || v < 0 {
			return occ, diag.Violationf("occurrence", "invalid maxOccurs %q", maxAttr)
		}

		occ.Max = v
	}

	if !occ.Unbounded && occ.Max < occ.Min {
		return occ, diag.Violationf("occurrence", "maxOccurs %d is less than minOccurs %d", occ.Max, occ.Min)
	}

	return occ, nil
}
