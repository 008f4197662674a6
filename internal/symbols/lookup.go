package symbols

import (
	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/diag"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

// MatchState classifies the outcome of a kind-filtered lookup.
type MatchState int

const (
	// MatchNone means no definition of any requested kind exists.
	MatchNone MatchState = iota
	// MatchUnique means exactly one requested kind matched.
	MatchUnique
	// MatchAmbiguous means the name exists under more than one requested
	// kind. Ambiguity is always a hard error, never silently preferred.
	MatchAmbiguous
)

// Match is the result of LookupAnyKind.
type Match struct {
	State      MatchState
	Key        Key
	Descriptor *descriptor.Descriptor
	// Kinds lists the matching kinds when ambiguous.
	Kinds []grammar.Kind
}

// LookupAnyKind looks a name up under a set of candidate kinds, supporting
// references that may target more than one construct kind (an element's
// type may be simple or complex).
func (c *Context) LookupAnyKind(name grammar.QName, kinds ...grammar.Kind) Match {
	var (
		found []grammar.Kind
		hit   Match
	)

	for _, kind := range kinds {
		key := Key{Space: name.Space, Local: name.Local, Kind: kind}
		if d, ok := c.types[key]; ok {
			found = append(found, kind)
			hit = Match{State: MatchUnique, Key: key, Descriptor: d}
		}
	}

	switch len(found) {
	case 0:
		return Match{State: MatchNone}
	case 1:
		return hit
	default:
		return Match{State: MatchAmbiguous, Kinds: found}
	}
}

// ResolveTypeRef resolves a lexical type reference against the candidate
// kinds, returning NotFoundError or AmbiguousError as appropriate.
func (c *Context) ResolveTypeRef(lexical string, kinds ...grammar.Kind) (*descriptor.Descriptor, error) {
	name := c.ResolveName(lexical)

	m := c.LookupAnyKind(name, kinds...)
	switch m.State {
	case MatchUnique:
		return m.Descriptor, nil
	case MatchAmbiguous:
		candidates := make([]string, len(m.Kinds))
		for i, kind := range m.Kinds {
			candidates[i] = kind.Suffix()
		}

		return nil, &diag.AmbiguousError{
			Ref:        diag.Ref{Space: name.Space, Local: name.Local},
			Candidates: candidates,
		}
	default:
		return nil, &diag.NotFoundError{Ref: diag.Ref{Space: name.Space, Local: name.Local}}
	}
}
