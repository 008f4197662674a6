package symbols

import (
	"sort"
	"strconv"

	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/diag"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
)

// Key is the identity of a definition: namespace, local name and construct
// kind. Two keys differing only in kind are distinct.
type Key struct {
	Space string
	Local string
	Kind  grammar.Kind
}

// QName returns the namespace-qualified name part of the key.
func (k Key) QName() grammar.QName {
	return grammar.QName{Space: k.Space, Local: k.Local}
}

// Ref returns the diagnostic reference for this key.
func (k Key) Ref() diag.Ref {
	return diag.Ref{Space: k.Space, Local: k.Local, Kind: k.Kind.Suffix()}
}

// Context is the per-compile-run symbol table. It grows monotonically:
// entries are inserted during resolution and move (never duplicate) when
// an imported schema is spliced into an importer.
type Context struct {
	targetNS string
	prefixes map[string]string

	types map[Key]*descriptor.Descriptor
	// rendered maps rendered type names back to their owning key so that
	// Insert can detect collisions across distinct keys.
	rendered map[string]Key
	builtin  map[Key]bool
}

// NewContext builds a Context for one schema document, seeding the
// built-in primitives before any user definition can resolve.
func NewContext(s *grammar.Schema) *Context {
	ctx := &Context{
		targetNS: s.TargetNamespace,
		prefixes: make(map[string]string, len(s.Prefixes)),
		types:    make(map[Key]*descriptor.Descriptor),
		rendered: make(map[string]Key),
		builtin:  make(map[Key]bool),
	}

	for prefix, uri := range s.Prefixes {
		ctx.prefixes[prefix] = uri
	}

	ctx.seedBuiltins()

	return ctx
}

// TargetNamespace returns the active target namespace.
func (c *Context) TargetNamespace() string {
	return c.targetNS
}

// ResolvePrefix maps a declared namespace prefix to its URI. Undeclared
// prefixes pass through unchanged.
func (c *Context) ResolvePrefix(prefix string) string {
	if uri, ok := c.prefixes[prefix]; ok {
		return uri
	}

	return prefix
}

// ResolveName normalizes a possibly-prefixed lexical name against the
// prefix table. Unprefixed names fall back to the default namespace when
// declared, else to the target namespace.
func (c *Context) ResolveName(lexical string) grammar.QName {
	prefix, local := grammar.SplitName(lexical)
	if prefix != "" {
		return grammar.QName{Space: c.ResolvePrefix(prefix), Local: local}
	}

	if uri, ok := c.prefixes[""]; ok {
		return grammar.QName{Space: uri, Local: local}
	}

	return grammar.QName{Space: c.targetNS, Local: local}
}

// Lookup is exact-key lookup.
func (c *Context) Lookup(key Key) (*descriptor.Descriptor, bool) {
	d, ok := c.types[key]
	return d, ok
}

// IsBuiltin reports whether the key names a seeded built-in.
func (c *Context) IsBuiltin(key Key) bool {
	return c.builtin[key]
}

// Insert stores a descriptor under its key. When an existing descriptor of
// a distinct key already renders to the same type name, the incoming
// descriptor is renamed with its construct-kind suffix and its internal
// self-references are rewritten accordingly. Built-ins and already-stored
// entries are never overwritten.
func (c *Context) Insert(key Key, d *descriptor.Descriptor) error {
	if c.builtin[key] {
		return diag.Violationf("definition", "%s redefines a built-in type", key.Ref().String())
	}

	if _, exists := c.types[key]; exists {
		return diag.Violationf("definition", "%s is defined more than once", key.Ref().String())
	}

	if owner, taken := c.rendered[d.TypeName]; taken && owner != key {
		base := d.TypeName + key.Kind.Suffix()
		renamed := base

		for i := 2; c.renderedTaken(renamed, key); i++ {
			renamed = base + strconv.Itoa(i)
		}

		d.Rename(renamed)
	}

	c.types[key] = d
	if d.TypeName != "" {
		c.rendered[d.TypeName] = key
	}

	return nil
}

func (c *Context) renderedTaken(name string, key Key) bool {
	owner, taken := c.rendered[name]
	return taken && owner != key
}

// SpliceImport moves matching top-level descriptors from the imported
// Context into this one. It is an ownership transfer, not a copy: moved
// entries are removed from the imported Context. An empty namespace filter
// moves every non-builtin entry. Returns the keys moved, in deterministic
// order.
func (c *Context) SpliceImport(imported *Context, namespaceFilter string) ([]Key, error) {
	keys := make([]Key, 0, len(imported.types))

	for key := range imported.types {
		if imported.builtin[key] {
			continue
		}

		if namespaceFilter != "" && key.Space != namespaceFilter {
			continue
		}

		keys = append(keys, key)
	}

	sortKeys(keys)

	for _, key := range keys {
		d := imported.types[key]
		delete(imported.types, key)
		delete(imported.rendered, d.TypeName)

		if err := c.Insert(key, d); err != nil {
			return nil, err
		}
	}

	return keys, nil
}

// Keys returns every stored non-builtin key in deterministic order.
func (c *Context) Keys() []Key {
	keys := make([]Key, 0, len(c.types))

	for key := range c.types {
		if c.builtin[key] {
			continue
		}

		keys = append(keys, key)
	}

	sortKeys(keys)

	return keys
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Space != keys[j].Space {
			return keys[i].Space < keys[j].Space
		}

		if keys[i].Local != keys[j].Local {
			return keys[i].Local < keys[j].Local
		}

		return keys[i].Kind < keys[j].Kind
	})
}
