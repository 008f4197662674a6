package resolve

import (
	"errors"
	"fmt"

	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/diag"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
	"github.com/DRvader/xml-schema-sub000/internal/symbols"
)

// ImportResolver compiles the schema document referenced by an import and
// returns its fully resolved Context. It runs before the importer's own
// definitions resolve; transitive imports therefore resolve depth-first.
type ImportResolver func(namespace, location string) (*symbols.Context, error)

// Options configures a resolution run.
type Options struct {
	// Imports resolves <import> references. When nil, imports are skipped
	// with a warning and cross-document references surface as unresolved.
	Imports ImportResolver
	// NamespaceFilter, when non-empty, restricts the reported top-level
	// names to one namespace. Used when compiling an imported document.
	NamespaceFilter string
}

// Result is the outcome of a successful resolution run.
type Result struct {
	// TopLevel lists the keys introduced into the Context, in work-list
	// order: types first, then elements, attributes and groups, each in
	// declaration order.
	TopLevel []symbols.Key
	// Diagnostics collects non-fatal messages.
	Diagnostics diag.Diagnostics
}

// entry is one pending top-level definition with its retry counter.
type entry struct {
	key     symbols.Key
	build   func() (*descriptor.Descriptor, error)
	retries int
}

// builder carries the state shared by the per-construct builders.
type builder struct {
	schema *grammar.Schema
	ctx    *symbols.Context
	diags  *diag.Diagnostics
}

// Resolve builds every top-level definition of the schema into the
// Context. Imports are spliced in first, then the work-list runs to a
// fixed point.
func Resolve(schema *grammar.Schema, ctx *symbols.Context, opts Options) (*Result, error) {
	res := &Result{}
	b := &builder{schema: schema, ctx: ctx, diags: &res.Diagnostics}

	if err := b.processImports(opts); err != nil {
		return nil, err
	}

	pending := b.worklist()

	for len(pending) > 0 {
		var (
			next     []entry
			progress bool
			missing  []grammar.QName
		)

		for _, e := range pending {
			d, err := e.build()
			if err == nil {
				if err := ctx.Insert(e.key, d); err != nil {
					return nil, err
				}

				if opts.NamespaceFilter == "" || e.key.Space == opts.NamespaceFilter {
					res.TopLevel = append(res.TopLevel, e.key)
				}

				progress = true

				continue
			}

			var notFound *diag.NotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("resolving %s: %w", e.key.Ref().String(), err)
			}

			e.retries++
			next = append(next, e)
			missing = append(missing, grammar.QName{
				Space: notFound.Ref.Space,
				Local: notFound.Ref.Local,
			})
		}

		// The definitions a failed entry was missing also get their
		// counters bumped for the next pass.
		for _, name := range missing {
			for i := range next {
				if next[i].key.Space == name.Space && next[i].key.Local == name.Local {
					next[i].retries++
				}
			}
		}

		if len(next) > 0 && !progress {
			return nil, unresolved(next)
		}

		pending = next
	}

	return res, nil
}

// worklist builds the initial work-list of every named top-level
// definition. Imports produce no entries.
func (b *builder) worklist() []entry {
	tns := b.schema.TargetNamespace

	var entries []entry

	add := func(local string, kind grammar.Kind, build func() (*descriptor.Descriptor, error)) {
		entries = append(entries, entry{
			key:   symbols.Key{Space: tns, Local: local, Kind: kind},
			build: build,
		})
	}

	for _, ct := range b.schema.ComplexTypes {
		ct := ct
		add(ct.Name, grammar.KindComplexType, func() (*descriptor.Descriptor, error) {
			name := grammar.QName{Space: tns, Local: ct.Name}
			return b.buildComplexType(ct, name, descriptor.Export(ct.Name))
		})
	}

	for _, st := range b.schema.SimpleTypes {
		st := st
		add(st.Name, grammar.KindSimpleType, func() (*descriptor.Descriptor, error) {
			name := grammar.QName{Space: tns, Local: st.Name}
			return b.buildSimpleType(st, name, descriptor.Export(st.Name), true)
		})
	}

	for _, el := range b.schema.Elements {
		el := el
		add(el.Name, grammar.KindElement, func() (*descriptor.Descriptor, error) {
			return b.buildTopLevelElement(el)
		})
	}

	for _, attr := range b.schema.Attributes {
		attr := attr
		add(attr.Name, grammar.KindAttribute, func() (*descriptor.Descriptor, error) {
			return b.buildTopLevelAttribute(attr)
		})
	}

	for _, g := range b.schema.Groups {
		g := g
		add(g.Name, grammar.KindGroup, func() (*descriptor.Descriptor, error) {
			return b.buildGroup(g)
		})
	}

	for _, ag := range b.schema.AttributeGroups {
		ag := ag
		add(ag.Name, grammar.KindAttributeGroup, func() (*descriptor.Descriptor, error) {
			return b.buildAttributeGroup(ag)
		})
	}

	return entries
}

// unresolved builds the terminal aggregate error from the pending list.
func unresolved(pending []entry) *diag.UnresolvedError {
	report := &diag.UnresolvedError{Pending: make([]diag.PendingRef, len(pending))}

	for i, e := range pending {
		report.Pending[i] = diag.PendingRef{Ref: e.key.Ref(), Retries: e.retries}
	}

	return report
}

// processImports compiles each imported document and splices its
// definitions into the importer's Context. An imported schema resolves
// fully before its definitions move, so splicing is always a transfer of
// completed descriptors.
func (b *builder) processImports(opts Options) error {
	for _, imp := range b.schema.Imports {
		if opts.Imports == nil {
			b.diags.AddWarning("import_skipped",
				"no import resolver configured; definitions from this namespace will not resolve",
				imp.Namespace)

			continue
		}

		imported, err := opts.Imports(imp.Namespace, imp.SchemaLocation)
		if err != nil {
			return fmt.Errorf("import %s: %w", imp.Namespace, err)
		}

		moved, err := b.ctx.SpliceImport(imported, imp.Namespace)
		if err != nil {
			return fmt.Errorf("import %s: %w", imp.Namespace, err)
		}

		b.diags.AddInfo("import_spliced",
			fmt.Sprintf("%d definition(s) imported", len(moved)), imp.Namespace)
	}

	return nil
}
