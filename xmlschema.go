// Package xmlschema compiles XML Schema (XSD) documents into Go type
// declarations.
//
// Compilation runs in two stages. Compile* parses a document into a
// symbol table of type descriptors, resolving forward and cross-document
// references to a fixed point. Generate then renders the descriptors as
// a single gofmt-formatted Go source file whose structs round-trip
// through encoding/xml.
package xmlschema

import (
	"fmt"

	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
	"github.com/DRvader/xml-schema-sub000/internal/diag"
	"github.com/DRvader/xml-schema-sub000/internal/gen"
	"github.com/DRvader/xml-schema-sub000/internal/grammar"
	"github.com/DRvader/xml-schema-sub000/internal/resolve"
	"github.com/DRvader/xml-schema-sub000/internal/source"
	"github.com/DRvader/xml-schema-sub000/internal/symbols"
)

// CompileOptions configures document compilation.
type CompileOptions struct {
	// ResolveImports compiles <import> references recursively, splicing
	// their definitions into the importing document. Locations resolve
	// relative to the importing document. When false, imports are skipped
	// with a warning and references into them fail as unresolved.
	ResolveImports bool
}

// DefaultCompileOptions enables import resolution.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{ResolveImports: true}
}

// GenerateConfig configures rendering of a compiled schema.
type GenerateConfig struct {
	// Package is the generated package name. Empty defaults to "schema".
	Package string
	// Header is an optional comment line above the package clause.
	Header string
}

// Schema is one fully compiled XSD document.
type Schema struct {
	ctx      *symbols.Context
	topLevel []symbols.Key
	diags    diag.Diagnostics
}

// CompileFile compiles the schema document at a file path or http(s) URL.
func CompileFile(location string, opts CompileOptions) (*Schema, error) {
	data, err := source.Fetch(location)
	if err != nil {
		return nil, err
	}

	return compile(data, location, opts)
}

// CompileBytes compiles an in-memory schema document. Relative import
// locations cannot resolve without a base document, so they resolve
// against the current directory.
func CompileBytes(data []byte, opts CompileOptions) (*Schema, error) {
	return compile(source.StripBOM(data), "", opts)
}

// CompileString compiles schema text.
func CompileString(text string, opts CompileOptions) (*Schema, error) {
	return compile(source.FromString(text), "", opts)
}

func compile(data []byte, base string, opts CompileOptions) (*Schema, error) {
	ctx, res, err := compileContext(data, base, opts, "")
	if err != nil {
		return nil, err
	}

	return &Schema{ctx: ctx, topLevel: res.TopLevel, diags: res.Diagnostics}, nil
}

// compileContext runs the parse and resolve stages for one document,
// recursing through the import resolver for each imported document.
func compileContext(data []byte, base string, opts CompileOptions, nsFilter string,
) (*symbols.Context, *resolve.Result, error) {
	sch, err := grammar.Parse(data)
	if err != nil {
		return nil, nil, err
	}

	ctx := symbols.NewContext(sch)
	ropts := resolve.Options{NamespaceFilter: nsFilter}

	var importedDiags diag.Diagnostics

	if opts.ResolveImports {
		ropts.Imports = func(namespace, location string) (*symbols.Context, error) {
			if location == "" {
				return nil, fmt.Errorf("import of %s carries no schemaLocation", namespace)
			}

			loc := source.Sibling(base, location)

			imported, err := source.Fetch(loc)
			if err != nil {
				return nil, err
			}

			importedCtx, importedRes, err := compileContext(imported, loc, opts, namespace)
			if err != nil {
				return nil, err
			}

			importedDiags.Merge(importedRes.Diagnostics)

			return importedCtx, nil
		}
	}

	res, err := resolve.Resolve(sch, ctx, ropts)
	if err != nil {
		return nil, nil, err
	}

	res.Diagnostics.Merge(importedDiags)

	return ctx, res, nil
}

// TargetNamespace returns the compiled document's target namespace.
func (s *Schema) TargetNamespace() string {
	return s.ctx.TargetNamespace()
}

// TypeNames lists the rendered Go type names of the compiled top-level
// definitions, in resolution order, followed by spliced imports.
func (s *Schema) TypeNames() []string {
	names := make([]string, 0, len(s.topLevel))

	for _, d := range s.descriptors() {
		names = append(names, d.TypeName)
	}

	return names
}

// Diagnostics returns the non-fatal messages collected during
// compilation, warnings first.
func (s *Schema) Diagnostics() []string {
	out := make([]string, 0, len(s.diags.Warnings)+len(s.diags.Infos))

	for _, d := range s.diags.Warnings {
		out = append(out, d.String())
	}

	for _, d := range s.diags.Infos {
		out = append(out, d.String())
	}

	return out
}

// Generate renders the compiled definitions as one Go source file.
func (s *Schema) Generate(cfg GenerateConfig) ([]byte, error) {
	g := gen.New(gen.Config{Package: cfg.Package, Header: cfg.Header})

	return g.Generate(s.descriptors())
}

// descriptors returns the renderable descriptors: declaration order for
// the document's own definitions, then spliced imports in deterministic
// order. Transparent group descriptors never render.
func (s *Schema) descriptors() []*descriptor.Descriptor {
	seen := make(map[symbols.Key]bool, len(s.topLevel))
	out := make([]*descriptor.Descriptor, 0, len(s.topLevel))

	take := func(key symbols.Key) {
		if seen[key] {
			return
		}

		seen[key] = true

		d, ok := s.ctx.Lookup(key)
		if !ok || d.Transparent {
			return
		}

		out = append(out, d)
	}

	for _, key := range s.topLevel {
		take(key)
	}

	for _, key := range s.ctx.Keys() {
		take(key)
	}

	return out
}
