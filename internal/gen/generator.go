package gen

import (
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
)

// Config holds configuration for code generation.
type Config struct {
	// Package is the name of the generated package.
	Package string
	// Header is an optional comment line above the package clause.
	Header string
}

// Generator renders descriptors into one Go source file.
type Generator struct {
	config Config
}

// New creates a Generator.
func New(config Config) *Generator {
	if config.Package == "" {
		config.Package = "schema"
	}

	return &Generator{config: config}
}

// Generate renders every descriptor, with owned nested descriptors
// emitted directly after their owner, and returns gofmt-formatted source.
func (g *Generator) Generate(descs []*descriptor.Descriptor) ([]byte, error) {
	flat := flatten(descs)

	var body strings.Builder

	for _, d := range flat {
		if err := g.renderDecl(&body, d); err != nil {
			return nil, err
		}
	}

	var out strings.Builder

	if g.config.Header != "" {
		out.WriteString("// " + g.config.Header + "\n")
	}

	out.WriteString("// Code generated from an XML Schema document. DO NOT EDIT.\n\n")
	out.WriteString("package " + g.config.Package + "\n\n")
	writeImports(&out, flat)
	out.WriteString(body.String())

	src, err := format.Source([]byte(out.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	return src, nil
}

// flatten orders descriptors depth-first, owner before nested, skipping
// repeated rendered names.
func flatten(descs []*descriptor.Descriptor) []*descriptor.Descriptor {
	var (
		out  []*descriptor.Descriptor
		seen = make(map[string]bool)
	)

	var walk func(d *descriptor.Descriptor)
	walk = func(d *descriptor.Descriptor) {
		if d == nil || seen[d.TypeName] {
			return
		}

		seen[d.TypeName] = true
		out = append(out, d)

		for _, n := range d.Nested {
			walk(n)
		}
	}

	for _, d := range descs {
		walk(d)
	}

	return out
}

// writeImports emits the import block needed by the rendered types.
func writeImports(out *strings.Builder, descs []*descriptor.Descriptor) {
	needed := make(map[string]bool)

	for _, d := range descs {
		collectImports(d, needed)
	}

	if len(needed) == 0 {
		return
	}

	paths := make([]string, 0, len(needed))
	for p := range needed {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	if len(paths) == 1 {
		out.WriteString("import " + quoted(paths[0]) + "\n\n")
		return
	}

	out.WriteString("import (\n")
	for _, p := range paths {
		out.WriteString("\t" + quoted(p) + "\n")
	}

	out.WriteString(")\n\n")
}

func quoted(path string) string {
	return `"` + path + `"`
}

func collectImports(d *descriptor.Descriptor, needed map[string]bool) {
	refs := make([]descriptor.TypeRef, 0, len(d.Fields)+len(d.Variants)+1)
	refs = append(refs, d.Target)

	for _, f := range d.Fields {
		refs = append(refs, f.Type)
	}

	for _, v := range d.Variants {
		if v.Payload != nil {
			refs = append(refs, *v.Payload)
		}
	}

	for _, ref := range refs {
		if strings.HasPrefix(ref.Name, "time.") {
			needed["time"] = true
		}
	}

	if d.Shape == descriptor.ShapeUnion && isEnum(d) {
		needed["fmt"] = true
	}

	for _, n := range d.Nested {
		collectImports(n, needed)
	}
}

// isEnum reports whether a union carries no payloads anywhere, making it
// an enumeration over lexical values.
func isEnum(d *descriptor.Descriptor) bool {
	for _, v := range d.Variants {
		if v.Payload != nil {
			return false
		}
	}

	return len(d.Variants) > 0
}
