package gen

import (
	"fmt"
	"strings"

	"github.com/DRvader/xml-schema-sub000/internal/descriptor"
)

// renderDecl emits the declaration and conversion bodies for one
// descriptor.
func (g *Generator) renderDecl(out *strings.Builder, d *descriptor.Descriptor) error {
	switch d.Shape {
	case descriptor.ShapeRecord:
		renderRecord(out, d)
		return nil
	case descriptor.ShapeUnion:
		if isEnum(d) {
			renderEnum(out, d)
		} else {
			renderChoice(out, d)
		}

		return nil
	case descriptor.ShapeReference:
		fmt.Fprintf(out, "type %s %s\n\n", d.TypeName, d.Target.String())
		return nil
	case descriptor.ShapeAlias:
		fmt.Fprintf(out, "type %s = %s\n\n", d.TypeName, d.Target.String())
		return nil
	default:
		return fmt.Errorf("cannot render shape %s (%s)", d.Shape, d.TypeName)
	}
}

// renderRecord emits a struct with encoding/xml tags carrying the
// conversion rules.
func renderRecord(out *strings.Builder, d *descriptor.Descriptor) {
	fmt.Fprintf(out, "type %s struct {\n", d.TypeName)

	for _, f := range d.Fields {
		fmt.Fprintf(out, "\t%s %s `xml:%q`\n", f.Name, f.Type.String(), fieldTag(f))
	}

	out.WriteString("}\n\n")
}

// fieldTag builds the xml struct tag for one field.
func fieldTag(f descriptor.Field) string {
	if f.XMLName == "" {
		return ",chardata"
	}

	tag := f.XMLName
	if f.FromAttribute {
		tag += ",attr"
	}

	if f.Type.Optional {
		tag += ",omitempty"
	}

	return tag
}

// renderEnum emits an enumeration union as a string type with one
// constant per variant and text conversion methods. Unknown values fail
// at conversion time, not at compile time.
func renderEnum(out *strings.Builder, d *descriptor.Descriptor) {
	fmt.Fprintf(out, "type %s string\n\n", d.TypeName)

	out.WriteString("const (\n")
	for _, v := range d.Variants {
		fmt.Fprintf(out, "\t%s%s %s = %q\n", d.TypeName, v.Name, d.TypeName, v.XMLValue)
	}
	out.WriteString(")\n\n")

	consts := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		consts[i] = d.TypeName + v.Name
	}

	fmt.Fprintf(out, "// UnmarshalText validates and stores a lexical %s value.\n", d.TypeName)
	fmt.Fprintf(out, "func (v *%s) UnmarshalText(text []byte) error {\n", d.TypeName)
	fmt.Fprintf(out, "\tswitch %s(text) {\n", d.TypeName)
	fmt.Fprintf(out, "\tcase %s:\n", strings.Join(consts, ", "))
	fmt.Fprintf(out, "\t\t*v = %s(text)\n", d.TypeName)
	out.WriteString("\t\treturn nil\n")
	out.WriteString("\tdefault:\n")
	fmt.Fprintf(out, "\t\treturn fmt.Errorf(\"invalid %s value %%q\", text)\n", d.TypeName)
	out.WriteString("\t}\n}\n\n")

	fmt.Fprintf(out, "// MarshalText renders the stored %s value.\n", d.TypeName)
	fmt.Fprintf(out, "func (v %s) MarshalText() ([]byte, error) {\n", d.TypeName)
	out.WriteString("\treturn []byte(v), nil\n}\n\n")
}

// renderChoice emits a payload-carrying union as a struct with one
// optional field per variant; exactly one is expected to be set.
func renderChoice(out *strings.Builder, d *descriptor.Descriptor) {
	fmt.Fprintf(out, "// %s holds exactly one of its variants.\n", d.TypeName)
	fmt.Fprintf(out, "type %s struct {\n", d.TypeName)

	for _, v := range d.Variants {
		payload := descriptor.TypeRef{Name: "string"}
		if v.Payload != nil {
			payload = *v.Payload
		}

		if !payload.Repeated && !payload.Optional {
			payload.Optional = true
		}

		fmt.Fprintf(out, "\t%s %s `xml:%q`\n", v.Name, payload.String(),
			descriptor.LowerFirst(v.Name)+",omitempty")
	}

	out.WriteString("}\n\n")
}
