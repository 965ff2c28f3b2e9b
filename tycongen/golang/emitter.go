// Package golang emits Go source for constant set definitions. Each
// definition becomes a struct-wrapped value type, package-level instances
// for its declared constants, and a registered runtime set backing lookup,
// parsing, and iteration.
package golang

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/tyconlabs/tycon/tycongen/ir"
)

// DefaultRuntimeImport is the import path of the runtime package generated
// code depends on.
const DefaultRuntimeImport = "github.com/tyconlabs/tycon"

// Config controls emission.
type Config struct {
	// Package overrides the schema's package name.
	Package string

	// Header is an extra comment block placed below the generated-code
	// marker, one line per element.
	Header []string

	// RuntimeImport overrides DefaultRuntimeImport. Used by tests.
	RuntimeImport string
}

// Emitter renders one schema into one Go source file.
type Emitter struct {
	schema *ir.Schema
	cfg    Config
}

// NewEmitter returns an emitter for schema.
func NewEmitter(schema *ir.Schema, cfg Config) *Emitter {
	if cfg.RuntimeImport == "" {
		cfg.RuntimeImport = DefaultRuntimeImport
	}
	return &Emitter{schema: schema, cfg: cfg}
}

// PackageName returns the effective output package name.
func (e *Emitter) PackageName() string {
	if e.cfg.Package != "" {
		return e.cfg.Package
	}
	if e.schema.Package.Name != "" {
		return e.schema.Package.Name
	}
	return "tycon"
}

// FileName returns the conventional output file name for the schema.
func (e *Emitter) FileName() string {
	return e.PackageName() + "_tycon.go"
}

// Emit renders the schema and gofmt-formats the result.
func (e *Emitter) Emit() ([]byte, []ir.Warning, error) {
	var warnings []ir.Warning

	var buf bytes.Buffer
	buf.WriteString("// Code generated by tycon. DO NOT EDIT.\n")
	for _, line := range e.cfg.Header {
		buf.WriteString("// ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')

	fmt.Fprintf(&buf, "package %s\n\n", e.PackageName())

	buf.WriteString("import (\n")
	buf.WriteString("\t\"iter\"\n\n")
	fmt.Fprintf(&buf, "\t%s\n", strconv.Quote(e.cfg.RuntimeImport))
	buf.WriteString(")\n")

	// Instance variables share the package scope, so a member name reused
	// by another definition would redeclare the var. Schema.Validate
	// rejects this upstream; failing here keeps Emit safe on its own.
	seen := make(map[string]string)
	for _, def := range e.schema.Enums {
		for _, m := range def.Members {
			prev, ok := seen[m.Name]
			if ok && prev != def.Name {
				return nil, warnings, fmt.Errorf("constant %s declared by both %s and %s", m.Name, prev, def.Name)
			}
			if !ok {
				seen[m.Name] = def.Name
			}
		}
	}

	for _, def := range e.schema.Enums {
		buf.WriteByte('\n')
		if err := e.emitEnum(&buf, def); err != nil {
			return nil, warnings, fmt.Errorf("enum %s: %w", def.Name, err)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// The unformatted source aids debugging of emitter bugs.
		return buf.Bytes(), warnings, fmt.Errorf("generated source does not format: %w", err)
	}
	return src, warnings, nil
}

func (e *Emitter) emitEnum(buf *bytes.Buffer, def *ir.EnumDef) error {
	if errs := def.Validate(); len(errs) > 0 {
		return errs[0]
	}

	typeName := escapeIdentifier(def.Name)
	underlying := def.Underlying.Name
	rec := receiverName(typeName)
	setVar := unexport(typeName) + "Set"

	emitDoc(buf, def.Documentation)
	if def.Documentation.IsZero() {
		fmt.Fprintf(buf, "// %s is a value from a fixed set of named %s constants.\n", typeName, underlying)
	}
	fmt.Fprintf(buf, "type %s struct {\n\tv %s\n}\n\n", typeName, underlying)

	fmt.Fprintf(buf, "// Declared %s values, in declaration order.\nvar (\n", typeName)
	for _, m := range def.Members {
		emitDoc(buf, m.Documentation)
		fmt.Fprintf(buf, "\t%s = %s{%s}\n", escapeIdentifier(m.Name), typeName, m.Literal(def.Underlying))
	}
	buf.WriteString(")\n\n")

	fmt.Fprintf(buf, "var %s = tycon.Register(tycon.NewSet[%s](%q,\n", setVar, underlying, typeName)
	buf.WriteString("\t[]string{")
	for i, m := range def.Members {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Quote(m.Raw))
	}
	buf.WriteString("},\n")
	fmt.Fprintf(buf, "\t[]%s{", underlying)
	for i, m := range def.Members {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(m.Literal(def.Underlying))
	}
	buf.WriteString("},\n))\n\n")

	fmt.Fprintf(buf, "// Int returns the underlying value of %s.\n", rec)
	fmt.Fprintf(buf, "func (%s %s) Int() %s { return %s.v }\n\n", rec, typeName, underlying, rec)

	fmt.Fprintf(buf, "// Name returns the declared name of %s. It fails with a domain error if\n", rec)
	fmt.Fprintf(buf, "// %s does not hold a declared value.\n", rec)
	fmt.Fprintf(buf, "func (%s %s) Name() (string, error) { return %s.Name(%s.v) }\n\n", rec, typeName, setVar, rec)

	fmt.Fprintf(buf, "// String implements fmt.Stringer. Undeclared values format as %q.\n", typeName+"(v)")
	fmt.Fprintf(buf, "func (%s %s) String() string { return %s.Format(%s.v) }\n\n", rec, typeName, setVar, rec)

	fmt.Fprintf(buf, "// Compare orders by underlying value.\n")
	fmt.Fprintf(buf, "func (%s %s) Compare(o %s) int {\n", rec, typeName, typeName)
	fmt.Fprintf(buf, "\tswitch {\n\tcase %s.v < o.v:\n\t\treturn -1\n\tcase %s.v > o.v:\n\t\treturn 1\n\t}\n\treturn 0\n}\n\n", rec, rec)

	fmt.Fprintf(buf, "// Less reports whether %s orders before o.\n", rec)
	fmt.Fprintf(buf, "func (%s %s) Less(o %s) bool { return %s.v < o.v }\n\n", rec, typeName, typeName, rec)

	fmt.Fprintf(buf, "// %sFromInt converts an integer to a %s. It fails with an\n", typeName, typeName)
	fmt.Fprintf(buf, "// invalid_integer error if v is not a declared value.\n")
	fmt.Fprintf(buf, "func %sFromInt(v %s) (%s, error) {\n", typeName, underlying, typeName)
	fmt.Fprintf(buf, "\tif _, err := %s.Index(v); err != nil {\n\t\treturn %s{}, err\n\t}\n", setVar, typeName)
	fmt.Fprintf(buf, "\treturn %s{v}, nil\n}\n\n", typeName)

	fmt.Fprintf(buf, "// %sFromIntUnchecked wraps v without validating it.\n", typeName)
	fmt.Fprintf(buf, "func %sFromIntUnchecked(v %s) %s { return %s{v} }\n\n", typeName, underlying, typeName, typeName)

	fmt.Fprintf(buf, "// Parse%s converts a declared name to its %s.\n", typeName, typeName)
	fmt.Fprintf(buf, "func Parse%s(s string) (%s, error) {\n", typeName, typeName)
	fmt.Fprintf(buf, "\tv, err := %s.Parse(s)\n\tif err != nil {\n\t\treturn %s{}, err\n\t}\n", setVar, typeName)
	fmt.Fprintf(buf, "\treturn %s{v}, nil\n}\n\n", typeName)

	fmt.Fprintf(buf, "// Parse%sFold is Parse%s with ASCII case folding.\n", typeName, typeName)
	fmt.Fprintf(buf, "func Parse%sFold(s string) (%s, error) {\n", typeName, typeName)
	fmt.Fprintf(buf, "\tv, err := %s.ParseFold(s)\n\tif err != nil {\n\t\treturn %s{}, err\n\t}\n", setVar, typeName)
	fmt.Fprintf(buf, "\treturn %s{v}, nil\n}\n\n", typeName)

	fmt.Fprintf(buf, "// %sValid reports whether v is a declared %s value.\n", typeName, typeName)
	fmt.Fprintf(buf, "func %sValid(v %s) bool { return %s.Contains(v) }\n\n", typeName, underlying, setVar)

	fmt.Fprintf(buf, "// %sValidName reports whether s matches a declared name.\n", typeName)
	fmt.Fprintf(buf, "func %sValidName(s string) bool { return %s.ContainsName(s) }\n\n", typeName, setVar)

	fmt.Fprintf(buf, "// %sValidNameFold is %sValidName with ASCII case folding.\n", typeName, typeName)
	fmt.Fprintf(buf, "func %sValidNameFold(s string) bool { return %s.ContainsNameFold(s) }\n\n", typeName, setVar)

	fmt.Fprintf(buf, "// %sValues iterates the declared values in declaration order. The\n", typeName)
	fmt.Fprintf(buf, "// sequence is restartable.\n")
	fmt.Fprintf(buf, "func %sValues() iter.Seq[%s] {\n", typeName, typeName)
	fmt.Fprintf(buf, "\treturn func(yield func(%s) bool) {\n", typeName)
	fmt.Fprintf(buf, "\t\tfor v := range %s.Values() {\n", setVar)
	fmt.Fprintf(buf, "\t\t\tif !yield(%s{v}) {\n\t\t\t\treturn\n\t\t\t}\n\t\t}\n\t}\n}\n\n", typeName)

	fmt.Fprintf(buf, "// %sNames iterates the declared names in declaration order.\n", typeName)
	fmt.Fprintf(buf, "func %sNames() iter.Seq[string] { return %s.Names() }\n\n", typeName, setVar)

	fmt.Fprintf(buf, "// %sSet exposes the backing constant set for range metadata and\n", typeName)
	fmt.Fprintf(buf, "// index-based access.\n")
	fmt.Fprintf(buf, "func %sSet() *tycon.Set[%s] { return %s }\n", typeName, underlying, setVar)

	return nil
}

// emitDoc writes a documentation comment block, if any.
func emitDoc(buf *bytes.Buffer, doc ir.Documentation) {
	if doc.IsZero() {
		return
	}
	body := doc.Body
	if body == "" {
		body = doc.Summary
	}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			buf.WriteString("//\n")
			continue
		}
		fmt.Fprintf(buf, "// %s\n", quoteComment(line))
	}
}
