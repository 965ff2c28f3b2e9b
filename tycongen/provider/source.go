package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/tyconlabs/tycon/tycongen/ir"
)

// SourceProvider extracts constant set definitions from existing Go code.
// A named type with an integral underlying type plus the typed constants
// declared for it becomes one definition, letting hand-rolled const groups
// be retrofitted with the full generated method set.
type SourceProvider struct{}

// SourceOptions configures source-based extraction.
type SourceOptions struct {
	// Packages are the Go package patterns to load.
	Packages []string

	// Types restricts extraction to the named types. If empty, every
	// exported integral type with at least one typed constant is
	// extracted.
	Types []string
}

// BuildSchema analyzes Go source and returns a schema.
func (p *SourceProvider) BuildSchema(ctx context.Context, opts SourceOptions) (*ir.Schema, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}

	schema := &ir.Schema{
		Package: ir.PackageInfo{
			Name: pkgs[0].Name,
			Path: pkgs[0].PkgPath,
		},
	}

	only := make(map[string]bool, len(opts.Types))
	for _, name := range opts.Types {
		only[name] = true
	}

	for _, pkg := range pkgs {
		if err := extractPackage(schema, pkg, only); err != nil {
			return nil, err
		}
	}

	if len(opts.Types) > 0 {
		for _, name := range opts.Types {
			if schema.FindEnum(name) == nil {
				return nil, fmt.Errorf("type %s not found or has no typed constants", name)
			}
		}
	}

	return schema, nil
}

func extractPackage(schema *ir.Schema, pkg *packages.Package, only map[string]bool) error {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		if len(only) > 0 && !only[name] {
			continue
		}

		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}
		if len(only) == 0 && !tn.Exported() {
			continue
		}

		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		basic, ok := named.Underlying().(*types.Basic)
		if !ok || basic.Info()&types.IsInteger == 0 {
			continue
		}

		u, ok := ir.UnderlyingByName(basic.Name())
		if !ok {
			schema.AddWarning(ir.Warning{
				Code:    "unsupported_underlying",
				Message: fmt.Sprintf("type %s has unsupported underlying type %s", name, basic.Name()),
				Enum:    name,
			})
			continue
		}

		members := collectConstants(pkg, named)
		if len(members) == 0 {
			// An integral type without typed constants is not a
			// constant set.
			continue
		}

		schema.AddEnum(&ir.EnumDef{
			Name:          name,
			Underlying:    u,
			Members:       members,
			Documentation: typeDocumentation(pkg, tn),
			Source:        sourceLocation(pkg, tn),
		})
	}
	return nil
}

// collectConstants gathers the constants typed as named, in declaration
// order. The type scope iterates alphabetically, so the constants are read
// from the syntax trees instead.
func collectConstants(pkg *packages.Package, named *types.Named) []ir.Member {
	var members []ir.Member

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}
			for _, spec := range gen.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, ident := range vs.Names {
					obj, ok := pkg.TypesInfo.Defs[ident].(*types.Const)
					if !ok || !types.Identical(obj.Type(), named) {
						continue
					}
					members = append(members, ir.Member{
						Name:          ident.Name,
						Raw:           ident.Name,
						Value:         obj.Val(),
						Explicit:      len(vs.Values) > 0,
						Documentation: commentDocumentation(vs.Doc),
					})
				}
			}
		}
	}

	return members
}

// typeDocumentation extracts the doc comment of a type declaration.
func typeDocumentation(pkg *packages.Package, tn *types.TypeName) ir.Documentation {
	pos := tn.Pos()
	for _, file := range pkg.Syntax {
		if file.Pos() > pos || file.End() < pos {
			continue
		}

		var doc ir.Documentation
		ast.Inspect(file, func(n ast.Node) bool {
			gen, ok := n.(*ast.GenDecl)
			if !ok {
				return true
			}
			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name.Pos() != pos {
					continue
				}
				group := gen.Doc
				if group == nil {
					group = ts.Doc
				}
				doc = commentDocumentation(group)
				return false
			}
			return true
		})
		return doc
	}
	return ir.Documentation{}
}

// commentDocumentation converts an AST comment group to Documentation.
func commentDocumentation(cg *ast.CommentGroup) ir.Documentation {
	if cg == nil {
		return ir.Documentation{}
	}

	body := strings.TrimSpace(cg.Text())
	summary := body
	if i := strings.IndexByte(summary, '\n'); i >= 0 {
		summary = summary[:i]
	}
	return ir.Documentation{Summary: summary, Body: body}
}

// sourceLocation returns the file and line of an object's declaration.
func sourceLocation(pkg *packages.Package, obj types.Object) ir.Source {
	if pkg.Fset == nil || !obj.Pos().IsValid() {
		return ir.Source{}
	}
	pos := pkg.Fset.Position(obj.Pos())
	return ir.Source{File: pos.Filename, Line: pos.Line}
}
