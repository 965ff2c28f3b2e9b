// Package tycongen generates Go constant set packages from definition
// files, YAML manifests, or existing Go source.
//
// The fluent API is the main entry point:
//
//	result, err := tycongen.FromFiles("colors.tycon").
//	    WithHeader("Source: colors.tycon").
//	    ToDir("./colors")
package tycongen

import (
	"context"
	"errors"
	"fmt"

	"github.com/tyconlabs/tycon/tycongen/golang"
	"github.com/tyconlabs/tycon/tycongen/ir"
	"github.com/tyconlabs/tycon/tycongen/provider"
	"github.com/tyconlabs/tycon/tycongen/sink"
)

type inputKind int

const (
	inputFiles inputKind = iota
	inputManifest
	inputPackages
)

// Generator accumulates inputs and options through method chaining.
// Create with FromFiles, FromManifest, or FromPackages and finish with
// ToDir or Generate.
type Generator struct {
	kind   inputKind
	inputs []string
	cfg    Config
}

// FromFiles starts a generation run from .tycon definition files.
func FromFiles(paths ...string) *Generator {
	return &Generator{kind: inputFiles, inputs: paths, cfg: Config{Overwrite: true}}
}

// FromManifest starts a generation run from a YAML manifest.
func FromManifest(path string) *Generator {
	return &Generator{kind: inputManifest, inputs: []string{path}, cfg: Config{Overwrite: true}}
}

// FromPackages starts a generation run that extracts existing const groups
// from the given Go package patterns.
func FromPackages(patterns ...string) *Generator {
	return &Generator{kind: inputPackages, inputs: patterns, cfg: Config{Overwrite: true}}
}

// WithPackage overrides the output package name.
func (g *Generator) WithPackage(name string) *Generator {
	g.cfg.Package = name
	return g
}

// WithHeader adds comment lines to the generated file header.
func (g *Generator) WithHeader(lines ...string) *Generator {
	g.cfg.Header = append(g.cfg.Header, lines...)
	return g
}

// WithTypes restricts package extraction to the named types.
func (g *Generator) WithTypes(names ...string) *Generator {
	g.cfg.Types = append(g.cfg.Types, names...)
	return g
}

// WithoutOverwrite makes generation fail instead of replacing existing
// output files.
func (g *Generator) WithoutOverwrite() *Generator {
	g.cfg.Overwrite = false
	return g
}

// Result reports what a generation run produced.
type Result struct {
	// Files lists the written paths, relative to the sink root.
	Files []string

	// Warnings collects non-fatal findings from parsing and emission.
	Warnings []ir.Warning
}

// ToDir generates into a directory on the local filesystem.
func (g *Generator) ToDir(dir string) (*Result, error) {
	g.cfg.OutDir = dir
	if err := g.cfg.validate(); err != nil {
		return nil, err
	}

	out := sink.NewFilesystemSink(dir)
	out.Overwrite = g.cfg.Overwrite
	return g.Generate(context.Background(), out)
}

// Generate builds the schema and writes generated files to out. Most
// callers use ToDir; Generate with a MemorySink supports dry runs and
// tests.
func (g *Generator) Generate(ctx context.Context, out sink.OutputSink) (*Result, error) {
	schema, err := g.buildSchema(ctx)
	if err != nil {
		return nil, err
	}

	if errs := schema.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid definitions: %w", errors.Join(errs...))
	}
	if len(schema.Enums) == 0 {
		return nil, fmt.Errorf("no definitions found")
	}

	result := &Result{Warnings: schema.Warnings}

	emitter := golang.NewEmitter(schema, golang.Config{
		Package:       g.cfg.Package,
		Header:        g.cfg.Header,
		RuntimeImport: g.cfg.RuntimeImport,
	})
	src, warnings, err := emitter.Emit()
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, warnings...)

	path := emitter.FileName()
	if err := out.WriteFile(ctx, path, src); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	result.Files = append(result.Files, path)

	return result, nil
}

// Check parses and validates the inputs without emitting anything.
func (g *Generator) Check(ctx context.Context) ([]ir.Warning, error) {
	schema, err := g.buildSchema(ctx)
	if err != nil {
		return nil, err
	}
	if errs := schema.Validate(); len(errs) > 0 {
		return schema.Warnings, fmt.Errorf("invalid definitions: %w", errors.Join(errs...))
	}
	if len(schema.Enums) == 0 {
		return schema.Warnings, fmt.Errorf("no definitions found")
	}
	return schema.Warnings, nil
}

func (g *Generator) buildSchema(ctx context.Context) (*ir.Schema, error) {
	switch g.kind {
	case inputFiles:
		var p provider.DSLProvider
		return p.BuildSchema(g.inputs...)
	case inputManifest:
		var p provider.ManifestProvider
		return p.BuildSchema(g.inputs[0])
	case inputPackages:
		var p provider.SourceProvider
		return p.BuildSchema(ctx, provider.SourceOptions{
			Packages: g.inputs,
			Types:    g.cfg.Types,
		})
	default:
		return nil, fmt.Errorf("unknown input kind %d", g.kind)
	}
}
