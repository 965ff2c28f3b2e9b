package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tyconlabs/tycon/tycongen"
	"github.com/tyconlabs/tycon/tycongen/ir"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate Go constant set packages."`
	Check   CheckCmd   `cmd:"" help:"Validate definitions without generating files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Inputs []string `arg:"" optional:"" help:"Definition files (.tycon)."`

	Out       string   `help:"Output directory for generated files." short:"o" default:"."`
	Package   string   `help:"Override the output package name." short:"p"`
	Manifest  string   `help:"Generate from a YAML manifest instead of definition files."`
	Source    []string `help:"Generate from existing Go packages (package patterns)."`
	Types     []string `help:"With --source, restrict extraction to these type names."`
	Header    []string `help:"Extra header comment lines."`
	KeepFiles bool     `help:"Fail instead of overwriting existing output files." name:"no-overwrite"`
}

func (c *GenCmd) Run(logger *slog.Logger) error {
	gen, err := c.generator()
	if err != nil {
		return err
	}

	result, err := gen.ToDir(c.Out)
	if err != nil {
		return err
	}

	reportWarnings(logger, result.Warnings)
	for _, f := range result.Files {
		logger.Info("generated", "file", f, "out", c.Out)
	}
	return nil
}

func (c *GenCmd) generator() (*tycongen.Generator, error) {
	var gen *tycongen.Generator
	switch {
	case c.Manifest != "" && len(c.Source) > 0:
		return nil, fmt.Errorf("--manifest and --source are mutually exclusive")
	case c.Manifest != "":
		if len(c.Inputs) > 0 {
			return nil, fmt.Errorf("--manifest does not take definition file arguments")
		}
		gen = tycongen.FromManifest(c.Manifest)
	case len(c.Source) > 0:
		if len(c.Inputs) > 0 {
			return nil, fmt.Errorf("--source does not take definition file arguments")
		}
		gen = tycongen.FromPackages(c.Source...).WithTypes(c.Types...)
	case len(c.Inputs) > 0:
		gen = tycongen.FromFiles(c.Inputs...)
	default:
		return nil, fmt.Errorf("no inputs: pass definition files, --manifest, or --source")
	}

	if c.Package != "" {
		gen = gen.WithPackage(c.Package)
	}
	if len(c.Header) > 0 {
		gen = gen.WithHeader(c.Header...)
	}
	if c.KeepFiles {
		gen = gen.WithoutOverwrite()
	}
	return gen, nil
}

type CheckCmd struct {
	Inputs []string `arg:"" optional:"" help:"Definition files (.tycon)."`

	Manifest string   `help:"Check a YAML manifest."`
	Source   []string `help:"Check existing Go packages (package patterns)."`
	Types    []string `help:"With --source, restrict extraction to these type names."`
}

func (c *CheckCmd) Run(logger *slog.Logger) error {
	gen, err := (&GenCmd{
		Inputs:   c.Inputs,
		Manifest: c.Manifest,
		Source:   c.Source,
		Types:    c.Types,
	}).generator()
	if err != nil {
		return err
	}

	warnings, err := gen.Check(context.Background())
	reportWarnings(logger, warnings)
	if err != nil {
		return err
	}
	logger.Info("definitions are valid")
	return nil
}

func reportWarnings(logger *slog.Logger, warnings []ir.Warning) {
	for _, w := range warnings {
		logger.Warn(w.Message, "code", w.Code, "enum", w.Enum)
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("tycon"),
		kong.Description("Generator for reflective Go constant sets."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx.Bind(logger)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
