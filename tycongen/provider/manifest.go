package provider

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tyconlabs/tycon/tycongen/ir"
)

// Manifest is the YAML description of one generated package.
//
//	version: "1"
//	package: colors
//	enums:
//	  - name: Color
//	    type: int32
//	    doc: Palette used by the renderer.
//	    members:
//	      - Red
//	      - Green = 5
//	      - Blue
//
// Members use the same declaration syntax as the DSL.
type Manifest struct {
	Version string         `yaml:"version"`
	Package string         `yaml:"package"`
	Enums   []ManifestEnum `yaml:"enums"`
}

// ManifestEnum is one definition in a manifest.
type ManifestEnum struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Doc     string   `yaml:"doc,omitempty"`
	Members []string `yaml:"members"`
}

// ManifestProvider parses YAML manifest files.
type ManifestProvider struct{}

// BuildSchema loads and parses a manifest file into a schema.
func (p *ManifestProvider) BuildSchema(path string) (*ir.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return p.Parse(data, path)
}

// Parse parses manifest data. filename is used for error messages and
// source locations only.
func (p *ManifestProvider) Parse(data []byte, filename string) (*ir.Schema, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, err)
	}
	if m.Version == "" {
		m.Version = "1"
	}
	if m.Version != "1" {
		return nil, fmt.Errorf("%s: unsupported manifest version %q", filename, m.Version)
	}

	schema := &ir.Schema{
		Package: ir.PackageInfo{Name: m.Package},
	}

	for _, me := range m.Enums {
		u, ok := ir.UnderlyingByName(me.Type)
		if !ok {
			return nil, fmt.Errorf("%s: enum %s: unsupported underlying type %q", filename, me.Name, me.Type)
		}

		def := &ir.EnumDef{
			Name:       me.Name,
			Underlying: u,
			Source:     ir.Source{File: filename},
		}
		if me.Doc != "" {
			def.Documentation = ir.Documentation{Summary: me.Doc, Body: me.Doc}
		}

		resolver := newMemberResolver(me.Name)
		for _, raw := range me.Members {
			member, err := resolver.resolve(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filename, err)
			}
			def.Members = append(def.Members, member)
		}

		schema.AddEnum(def)
	}

	return schema, nil
}
