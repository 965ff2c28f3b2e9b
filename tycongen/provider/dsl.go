package provider

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/tyconlabs/tycon/tycongen/ir"
)

// DSLProvider parses .tycon definition files.
//
// The format is line-oriented:
//
//	# Palette used by the renderer.
//	package colors
//
//	enum Color int32 {
//	    Red
//	    Green = 5
//	    Blue          # auto-increments to 6
//	}
//
// Members are separated by newlines or semicolons. Explicit values are Go
// constant expressions and may reference previously declared members of the
// same definition. '#' starts a comment; comment lines directly above a
// definition or member become its documentation.
type DSLProvider struct{}

// BuildSchema parses the given definition files into one schema.
// All files must target the same package.
func (p *DSLProvider) BuildSchema(paths ...string) (*ir.Schema, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files specified")
	}

	schema := &ir.Schema{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := p.parseInto(schema, data, path); err != nil {
			return nil, err
		}
	}
	return schema, nil
}

// Parse parses a single definition source. filename is used for error
// messages and source locations only.
func (p *DSLProvider) Parse(data []byte, filename string) (*ir.Schema, error) {
	schema := &ir.Schema{}
	if err := p.parseInto(schema, data, filename); err != nil {
		return nil, err
	}
	return schema, nil
}

func (p *DSLProvider) parseInto(schema *ir.Schema, data []byte, filename string) error {
	var (
		cur      *ir.EnumDef
		resolver *memberResolver
		doc      []string
		lineNo   int
	)

	fail := func(format string, args ...any) error {
		return fmt.Errorf("%s:%d: %s", filename, lineNo, fmt.Sprintf(format, args...))
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// A '#' starts a comment. A full-line comment accumulates as
		// documentation for the next definition or member.
		if i := strings.IndexByte(line, '#'); i >= 0 {
			comment := strings.TrimSpace(line[i+1:])
			if strings.TrimSpace(line[:i]) == "" {
				doc = append(doc, comment)
				continue
			}
			line = line[:i]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			doc = nil
			continue
		}

		switch {
		case cur == nil && strings.HasPrefix(line, "package "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "package "))
			if schema.Package.Name != "" && schema.Package.Name != name {
				return fail("package %s conflicts with earlier package %s", name, schema.Package.Name)
			}
			schema.Package.Name = name
			doc = nil

		case cur == nil && strings.HasPrefix(line, "enum "):
			brace := strings.IndexByte(line, '{')
			if brace < 0 {
				return fail("enum declaration must contain '{': %q", line)
			}
			def, err := parseEnumHeader(line[:brace+1])
			if err != nil {
				return fail("%s", err)
			}
			def.Documentation = docFromLines(doc)
			def.Source = ir.Source{File: filename, Line: lineNo}
			cur = def
			resolver = newMemberResolver(def.Name)
			doc = nil

			// Members may follow the brace on the same line, optionally
			// with a closing brace for a one-line body.
			body := strings.TrimSpace(line[brace+1:])
			closed := strings.HasSuffix(body, "}")
			if closed {
				body = strings.TrimSpace(strings.TrimSuffix(body, "}"))
			}
			for _, raw := range splitMembers(body) {
				m, err := resolver.resolve(raw)
				if err != nil {
					return fail("%s", err)
				}
				cur.Members = append(cur.Members, m)
			}
			if closed {
				schema.AddEnum(cur)
				cur = nil
				resolver = nil
			}

		case cur == nil:
			return fail("expected package or enum declaration, got %q", line)

		case line == "}":
			schema.AddEnum(cur)
			cur = nil
			resolver = nil
			doc = nil

		default:
			for _, raw := range splitMembers(line) {
				m, err := resolver.resolve(raw)
				if err != nil {
					return fail("%s", err)
				}
				m.Documentation = docFromLines(doc)
				doc = nil
				cur.Members = append(cur.Members, m)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan %s: %w", filename, err)
	}
	if cur != nil {
		return fmt.Errorf("%s: missing closing brace for enum %s", filename, cur.Name)
	}

	return nil
}

// parseEnumHeader parses "enum Name Type {".
func parseEnumHeader(line string) (*ir.EnumDef, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "enum "))
	if !strings.HasSuffix(rest, "{") {
		return nil, fmt.Errorf("enum declaration must end with '{': %q", line)
	}
	rest = strings.TrimSpace(strings.TrimSuffix(rest, "{"))

	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return nil, fmt.Errorf("enum declaration must be 'enum Name Type {': %q", line)
	}

	u, ok := ir.UnderlyingByName(fields[1])
	if !ok {
		return nil, fmt.Errorf("unsupported underlying type %s", fields[1])
	}

	return &ir.EnumDef{Name: fields[0], Underlying: u}, nil
}

// splitMembers splits a member line on semicolons, preserving each raw
// declaration's text.
func splitMembers(line string) []string {
	parts := strings.Split(line, ";")
	members := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			members = append(members, p)
		}
	}
	return members
}

// docFromLines joins accumulated comment lines into Documentation.
func docFromLines(lines []string) ir.Documentation {
	if len(lines) == 0 {
		return ir.Documentation{}
	}
	return ir.Documentation{
		Summary: lines[0],
		Body:    strings.Join(lines, "\n"),
	}
}
