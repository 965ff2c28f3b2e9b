package ir

import (
	"fmt"
	"go/constant"
	"go/token"
	"strconv"
)

// Member represents a single declared constant.
type Member struct {
	// Name is the trimmed constant identifier.
	Name string

	// Raw is the declaration exactly as written in the input, possibly
	// including an "= expr" suffix. Generated code carries the raw form
	// so lookups can match it without a trim pass.
	Raw string

	// Value is the resolved integral value.
	Value constant.Value

	// Explicit marks the value as assigned in the input rather than
	// auto-incremented.
	Explicit bool

	// Documentation for this member.
	Documentation Documentation
}

// Literal formats the member's resolved value as a Go literal for the given
// underlying type.
func (m Member) Literal(u Underlying) string {
	if u.Signed {
		i, _ := constant.Int64Val(m.Value)
		return strconv.FormatInt(i, 10)
	}
	n, _ := constant.Uint64Val(m.Value)
	return strconv.FormatUint(n, 10)
}

// EnumDef represents one constant set definition.
type EnumDef struct {
	// Name is the generated type's identifier, e.g. "Color".
	Name string

	// Underlying is the integral type the set is declared over.
	Underlying Underlying

	// Members contains the declared constants in declaration order.
	Members []Member

	// Documentation for the definition.
	Documentation Documentation

	// Source is the input location of the definition.
	Source Source
}

// FindMember returns the first member with the given name, or nil.
func (d *EnumDef) FindMember(name string) *Member {
	for i := range d.Members {
		if d.Members[i].Name == name {
			return &d.Members[i]
		}
	}
	return nil
}

// Schema is a complete set of definitions destined for one Go package.
type Schema struct {
	// Package is the target package for generated code.
	Package PackageInfo

	// Enums contains the definitions in input order.
	Enums []*EnumDef

	// Warnings contains non-fatal issues encountered by the provider.
	Warnings []Warning
}

// AddEnum appends a definition to the schema.
func (s *Schema) AddEnum(d *EnumDef) {
	s.Enums = append(s.Enums, d)
}

// AddWarning appends a warning to the schema.
func (s *Schema) AddWarning(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// FindEnum looks up a definition by name. Returns nil if not found.
func (s *Schema) FindEnum(name string) *EnumDef {
	for _, d := range s.Enums {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Validate checks the schema for structural problems and returns all errors
// found, not just the first. An empty member list is a build-time error:
// it must never survive to the generated code.
func (s *Schema) Validate() []error {
	var errs []error

	seenEnums := make(map[string]bool)
	// Generated member instances are package-level vars, so a member name
	// reused across definitions would redeclare the var.
	seenMembers := make(map[string]string)
	for _, d := range s.Enums {
		if seenEnums[d.Name] {
			errs = append(errs, fmt.Errorf("duplicate definition %s", d.Name))
		}
		seenEnums[d.Name] = true

		errs = append(errs, d.Validate()...)

		for _, m := range d.Members {
			prev, ok := seenMembers[m.Name]
			if ok && prev != d.Name {
				errs = append(errs, fmt.Errorf("%s.%s: constant name already declared by %s", d.Name, m.Name, prev))
			}
			if !ok {
				seenMembers[m.Name] = d.Name
			}
		}
	}

	return errs
}

// Validate checks a single definition.
func (d *EnumDef) Validate() []error {
	var errs []error

	if !token.IsIdentifier(d.Name) {
		errs = append(errs, fmt.Errorf("%s: not a valid Go identifier", d.Name))
	}
	if d.Underlying.IsZero() {
		errs = append(errs, fmt.Errorf("%s: missing underlying type", d.Name))
	}
	if len(d.Members) == 0 {
		errs = append(errs, fmt.Errorf("%s: no constants declared", d.Name))
		return errs
	}

	seen := make(map[string]bool)
	for _, m := range d.Members {
		if !token.IsIdentifier(m.Name) {
			errs = append(errs, fmt.Errorf("%s.%s: not a valid Go identifier", d.Name, m.Name))
			continue
		}
		// Duplicate values are legal aliases, but duplicate names would
		// collide in the generated package.
		if seen[m.Name] {
			errs = append(errs, fmt.Errorf("%s.%s: duplicate constant name", d.Name, m.Name))
		}
		seen[m.Name] = true

		if m.Value == nil || !d.Underlying.InRange(m.Value) {
			errs = append(errs, fmt.Errorf("%s.%s: value out of range for %s", d.Name, m.Name, d.Underlying.Name))
		}
	}

	return errs
}
