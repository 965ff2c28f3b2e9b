// Package ir defines the intermediate representation for constant set
// definitions. Providers build IR from their input format (DSL files, YAML
// manifests, or Go source) and the emitter transforms it into generated Go
// code, so neither side depends on the other.
package ir

// Documentation holds a doc comment attached to a definition or member.
type Documentation struct {
	// Summary is the first sentence or line, suitable for brief output.
	Summary string

	// Body is the complete documentation text, including the summary.
	Body string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Body == ""
}

// Source represents the input location a definition came from.
type Source struct {
	File string
	Line int
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.Line == 0
}

// Warning represents a non-fatal issue encountered while building a schema.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// Enum is the definition that triggered the warning, if applicable.
	Enum string
}

// PackageInfo describes the Go package generated code is emitted into.
type PackageInfo struct {
	// Name is the package name, e.g. "colors".
	Name string

	// Path is the import path, when known (source provider only).
	Path string
}

// IsZero returns true if the package info is empty.
func (p PackageInfo) IsZero() bool {
	return p.Name == "" && p.Path == ""
}
