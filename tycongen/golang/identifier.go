package golang

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// predeclared identifiers that would shadow builtins or universe types if
// used as generated names. Keywords are rejected by token.IsIdentifier
// upstream; these parse fine but still cause trouble.
var predeclared = map[string]bool{
	"any": true, "append": true, "bool": true, "byte": true, "cap": true,
	"clear": true, "close": true, "comparable": true, "complex": true,
	"complex64": true, "complex128": true, "copy": true, "delete": true,
	"error": true, "float32": true, "float64": true, "imag": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"iota": true, "len": true, "make": true, "max": true, "min": true,
	"new": true, "nil": true, "panic": true, "print": true, "println": true,
	"real": true, "recover": true, "rune": true, "string": true,
	"true": true, "false": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true,
}

// escapeIdentifier makes a declared name safe as a Go identifier by
// appending an underscore when it collides with a keyword or predeclared
// identifier.
func escapeIdentifier(name string) string {
	if token.IsKeyword(name) || predeclared[name] {
		return name + "_"
	}
	return name
}

// validIdentifier reports whether name can be emitted as a Go identifier,
// possibly after escaping.
func validIdentifier(name string) bool {
	escaped := escapeIdentifier(name)
	return token.IsIdentifier(escaped)
}

// receiverName derives a short method receiver from a type name, e.g.
// "Color" becomes "c".
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if r == utf8.RuneError {
		return "x"
	}
	rec := string(unicode.ToLower(r))
	if token.IsKeyword(rec) {
		return rec + "_"
	}
	return rec
}

// unexport lowercases the first rune, for package-private helper names like
// the set variable backing a type.
func unexport(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return escapeIdentifier(string(unicode.ToLower(r)) + name[size:])
}

// quoteComment strips newlines so declared raw text can sit inside a
// line comment.
func quoteComment(s string) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
