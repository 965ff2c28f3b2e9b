package ir

import "go/constant"

// Underlying identifies the integral type a constant set is declared over.
// Range and comparison semantics of the generated type use this type's
// native ordering.
type Underlying struct {
	// Name is the Go type name, e.g. "int32".
	Name string

	// Bits is the width used for range checking. Platform-sized int and
	// uint are checked at 64 bits.
	Bits int

	// Signed reports whether the type is signed.
	Signed bool
}

var underlyingTypes = map[string]Underlying{
	"int":     {Name: "int", Bits: 64, Signed: true},
	"int8":    {Name: "int8", Bits: 8, Signed: true},
	"int16":   {Name: "int16", Bits: 16, Signed: true},
	"int32":   {Name: "int32", Bits: 32, Signed: true},
	"int64":   {Name: "int64", Bits: 64, Signed: true},
	"uint":    {Name: "uint", Bits: 64, Signed: false},
	"uint8":   {Name: "uint8", Bits: 8, Signed: false},
	"uint16":  {Name: "uint16", Bits: 16, Signed: false},
	"uint32":  {Name: "uint32", Bits: 32, Signed: false},
	"uint64":  {Name: "uint64", Bits: 64, Signed: false},
	"uintptr": {Name: "uintptr", Bits: 64, Signed: false},
}

// UnderlyingByName returns the underlying type descriptor for a Go integer
// type name.
func UnderlyingByName(name string) (Underlying, bool) {
	u, ok := underlyingTypes[name]
	return u, ok
}

// IsZero returns true if the underlying type is unset.
func (u Underlying) IsZero() bool { return u.Name == "" }

// InRange reports whether the integer constant v fits the underlying type.
func (u Underlying) InRange(v constant.Value) bool {
	if v.Kind() != constant.Int {
		return false
	}

	if u.Signed {
		i, ok := constant.Int64Val(v)
		if !ok {
			return false
		}
		if u.Bits == 64 {
			return true
		}
		min := int64(-1) << (u.Bits - 1)
		max := int64(1)<<(u.Bits-1) - 1
		return i >= min && i <= max
	}

	n, ok := constant.Uint64Val(v)
	if !ok {
		return false
	}
	if u.Bits == 64 {
		return true
	}
	return n <= uint64(1)<<u.Bits-1
}
