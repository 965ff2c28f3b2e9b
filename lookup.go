package tycon

import "fmt"

// NotFound is the index sentinel returned by query-mode lookups.
const NotFound = -1

// IndexOf returns the declaration index of v, or NotFound. When duplicate
// values exist, the first match in declaration order wins.
func (s *Set[T]) IndexOf(v T) int {
	for i, sv := range s.values {
		if sv == v {
			return i
		}
	}
	return NotFound
}

// IndexOfName returns the declaration index of the constant named name
// (exact case), or NotFound. The scan matches raw declarations directly, so
// no name table is built.
func (s *Set[T]) IndexOfName(name string) int {
	for i, r := range s.raw {
		if namesMatch(r, name) {
			return i
		}
	}
	return NotFound
}

// IndexOfNameFold is IndexOfName with ASCII case folding.
func (s *Set[T]) IndexOfNameFold(name string) int {
	for i, r := range s.raw {
		if namesMatchFold(r, name) {
			return i
		}
	}
	return NotFound
}

// Contains reports whether v is a declared value.
func (s *Set[T]) Contains(v T) bool { return s.IndexOf(v) != NotFound }

// ContainsName reports whether name (exact case) is a declared constant name.
func (s *Set[T]) ContainsName(name string) bool { return s.IndexOfName(name) != NotFound }

// ContainsNameFold is ContainsName with ASCII case folding.
func (s *Set[T]) ContainsNameFold(name string) bool { return s.IndexOfNameFold(name) != NotFound }

// Index returns the declaration index of v, or an invalid_integer error.
func (s *Set[T]) Index(v T) (int, error) {
	if i := s.IndexOf(v); i != NotFound {
		return i, nil
	}
	return NotFound, Errorf(CodeInvalidInteger, s.name, "no constant with value %d", v)
}

// Parse returns the value of the constant named name (exact case), or an
// invalid_name error.
func (s *Set[T]) Parse(name string) (T, error) {
	if i := s.IndexOfName(name); i != NotFound {
		return s.values[i], nil
	}
	var zero T
	return zero, Errorf(CodeInvalidName, s.name, "no constant named %q", name)
}

// ParseFold is Parse with ASCII case folding.
func (s *Set[T]) ParseFold(name string) (T, error) {
	if i := s.IndexOfNameFold(name); i != NotFound {
		return s.values[i], nil
	}
	var zero T
	return zero, Errorf(CodeInvalidName, s.name, "no constant named %q (case-insensitive)", name)
}

// Name returns the trimmed name of v. An out-of-table v yields a domain
// error; such values can only be produced by unchecked construction.
func (s *Set[T]) Name(v T) (string, error) {
	i := s.IndexOf(v)
	if i == NotFound {
		return "", Errorf(CodeDomain, s.name, "value %d is not a declared constant", v)
	}
	return s.NameAt(i), nil
}

// Format returns the trimmed name of v, or a "Type(value)" placeholder for
// out-of-table values. It never fails; generated String methods use it.
func (s *Set[T]) Format(v T) string {
	if i := s.IndexOf(v); i != NotFound {
		return s.NameAt(i)
	}
	return fmt.Sprintf("%s(%d)", s.name, v)
}
