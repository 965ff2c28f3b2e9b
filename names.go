package tycon

import "strings"

// processNames builds the trimmed name table from the raw declarations.
// All names are substrings of one contiguous backing string, sized exactly
// to the sum of trimmed lengths. Built at most once per Set; the table
// lives for the Set's lifetime.
func (s *Set[T]) processNames() {
	s.nameOnce.Do(func() {
		total := 0
		for _, r := range s.raw {
			total += len(trimName(r))
		}

		var backing strings.Builder
		backing.Grow(total)
		ends := make([]int, len(s.raw))
		for i, r := range s.raw {
			backing.WriteString(trimName(r))
			ends[i] = backing.Len()
		}

		all := backing.String()
		names := make([]string, len(s.raw))
		start := 0
		for i, end := range ends {
			names[i] = all[start:end]
			start = end
		}
		s.names = names
	})
}

// NameAt returns the trimmed name at declaration index i, building the
// processed name table on first use.
func (s *Set[T]) NameAt(i int) string {
	s.processNames()
	return s.names[i]
}

// RawAt returns the declaration at index i exactly as written, including
// any "= expr" suffix.
func (s *Set[T]) RawAt(i int) string { return s.raw[i] }

// ValueAt returns the resolved value at declaration index i.
func (s *Set[T]) ValueAt(i int) T { return s.values[i] }
