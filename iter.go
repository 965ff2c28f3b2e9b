package tycon

import "iter"

// Values returns an iterator over the declared values in declaration order.
// Each range over the sequence starts fresh from the first declaration;
// there is no shared cursor.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Names returns an iterator over the trimmed constant names in declaration
// order, building the processed name table on first use.
func (s *Set[T]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		s.processNames()
		for _, n := range s.names {
			if !yield(n) {
				return
			}
		}
	}
}

// All returns an iterator over (index, value) pairs in declaration order.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.values {
			if !yield(i, v) {
				return
			}
		}
	}
}
