package tycon

import (
	"iter"
	"log/slog"
	"sort"
	"sync"
)

// SetInfo is the type-erased view of a registered Set, independent of its
// underlying integer type.
type SetInfo interface {
	TypeName() string
	Size() int
	Names() iter.Seq[string]
}

// registry is the process-wide table of constant sets, one entry per
// generated type. Generated packages register their set from a package-level
// var, so every importer shares a single definition regardless of how many
// packages reference the type.
type registry struct {
	mu     sync.RWMutex
	sets   map[string]SetInfo
	logger *slog.Logger
}

var defaultRegistry = &registry{sets: make(map[string]SetInfo)}

// SetLogger sets the logger used for registry warnings.
// If not set, slog.Default() is used.
func SetLogger(logger *slog.Logger) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.logger = logger
}

// Register adds s to the process-wide registry and returns s.
// If a set with the same type name is already registered, the first
// definition is kept and a warning is logged; callers always observe one
// table per type name.
//
// Generated code calls Register from a package-level var:
//
//	var colorSet = tycon.Register(tycon.NewSet[int32]("Color", ...))
func Register[T Integer](s *Set[T]) *Set[T] {
	r := defaultRegistry
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sets[s.name]; exists {
		logger := r.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("duplicate constant set registration",
			slog.String("set", s.name),
			slog.Int("size", s.Size()))
		return s
	}

	r.sets[s.name] = s
	return s
}

// LookupSet returns the registered set with the given type name.
func LookupSet(name string) (SetInfo, bool) {
	r := defaultRegistry
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sets[name]
	return s, ok
}

// RegisteredSets returns the type names of all registered sets, sorted.
func RegisteredSets() []string {
	r := defaultRegistry
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
