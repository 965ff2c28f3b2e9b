package tycon

import (
	"log/slog"
	"slices"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	s := NewSet("registry_test.Color",
		[]string{"Red", "Green", "Blue"},
		[]int32{0, 1, 2})
	if got := Register(s); got != s {
		t.Fatal("Register should return its argument")
	}

	info, ok := LookupSet("registry_test.Color")
	if !ok {
		t.Fatal("LookupSet did not find registered set")
	}
	if info.TypeName() != "registry_test.Color" || info.Size() != 3 {
		t.Errorf("LookupSet returned %q with size %d", info.TypeName(), info.Size())
	}

	names := slices.Collect(info.Names())
	if !slices.Equal(names, []string{"Red", "Green", "Blue"}) {
		t.Errorf("Names() = %v", names)
	}
}

func TestRegisterDuplicateKeepsFirst(t *testing.T) {
	SetLogger(slog.New(slog.DiscardHandler))
	defer SetLogger(nil)

	first := NewSet("registry_test.Dup", []string{"A"}, []int{1})
	second := NewSet("registry_test.Dup", []string{"B"}, []int{2})
	Register(first)
	Register(second)

	info, ok := LookupSet("registry_test.Dup")
	if !ok {
		t.Fatal("LookupSet did not find registered set")
	}
	names := slices.Collect(info.Names())
	if !slices.Equal(names, []string{"A"}) {
		t.Errorf("duplicate registration replaced first definition: %v", names)
	}
}

func TestRegisteredSetsSorted(t *testing.T) {
	Register(NewSet("registry_test.B", []string{"X"}, []int{0}))
	Register(NewSet("registry_test.A", []string{"X"}, []int{0}))

	names := RegisteredSets()
	if !slices.IsSorted(names) {
		t.Errorf("RegisteredSets() not sorted: %v", names)
	}
}
