package ir

import (
	"go/constant"
	"testing"
)

func mustUnderlying(t *testing.T, name string) Underlying {
	t.Helper()
	u, ok := UnderlyingByName(name)
	if !ok {
		t.Fatalf("UnderlyingByName(%q) not found", name)
	}
	return u
}

func TestFindMember(t *testing.T) {
	d := &EnumDef{
		Name:       "Color",
		Underlying: mustUnderlying(t, "int32"),
		Members: []Member{
			{Name: "Red", Raw: "Red", Value: constant.MakeInt64(0)},
			{Name: "Green", Raw: "Green = 5", Value: constant.MakeInt64(5), Explicit: true},
		},
	}

	if m := d.FindMember("Green"); m == nil || m.Raw != "Green = 5" {
		t.Errorf("FindMember(Green) = %+v", m)
	}
	if m := d.FindMember("Purple"); m != nil {
		t.Errorf("FindMember(Purple) = %+v, want nil", m)
	}
}

func TestMemberLiteral(t *testing.T) {
	signed := Member{Name: "Neg", Value: constant.MakeInt64(-5)}
	if got := signed.Literal(mustUnderlying(t, "int8")); got != "-5" {
		t.Errorf("Literal(int8) = %q, want -5", got)
	}

	unsigned := Member{Name: "Big", Value: constant.MakeUint64(1 << 40)}
	if got := unsigned.Literal(mustUnderlying(t, "uint64")); got != "1099511627776" {
		t.Errorf("Literal(uint64) = %q", got)
	}
}

func TestValidateEmptyMembers(t *testing.T) {
	s := &Schema{}
	s.AddEnum(&EnumDef{Name: "Empty", Underlying: mustUnderlying(t, "int")})

	errs := s.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
	}
}

func TestValidateDuplicateNames(t *testing.T) {
	s := &Schema{}
	s.AddEnum(&EnumDef{
		Name:       "Dup",
		Underlying: mustUnderlying(t, "int"),
		Members: []Member{
			{Name: "A", Raw: "A", Value: constant.MakeInt64(0)},
			{Name: "A", Raw: "A = 1", Value: constant.MakeInt64(1), Explicit: true},
		},
	})

	errs := s.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
	}
}

func TestValidateDuplicateValuesAreLegal(t *testing.T) {
	s := &Schema{}
	s.AddEnum(&EnumDef{
		Name:       "Alias",
		Underlying: mustUnderlying(t, "int"),
		Members: []Member{
			{Name: "X", Raw: "X", Value: constant.MakeInt64(0)},
			{Name: "Y", Raw: "Y = X", Value: constant.MakeInt64(0), Explicit: true},
		},
	})

	if errs := s.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateOutOfRange(t *testing.T) {
	s := &Schema{}
	s.AddEnum(&EnumDef{
		Name:       "Narrow",
		Underlying: mustUnderlying(t, "int8"),
		Members: []Member{
			{Name: "Big", Raw: "Big = 300", Value: constant.MakeInt64(300), Explicit: true},
		},
	})

	errs := s.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
	}
}

func TestValidateBadIdentifiers(t *testing.T) {
	s := &Schema{}
	s.AddEnum(&EnumDef{
		Name:       "type",
		Underlying: mustUnderlying(t, "int"),
		Members: []Member{
			{Name: "range", Raw: "range", Value: constant.MakeInt64(0)},
		},
	})

	errs := s.Validate()
	if len(errs) != 2 {
		t.Fatalf("Validate() returned %d errors, want 2 (keyword type and member names): %v", len(errs), errs)
	}
}

func TestValidateCrossEnumMemberCollision(t *testing.T) {
	s := &Schema{}
	s.AddEnum(&EnumDef{
		Name:       "Color",
		Underlying: mustUnderlying(t, "int32"),
		Members:    []Member{{Name: "Red", Raw: "Red", Value: constant.MakeInt64(0)}},
	})
	s.AddEnum(&EnumDef{
		Name:       "Paint",
		Underlying: mustUnderlying(t, "int"),
		Members:    []Member{{Name: "Red", Raw: "Red", Value: constant.MakeInt64(0)}},
	})

	// Both would become package-level vars named Red.
	errs := s.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
	}
}

func TestValidateDuplicateEnums(t *testing.T) {
	s := &Schema{}
	member := []Member{{Name: "A", Raw: "A", Value: constant.MakeInt64(0)}}
	s.AddEnum(&EnumDef{Name: "Same", Underlying: mustUnderlying(t, "int"), Members: member})
	s.AddEnum(&EnumDef{Name: "Same", Underlying: mustUnderlying(t, "int"), Members: member})

	errs := s.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
	}
}
