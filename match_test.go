package tycon

import "testing"

func TestEndsName(t *testing.T) {
	for _, c := range []byte{'=', ' ', '\t', '\n', 0} {
		if !endsName(c) {
			t.Errorf("endsName(%q) = false, want true", c)
		}
	}
	for _, c := range []byte{'A', 'z', '0', '_', '-'} {
		if endsName(c) {
			t.Errorf("endsName(%q) = true, want false", c)
		}
	}
}

func TestNamesMatch(t *testing.T) {
	tests := []struct {
		raw  string
		ref  string
		want bool
	}{
		{"Red", "Red", true},
		{"Green = 5", "Green", true},
		{"Green=5", "Green", true},
		{"Green\t= 5", "Green", true},
		{"Green = 5", "Green = 5", false}, // ref must be a plain name
		{"Red", "Re", false},
		{"Re", "Red", false},
		{"Red", "red", false},
		{"", "", true},
		{"= 5", "", true},
	}

	for _, tt := range tests {
		if got := namesMatch(tt.raw, tt.ref); got != tt.want {
			t.Errorf("namesMatch(%q, %q) = %v, want %v", tt.raw, tt.ref, got, tt.want)
		}
	}
}

func TestNamesMatchFold(t *testing.T) {
	tests := []struct {
		raw  string
		ref  string
		want bool
	}{
		{"Red", "red", true},
		{"RED", "red", true},
		{"Green = 5", "gReEn", true},
		{"Red", "blue", false},
		{"Red", "re", false},
	}

	for _, tt := range tests {
		if got := namesMatchFold(tt.raw, tt.ref); got != tt.want {
			t.Errorf("namesMatchFold(%q, %q) = %v, want %v", tt.raw, tt.ref, got, tt.want)
		}
	}
}

func TestNamesMatchFoldASCIIOnly(t *testing.T) {
	// Non-ASCII bytes compare verbatim; folding applies to ASCII letters only.
	if !namesMatchFold("Grün", "grün") {
		t.Error("ASCII letters around non-ASCII bytes should still fold")
	}
	if namesMatchFold("Grün", "GRÜN") {
		t.Error("non-ASCII bytes must not case-fold")
	}
}

func TestTrimName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Red", "Red"},
		{"Green = 5", "Green"},
		{"Green=5", "Green"},
		{"Blue\t=\t0x10", "Blue"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := trimName(tt.raw); got != tt.want {
			t.Errorf("trimName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
