package tycon

// nameEnders are the symbols that terminate the name portion of a raw
// declaration. Declarations are recorded exactly as written, so an entry may
// read "Green = 5" or "Green=5"; the actual constant name ends at the first
// of these symbols (or at the end of the string).
const nameEnders = "= \t\n"

// endsName reports whether c terminates the name portion of a raw
// declaration.
func endsName(c byte) bool {
	for i := 0; i < len(nameEnders); i++ {
		if c == nameEnders[i] {
			return true
		}
	}
	return c == 0
}

// foldByte lowercases ASCII letters and leaves every other byte untouched.
// Case-insensitive matching is ASCII-only; non-ASCII bytes compare verbatim.
func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// namesMatch reports whether the name portion of raw exactly equals ref.
// raw is a raw declaration ("Green" or "Green = 5"); ref is a plain name.
// Matching the raw form directly avoids trimming (and allocating) during
// lookup.
func namesMatch(raw, ref string) bool {
	for i := 0; ; i++ {
		rawEnded := i == len(raw) || endsName(raw[i])
		refEnded := i == len(ref)
		switch {
		case rawEnded:
			return refEnded
		case refEnded:
			return false
		case raw[i] != ref[i]:
			return false
		}
	}
}

// namesMatchFold is namesMatch with ASCII case folding.
func namesMatchFold(raw, ref string) bool {
	for i := 0; ; i++ {
		rawEnded := i == len(raw) || endsName(raw[i])
		refEnded := i == len(ref)
		switch {
		case rawEnded:
			return refEnded
		case refEnded:
			return false
		case foldByte(raw[i]) != foldByte(ref[i]):
			return false
		}
	}
}

// trimName returns the name portion of a raw declaration: everything before
// the first ender symbol.
func trimName(raw string) string {
	for i := 0; i < len(raw); i++ {
		if endsName(raw[i]) {
			return raw[:i]
		}
	}
	return raw
}
