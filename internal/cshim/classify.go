package cshim

// The generated tables were produced with wide-character classification
// enabled, but the grammar only ever needs the ASCII subset. These predicates
// reproduce exactly what the generator assumed: total over the full code
// point range, false outside ASCII, never an error.

// IsWhitespace reports whether c is an ASCII space, tab, or newline.
func IsWhitespace(c uint32) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c uint32) bool {
	return c >= '0' && c <= '9'
}

// IsAlnum reports whether c is an ASCII letter or decimal digit.
func IsAlnum(c uint32) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
