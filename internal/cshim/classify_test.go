package cshim

import "testing"

func TestIsWhitespace(t *testing.T) {
	for c := uint32(0); c < 512; c++ {
		want := c == ' ' || c == '\t' || c == '\n'
		if got := IsWhitespace(c); got != want {
			t.Errorf("IsWhitespace(%d) = %v, want %v", c, got, want)
		}
	}
	// Classic iswspace also matches \r, \v, \f; the generated tables do not
	// expect that, so the shim must not either.
	for _, c := range []uint32{'\r', '\v', '\f'} {
		if IsWhitespace(c) {
			t.Errorf("IsWhitespace(%d) = true, want false", c)
		}
	}
}

func TestIsDigit(t *testing.T) {
	for c := uint32(0); c < 512; c++ {
		want := c >= '0' && c <= '9'
		if got := IsDigit(c); got != want {
			t.Errorf("IsDigit(%d) = %v, want %v", c, got, want)
		}
	}
}

func TestIsAlnum(t *testing.T) {
	for c := uint32(0); c < 512; c++ {
		want := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if got := IsAlnum(c); got != want {
			t.Errorf("IsAlnum(%d) = %v, want %v", c, got, want)
		}
	}
}

func TestClassifiersTotalOverCodePoints(t *testing.T) {
	// Values far outside ASCII must classify as false, never fail.
	for _, c := range []uint32{128, 0x00A0, 0x3000, 0x10FFFF, 0xFFFFFFFF} {
		if IsWhitespace(c) || IsDigit(c) || IsAlnum(c) {
			t.Errorf("code point %#x classified as matching, want non-matching", c)
		}
	}
}
