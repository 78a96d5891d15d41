package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestRandBytes_LengthAndUniqueness(t *testing.T) {
	t.Parallel()

	const n = 64
	a, err := RandBytes(n)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	if len(a) != n {
		t.Fatalf("len=%d, want=%d", len(a), n)
	}
	b, err := RandBytes(n)
	if err != nil {
		t.Fatalf("RandBytes(2): %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two subsequent RandBytes(%d) are equal, looks non-random", n)
	}
}

func TestNewInviteCode_ShapeAndAlphabet(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := NewInviteCode()
		if err != nil {
			t.Fatalf("NewInviteCode: %v", err)
		}
		if len(code) != InviteCodeLen {
			t.Fatalf("len=%d, want=%d", len(code), InviteCodeLen)
		}
		if strings.ContainsAny(code, "01OI") {
			t.Fatalf("ambiguous symbol in %q", code)
		}
		if !validInviteCode(code) {
			t.Fatalf("generated code %q fails validation", code)
		}
		seen[code] = true
	}
	if len(seen) < 199 {
		t.Fatalf("too many duplicates: %d unique of 200", len(seen))
	}
}

func TestValidInviteCode(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"ABCDEFGHJKLM":  true,
		"23456789ABCD":  true,
		"abcdefghjklm":  false,
		"ABCDEFGHJKL":   false,
		"ABCDEFGHJKLMN": false,
		"ABCDEFGHJKL0":  false,
		"ABCDEFGHJKLO":  false,
		"":              false,
	}
	for in, want := range cases {
		if got := validInviteCode(in); got != want {
			t.Errorf("validInviteCode(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestEqualToken(t *testing.T) {
	t.Parallel()

	if !EqualToken("s3cret", "s3cret") {
		t.Fatal("equal tokens must match")
	}
	if EqualToken("s3cret", "s3cre") || EqualToken("", "s3cret") {
		t.Fatal("different tokens must not match")
	}
}

// validInviteCode reports whether s is InviteCodeLen symbols of InviteAlphabet.
func validInviteCode(s string) bool {
	return len(s) == InviteCodeLen && strings.Trim(s, InviteAlphabet) == ""
}
