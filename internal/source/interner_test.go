package source

import (
	"testing"
)

func TestInternerRoundTrip(t *testing.T) {
	in := NewInterner()

	a := in.Intern("someClass")
	b := in.Intern("otherClass")
	if a == b {
		t.Fatalf("distinct strings share an ID")
	}
	if again := in.Intern("someClass"); again != a {
		t.Errorf("re-interning returned %d, want %d", again, a)
	}

	got, ok := in.Lookup(a)
	if !ok || got != "someClass" {
		t.Errorf("Lookup(%d) = %q, %v", a, got, ok)
	}
	if in.MustLookup(b) != "otherClass" {
		t.Errorf("MustLookup(%d) = %q", b, in.MustLookup(b))
	}
}

func TestInternerEmptyStringIsNoStringID(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Errorf("Intern(\"\") = %d, want NoStringID", id)
	}
	got, ok := in.Lookup(NoStringID)
	if !ok || got != "" {
		t.Errorf("Lookup(NoStringID) = %q, %v", got, ok)
	}
	if in.Len() != 1 {
		t.Errorf("fresh interner Len() = %d, want 1", in.Len())
	}
}

func TestInternerInvalidID(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Errorf("Lookup accepted an unknown ID")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("MustLookup did not panic on an unknown ID")
		}
	}()
	in.MustLookup(StringID(99))
}
