package utils

import "testing"

func TestSet(t *testing.T) {
	s := NewSet("a", "b")
	if !s.Has("a") || s.Has("c") {
		t.Fatalf("unexpected membership: %v", s)
	}
	s.Extend([]string{"c"})
	if !s.Has("c") {
		t.Fatalf("Extend failed: %v", s)
	}
	if !s.IsSupersetOf(NewSet("a", "c")) {
		t.Fatalf("expected superset of {a, c}")
	}
	if s.IsSupersetOf(NewSet("a", "z")) {
		t.Fatalf("did not expect superset of {a, z}")
	}
	if !s.IsSupersetOf(NewSet()) {
		t.Fatalf("every set is a superset of the empty set")
	}
}

func TestMinMax(t *testing.T) {
	if got := MinF(2, 3); got != 2 {
		t.Fatalf("MinF: %v", got)
	}
	if got := MaxF(2, 3); got != 3 {
		t.Fatalf("MaxF: %v", got)
	}
}
