package registry

import (
	"slices"
	"testing"
)

func TestRegistryGrowsMonotonically(t *testing.T) {
	t.Parallel()

	reg := New()
	if reg.Has("x") {
		t.Fatal("new registry should be empty")
	}

	reg.Add("x")
	reg.Add("y")
	reg.Add("x")

	if !reg.Has("x") || !reg.Has("y") {
		t.Fatalf("expected x and y to be registered, got %v", reg.Names())
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}
	if got := reg.Names(); !slices.Equal(got, []string{"x", "y"}) {
		t.Fatalf("Names() = %v", got)
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	t.Parallel()

	first := New()
	first.Add("x")

	second := New()
	if second.Has("x") {
		t.Fatal("second registry leaked a name from the first")
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.Add("a")
	names := reg.Names()
	names[0] = "b"

	if !reg.Has("a") || reg.Names()[0] != "a" {
		t.Fatal("mutating Names() result changed the registry")
	}
}
