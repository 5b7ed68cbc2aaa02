package bench

import (
	"reflect"
	"testing"
)

func TestDefaultSources(t *testing.T) {
	if len(DefaultSources) != 6 {
		t.Fatalf("got %d default sources, want 6", len(DefaultSources))
	}
	if err := DefaultSources.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestParseSources(t *testing.T) {
	got, err := ParseSources("clang.csv=Clang (Linux); msvc.csv = MSVC (Win, per-call);plain.csv")
	if err != nil {
		t.Fatal(err)
	}
	want := Sources{
		{"clang.csv", "Clang (Linux)"},
		{"msvc.csv", "MSVC (Win, per-call)"},
		{"plain.csv", "plain.csv"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, in := range []string{"", ";", "a.csv=x;a.csv=y", "a.csv=x;b.csv=x", "=x"} {
		if _, err := ParseSources(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}
