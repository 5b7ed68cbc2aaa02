package bench

import (
	"math"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in string
		v  vg.Length
	}{
		{"120", 120},
		{"120pt", 120},
		{"2in", 2 * vg.Inch},
		{"2IN", 2 * vg.Inch},
		{"15cm", 15 * vg.Centimeter},
		{"7.5mm", 7.5 * vg.Millimeter},
	}
	for _, test := range tests {
		l, err := ParseLength(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if math.Abs(float64(l-test.v)) > 1e-9 {
			t.Errorf("%q: got %v, want %v", test.in, l, test.v)
		}
	}
	for _, in := range []string{"", "cm", "-3pt", "10px"} {
		if _, err := ParseLength(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}
