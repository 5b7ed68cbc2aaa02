package bench

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
)

var lengthRE = regexp.MustCompile(`(?i)^([0-9]+(?:\.[0-9]+)?)(pt|mm|cm|in)?$`)

// ParseLength parses a drawing length with pt, mm, cm or in unit.
// Plain numbers are points.
func ParseLength(s string) (vg.Length, error) {
	m := lengthRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	v, _ := strconv.ParseFloat(m[1], 64)
	l := vg.Length(v)
	switch strings.ToLower(m[2]) {
	case "mm":
		l *= vg.Millimeter
	case "cm":
		l *= vg.Centimeter
	case "in":
		l *= vg.Inch
	}
	return l, nil
}
