package bench

import (
	"fmt"
	"math"
	"strings"
)

// Columns of the analysis CSV written by the benchmark program.
const (
	VersionColumn = "Версия"
	MeanColumn    = "Среднее_нс"
	MedianColumn  = "Медиана_нс"
	P95Column     = "P95_нс"
	P99Column     = "P99_нс"
	PeakRSSColumn = "Пиковый_RSS_КБ"
)

// Panel describes one chart of the summary.
type Panel struct {
	Column string // plotted column
	Axis   string // y axis title
	Title  string
}

// Panels are drawn top to bottom in this order.
var Panels = []Panel{
	{MeanColumn, "Mean time (ns)", "Mean execution time (ns)"},
	{MedianColumn, "Median time (ns)", "Median execution time (ns)"},
	{P95Column, "P95 time (ns)", "95th percentile (ns)"},
	{P99Column, "P99 time (ns)", "99th percentile (ns)"},
	{PeakRSSColumn, "Peak RSS (KB)", "Peak memory usage (KB)"},
}

// Point is a single benchmark observation of the merged table.
type Point struct {
	Version string
	Source  string
	Mean    float64
	Median  float64
	PeakRSS float64
	P95     float64
	P99     float64
}

// Points projects the rows of t. Row order is preserved.
func Points(t *Table) []Point {
	pp := make([]Point, t.Len())
	for i := range pp {
		pp[i] = Point{
			Version: t.Value(i, VersionColumn),
			Source:  t.Value(i, LabelColumn),
			Mean:    t.Float(i, MeanColumn),
			Median:  t.Float(i, MedianColumn),
			PeakRSS: t.Float(i, PeakRSSColumn),
			P95:     t.Float(i, P95Column),
			P99:     t.Float(i, P99Column),
		}
	}
	return pp
}

// Metric returns the value of the given metric column, NaN for unknown columns.
func (p Point) Metric(column string) float64 {
	switch column {
	case MeanColumn:
		return p.Mean
	case MedianColumn:
		return p.Median
	case PeakRSSColumn:
		return p.PeakRSS
	case P95Column:
		return p.P95
	case P99Column:
		return p.P99
	}
	return math.NaN()
}

// Describe formats all fields of the point on one line.
func (p Point) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s=%s %s=%s", VersionColumn, p.Version, LabelColumn, p.Source)
	for _, col := range []string{MeanColumn, MedianColumn, PeakRSSColumn, P95Column, P99Column} {
		fmt.Fprintf(&b, " %s=%g", col, p.Metric(col))
	}
	return b.String()
}
