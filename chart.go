package bench

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	// ChartTitle is the heading of the composed chart.
	ChartTitle = "C++ benchmark performance summary"
	// LegendTitle names the color dimension.
	LegendTitle = "Compiler (OS)"
	// FacetTitle is drawn once below the facet headers of each panel.
	FacetTitle = "Benchmark version"
)

// ChartOptions configures the geometry of the composed chart.
type ChartOptions struct {
	FacetWidth vg.Length // width of a single facet's data area
	RowHeight  vg.Length // height of one panel including its title
	DPI        int
}

// DefaultChartOptions are the sizes used when nothing else is configured.
var DefaultChartOptions = ChartOptions{
	FacetWidth: 120,
	RowHeight:  200,
	DPI:        96,
}

// Chart is the composed summary: one row of facets per panel.
type Chart struct {
	Title    string
	Panels   []PanelChart
	Versions []string // facet order
	Sources  []string // x position and color order
	Legend   plot.Legend
	opts     ChartOptions
}

// PanelChart holds the facet plots of one panel. All facets share the y range.
type PanelChart struct {
	Panel
	Facets []*plot.Plot
	YMax   float64
}

// BuildChart constructs the panels for pp. Facets are ordered by versionOrder.
func BuildChart(pp []Point, versionOrder []string, opts ChartOptions) (*Chart, error) {
	if len(pp) == 0 {
		return nil, errors.New("no points to plot")
	}
	if opts.FacetWidth <= 0 {
		opts.FacetWidth = DefaultChartOptions.FacetWidth
	}
	if opts.RowHeight <= 0 {
		opts.RowHeight = DefaultChartOptions.RowHeight
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultChartOptions.DPI
	}
	ch := &Chart{
		Title:    ChartTitle,
		Versions: FacetOrder(pp, versionOrder),
		Sources:  SourceOrder(pp),
		Legend:   plot.New().Legend,
		opts:     opts,
	}
	srcIndex := make(map[string]int, len(ch.Sources))
	for i, s := range ch.Sources {
		srcIndex[s] = i
	}
	barWidth := opts.FacetWidth * 0.8 / vg.Length(len(ch.Sources))

	for _, panel := range Panels {
		pc := PanelChart{Panel: panel, YMax: panelMax(pp, panel.Column)}
		for fi, version := range ch.Versions {
			p := newFacet(version)
			top := make(map[int]*plotter.BarChart)
			for _, pt := range pp {
				v := pt.Metric(panel.Column)
				if pt.Version != version || math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				si := srcIndex[pt.Source]
				bar, err := plotter.NewBarChart(plotter.Values{v}, barWidth)
				if err != nil {
					return nil, err
				}
				bar.XMin = float64(si)
				bar.Color = plotutil.Color(si)
				bar.LineStyle.Width = 0
				// Repeated rows for the same source are stacked.
				if below := top[si]; below != nil {
					bar.StackOn(below)
				}
				top[si] = bar
				p.Add(bar)
			}
			p.X.Min, p.X.Max = -0.5, float64(len(ch.Sources))-0.5
			p.Y.Min, p.Y.Max = 0, pc.YMax
			if fi == 0 {
				p.Y.Label.Text = panel.Axis
			} else {
				p.Y.Width = 0
				p.Y.Tick.Length = 0
				p.Y.Tick.Marker = blankTicks{}
				p.Y.Tick.Label.Color = color.Transparent
			}
			pc.Facets = append(pc.Facets, p)
		}
		ch.Panels = append(ch.Panels, pc)
	}

	ch.Legend.Top, ch.Legend.Left = true, true
	for i, s := range ch.Sources {
		thumb, err := plotter.NewBarChart(plotter.Values{0}, barWidth)
		if err != nil {
			return nil, err
		}
		thumb.Color = plotutil.Color(i)
		thumb.LineStyle.Width = 0
		ch.Legend.Add(s, thumb)
	}
	return ch, nil
}

// newFacet creates a plot for one version with the x axis hidden.
// The version name is shown as the axis label below the bars.
func newFacet(version string) *plot.Plot {
	p := plot.New()
	p.HideX()
	p.X.Label.Text = version
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)
	return p
}

// blankTicks marks the default tick positions without printing values.
// Labels must stay non-empty, otherwise the grid treats ticks as minor.
type blankTicks struct{}

func (blankTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = " "
		}
	}
	return ticks
}

// panelMax returns the y range upper bound of a panel. Stacked bars of
// repeated rows are accounted for.
func panelMax(pp []Point, column string) float64 {
	type key struct{ version, source string }
	sums := make(map[key]float64)
	var heights []float64
	for _, pt := range pp {
		v := pt.Metric(column)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		k := key{pt.Version, pt.Source}
		sums[k] += v
		heights = append(heights, sums[k])
	}
	if len(heights) == 0 {
		return 1
	}
	max := floats.Max(heights)
	if max <= 0 {
		return 1
	}
	return max * 1.05
}
