package bench

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	chartPad  = vg.Length(8)
	facetPadX = vg.Length(4)

	titleSize  = vg.Length(16)
	panelSize  = vg.Length(12)
	legendSize = vg.Length(11)
)

// Draw renders the chart onto c: the title on top, the legend in a column at
// the right and one row of facets per panel below the title.
func (ch *Chart) Draw(c draw.Canvas) {
	ts := ch.textStyle(titleSize)
	titleH := ts.Height(ch.Title) + 2*chartPad
	drawText(c, ts, c.Max.Y-chartPad, ch.Title)

	legendW := ch.legendWidth()
	body := draw.Crop(c, 0, -legendW, 0, -titleH)
	ch.drawLegend(draw.Crop(c, c.Max.X-c.Min.X-legendW, 0, 0, -titleH))

	rows := draw.Tiles{Rows: len(ch.Panels), Cols: 1, PadY: chartPad, PadLeft: chartPad, PadRight: chartPad}
	for i := range ch.Panels {
		ch.drawPanel(rows.At(body, 0, i), &ch.Panels[i])
	}
}

// drawPanel draws the panel title, the facets and the facet group title below them.
func (ch *Chart) drawPanel(c draw.Canvas, pc *PanelChart) {
	ps := ch.textStyle(panelSize)
	drawText(c, ps, c.Max.Y, pc.Title)

	hs := ch.textStyle(legendSize)
	hs.YAlign = draw.YBottom
	fc := draw.Crop(c, 0, 0, hs.Height(FacetTitle)+chartPad/2, -(ps.Height(pc.Title) + chartPad))
	for j, fcj := range ch.facetCanvases(pc, fc) {
		pc.Facets[j].Draw(fcj)
	}

	// Center the group title below the data areas rather than below the row.
	minX := fc.Min.X + ch.facetPad(pc.Facets[0])
	maxX := fc.Min.X + ch.rowWidth(pc)
	hc := draw.Canvas{Canvas: c.Canvas, Rectangle: vg.Rectangle{Min: vg.Point{X: minX, Y: c.Min.Y}, Max: vg.Point{X: maxX, Y: c.Max.Y}}}
	drawText(hc, hs, c.Min.Y, FacetTitle)
}

// facetCanvases lays out the facets of a panel left to right in c. Each canvas
// is sized so that the facet's data area is opts.FacetWidth wide.
func (ch *Chart) facetCanvases(pc *PanelChart, c draw.Canvas) []draw.Canvas {
	cs := make([]draw.Canvas, len(pc.Facets))
	x := c.Min.X
	for j, p := range pc.Facets {
		w := ch.facetPad(p) + ch.opts.FacetWidth
		cs[j] = draw.Canvas{Canvas: c.Canvas, Rectangle: vg.Rectangle{
			Min: vg.Point{X: x, Y: c.Min.Y},
			Max: vg.Point{X: x + w, Y: c.Max.Y},
		}}
		x += w + facetPadX
	}
	return cs
}

// facetPad returns the horizontal space p needs outside of its data area.
// A version label wider than the data area makes the data width grow
// faster than the canvas, so the canvas width is found by secant steps.
func (ch *Chart) facetPad(p *plot.Plot) vg.Length {
	want := ch.opts.FacetWidth
	dataWidth := func(w vg.Length) vg.Length {
		c := draw.Canvas{Rectangle: vg.Rectangle{Max: vg.Point{X: w, Y: ch.opts.RowHeight}}}
		return p.DataCanvas(c).Size().X
	}
	w0, g0 := want, dataWidth(want)
	w, g := w0+want-g0, vg.Length(0)
	for i := 0; i < 8; i++ {
		g = dataWidth(w)
		if d := g - want; d > -1e-3 && d < 1e-3 {
			break
		}
		slope := vg.Length(1)
		if w != w0 && g != g0 {
			slope = (g - g0) / (w - w0)
		}
		if slope <= 0 {
			slope = 1
		}
		w0, g0 = w, g
		w += (want - g) / slope
	}
	return w - want
}

// rowWidth returns the width of the facets of one panel including padding.
func (ch *Chart) rowWidth(pc *PanelChart) vg.Length {
	var w vg.Length
	for j, p := range pc.Facets {
		if j > 0 {
			w += facetPadX
		}
		w += ch.facetPad(p) + ch.opts.FacetWidth
	}
	return w
}

// Size returns the dimensions of the rendered chart.
func (ch *Chart) Size() (w, h vg.Length) {
	var rowW vg.Length
	for i := range ch.Panels {
		if rw := ch.rowWidth(&ch.Panels[i]); rw > rowW {
			rowW = rw
		}
	}
	w = rowW + 2*chartPad + ch.legendWidth()
	h = ch.textStyle(titleSize).Height(ch.Title) + 2*chartPad
	h += vg.Length(len(ch.Panels)) * (ch.opts.RowHeight + chartPad)
	return w, h
}

// Save writes the chart to a raster image file. The format is chosen by the
// file extension.
func (ch *Chart) Save(path string) error {
	w, h := ch.Size()
	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(ch.opts.DPI), vgimg.UseBackgroundColor(color.White))
	var out vg.CanvasWriterTo
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		out = vgimg.PngCanvas{Canvas: canvas}
	case ".jpg", ".jpeg":
		out = vgimg.JpegCanvas{Canvas: canvas}
	case ".tif", ".tiff":
		out = vgimg.TiffCanvas{Canvas: canvas}
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
	ch.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := out.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (ch *Chart) drawLegend(c draw.Canvas) {
	ts := ch.textStyle(legendSize)
	drawText(c, ts, c.Max.Y, LegendTitle)
	ch.Legend.Draw(draw.Crop(c, 0, 0, 0, -(ts.Height(LegendTitle) + chartPad)))
}

func (ch *Chart) legendWidth() vg.Length {
	var max vg.Length
	if w := ch.textStyle(legendSize).Width(LegendTitle); w > max {
		max = w
	}
	for _, s := range ch.Sources {
		w := ch.Legend.TextStyle.Width(s) + ch.Legend.ThumbnailWidth + ch.Legend.Padding
		if w > max {
			max = w
		}
	}
	return max + 2*chartPad
}

// textStyle returns the default plot title style at the given font size.
func (ch *Chart) textStyle(size vg.Length) text.Style {
	ts := plot.New().Title.TextStyle
	ts.Font.Size = size
	ts.XAlign = draw.XCenter
	ts.YAlign = draw.YTop
	return ts
}

// drawText draws txt horizontally centered on c at height y.
func drawText(c draw.Canvas, ts text.Style, y vg.Length, txt string) {
	c.FillText(ts, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: y}, txt)
}
