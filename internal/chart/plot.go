package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Faultbox/basefinder/internal/estimate"
)

// Image size for PNG output.
const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 8 * vg.Inch
)

var glyphColors = map[string]color.Color{
	SeriesSensors: color.RGBA{R: 0x3e, G: 0x49, B: 0x89, A: 0xff},
	SeriesRight:   color.RGBA{R: 0x35, G: 0xb7, B: 0x79, A: 0xff},
	SeriesLeft:    color.RGBA{R: 0xe0, G: 0xa0, B: 0x10, A: 0xff},
}

func newPlot(points []estimate.ChartPoint, o Options) (*plot.Plot, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "Azimuth (°)"
	p.Y.Label.Text = "Elevation (°)"
	p.Add(plotter.NewGrid())

	for _, g := range Group(points) {
		if len(g.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, 0, len(g.Points))
		for _, pt := range g.Points {
			xys = append(xys, plotter.XY{X: pt.AzDeg, Y: pt.ElDeg})
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", g.Name, err)
		}
		s.GlyphStyle.Color = glyphColors[g.Name]
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add(g.Name, s)
	}

	// Fixed bounds so consecutive images line up.
	p.X.Min, p.X.Max = o.AzMin, o.AzMax
	p.Y.Min, p.Y.Max = o.ElMin, o.ElMax
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// WritePNG renders the scatter as a PNG to w.
func WritePNG(w io.Writer, points []estimate.ChartPoint, o Options) error {
	p, err := newPlot(points, o)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(imageWidth, imageHeight, "png")
	if err != nil {
		return fmt.Errorf("png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png chart: %w", err)
	}
	return nil
}

// SavePNG renders the scatter to a PNG file at path.
func SavePNG(path string, points []estimate.ChartPoint, o Options) error {
	p, err := newPlot(points, o)
	if err != nil {
		return err
	}
	if err := p.Save(imageWidth, imageHeight, path); err != nil {
		return fmt.Errorf("save png chart %s: %w", path, err)
	}
	return nil
}
