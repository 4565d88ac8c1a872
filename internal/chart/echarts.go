package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Faultbox/basefinder/internal/estimate"
)

var seriesColors = map[string]string{
	SeriesSensors: "#3e4989",
	SeriesRight:   "#35b779",
	SeriesLeft:    "#fde725",
}

// RenderHTML writes a standalone go-echarts page with azimuth on x and
// elevation on y.
func RenderHTML(w io.Writer, points []estimate.ChartPoint, o Options) error {
	if err := o.validate(); err != nil {
		return err
	}

	groups := Group(points)
	visible := 0
	for _, g := range groups {
		visible += len(g.Points)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: fmt.Sprintf("visible=%d", visible)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: o.AzMin, Max: o.AzMax, Name: "Azimuth (°)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: o.ElMin, Max: o.ElMax, Name: "Elevation (°)", NameLocation: "middle", NameGap: 30}),
	)

	for _, g := range groups {
		data := make([]opts.ScatterData, 0, len(g.Points))
		for _, p := range g.Points {
			data = append(data, opts.ScatterData{
				Name:  fmt.Sprintf("sensor %d", p.Index),
				Value: []interface{}{p.AzDeg, p.ElDeg},
			})
		}
		scatter.AddSeries(g.Name, data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: seriesColors[g.Name]}),
		)
	}

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render html chart: %w", err)
	}
	return nil
}
