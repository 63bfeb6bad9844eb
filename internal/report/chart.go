package report

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cyclepower/internal/power"
	"github.com/san-kum/cyclepower/internal/sweep"
)

var ErrNoData = errors.New("report: no data to plot")

type ChartOptions struct {
	Width  int
	Height int
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 80, Height: 15}
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.White,
	asciigraph.Cyan,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Red,
	asciigraph.Green,
}

// Chart plots one component against velocity.
func Chart(points []sweep.Point, component int, opts ChartOptions) (string, error) {
	if len(points) == 0 {
		return "", ErrNoData
	}
	if component < 0 || component >= len(power.Components) {
		return "", fmt.Errorf("report: unknown component %d", component)
	}

	caption := fmt.Sprintf("%s power [W] over velocity %.1f..%.1f m/s",
		componentLabels[component], points[0].Velocity, points[len(points)-1].Velocity)

	return asciigraph.Plot(sweep.Series(points, component),
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	), nil
}

// ChartAll plots every component in one graph.
func ChartAll(points []sweep.Point, opts ChartOptions) (string, error) {
	if len(points) == 0 {
		return "", ErrNoData
	}

	series := make([][]float64, len(power.Components))
	for i := range series {
		series[i] = sweep.Series(points, i)
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption("power consumption over velocity"),
		asciigraph.SeriesColors(seriesColors...),
		asciigraph.SeriesLegends(componentLabels[:]...),
	), nil
}
