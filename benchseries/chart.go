// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Names of the files written by Chart.
const (
	RPSChartFile     = "rps_comparison.png"
	LatencyChartFile = "latency_comparison.png"
)

var (
	skyBlue = color.NRGBA{0x87, 0xce, 0xeb, 0xff}
	salmon  = color.NRGBA{0xfa, 0x80, 0x72, 0xff}
)

// ChartOptions control the appearance of the charts written by Chart.
type ChartOptions struct {
	// TitlePrefix starts the title of every chart.
	TitlePrefix string

	// Width and Height are the size of each chart.
	Width, Height vg.Length

	// DPI is the resolution of the PNG images.
	DPI int
}

// DefaultChartOptions returns 1000x600 pixel charts.
func DefaultChartOptions() *ChartOptions {
	return &ChartOptions{
		TitlePrefix: "October CMS Performance",
		Width:       10 * vg.Inch,
		Height:      6 * vg.Inch,
		DPI:         100,
	}
}

type barChart struct {
	file, title, ylabel string
	clr                 color.Color
	value               func(s Scenario) float64
}

// Chart writes a bar chart of average requests per second and one of
// p95 latency, one bar per scenario, into dir. It returns the names of
// the files it wrote.
func Chart(scenarios []Scenario, dir string, opts *ChartOptions) ([]string, error) {
	if len(scenarios) == 0 {
		return nil, errors.New("no scenarios to chart")
	}
	if opts == nil {
		opts = DefaultChartOptions()
	}

	charts := []barChart{
		{RPSChartFile, "Average Requests Per Second", "RPS", skyBlue,
			func(s Scenario) float64 { return s.AvgRPS }},
		{LatencyChartFile, "P95 Latency (ms)", "Latency (ms)", salmon,
			func(s Scenario) float64 { return s.P95 }},
	}
	var written []string
	for _, c := range charts {
		pl, err := c.plot(scenarios, opts)
		if err != nil {
			return written, fmt.Errorf("%s: %w", c.file, err)
		}
		if err := writePNG(pl, filepath.Join(dir, c.file), opts); err != nil {
			return written, err
		}
		written = append(written, c.file)
	}
	return written, nil
}

func (c *barChart) plot(scenarios []Scenario, opts *ChartOptions) (*plot.Plot, error) {
	values := make(plotter.Values, len(scenarios))
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		values[i] = c.value(s)
		names[i] = s.Name
	}

	pl := plot.New()
	pl.Title.Text = opts.TitlePrefix + ": " + c.title
	pl.Y.Label.Text = c.ylabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Horizontal.Color = color.Gray{0xb3}
	pl.Add(grid)

	// Bars fill 80% of their slot.
	w := opts.Width * 0.8 / vg.Length(len(scenarios)+1)
	bars, err := plotter.NewBarChart(values, w)
	if err != nil {
		return nil, err
	}
	bars.Color = c.clr
	bars.LineStyle.Width = 0
	pl.Add(bars)
	pl.NominalX(names...)
	if pl.Y.Min > 0 {
		pl.Y.Min = 0
	}
	return pl, nil
}

func writePNG(pl *plot.Plot, file string, opts *ChartOptions) error {
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height),
		vgimg.UseDPI(opts.DPI), vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
