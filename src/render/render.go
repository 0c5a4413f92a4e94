// Package render turns a timings.Dataset into a horizontal strip of line
// charts, one chart per label.
package render

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/zeebo/errs"

	"github.com/graphtimes/graphtimes/src/timings"
)

const (
	// Per-chart pixel geometry (the 6x4 inch figure panel of old).
	DefaultSubplotWidth  = 600
	DefaultSubplotHeight = 400
)

// Options controls chart geometry.
type Options struct {
	SubplotWidth  int
	SubplotHeight int
}

func (o Options) withDefaults() Options {
	if o.SubplotWidth <= 0 {
		o.SubplotWidth = DefaultSubplotWidth
	}
	if o.SubplotHeight <= 0 {
		o.SubplotHeight = DefaultSubplotHeight
	}
	return o
}

// Render draws one chart per label, in dataset label order, and composes
// them side by side into a single image. Colors are assigned positionally
// from the rainbow ramp.
func Render(ds *timings.Dataset, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	labels := ds.Labels()
	if len(labels) == 0 {
		return nil, errs.New("no samples to plot")
	}
	colors := Rainbow(len(labels))
	w, h := opts.SubplotWidth, opts.SubplotHeight
	strip := image.NewRGBA(image.Rect(0, 0, w*len(labels), h))
	for i, label := range labels {
		img, err := renderChart(label, ds.Series(label), colors[i], opts)
		if err != nil {
			return nil, errs.New("chart %q: %v", label, err)
		}
		draw.Draw(strip, image.Rect(i*w, 0, (i+1)*w, h), img, image.Point{}, draw.Src)
	}
	return strip, nil
}

// WritePNG renders the dataset and writes the strip to path.
func WritePNG(ds *timings.Dataset, opts Options, path string) error {
	img, err := Render(ds, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderChart draws a single label's series as a line with circular markers.
func renderChart(label string, series timings.Series, col drawing.Color, opts Options) (image.Image, error) {
	xs, ys := unzip(series)
	// go-chart needs at least two points per series; repeat a lone sample
	// with a nudged x so the marker still shows where the point is.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	st := chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
	xAxis := chart.XAxis{Name: "speed level"}
	if r := paddedRange(xs); r != nil {
		xAxis.Range = r
	}
	yAxis := chart.YAxis{Name: "time (ms)"}
	if r := paddedRange(ys); r != nil {
		yAxis.Range = r
	}
	ch := chart.Chart{
		Width:      opts.SubplotWidth,
		Height:     opts.SubplotHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{Name: label, XValues: xs, YValues: ys, Style: st},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// unzip splits a series into parallel x (speed) and y (time) slices,
// preserving encounter order.
func unzip(series timings.Series) ([]float64, []float64) {
	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, s := range series {
		xs[i] = float64(s.Speed)
		ys[i] = float64(s.TimeMs)
	}
	return xs, ys
}

// paddedRange returns an explicit axis range when the values are flat, where
// go-chart's auto range would collapse to a zero delta. Otherwise nil leaves
// the axis on auto scaling.
func paddedRange(vals []float64) *chart.ContinuousRange {
	if len(vals) == 0 {
		return nil
	}
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min != max {
		return nil
	}
	return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
}
